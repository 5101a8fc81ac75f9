package datagrid

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

type team struct {
	Name    string
	Won     int
	Lost    int
	Conf    string
	Rating  float64
	Active  bool
	Founded time.Time
	Streak  streak
	Tags    []string
}

func sampleTeams() []team {
	date := func(y int) time.Time { return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC) }
	return []team{
		{Name: "Celtics", Won: 57, Lost: 25, Conf: "East", Rating: 7.3, Active: true, Founded: date(1946), Streak: 3},
		{Name: "Lakers", Won: 47, Lost: 35, Conf: "West", Rating: 1.2, Active: true, Founded: date(1947), Streak: -2},
		{Name: "Bucks", Won: 58, Lost: 24, Conf: "East", Rating: 5.9, Active: false, Founded: date(1968), Streak: 1},
	}
}

// newTestGrid binds a grid with cols to the sample teams.
func newTestGrid(t *testing.T, cfg Config, cols ...*Column) (*DataGrid, []team) {
	t.Helper()
	test.NewTempApp(t)
	teams := sampleTeams()
	g := NewDataGridWithConfig(cfg, cols...)
	if err := g.SetItems(teams); err != nil {
		t.Fatalf("SetItems: %v", err)
	}
	return g, teams
}

func defaultColumns() []*Column {
	return []*Column{NewColumn("Team", "Name"), NewColumn("Won", "Won"), NewColumn("Conf", "Conf")}
}

var colorRed = color.NRGBA{R: 0xff, A: 0xff}

type contextLabel struct {
	*widget.Label
	value any
}

func (c *contextLabel) SetContext(value any) { c.value = value }
