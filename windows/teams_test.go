package windows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

func TestDefaultStandings(t *testing.T) {
	s, err := DefaultStandings()
	require.NoError(t, err)

	require.Len(t, s.Teams, 12)
	celtics := s.Teams[0]
	assert.Equal(t, "Boston Celtics", celtics.Name)
	assert.Equal(t, 64, celtics.Won)
	assert.InDelta(t, 64.0/82.0, celtics.Percentage, 1e-9)
	assert.Equal(t, Streak{Result: Won, Count: 1}, celtics.Streak)
}

func TestLoadStandingsKeepsPercentage(t *testing.T) {
	s, err := LoadStandings([]byte(`teams: [{name: A, won: 1, lost: 1, percentage: 0.9}]`))
	require.NoError(t, err)
	assert.Equal(t, 0.9, s.Teams[0].Percentage)
}

func TestLoadStandingsRejectsUnknownResult(t *testing.T) {
	_, err := LoadStandings([]byte(`teams: [{name: A, streak: {result: tied, count: 1}}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown result "tied"`)
}

func TestStreakCompare(t *testing.T) {
	won5 := Streak{Result: Won, Count: 5}
	lost2 := Streak{Result: Lost, Count: 2}

	assert.Positive(t, won5.Compare(lost2))
	assert.Negative(t, lost2.Compare(&won5))
	assert.Zero(t, won5.Compare(Streak{Result: Won, Count: 5}))
	assert.Equal(t, "Won 5", won5.String())
	assert.Equal(t, "Lost 2", lost2.String())
}

func TestNewColumns(t *testing.T) {
	s, err := DefaultStandings()
	require.NoError(t, err)

	columns, err := s.NewColumns()
	require.NoError(t, err)
	require.Len(t, columns, 10)

	byProperty := make(map[string]*datagrid.Column)
	for _, col := range columns {
		byProperty[col.PropertyName()] = col
	}
	assert.Equal(t, datagrid.Star(2), byProperty["Name"].Width())
	assert.Equal(t, datagrid.Absolute(60), byProperty["Won"].Width())
	assert.Equal(t, datagrid.GridLengthAuto, byProperty["Conf"].Width())
	assert.Equal(t, "%.3f", byProperty["Percentage"].StringFormat())
	assert.False(t, byProperty["Last10"].Visible())
	assert.False(t, byProperty["Home"].SortingEnabled())
	assert.True(t, byProperty["Streak"].SortingEnabled())
}

func TestNewColumnsRejectsBadWidth(t *testing.T) {
	s := &Standings{Columns: []ColumnSpec{{Title: "Team", Property: "Name", Width: "wide"}}}
	_, err := s.NewColumns()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "Team"`)
}

func TestTeamPointersShareTheDocument(t *testing.T) {
	s, err := DefaultStandings()
	require.NoError(t, err)

	s.TeamPointers()[1].Won = 99
	assert.Equal(t, 99, s.Teams[1].Won)
}
