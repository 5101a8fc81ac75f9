package windows

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

//go:embed teams.yaml
var teamsYAML []byte

// Result is the outcome of the games in a streak.
type Result int

const (
	Lost Result = iota
	Won
)

func (r Result) String() string {
	if r == Won {
		return "Won"
	}
	return "Lost"
}

// UnmarshalYAML reads "won" or "lost".
func (r *Result) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "won", "w":
		*r = Won
	case "lost", "l":
		*r = Lost
	default:
		return fmt.Errorf("line %d: unknown result %q", value.Line, value.Value)
	}
	return nil
}

// Streak is a run of consecutive wins or losses.
type Streak struct {
	Result Result `yaml:"result"`
	Count  int    `yaml:"count"`
}

func (s Streak) score() int {
	if s.Result == Won {
		return s.Count
	}
	return -s.Count
}

// Compare orders streaks from the longest losing run to the longest winning run.
func (s Streak) Compare(other any) int {
	switch o := other.(type) {
	case Streak:
		return s.score() - o.score()
	case *Streak:
		if o != nil {
			return s.score() - o.score()
		}
	}
	return s.score()
}

func (s Streak) String() string {
	return fmt.Sprintf("%s %d", s.Result, s.Count)
}

// Team is one row of the standings table.
type Team struct {
	Name       string  `yaml:"name"`
	Won        int     `yaml:"won"`
	Lost       int     `yaml:"lost"`
	Percentage float64 `yaml:"percentage"`
	Conf       string  `yaml:"conf"`
	Div        string  `yaml:"div"`
	Home       string  `yaml:"home"`
	Road       string  `yaml:"road"`
	Last10     string  `yaml:"last10"`
	Streak     Streak  `yaml:"streak"`
}

// ColumnSpec describes a grid column in the sample document.
type ColumnSpec struct {
	Title    string `yaml:"title"`
	Property string `yaml:"property"`
	Width    string `yaml:"width"`
	Format   string `yaml:"format"`
	Visible  *bool  `yaml:"visible"`
	Sortable *bool  `yaml:"sortable"`
}

// Standings is the sample document: a column layout and the teams to show.
type Standings struct {
	Columns []ColumnSpec `yaml:"columns"`
	Teams   []Team       `yaml:"teams"`
}

// LoadStandings parses a standings document. Missing win percentages are
// computed from the record.
func LoadStandings(data []byte) (*Standings, error) {
	var s Standings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse standings: %w", err)
	}
	for i := range s.Teams {
		t := &s.Teams[i]
		if t.Percentage == 0 && t.Won+t.Lost > 0 {
			t.Percentage = float64(t.Won) / float64(t.Won+t.Lost)
		}
	}
	return &s, nil
}

// DefaultStandings returns the embedded sample standings.
func DefaultStandings() (*Standings, error) {
	return LoadStandings(teamsYAML)
}

// NewColumns builds grid columns from the document's column layout.
func (s *Standings) NewColumns() ([]*datagrid.Column, error) {
	columns := make([]*datagrid.Column, 0, len(s.Columns))
	for _, spec := range s.Columns {
		col, err := spec.column()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, nil
}

func (spec ColumnSpec) column() (*datagrid.Column, error) {
	col := datagrid.NewColumn(spec.Title, spec.Property)
	if spec.Width != "" {
		w, err := datagrid.ParseGridLength(spec.Width)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", spec.Title, err)
		}
		col.SetWidth(w)
	}
	if spec.Format != "" {
		col.SetStringFormat(spec.Format)
	}
	if spec.Visible != nil {
		col.SetVisible(*spec.Visible)
	}
	if spec.Sortable != nil {
		col.SetSortingEnabled(*spec.Sortable)
	}
	return col, nil
}

// TeamPointers returns pointers into s.Teams so grid edits update the document.
func (s *Standings) TeamPointers() []*Team {
	teams := make([]*Team, len(s.Teams))
	for i := range s.Teams {
		teams[i] = &s.Teams[i]
	}
	return teams
}
