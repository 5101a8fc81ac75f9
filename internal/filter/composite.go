package filter

import (
	"fmt"
	"strings"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

// LogicOp joins the filters of a CompositeFilter.
type LogicOp int

const (
	// LogicAND passes rows every filter accepts.
	LogicAND LogicOp = iota
	// LogicOR passes rows any filter accepts.
	LogicOR
)

func (op LogicOp) String() string {
	switch op {
	case LogicAND:
		return "AND"
	case LogicOR:
		return "OR"
	default:
		return fmt.Sprintf("logic(%d)", int(op))
	}
}

// decisive is the result of one filter that decides the whole composite.
func (op LogicOp) decisive() (bool, error) {
	switch op {
	case LogicAND:
		return false, nil
	case LogicOR:
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown logic operator %d", datagrid.ErrInvalidFilter, int(op))
	}
}

// CompositeFilter evaluates the grid values of a row against several filters.
// An empty composite passes every row.
type CompositeFilter struct {
	Filters []datagrid.Filter
	Logic   LogicOp
}

var _ datagrid.Filter = (*CompositeFilter)(nil)

// All passes rows accepted by every filter.
func All(filters ...datagrid.Filter) *CompositeFilter {
	return &CompositeFilter{Filters: filters, Logic: LogicAND}
}

// Any passes rows accepted by at least one filter.
func Any(filters ...datagrid.Filter) *CompositeFilter {
	return &CompositeFilter{Filters: filters, Logic: LogicOR}
}

// join combines left and right with op. A left composite with the same
// operator is extended, so "a AND b AND c" stays one level deep.
func join(op LogicOp, left, right datagrid.Filter) *CompositeFilter {
	if c, ok := left.(*CompositeFilter); ok && c.Logic == op {
		return &CompositeFilter{Filters: append(c.Filters[:len(c.Filters):len(c.Filters)], right), Logic: op}
	}
	return &CompositeFilter{Filters: []datagrid.Filter{left, right}, Logic: op}
}

// Evaluate implements datagrid.Filter. It stops at the first filter that
// decides the result. Errors name the filter that failed.
func (f *CompositeFilter) Evaluate(row []datagrid.Value, columnNames []string) (bool, error) {
	stop, err := f.Logic.decisive()
	if err != nil {
		return false, err
	}
	for _, child := range f.Filters {
		ok, err := child.Evaluate(row, columnNames)
		if err != nil {
			return false, fmt.Errorf("%s: %w", child.Description(), err)
		}
		if ok == stop {
			return stop, nil
		}
	}
	return !stop || len(f.Filters) == 0, nil
}

// Description implements datagrid.Filter.
func (f *CompositeFilter) Description() string {
	switch len(f.Filters) {
	case 0:
		return "all rows"
	case 1:
		return f.Filters[0].Description()
	}
	parts := make([]string, len(f.Filters))
	for i, child := range f.Filters {
		parts[i] = child.Description()
	}
	return "(" + strings.Join(parts, " "+f.Logic.String()+" ") + ")"
}

// Not passes the rows its filter rejects.
type Not struct {
	Filter datagrid.Filter
}

var _ datagrid.Filter = Not{}

// Evaluate implements datagrid.Filter.
func (n Not) Evaluate(row []datagrid.Value, columnNames []string) (bool, error) {
	ok, err := n.Filter.Evaluate(row, columnNames)
	return !ok && err == nil, err
}

// Description implements datagrid.Filter.
func (n Not) Description() string {
	return "NOT " + n.Filter.Description()
}
