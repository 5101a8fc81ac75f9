package windows

import (
	"reflect"

	"github.com/traefik/yaegi/interp"

	"github.com/magpierre/fyne-datagrid/datagrid"
	"github.com/magpierre/fyne-datagrid/internal/filter"
)

// GridSymbols exports the datagrid package and the query filter to console scripts
var GridSymbols = interp.Exports{
	"github.com/magpierre/fyne-datagrid/datagrid/datagrid": {
		// functions
		"NewColumn":        reflect.ValueOf(datagrid.NewColumn),
		"NewDataGrid":      reflect.ValueOf(datagrid.NewDataGrid),
		"DefaultConfig":    reflect.ValueOf(datagrid.DefaultConfig),
		"ParseGridLength":  reflect.ValueOf(datagrid.ParseGridLength),
		"Absolute":         reflect.ValueOf(datagrid.Absolute),
		"Star":             reflect.ValueOf(datagrid.Star),
		"UniformThickness": reflect.ValueOf(datagrid.UniformThickness),

		// variables
		"GridLengthStar":   reflect.ValueOf(&datagrid.GridLengthStar).Elem(),
		"GridLengthAuto":   reflect.ValueOf(&datagrid.GridLengthAuto).Elem(),
		"ErrNotSortable":   reflect.ValueOf(&datagrid.ErrNotSortable).Elem(),
		"ErrInvalidColumn": reflect.ValueOf(&datagrid.ErrInvalidColumn).Elem(),
		"ErrInvalidFilter": reflect.ValueOf(&datagrid.ErrInvalidFilter).Elem(),

		// constants
		"SelectionNone":     reflect.ValueOf(datagrid.SelectionNone),
		"SelectionSingle":   reflect.ValueOf(datagrid.SelectionSingle),
		"SelectionMultiple": reflect.ValueOf(datagrid.SelectionMultiple),
		"SortNone":          reflect.ValueOf(datagrid.SortNone),
		"SortAscending":     reflect.ValueOf(datagrid.SortAscending),
		"SortDescending":    reflect.ValueOf(datagrid.SortDescending),
		"AlignCenter":       reflect.ValueOf(datagrid.AlignCenter),
		"AlignStart":        reflect.ValueOf(datagrid.AlignStart),
		"AlignEnd":          reflect.ValueOf(datagrid.AlignEnd),
		"AlignFill":         reflect.ValueOf(datagrid.AlignFill),

		// types
		"Column":          reflect.ValueOf((*datagrid.Column)(nil)),
		"Config":          reflect.ValueOf((*datagrid.Config)(nil)),
		"DataGrid":        reflect.ValueOf((*datagrid.DataGrid)(nil)),
		"Filter":          reflect.ValueOf((*datagrid.Filter)(nil)),
		"GridLength":      reflect.ValueOf((*datagrid.GridLength)(nil)),
		"LayoutAlignment": reflect.ValueOf((*datagrid.LayoutAlignment)(nil)),
		"Palette":         reflect.ValueOf((*datagrid.Palette)(nil)),
		"Row":             reflect.ValueOf((*datagrid.Row)(nil)),
		"SelectionMode":   reflect.ValueOf((*datagrid.SelectionMode)(nil)),
		"SortDirection":   reflect.ValueOf((*datagrid.SortDirection)(nil)),
		"SortState":       reflect.ValueOf((*datagrid.SortState)(nil)),
		"Value":           reflect.ValueOf((*datagrid.Value)(nil)),
	},
	"github.com/magpierre/fyne-datagrid/filter/filter": {
		"Parse": reflect.ValueOf(filter.Parse),
		"All":   reflect.ValueOf(filter.All),
		"Any":   reflect.ValueOf(filter.Any),

		"CompositeFilter": reflect.ValueOf((*filter.CompositeFilter)(nil)),
		"Condition":       reflect.ValueOf((*filter.Condition)(nil)),
		"Not":             reflect.ValueOf((*filter.Not)(nil)),
		"Search":          reflect.ValueOf((*filter.Search)(nil)),
	},
}

// sessionSymbols exports the live grid and its teams under the import path "app".
func sessionSymbols(grid *datagrid.DataGrid, standings *Standings) interp.Exports {
	return interp.Exports{
		"app/app": {
			"Grid":  reflect.ValueOf(func() *datagrid.DataGrid { return grid }),
			"Teams": reflect.ValueOf(func() []Team { return standings.Teams }),
			"Reload": reflect.ValueOf(func() error {
				return grid.Reload()
			}),
			"Team":   reflect.ValueOf((*Team)(nil)),
			"Streak": reflect.ValueOf((*Streak)(nil)),
		},
	}
}
