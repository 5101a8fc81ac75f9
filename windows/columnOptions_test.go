package windows

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

func newOptionsGrid(t *testing.T) *datagrid.DataGrid {
	t.Helper()
	test.NewTempApp(t)
	s, err := DefaultStandings()
	require.NoError(t, err)
	columns, err := s.NewColumns()
	require.NoError(t, err)
	grid := datagrid.NewDataGrid(columns...)
	require.NoError(t, grid.SetItems(s.Teams))
	return grid
}

func TestColumnOptionsDialogShowsCurrentSettings(t *testing.T) {
	grid := newOptionsGrid(t)
	cod := NewColumnOptionsDialog(test.NewWindow(nil), grid, nil)

	options := cod.options()
	require.Len(t, options, 10)
	assert.Equal(t, "2*", options[0].Width)
	assert.True(t, options[0].Visible)
	assert.Equal(t, "%.3f", options[3].Format)
	assert.False(t, options[8].Visible)
}

func TestColumnOptionsDialogApplies(t *testing.T) {
	grid := newOptionsGrid(t)
	var applied []ColumnOption
	cod := NewColumnOptionsDialog(test.NewWindow(nil), grid, func(options []ColumnOption) {
		applied = options
	})

	cod.rows[4].check.SetChecked(false)
	cod.rows[6].width.SetText("120")
	cod.rows[8].check.SetChecked(true)
	cod.handleConfirm()

	require.Len(t, applied, 10)
	columns := grid.Columns().Items()
	assert.False(t, columns[4].Visible())
	assert.Equal(t, datagrid.Absolute(120), columns[6].Width())
	assert.True(t, columns[8].Visible())
	assert.Equal(t, 9, grid.Rows()[0].CellCount())
}

func TestColumnOptionsDialogRejectsBadWidth(t *testing.T) {
	grid := newOptionsGrid(t)
	called := false
	cod := NewColumnOptionsDialog(test.NewWindow(nil), grid, func([]ColumnOption) {
		called = true
	})

	cod.rows[0].check.SetChecked(false)
	cod.rows[1].width.SetText("wide")
	cod.handleConfirm()

	assert.False(t, called)
	assert.True(t, grid.Columns().At(0).Visible(), "no column changes on invalid input")
}

func TestColumnOptionApply(t *testing.T) {
	test.NewTempApp(t)
	col := datagrid.NewColumn("Won", "Won")

	require.NoError(t, ColumnOption{Column: col, Visible: false, Width: "Auto", Format: "%03d"}.Apply())
	assert.False(t, col.Visible())
	assert.Equal(t, datagrid.GridLengthAuto, col.Width())
	assert.Equal(t, "%03d", col.StringFormat())

	assert.Error(t, ColumnOption{Column: col, Width: "-1"}.Apply())
}
