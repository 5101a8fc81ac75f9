package windows

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

// ColumnOption holds the edited settings of one grid column
type ColumnOption struct {
	Column  *datagrid.Column
	Visible bool
	Width   string
	Format  string
}

// Apply writes the option to its column. Nothing is changed when the width
// does not parse.
func (o ColumnOption) Apply() error {
	width, err := datagrid.ParseGridLength(o.Width)
	if err != nil {
		return fmt.Errorf("column %q: %w", o.Column.Title(), err)
	}
	o.Column.SetWidth(width)
	o.Column.SetStringFormat(o.Format)
	o.Column.SetVisible(o.Visible)
	return nil
}

// ColumnOptionsDialog lets the user show, hide and resize grid columns
type ColumnOptionsDialog struct {
	dialog   dialog.Dialog
	window   fyne.Window
	grid     *datagrid.DataGrid
	rows     []columnOptionRow
	callback func([]ColumnOption)
}

type columnOptionRow struct {
	column *datagrid.Column
	check  *widget.Check
	width  *widget.Entry
	format *widget.Entry
}

// NewColumnOptionsDialog creates a column options dialog for grid
func NewColumnOptionsDialog(w fyne.Window, grid *datagrid.DataGrid, callback func([]ColumnOption)) *ColumnOptionsDialog {
	cod := &ColumnOptionsDialog{
		window:   w,
		grid:     grid,
		callback: callback,
	}
	cod.createDialog()
	return cod
}

func (cod *ColumnOptionsDialog) createDialog() {
	columnLabel := widget.NewLabel("Visible Columns:")
	columnLabel.TextStyle = fyne.TextStyle{Bold: true}

	selectAllBtn := widget.NewButton("Show All", func() {
		for _, row := range cod.rows {
			row.check.SetChecked(true)
		}
	})
	deselectAllBtn := widget.NewButton("Hide All", func() {
		for _, row := range cod.rows {
			row.check.SetChecked(false)
		}
	})

	form := container.NewGridWithColumns(3,
		widget.NewLabelWithStyle("Column", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Format", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for _, col := range cod.grid.Columns().Items() {
		row := columnOptionRow{
			column: col,
			check:  widget.NewCheck(col.Title(), nil),
			width:  widget.NewEntry(),
			format: widget.NewEntry(),
		}
		row.check.SetChecked(col.Visible())
		row.width.SetText(col.Width().String())
		row.width.SetPlaceHolder("120, *, 2* or Auto")
		row.format.SetText(col.StringFormat())
		row.format.SetPlaceHolder("%v")
		cod.rows = append(cod.rows, row)
		form.Add(row.check)
		form.Add(row.width)
		form.Add(row.format)
	}

	formScroll := container.NewVScroll(form)
	formScroll.SetMinSize(fyne.NewSize(460, 260))

	help := widget.NewLabel("Widths are pixels, star weights (*, 2*) or Auto. Formats use Go fmt verbs.")
	help.TextStyle = fyne.TextStyle{Italic: true}
	help.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		columnLabel,
		container.NewHBox(selectAllBtn, deselectAllBtn),
		formScroll,
		widget.NewSeparator(),
		help,
	)

	cod.dialog = dialog.NewCustomConfirm(
		"Column Options",
		"Apply",
		"Cancel",
		content,
		func(confirmed bool) {
			if confirmed {
				cod.handleConfirm()
			}
		},
		cod.window,
	)
	cod.dialog.Resize(fyne.NewSize(520, 460))
}

// options collects the dialog state.
func (cod *ColumnOptionsDialog) options() []ColumnOption {
	options := make([]ColumnOption, 0, len(cod.rows))
	for _, row := range cod.rows {
		options = append(options, ColumnOption{
			Column:  row.column,
			Visible: row.check.Checked,
			Width:   strings.TrimSpace(row.width.Text),
			Format:  strings.TrimSpace(row.format.Text),
		})
	}
	return options
}

func (cod *ColumnOptionsDialog) handleConfirm() {
	options := cod.options()

	// Validate every width before touching any column
	var errs []error
	for _, o := range options {
		if _, err := datagrid.ParseGridLength(o.Width); err != nil {
			errs = append(errs, fmt.Errorf("column %q: %w", o.Column.Title(), err))
		}
	}
	if len(errs) > 0 {
		dialog.ShowError(errors.Join(errs...), cod.window)
		return
	}

	for _, o := range options {
		if err := o.Apply(); err != nil {
			dialog.ShowError(err, cod.window)
			return
		}
	}

	if cod.callback != nil {
		cod.callback(options)
	}
}

func (cod *ColumnOptionsDialog) Show() {
	cod.dialog.Show()
}
