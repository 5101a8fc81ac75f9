package windows

import (
	"fmt"
	"log"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-datagrid/datagrid"
	"github.com/magpierre/fyne-datagrid/internal/filter"
)

type MainWindow struct {
	a                fyne.App
	w                fyne.Window
	top, left        fyne.CanvasObject
	bottom           fyne.CanvasObject
	standings        *Standings
	grid             *datagrid.DataGrid
	arrowGrid        *datagrid.DataGrid
	console          *Console
	docTabs          *container.DocTabs
	filterEntry      *widget.Entry
	selectedBindList binding.StringList
	status           binding.String
	statusBar        *widget.Label
}

// CreateMainWindow starts the sample application and blocks until it quits.
func CreateMainWindow() *MainWindow {
	a := app.NewWithID("fyne-datagrid")
	a.Settings().SetTheme(&CustomTheme{})
	t, err := NewMainWindow(a)
	if err != nil {
		log.Fatalf("failed to create main window: %v", err)
	}
	t.w.ShowAndRun()
	return t
}

// NewMainWindow builds the main window of a for the embedded standings.
func NewMainWindow(a fyne.App) (*MainWindow, error) {
	standings, err := DefaultStandings()
	if err != nil {
		return nil, err
	}

	t := &MainWindow{
		a:                a,
		standings:        standings,
		selectedBindList: binding.NewStringList(),
		status:           binding.NewString(),
	}
	t.w = a.NewWindow("Data Grid Sample")
	t.w.Resize(fyne.NewSize(900, 600))

	t.statusBar = widget.NewLabelWithData(t.status)
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}
	t.bottom = container.NewHBox(t.statusBar)

	if err := t.createStandingsGrid(); err != nil {
		return nil, err
	}
	if err := t.createArrowGrid(); err != nil {
		return nil, err
	}
	t.console = NewConsole(t.w, t.grid, t.standings)

	selectedList := widget.NewListWithData(t.selectedBindList, func() fyne.CanvasObject {
		return widget.NewLabel("template")
	}, func(di binding.DataItem, co fyne.CanvasObject) {
		co.(*widget.Label).Bind(di.(binding.String))
	})
	t.left = container.NewGridWrap(fyne.NewSize(180, 560), widget.NewCard("", "Selected", selectedList))
	t.left.Hide()

	t.filterEntry = widget.NewEntry()
	t.filterEntry.SetPlaceHolder("Filter, e.g. Won > 50 AND Conf = East")
	t.filterEntry.OnSubmitted = t.ApplyFilter
	clearFilter := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		t.filterEntry.SetText("")
		t.ApplyFilter("")
	})
	filterBar := container.NewBorder(nil, nil, widget.NewIcon(theme.SearchIcon()), clearFilter, t.filterEntry)

	t.docTabs = container.NewDocTabs(
		container.NewTabItem("Standings", container.NewBorder(filterBar, nil, nil, nil, t.grid)),
		container.NewTabItem("Arrow", t.arrowGrid),
		container.NewTabItem("Console", t.console.GetContainer()),
	)
	t.docTabs.CloseIntercept = func(*container.TabItem) {}

	t.top = t.createToolbar()

	c := container.NewBorder(t.top, t.bottom, t.left, nil, widget.NewCard("", "", t.docTabs))
	t.w.SetContent(c)
	t.SetStatus("Ready")
	return t, nil
}

func (t *MainWindow) createStandingsGrid() error {
	columns, err := t.standings.NewColumns()
	if err != nil {
		return err
	}
	t.grid = datagrid.NewDataGridWithConfig(GridConfig(t.a.Settings().ThemeVariant()), columns...)
	t.grid.SelectionChanged.Subscribe(t.selectionChanged)
	t.grid.EditTargetChanged.Subscribe(t.editTargetChanged)
	t.grid.OnRefresh = t.refreshStandings
	if err := t.grid.SetItems(t.standings.Teams); err != nil {
		return fmt.Errorf("failed to show standings: %w", err)
	}
	return nil
}

func (t *MainWindow) createArrowGrid() error {
	src, err := NewStandingsSource(t.standings.Teams)
	if err != nil {
		return fmt.Errorf("failed to build arrow table: %w", err)
	}
	columns, err := ColumnsFor(src)
	if err != nil {
		return err
	}
	cfg := GridConfig(t.a.Settings().ThemeVariant())
	cfg.SelectionMode = datagrid.SelectionSingle
	cfg.EditingEnabled = false
	cfg.PullToRefreshEnabled = false
	t.arrowGrid = datagrid.NewDataGridWithConfig(cfg, columns...)
	return t.arrowGrid.SetDataSource(src)
}

func (t *MainWindow) createToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.MenuIcon(), func() {
			if !t.left.Visible() {
				t.left.Show()
			} else {
				t.left.Hide()
			}
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ListIcon(), func() {
			NewColumnOptionsDialog(t.w, t.grid, func(options []ColumnOption) {
				t.SetStatus(fmt.Sprintf("Updated %d columns", len(options)))
			}).Show()
		}),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.EditSelected),
		widget.NewToolbarAction(theme.ConfirmIcon(), func() {
			t.grid.SetRowToEdit(nil)
		}),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			t.grid.RefreshView().BeginRefresh()
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			t.grid.SetSelectedItems()
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			runtime.GC()
			t.SetStatus("Garbage collected")
		}),
	)
}

// SetStatus updates the status bar message
func (t *MainWindow) SetStatus(message string) {
	if err := t.status.Set(message); err != nil {
		log.Printf("status: %v", err)
	}
}

// ApplyFilter filters the standings by a query such as "Won > 50 AND Conf = East".
func (t *MainWindow) ApplyFilter(query string) {
	f, err := filter.Parse(query, propertyNames(t.grid))
	if err == nil {
		err = t.grid.SetFilter(f)
	}
	if err != nil {
		t.SetStatus("Invalid filter")
		dialog.ShowError(err, t.w)
		return
	}
	if f == nil {
		t.SetStatus("Filter cleared")
		return
	}
	t.SetStatus(fmt.Sprintf("Showing %d teams where %s", len(t.grid.Items()), f.Description()))
}

// EditSelected puts the selected team into edit mode.
func (t *MainWindow) EditSelected() {
	item := t.grid.SelectedItem()
	if item == nil {
		dialog.ShowInformation("Select a Team", "Please select a team first", t.w)
		return
	}
	t.grid.SetRowToEdit(item)
}

func (t *MainWindow) refreshStandings() {
	defer t.grid.EndRefresh()

	standings, err := DefaultStandings()
	if err == nil {
		err = t.grid.SetItems(standings.Teams)
	}
	if err != nil {
		t.SetStatus("Refresh failed")
		dialog.ShowError(err, t.w)
		return
	}
	t.standings.Teams = standings.Teams
	t.SetStatus(fmt.Sprintf("Reloaded %d teams", len(standings.Teams)))
}

func (t *MainWindow) selectionChanged(_ any, change datagrid.SelectionChange) {
	names := make([]string, 0, len(change.Current))
	for _, item := range change.Current {
		if team, ok := item.(*Team); ok {
			names = append(names, team.Name)
		}
	}
	if err := t.selectedBindList.Set(names); err != nil {
		log.Printf("selection list: %v", err)
	}
	switch len(names) {
	case 0:
		t.SetStatus("No team selected")
	case 1:
		t.SetStatus("Selected " + names[0])
	default:
		t.SetStatus(fmt.Sprintf("Selected %d teams", len(names)))
	}
}

func (t *MainWindow) editTargetChanged(_ any, change datagrid.EditTargetChange) {
	team, ok := change.New.(*Team)
	if !ok {
		t.SetStatus("Editing finished")
		return
	}
	t.SetStatus("Editing " + team.Name)
}

func propertyNames(grid *datagrid.DataGrid) []string {
	columns := grid.Columns().Items()
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.PropertyName()
	}
	return names
}

// Grid returns the standings grid.
func (t *MainWindow) Grid() *datagrid.DataGrid {
	return t.grid
}
