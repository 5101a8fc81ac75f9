// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datagrid

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SelectionChange describes a change of the selected items.
type SelectionChange struct {
	Previous []any
	Current  []any
}

// EditTargetChange describes a change of the item being edited.
type EditTargetChange struct {
	Old any
	New any
}

// Filter decides which items a grid shows.
// Rows are passed as values of the grid's columns, in column order.
type Filter interface {
	Evaluate(row []Value, columnNames []string) (bool, error)
	Description() string
}

// DataGrid is a widget showing a list of items as rows of columns.
type DataGrid struct {
	widget.BaseWidget

	// SelectionChanged is raised after the selected items change.
	SelectionChanged Event[SelectionChange]
	// EditTargetChanged is raised after the item being edited changes.
	EditTargetChanged Event[EditTargetChange]

	// OnRefresh is called when the user pulls to refresh. It must call
	// EndRefresh when done. Without it the grid reloads itself.
	OnRefresh func()

	config   Config
	columns  *ObservableList[*Column]
	bound    map[*Column]Token
	items    []any
	itemType ItemType
	internal []any
	index    map[any]int

	selected   []any
	editTarget any
	sortColumn *Column
	filter     Filter

	rows    []*Row
	autos   []float32
	holding bool
	rowBox  *fyne.Container
	scroll  *container.Scroll
	header  *header
	refresh *RefreshView

	refreshProxy *WeakEventProxy[RefreshView, struct{}]
	onRefreshing *EventHandler[struct{}]
}

// NewDataGrid creates a grid with the default configuration.
func NewDataGrid(columns ...*Column) *DataGrid {
	return NewDataGridWithConfig(DefaultConfig(), columns...)
}

// NewDataGridWithConfig creates a grid with a custom configuration.
func NewDataGridWithConfig(cfg Config, columns ...*Column) *DataGrid {
	g := &DataGrid{
		config:       cfg,
		columns:      NewObservableList[*Column](),
		bound:        make(map[*Column]Token),
		rowBox:       container.NewVBox(),
		refreshProxy: NewWeakRefreshingProxy(),
	}
	g.ExtendBaseWidget(g)

	g.header = newHeader(g)
	g.refresh = NewRefreshView(g.header.container)
	g.refresh.SetEnabled(cfg.PullToRefreshEnabled)
	g.onRefreshing = handler(g.refreshing)
	g.refreshProxy.Subscribe(g.refresh, g.onRefreshing)
	g.scroll = container.NewVScroll(g.rowBox)

	g.columns.CollectionChanged.Subscribe(func(_ any, _ CollectionChange[*Column]) {
		g.bindColumns()
	})
	g.columns.Add(columns...)
	return g
}

// CreateRenderer implements fyne.Widget.
func (g *DataGrid) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(g.refresh, nil, nil, nil, g.scroll))
}

// Config returns the configuration of the grid.
func (g *DataGrid) Config() Config { return g.config }

// SetConfig replaces the configuration and rebuilds every row.
func (g *DataGrid) SetConfig(cfg Config) {
	g.config = cfg
	g.refresh.SetEnabled(cfg.PullToRefreshEnabled)
	if cfg.SelectionMode == SelectionNone {
		g.setSelection(nil)
	}
	g.header.rebuild()
	g.rebuildRows()
}

// Columns returns the column collection. Rows follow changes to it.
func (g *DataGrid) Columns() *ObservableList[*Column] { return g.columns }

// AddColumn appends columns to the grid.
func (g *DataGrid) AddColumn(columns ...*Column) { g.columns.Add(columns...) }

// Column returns the first column showing the field name.
func (g *DataGrid) Column(name string) (*Column, bool) {
	i := g.columns.IndexOf(func(c *Column) bool { return c.PropertyName() == name })
	if i < 0 {
		return nil, false
	}
	return g.columns.At(i), true
}

func (g *DataGrid) bindColumns() {
	current := g.columns.Items()
	for col, token := range g.bound {
		if !slices.Contains(current, col) {
			col.PropertyChanged.Unsubscribe(token)
			col.grid = nil
			delete(g.bound, col)
		}
	}
	for _, col := range current {
		if _, ok := g.bound[col]; ok {
			continue
		}
		col.grid = g
		col.resetTypeCache()
		g.bound[col] = col.PropertyChanged.Subscribe(g.columnPropertyChanged)
	}
	if g.sortColumn != nil && !slices.Contains(current, g.sortColumn) {
		g.sortColumn = nil
	}
	g.header.rebuild()
}

func (g *DataGrid) columnPropertyChanged(_ any, name string) {
	switch name {
	case "Title", "FormattedTitle", "HeaderLabelStyle", "SortingEnabled", "Width", "IsVisible":
		g.header.rebuild()
	case "PropertyName":
		g.header.rebuild()
		g.rebuildRows()
	default:
		g.rebuildRows()
	}
}

// SetItems binds the grid to the elements of a slice. Elements of a slice
// of structs are bound by address so editors write into the slice.
func (g *DataGrid) SetItems(items any) error {
	if items == nil {
		return g.setItems(nil, nil)
	}
	v := reflect.ValueOf(items)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return fmt.Errorf("%w: got %T", ErrNotSlice, items)
	}

	elems := make([]any, v.Len())
	byAddress := v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Struct
	for i := range elems {
		e := v.Index(i)
		if byAddress {
			e = e.Addr()
		}
		elems[i] = e.Interface()
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Interface && len(elems) > 0 && elems[0] != nil {
		elemType = reflect.TypeOf(elems[0])
	}
	return g.setItems(elems, TypeOfItems(elemType))
}

// SetDataSource binds the grid to the rows of ds as Records.
func (g *DataGrid) SetDataSource(ds DataSource) error {
	records, schema, err := Records(ds)
	if err != nil {
		return fmt.Errorf("loading data source: %w", err)
	}
	items := make([]any, len(records))
	for i, r := range records {
		items[i] = r
	}
	return g.setItems(items, schema)
}

// setItems replaces the items and reloads. Selected items and the edit target
// that are gone raise SelectionChanged and EditTargetChanged after the reload.
func (g *DataGrid) setItems(items []any, itemType ItemType) error {
	g.items = items
	if itemType != g.itemType {
		g.itemType = itemType
		for _, col := range g.columns.Items() {
			col.resetTypeCache()
		}
	}
	err := g.Reload()

	kept := slices.DeleteFunc(slices.Clone(g.selected), func(s any) bool { return !containsItem(items, s) })
	if len(kept) != len(g.selected) {
		g.setSelection(kept)
	}
	if g.editTarget != nil && !containsItem(items, g.editTarget) {
		g.SetRowToEdit(nil)
	}
	return err
}

// ItemType returns the type description of the bound items.
func (g *DataGrid) ItemType() ItemType { return g.itemType }

// Items returns the items shown, filtered and sorted.
func (g *DataGrid) Items() []any { return slices.Clone(g.internal) }

// Rows returns the rows shown.
func (g *DataGrid) Rows() []*Row { return slices.Clone(g.rows) }

// Reload filters and sorts the items again and rebinds the rows. Rows that
// are no longer needed are detached.
func (g *DataGrid) Reload() error {
	defer g.holdMeasure()()

	items, err := g.view()
	g.internal = items
	g.index = indexItems(items)

	for i, item := range items {
		if i < len(g.rows) {
			g.rows[i].SetItem(item)
			g.rows[i].updateColors()
			continue
		}
		r := newRow(g)
		r.SetItem(item)
		g.rows = append(g.rows, r)
	}
	for _, r := range g.rows[len(items):] {
		r.Detach()
	}
	g.rows = g.rows[:len(items)]

	objects := make([]fyne.CanvasObject, len(g.rows))
	for i, r := range g.rows {
		objects[i] = r
	}
	g.rowBox.Objects = objects
	g.rowBox.Refresh()
	return err
}

func (g *DataGrid) rebuildRows() {
	defer g.holdMeasure()()

	for _, r := range g.rows {
		r.createView()
	}
}

// autoWidths returns the width of every auto column, measured over the header
// and every row so that all of them line up.
func (g *DataGrid) autoWidths() []float32 {
	if g.autos == nil {
		g.autos = g.measureAutos()
	}
	return g.autos
}

func (g *DataGrid) measureAutos() []float32 {
	columns := g.columns.Items()
	widths := make([]float32, len(columns))
	for i, col := range columns {
		if !col.Visible() || col.Width().Unit != GridAuto {
			continue
		}
		for _, c := range g.header.cells {
			if c.column == col {
				widths[i] = max(widths[i], c.naturalWidth())
			}
		}
		for _, r := range g.rows {
			for _, f := range r.frames {
				if f.column == col {
					widths[i] = max(widths[i], f.naturalWidth())
				}
			}
		}
	}
	return widths
}

// remeasure drops the measured auto widths after cells changed and lays the
// header and rows out again when the widths moved.
func (g *DataGrid) remeasure() {
	if g.holding || g.autos == nil {
		return
	}
	old := g.autos
	g.autos = nil
	if slices.Equal(old, g.autoWidths()) {
		return
	}
	g.header.container.Refresh()
	for _, r := range g.rows {
		r.cells.Refresh()
	}
}

// holdMeasure defers remeasuring until the returned func is called.
func (g *DataGrid) holdMeasure() func() {
	if g.holding {
		return func() {}
	}
	g.holding = true
	return func() {
		g.holding = false
		g.remeasure()
	}
}

// view returns the items passing the filter, in sort order.
func (g *DataGrid) view() ([]any, error) {
	var errs []error
	items := make([]any, 0, len(g.items))
	if g.filter == nil {
		items = append(items, g.items...)
	} else {
		names := g.columnNames()
		for _, item := range g.items {
			ok, err := g.filter.Evaluate(g.values(item), names)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if ok {
				items = append(items, item)
			}
		}
	}

	if col := g.sortColumn; col != nil && col.sortDirection != SortNone {
		name := col.PropertyName()
		slices.SortStableFunc(items, func(a, b any) int {
			va, _ := fieldValue(a, name)
			vb, _ := fieldValue(b, name)
			c := compareValues(va, vb)
			if col.sortDirection == SortDescending {
				return -c
			}
			return c
		})
	}

	if len(errs) > 0 {
		return items, fmt.Errorf("%w: %w", ErrInvalidFilter, errors.Join(errs...))
	}
	return items, nil
}

func (g *DataGrid) columnNames() []string {
	columns := g.columns.Items()
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.PropertyName()
	}
	return names
}

// values returns the typed values of item for every column.
func (g *DataGrid) values(item any) []Value {
	columns := g.columns.Items()
	values := make([]Value, len(columns))
	for i, col := range columns {
		if rec, ok := item.(*Record); ok {
			if v, ok := rec.Value(col.PropertyName()); ok {
				values[i] = v
				continue
			}
		}
		raw, _ := fieldValue(item, col.PropertyName())
		values[i] = NewValue(raw, dataTypeOf(KindOf(reflect.TypeOf(raw))))
	}
	return values
}

// SetFilter shows only the items accepted by f. Nil shows every item.
func (g *DataGrid) SetFilter(f Filter) error {
	g.filter = f
	return g.Reload()
}

// Filter returns the active filter.
func (g *DataGrid) Filter() Filter { return g.filter }

// SortBy sorts the items by col, ascending first and toggling on each call.
func (g *DataGrid) SortBy(col *Column) error {
	if g.columns.IndexOf(func(c *Column) bool { return c == col }) < 0 {
		return fmt.Errorf("%w: %v is not a column of this grid", ErrInvalidColumn, col)
	}
	if !col.SortingEnabled() || !col.IsSortable(g.itemType) {
		return fmt.Errorf("%w: %s", ErrNotSortable, col)
	}

	direction := SortAscending
	if g.sortColumn == col && col.sortDirection == SortAscending {
		direction = SortDescending
	}
	if g.sortColumn != nil {
		g.sortColumn.sortDirection = SortNone
	}
	col.sortDirection = direction
	g.sortColumn = col
	g.header.rebuild()
	return g.Reload()
}

// ClearSort restores the original item order.
func (g *DataGrid) ClearSort() error {
	if g.sortColumn == nil {
		return nil
	}
	g.sortColumn.sortDirection = SortNone
	g.sortColumn = nil
	g.header.rebuild()
	return g.Reload()
}

// SortState returns the column index and direction of the active sort.
func (g *DataGrid) SortState() SortState {
	if g.sortColumn == nil {
		return SortState{Column: -1}
	}
	i := g.columns.IndexOf(func(c *Column) bool { return c == g.sortColumn })
	return SortState{Column: i, Direction: g.sortColumn.sortDirection}
}

// SelectionMode returns the selection mode.
func (g *DataGrid) SelectionMode() SelectionMode { return g.config.SelectionMode }

// SetSelectionMode changes the selection mode, trimming the selection to fit.
func (g *DataGrid) SetSelectionMode(m SelectionMode) {
	g.config.SelectionMode = m
	switch {
	case m == SelectionNone:
		g.setSelection(nil)
	case m == SelectionSingle && len(g.selected) > 1:
		g.setSelection(g.selected[:1])
	}
}

// SelectedItem returns the first selected item.
func (g *DataGrid) SelectedItem() any {
	if len(g.selected) == 0 {
		return nil
	}
	return g.selected[0]
}

// SelectedItems returns every selected item.
func (g *DataGrid) SelectedItems() []any { return slices.Clone(g.selected) }

// SetSelectedItem selects only item. Nil clears the selection.
func (g *DataGrid) SetSelectedItem(item any) {
	if item == nil {
		g.setSelection(nil)
		return
	}
	g.SetSelectedItems(item)
}

// SetSelectedItems replaces the selection. Single selection keeps the first item.
func (g *DataGrid) SetSelectedItems(items ...any) {
	switch g.config.SelectionMode {
	case SelectionNone:
		return
	case SelectionSingle:
		if len(items) > 1 {
			items = items[:1]
		}
	}
	g.setSelection(items)
}

// ToggleSelection selects item, or deselects it if it is selected.
func (g *DataGrid) ToggleSelection(item any) {
	switch g.config.SelectionMode {
	case SelectionSingle:
		if g.IsSelected(item) {
			g.setSelection(nil)
		} else {
			g.setSelection([]any{item})
		}
	case SelectionMultiple:
		if g.IsSelected(item) {
			g.setSelection(slices.DeleteFunc(slices.Clone(g.selected), func(s any) bool { return sameItem(s, item) }))
		} else {
			g.setSelection(append(slices.Clone(g.selected), item))
		}
	}
}

// IsSelected reports whether item is selected.
func (g *DataGrid) IsSelected(item any) bool {
	return item != nil && containsItem(g.selected, item)
}

func (g *DataGrid) setSelection(items []any) {
	previous := g.selected
	g.selected = slices.Clone(items)
	if len(previous) == 0 && len(g.selected) == 0 {
		return
	}
	g.SelectionChanged.Emit(g, SelectionChange{Previous: previous, Current: g.SelectedItems()})
}

// RowToEdit returns the item being edited.
func (g *DataGrid) RowToEdit() any { return g.editTarget }

// SetRowToEdit puts the row of item into edit mode. Nil stops editing.
func (g *DataGrid) SetRowToEdit(item any) {
	if sameItem(item, g.editTarget) {
		return
	}
	old := g.editTarget
	g.editTarget = item
	g.EditTargetChanged.Emit(g, EditTargetChange{Old: old, New: item})
}

func (g *DataGrid) isEditTarget(item any) bool {
	return g.editTarget != nil && sameItem(item, g.editTarget)
}

// indexOf returns the position of item among the items shown, or -1.
func (g *DataGrid) indexOf(item any) int {
	if item == nil {
		return -1
	}
	if isHashable(item) {
		if i, ok := g.index[item]; ok {
			return i
		}
		return -1
	}
	return slices.IndexFunc(g.internal, func(v any) bool { return sameItem(v, item) })
}

// RefreshView returns the pull-to-refresh view holding the header.
func (g *DataGrid) RefreshView() *RefreshView { return g.refresh }

// EndRefresh stops the refresh indicator.
func (g *DataGrid) EndRefresh() { g.refresh.EndRefresh() }

func (g *DataGrid) refreshing(_ any, _ struct{}) {
	if g.OnRefresh != nil {
		g.OnRefresh()
		return
	}
	if err := g.Reload(); err != nil {
		log.Printf("datagrid: refresh: %v", err)
	}
	g.EndRefresh()
}

func indexItems(items []any) map[any]int {
	index := make(map[any]int, len(items))
	for i, item := range items {
		if isHashable(item) {
			if _, dup := index[item]; !dup {
				index[item] = i
			}
		}
	}
	return index
}

func isHashable(item any) bool {
	return item != nil && reflect.TypeOf(item).Comparable()
}

// sameItem reports whether a and b are the same item. Items of types that
// cannot be compared are never the same.
func sameItem(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !isHashable(a) {
		return false
	}
	return a == b
}

func containsItem(items []any, item any) bool {
	return slices.ContainsFunc(items, func(v any) bool { return sameItem(v, item) })
}
