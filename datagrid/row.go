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
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RowState is the binding state of a Row.
type RowState int

const (
	// RowUnbound has no item and shows no cells.
	RowUnbound RowState = iota
	// RowViewing shows the item with view cells.
	RowViewing
	// RowEditing shows the item with editors.
	RowEditing
)

func (s RowState) String() string {
	switch s {
	case RowViewing:
		return "Viewing"
	case RowEditing:
		return "Editing"
	default:
		return "Unbound"
	}
}

// Row displays one item of a DataGrid.
//
// A row keeps one layout track per column of the grid and one cell per
// visible column. It rebuilds its cells when the columns, the bound item or
// the grid's edit target change, and only recolors when the selection
// changes. The row observes the grid and its columns through weak proxies,
// so a row the grid dropped does not stay reachable from the grid's events.
type Row struct {
	widget.BaseWidget

	grid  *DataGrid
	item  any
	state RowState

	bgColor     color.Color
	textColor   color.Color
	hasSelected bool

	theme   *rowTheme
	themed  *container.ThemeOverride
	layout  *trackLayout
	cells   *fyne.Container
	frames  []*cellFrame
	visible []bool

	selectionProxy  *WeakEventProxy[DataGrid, SelectionChange]
	editTargetProxy *WeakEventProxy[DataGrid, EditTargetChange]
	columnsProxy    *WeakEventProxy[ObservableList[*Column], CollectionChange[*Column]]
	sizeProxies     []*WeakEventProxy[Column, struct{}]

	onSelection  *EventHandler[SelectionChange]
	onEditTarget *EventHandler[EditTargetChange]
	onColumns    *EventHandler[CollectionChange[*Column]]
	onSize       *EventHandler[struct{}]
}

var (
	_ fyne.Widget         = (*Row)(nil)
	_ fyne.Tappable       = (*Row)(nil)
	_ fyne.DoubleTappable = (*Row)(nil)
)

// newRow returns an unbound row attached to grid.
func newRow(grid *DataGrid) *Row {
	r := &Row{
		grid:            grid,
		theme:           &rowTheme{},
		layout:          &trackLayout{autos: grid.autoWidths},
		selectionProxy:  NewWeakSelectionChangedProxy(),
		editTargetProxy: NewWeakEditTargetProxy(),
		columnsProxy:    NewWeakCollectionChangedProxy[*Column](),
	}
	r.cells = container.New(r.layout)
	r.themed = container.NewThemeOverride(r.cells, r.theme)
	r.ExtendBaseWidget(r)

	r.onSelection = handler(r.selectionChanged)
	r.onEditTarget = handler(r.editTargetChanged)
	r.onColumns = handler(r.columnsChanged)
	r.onSize = handler(r.sizeChanged)

	r.selectionProxy.Subscribe(grid, r.onSelection)
	r.editTargetProxy.Subscribe(grid, r.onEditTarget)
	r.columnsProxy.Subscribe(grid.columns, r.onColumns)
	r.subscribeColumns()
	r.createView()
	return r
}

// handler allocates fn on its own so proxies can hold it weakly.
func handler[A any](fn EventHandler[A]) *EventHandler[A] {
	h := new(EventHandler[A])
	*h = fn
	return h
}

// CreateRenderer implements fyne.Widget.
func (r *Row) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.themed)
}

// Item returns the bound item, or nil for an unbound row.
func (r *Row) Item() any { return r.item }

// State returns the binding state of the row.
func (r *Row) State() RowState { return r.state }

// SetItem binds the row to item. Binding the item already shown does nothing;
// nil unbinds the row.
func (r *Row) SetItem(item any) {
	if r.state != RowUnbound && sameItem(item, r.item) {
		return
	}
	r.item = item
	switch {
	case item == nil:
		r.state = RowUnbound
	case r.grid.isEditTarget(item):
		r.state = RowEditing
	default:
		r.state = RowViewing
	}
	r.createView()
}

// createView rebuilds the cells of the row.
func (r *Row) createView() {
	r.frames = nil
	r.cells.Objects = nil
	r.layout.slots = nil

	r.updateColors()

	columns := r.grid.columns.Items()
	if len(columns) == 0 {
		r.layout.tracks = nil
		r.visible = nil
		r.cells.Refresh()
		r.grid.remeasure()
		return
	}

	r.syncTracks(columns)
	for i, col := range columns {
		if !col.Visible() || r.state == RowUnbound {
			continue
		}
		frame := r.createCell(col)
		r.frames = append(r.frames, frame)
		r.cells.Objects = append(r.cells.Objects, frame.Container)
		r.layout.slots = append(r.layout.slots, i)
	}
	r.cells.Refresh()
	r.grid.remeasure()
}

func (r *Row) createCell(col *Column) *cellFrame {
	if r.state == RowEditing {
		return r.createEditCell(col)
	}
	return r.createViewCell(col)
}

// syncTracks makes the layout tracks match the definitions of columns.
func (r *Row) syncTracks(columns []*Column) {
	for i, col := range columns {
		def := col.Definition()
		switch {
		case i >= len(r.layout.tracks):
			r.layout.tracks = append(r.layout.tracks, def)
		case r.layout.tracks[i] != def:
			r.layout.tracks[i] = def
		}
	}
	r.layout.tracks = r.layout.tracks[:len(columns)]
	r.visible = visibility(columns)
}

func visibility(columns []*Column) []bool {
	v := make([]bool, len(columns))
	for i, col := range columns {
		v[i] = col.Visible()
	}
	return v
}

// updateColors picks the row colors for the item's position and selection.
func (r *Row) updateColors() {
	r.hasSelected = r.grid.IsSelected(r.item)
	index := r.grid.indexOf(r.item)
	if index < 0 {
		return
	}

	cfg := r.grid.config
	if cfg.SelectionMode != SelectionNone && r.hasSelected {
		r.bgColor = cfg.ActiveRowColor
	} else {
		r.bgColor = colorAt(cfg.RowsBackgroundColorPalette, index, r.item)
	}
	r.textColor = colorAt(cfg.RowsTextColorPalette, index, r.item)

	for _, f := range r.frames {
		f.setBackground(r.bgColor)
	}
	if r.theme.foreground != r.textColor {
		r.theme.foreground = r.textColor
		r.themed.Refresh()
	}
}

func colorAt(p ColorProvider, index int, item any) color.Color {
	if p == nil {
		return color.Transparent
	}
	return p.Color(index, item)
}

func (r *Row) selectionChanged(_ any, change SelectionChange) {
	if r.hasSelected || (r.item != nil && containsItem(change.Current, r.item)) {
		r.updateColors()
	}
}

func (r *Row) editTargetChanged(_ any, change EditTargetChange) {
	if r.item == nil {
		return
	}
	involved := sameItem(change.Old, r.item) || sameItem(change.New, r.item)
	if !involved {
		return
	}
	if sameItem(change.New, r.item) {
		r.state = RowEditing
	} else {
		r.state = RowViewing
	}
	r.createView()
}

func (r *Row) columnsChanged(_ any, _ CollectionChange[*Column]) {
	r.subscribeColumns()
	r.createView()
}

func (r *Row) sizeChanged(_ any, _ struct{}) {
	columns := r.grid.columns.Items()
	if !slices.Equal(r.visible, visibility(columns)) {
		r.createView()
		return
	}
	r.syncTracks(columns)
	r.cells.Refresh()
}

func (r *Row) subscribeColumns() {
	for _, p := range r.sizeProxies {
		p.Unsubscribe()
	}
	columns := r.grid.columns.Items()
	r.sizeProxies = make([]*WeakEventProxy[Column, struct{}], len(columns))
	for i, col := range columns {
		r.sizeProxies[i] = NewWeakSizeChangedProxy()
		r.sizeProxies[i].Subscribe(col, r.onSize)
	}
}

// Detach stops the row from following the grid and its columns.
func (r *Row) Detach() {
	r.selectionProxy.Unsubscribe()
	r.editTargetProxy.Unsubscribe()
	r.columnsProxy.Unsubscribe()
	for _, p := range r.sizeProxies {
		p.Unsubscribe()
	}
	r.sizeProxies = nil
}

// Tapped toggles the selection of the row's item.
func (r *Row) Tapped(_ *fyne.PointEvent) {
	if r.item != nil {
		r.grid.ToggleSelection(r.item)
	}
}

// DoubleTapped starts editing the row, or stops if it is being edited.
func (r *Row) DoubleTapped(_ *fyne.PointEvent) {
	if r.item == nil || !r.grid.config.EditingEnabled {
		return
	}
	if r.state == RowEditing {
		r.grid.SetRowToEdit(nil)
		return
	}
	r.grid.SetRowToEdit(r.item)
}

// BackgroundColor returns the background of the row's cells.
func (r *Row) BackgroundColor() color.Color { return r.bgColor }

// TextColor returns the text color of the row's cells.
func (r *Row) TextColor() color.Color { return r.textColor }

// CellCount returns the number of materialized cells.
func (r *Row) CellCount() int { return len(r.frames) }

// Cell returns the content of the i-th materialized cell.
func (r *Row) Cell(i int) fyne.CanvasObject {
	if i < 0 || i >= len(r.frames) {
		return nil
	}
	return r.frames[i].content
}

// TrackCount returns the number of layout tracks.
func (r *Row) TrackCount() int { return len(r.layout.tracks) }

// Tracks returns the layout tracks of the row.
func (r *Row) Tracks() []*ColumnDefinition { return slices.Clone(r.layout.tracks) }
