package datagrid

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// header is the title row of a grid. It uses the same tracks as the rows.
type header struct {
	grid      *DataGrid
	layout    *trackLayout
	container *fyne.Container
	cells     []*headerCell
}

func newHeader(g *DataGrid) *header {
	h := &header{grid: g, layout: &trackLayout{autos: g.autoWidths}}
	h.container = container.New(h.layout)
	return h
}

func (h *header) rebuild() {
	columns := h.grid.columns.Items()
	h.layout.tracks = make([]*ColumnDefinition, len(columns))
	h.layout.slots = nil
	h.cells = nil
	var objects []fyne.CanvasObject
	for i, col := range columns {
		h.layout.tracks[i] = col.Definition()
		if !col.Visible() {
			continue
		}
		cell := newHeaderCell(col, h.grid.config, h.tapped)
		h.cells = append(h.cells, cell)
		h.layout.slots = append(h.layout.slots, i)
		objects = append(objects, cell)
	}
	h.container.Objects = objects
	h.container.Refresh()
	h.grid.remeasure()
}

func (h *header) tapped(col *Column) {
	err := h.grid.SortBy(col)
	if err != nil && !errors.Is(err, ErrNotSortable) {
		log.Printf("datagrid: sorting by %s: %v", col, err)
	}
}

// headerCell shows the title of one column and sorts by it when tapped.
type headerCell struct {
	widget.BaseWidget

	column   *Column
	content  *cellFrame
	title    *widget.Label
	sorted   bool
	onTapped func(*Column)
}

var _ fyne.Tappable = (*headerCell)(nil)

func newHeaderCell(col *Column, cfg Config, onTapped func(*Column)) *headerCell {
	var title fyne.CanvasObject
	var label *widget.Label
	if segments := col.FormattedTitle(); len(segments) > 0 {
		title = widget.NewRichText(segments...)
	} else {
		label = widget.NewLabelWithStyle(col.Title(), col.TextAlignment(), col.HeaderLabelStyle())
		title = label
	}

	var icon fyne.CanvasObject
	switch col.SortDirection() {
	case SortAscending:
		icon = widget.NewIcon(theme.MoveUpIcon())
	case SortDescending:
		icon = widget.NewIcon(theme.MoveDownIcon())
	}

	c := &headerCell{
		column:   col,
		content:  wrapCellWithBorder(container.NewBorder(nil, nil, nil, icon, title), nil, cfg, cfg.HeaderBackground),
		title:    label,
		sorted:   icon != nil,
		onTapped: onTapped,
	}
	c.ExtendBaseWidget(c)
	return c
}

func (c *headerCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content.Container)
}

// naturalWidth is the width the title and sort icon need on one line.
func (c *headerCell) naturalWidth() float32 {
	if c.title == nil {
		return c.content.naturalWidth()
	}
	w := textWidth(c.title.Text, c.title.TextStyle)
	if c.sorted {
		w += theme.IconInlineSize() + theme.Padding()
	}
	return w + c.content.thickness.Left + c.content.thickness.Right
}

func (c *headerCell) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped(c.column)
	}
}
