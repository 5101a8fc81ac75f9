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
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// LineBreakMode controls how text cells handle text wider than the column.
type LineBreakMode int

const (
	// LineBreakWordWrap wraps at word boundaries.
	LineBreakWordWrap LineBreakMode = iota
	// LineBreakCharacterWrap wraps anywhere.
	LineBreakCharacterWrap
	// LineBreakNoWrap keeps a single line and clips it.
	LineBreakNoWrap
	// LineBreakTruncate keeps a single line ending with an ellipsis.
	LineBreakTruncate
)

func (m LineBreakMode) wrapping() fyne.TextWrap {
	switch m {
	case LineBreakWordWrap:
		return fyne.TextWrapWord
	case LineBreakCharacterWrap:
		return fyne.TextWrapBreak
	default:
		return fyne.TextWrapOff
	}
}

func (m LineBreakMode) truncation() fyne.TextTruncation {
	switch m {
	case LineBreakNoWrap:
		return fyne.TextTruncateClip
	case LineBreakTruncate:
		return fyne.TextTruncateEllipsis
	default:
		return fyne.TextTruncateOff
	}
}

// LayoutAlignment positions cell content inside its cell.
type LayoutAlignment int

const (
	// AlignCenter centers content at its minimum size.
	AlignCenter LayoutAlignment = iota
	// AlignStart places content at the left or top.
	AlignStart
	// AlignEnd places content at the right or bottom.
	AlignEnd
	// AlignFill stretches content over the whole cell.
	AlignFill
)

func (a LayoutAlignment) textAlign() fyne.TextAlign {
	switch a {
	case AlignCenter:
		return fyne.TextAlignCenter
	case AlignEnd:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}

// CellTemplate creates the content of a templated cell.
type CellTemplate func() fyne.CanvasObject

// ContextBinder is implemented by template content that displays a value.
// A templated cell passes it the value of the column's field.
type ContextBinder interface {
	SetContext(value any)
}

type reloader interface {
	Reload() error
}

// Column configures one column of a DataGrid.
//
// Every setter raises PropertyChanged with the name of the property. Width and
// visibility changes also raise SizeChanged so rows and the header can resize
// without reloading their data.
type Column struct {
	PropertyChanged Event[string]
	SizeChanged     Event[struct{}]

	width               *Property[GridLength]
	title               *Property[string]
	propertyName        *Property[string]
	visible             *Property[bool]
	stringFormat        *Property[string]
	lineBreakMode       *Property[LineBreakMode]
	horizontalAlignment *Property[LayoutAlignment]
	verticalAlignment   *Property[LayoutAlignment]
	sortingEnabled      *Property[bool]
	headerStyle         *Property[fyne.TextStyle]

	formattedTitle   []widget.RichTextSegment
	cellTemplate     CellTemplate
	editCellTemplate CellTemplate

	definition          *ColumnDefinition
	invisibleDefinition *ColumnDefinition

	textAlign     *fyne.TextAlign
	sortable      *bool
	kind          *FieldKind
	sortDirection SortDirection
	grid          reloader
}

// NewColumn returns a visible, star-sized column showing the field propertyName.
func NewColumn(title, propertyName string) *Column {
	c := &Column{
		definition:          &ColumnDefinition{Width: GridLengthStar},
		invisibleDefinition: &ColumnDefinition{Width: Absolute(0)},
	}
	c.width = NewProperty(c, &c.PropertyChanged, "Width", GridLengthStar, func(_, w GridLength) {
		c.definition = &ColumnDefinition{Width: w}
		c.SizeChanged.Emit(c, struct{}{})
	})
	c.title = NewProperty(c, &c.PropertyChanged, "Title", title, nil)
	c.propertyName = NewProperty(c, &c.PropertyChanged, "PropertyName", propertyName, func(_, _ string) {
		c.resetTypeCache()
	})
	c.visible = NewProperty(c, &c.PropertyChanged, "IsVisible", true, func(_, _ bool) {
		defer c.SizeChanged.Emit(c, struct{}{})
		c.reloadGrid()
	})
	c.stringFormat = NewProperty(c, &c.PropertyChanged, "StringFormat", "", nil)
	c.lineBreakMode = NewProperty(c, &c.PropertyChanged, "LineBreakMode", LineBreakWordWrap, nil)
	c.horizontalAlignment = NewProperty(c, &c.PropertyChanged, "HorizontalContentAlignment", AlignCenter, func(_, _ LayoutAlignment) {
		c.textAlign = nil
	})
	c.verticalAlignment = NewProperty(c, &c.PropertyChanged, "VerticalContentAlignment", AlignCenter, nil)
	c.sortingEnabled = NewProperty(c, &c.PropertyChanged, "SortingEnabled", true, nil)
	c.headerStyle = NewProperty(c, &c.PropertyChanged, "HeaderLabelStyle", fyne.TextStyle{Bold: true}, nil)
	return c
}

// Width returns the configured width.
func (c *Column) Width() GridLength { return c.width.Get() }

// SetWidth changes the configured width.
func (c *Column) SetWidth(w GridLength) { c.width.Set(w) }

// Title returns the header text.
func (c *Column) Title() string { return c.title.Get() }

// SetTitle changes the header text.
func (c *Column) SetTitle(title string) { c.title.Set(title) }

// FormattedTitle returns the rich header text, if any.
func (c *Column) FormattedTitle() []widget.RichTextSegment { return c.formattedTitle }

// SetFormattedTitle replaces the header text with rich text segments.
// Passing no segments goes back to the plain title.
func (c *Column) SetFormattedTitle(segments ...widget.RichTextSegment) {
	c.formattedTitle = segments
	c.PropertyChanged.Emit(c, "FormattedTitle")
}

// PropertyName returns the path of the field shown by the column.
func (c *Column) PropertyName() string { return c.propertyName.Get() }

// SetPropertyName changes the field shown by the column.
func (c *Column) SetPropertyName(name string) { c.propertyName.Set(name) }

// Visible reports whether the column is shown.
func (c *Column) Visible() bool { return c.visible.Get() }

// SetVisible shows or hides the column. The owning grid is reloaded first;
// a failed reload is logged and SizeChanged is raised regardless.
func (c *Column) SetVisible(visible bool) { c.visible.Set(visible) }

// StringFormat returns the fmt format used by text cells, e.g. "%.3f".
func (c *Column) StringFormat() string { return c.stringFormat.Get() }

// SetStringFormat changes the fmt format used by text cells.
func (c *Column) SetStringFormat(format string) { c.stringFormat.Set(format) }

// CellTemplate returns the view cell template, or nil for a text cell.
func (c *Column) CellTemplate() CellTemplate { return c.cellTemplate }

// SetCellTemplate changes the view cell template.
func (c *Column) SetCellTemplate(t CellTemplate) {
	c.cellTemplate = t
	c.PropertyChanged.Emit(c, "CellTemplate")
}

// EditCellTemplate returns the edit cell template, or nil for the default editor.
func (c *Column) EditCellTemplate() CellTemplate { return c.editCellTemplate }

// SetEditCellTemplate changes the edit cell template.
func (c *Column) SetEditCellTemplate(t CellTemplate) {
	c.editCellTemplate = t
	c.PropertyChanged.Emit(c, "EditCellTemplate")
}

// LineBreakMode returns the wrapping of text cells.
func (c *Column) LineBreakMode() LineBreakMode { return c.lineBreakMode.Get() }

// SetLineBreakMode changes the wrapping of text cells.
func (c *Column) SetLineBreakMode(m LineBreakMode) { c.lineBreakMode.Set(m) }

// HorizontalContentAlignment returns the horizontal placement of cell content.
func (c *Column) HorizontalContentAlignment() LayoutAlignment { return c.horizontalAlignment.Get() }

// SetHorizontalContentAlignment changes the horizontal placement of cell content.
func (c *Column) SetHorizontalContentAlignment(a LayoutAlignment) { c.horizontalAlignment.Set(a) }

// VerticalContentAlignment returns the vertical placement of cell content.
func (c *Column) VerticalContentAlignment() LayoutAlignment { return c.verticalAlignment.Get() }

// SetVerticalContentAlignment changes the vertical placement of cell content.
func (c *Column) SetVerticalContentAlignment(a LayoutAlignment) { c.verticalAlignment.Set(a) }

// SortingEnabled reports whether the user may sort by this column.
func (c *Column) SortingEnabled() bool { return c.sortingEnabled.Get() }

// SetSortingEnabled allows or forbids sorting by this column.
func (c *Column) SetSortingEnabled(enabled bool) { c.sortingEnabled.Set(enabled) }

// HeaderLabelStyle returns the text style of the header.
func (c *Column) HeaderLabelStyle() fyne.TextStyle { return c.headerStyle.Get() }

// SetHeaderLabelStyle changes the text style of the header.
func (c *Column) SetHeaderLabelStyle(s fyne.TextStyle) { c.headerStyle.Set(s) }

// SortDirection returns the direction the grid is sorted by this column.
func (c *Column) SortDirection() SortDirection { return c.sortDirection }

// Definition returns the layout track of the column. Hidden columns always
// return a zero width track.
func (c *Column) Definition() *ColumnDefinition {
	if !c.Visible() {
		return c.invisibleDefinition
	}
	return c.definition
}

// TextAlignment returns the text alignment derived from the horizontal content alignment.
func (c *Column) TextAlignment() fyne.TextAlign {
	if c.textAlign == nil {
		a := c.HorizontalContentAlignment().textAlign()
		c.textAlign = &a
	}
	return *c.textAlign
}

// IsSortable reports whether the field of the column has an ordered type.
//
// The result is computed once and cached; failures to inspect the type count
// as not sortable. SortingEnabled is a separate switch checked by the grid.
func (c *Column) IsSortable(itemType ItemType) bool {
	if c.sortable != nil {
		return *c.sortable
	}
	sortable := c.inspectSortable(itemType)
	c.sortable = &sortable
	return sortable
}

func (c *Column) inspectSortable(itemType ItemType) (sortable bool) {
	defer func() {
		if r := recover(); r != nil {
			sortable = false
		}
	}()
	if itemType == nil {
		return false
	}
	t, err := itemType.FieldType(c.PropertyName())
	if err != nil {
		return false
	}
	return isOrdered(t)
}

// FieldKind returns the kind of the column's field in items of itemType.
func (c *Column) FieldKind(itemType ItemType) FieldKind {
	if c.kind != nil {
		return *c.kind
	}
	if itemType == nil {
		return KindUnknown
	}
	kind := KindUnknown
	if t, err := itemType.FieldType(c.PropertyName()); err == nil {
		kind = KindOf(t)
	}
	c.kind = &kind
	return kind
}

func (c *Column) resetTypeCache() {
	c.sortable = nil
	c.kind = nil
}

func (c *Column) reloadGrid() {
	if c.grid == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("datagrid: reload after visibility change of %q panicked: %v", c.Title(), r)
		}
	}()
	if err := c.grid.Reload(); err != nil {
		log.Printf("datagrid: reload after visibility change of %q: %v", c.Title(), err)
	}
}

// String returns a short description of the column.
func (c *Column) String() string {
	return fmt.Sprintf("Column(%q, %s)", c.Title(), c.PropertyName())
}
