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
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// cellFrame is a cell content wrapped in a background and four border lines.
type cellFrame struct {
	*fyne.Container

	column     *Column
	background *canvas.Rectangle
	content    fyne.CanvasObject
	thickness  Thickness
	layout     *borderLayout

	// label is set for default text cells.
	label *widget.Label
	// editor is set for default edit cells.
	editor fyne.CanvasObject
}

// borderLayout expects the background, the left, right, top and bottom
// lines and then the content.
type borderLayout struct {
	thickness  Thickness
	horizontal LayoutAlignment
	vertical   LayoutAlignment
	minHeight  float32

	// text, when set, is a label given its one-line width if there is room.
	text *widget.Label
}

var _ fyne.Layout = (*borderLayout)(nil)

func (l *borderLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 6 {
		return
	}
	t := l.thickness
	background, left, right, top, bottom, content := objects[0], objects[1], objects[2], objects[3], objects[4], objects[5]

	background.Move(fyne.NewPos(0, 0))
	background.Resize(size)
	left.Move(fyne.NewPos(0, 0))
	left.Resize(fyne.NewSize(t.Left, size.Height))
	right.Move(fyne.NewPos(size.Width-t.Right, 0))
	right.Resize(fyne.NewSize(t.Right, size.Height))
	top.Move(fyne.NewPos(0, 0))
	top.Resize(fyne.NewSize(size.Width, t.Top))
	bottom.Move(fyne.NewPos(0, size.Height-t.Bottom))
	bottom.Resize(fyne.NewSize(size.Width, t.Bottom))

	inner := fyne.NewSize(max(size.Width-t.Left-t.Right, 0), max(size.Height-t.Top-t.Bottom, 0))
	cs := content.MinSize()
	if l.text != nil {
		cs.Width = max(cs.Width, textWidth(l.text.Text, l.text.TextStyle))
	}
	w, x := place(l.horizontal, cs.Width, inner.Width)
	h, y := place(l.vertical, cs.Height, inner.Height)
	content.Move(fyne.NewPos(t.Left+x, t.Top+y))
	content.Resize(fyne.NewSize(w, h))
}

// place returns the size and offset of content of size want in space.
func place(a LayoutAlignment, want, space float32) (size, offset float32) {
	if want >= space || a == AlignFill {
		return space, 0
	}
	switch a {
	case AlignCenter:
		return want, (space - want) / 2
	case AlignEnd:
		return want, space - want
	default:
		return want, 0
	}
}

func (l *borderLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	t := l.thickness
	size := fyne.NewSize(t.Left+t.Right, t.Top+t.Bottom)
	if len(objects) >= 6 {
		size = size.Add(objects[5].MinSize())
	}
	return fyne.NewSize(size.Width, max(size.Height, l.minHeight))
}

// wrapCellWithBorder surrounds content with the grid's border and fills it
// with background.
func wrapCellWithBorder(content fyne.CanvasObject, col *Column, cfg Config, background color.Color) *cellFrame {
	bg := canvas.NewRectangle(background)
	line := func() fyne.CanvasObject { return canvas.NewRectangle(cfg.BorderColor) }
	layout := &borderLayout{
		thickness:  cfg.BorderThickness,
		horizontal: AlignFill,
		vertical:   AlignFill,
		minHeight:  cfg.RowHeight,
	}
	if col != nil {
		layout.horizontal = col.HorizontalContentAlignment()
		layout.vertical = col.VerticalContentAlignment()
	}
	return &cellFrame{
		Container:  container.New(layout, bg, line(), line(), line(), line(), content),
		column:     col,
		background: bg,
		content:    content,
		thickness:  cfg.BorderThickness,
		layout:     layout,
	}
}

// naturalWidth is the width the cell needs to show its content on one line.
// Labels that wrap or truncate report almost no minimum width, so their text
// is measured instead.
func (f *cellFrame) naturalWidth() float32 {
	w := f.content.MinSize().Width
	if f.label != nil {
		w = textWidth(f.label.Text, f.label.TextStyle)
	}
	return w + f.thickness.Left + f.thickness.Right
}

// textWidth is the width of a label showing text on one line.
func textWidth(text string, style fyne.TextStyle) float32 {
	w := fyne.MeasureText(text, theme.TextSize(), style).Width + 2*theme.InnerPadding()
	return float32(math.Ceil(float64(w)))
}

func (f *cellFrame) setBackground(c color.Color) {
	if f.background.FillColor == c {
		return
	}
	f.background.FillColor = c
	f.background.Refresh()
}
