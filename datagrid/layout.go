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
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
)

// GridUnit is the unit of a GridLength.
type GridUnit int

const (
	// GridAbsolute is a fixed size in Fyne units.
	GridAbsolute GridUnit = iota
	// GridStar is a weighted share of the space left by the other tracks.
	GridStar
	// GridAuto sizes the track to its widest content.
	GridAuto
)

// GridLength is the width specification of a column.
type GridLength struct {
	Value float32
	Unit  GridUnit
}

var (
	// GridLengthStar takes one share of the remaining space.
	GridLengthStar = GridLength{Value: 1, Unit: GridStar}
	// GridLengthAuto sizes to the content.
	GridLengthAuto = GridLength{Value: 1, Unit: GridAuto}
)

// Absolute returns a fixed width.
func Absolute(v float32) GridLength {
	return GridLength{Value: v, Unit: GridAbsolute}
}

// Star returns a proportional width with weight v.
func Star(v float32) GridLength {
	return GridLength{Value: v, Unit: GridStar}
}

// String formats l the way ParseGridLength reads it.
func (l GridLength) String() string {
	switch l.Unit {
	case GridAuto:
		return "Auto"
	case GridStar:
		if l.Value == 1 {
			return "*"
		}
		return strconv.FormatFloat(float64(l.Value), 'g', -1, 32) + "*"
	default:
		return strconv.FormatFloat(float64(l.Value), 'g', -1, 32)
	}
}

// ParseGridLength reads "120", "*", "2*" or "Auto".
func ParseGridLength(s string) (GridLength, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "auto"):
		return GridLengthAuto, nil
	case s == "*":
		return GridLengthStar, nil
	case strings.HasSuffix(s, "*"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "*"), 32)
		if err != nil || v < 0 {
			return GridLength{}, fmt.Errorf("invalid grid length %q", s)
		}
		return Star(float32(v)), nil
	default:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil || v < 0 {
			return GridLength{}, fmt.Errorf("invalid grid length %q", s)
		}
		return Absolute(float32(v)), nil
	}
}

// ColumnDefinition is the layout track of one column. Rows share the
// definition of each column, so replacing it is how a column resizes.
type ColumnDefinition struct {
	Width GridLength
}

// resolveWidths turns track specifications into widths for total space.
// autos holds the content width of every auto track.
func resolveWidths(tracks []GridLength, autos []float32, total float32) []float32 {
	widths := make([]float32, len(tracks))
	var used, stars float32
	for i, t := range tracks {
		switch t.Unit {
		case GridAbsolute:
			widths[i] = t.Value
			used += t.Value
		case GridAuto:
			if i < len(autos) {
				widths[i] = autos[i]
				used += autos[i]
			}
		case GridStar:
			stars += t.Value
		}
	}
	remaining := max(total-used, 0)
	if stars <= 0 {
		return widths
	}
	for i, t := range tracks {
		if t.Unit == GridStar {
			widths[i] = remaining * t.Value / stars
		}
	}
	return widths
}

// trackLayout places every object in the track named by its slot.
// When autos is set it provides the width of auto tracks, so layouts sharing
// it line up; otherwise auto tracks fit the objects of this layout.
type trackLayout struct {
	tracks []*ColumnDefinition
	slots  []int
	autos  func() []float32
}

var _ fyne.Layout = (*trackLayout)(nil)

func (l *trackLayout) slot(i int) int {
	if i < len(l.slots) {
		return l.slots[i]
	}
	return i
}

func (l *trackLayout) specs() []GridLength {
	specs := make([]GridLength, len(l.tracks))
	for i, t := range l.tracks {
		if t != nil {
			specs[i] = t.Width
		}
	}
	return specs
}

// contentWidths returns the widest minimum width of the objects in each track.
func (l *trackLayout) contentWidths(objects []fyne.CanvasObject) []float32 {
	widths := make([]float32, len(l.tracks))
	for i, o := range objects {
		if !o.Visible() {
			continue
		}
		if s := l.slot(i); s < len(widths) {
			widths[s] = max(widths[s], o.MinSize().Width)
		}
	}
	return widths
}

func (l *trackLayout) autoWidths(objects []fyne.CanvasObject) []float32 {
	if l.autos != nil {
		return l.autos()
	}
	return l.contentWidths(objects)
}

func (l *trackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	widths := resolveWidths(l.specs(), l.autoWidths(objects), size.Width)
	offsets := make([]float32, len(widths)+1)
	for i, w := range widths {
		offsets[i+1] = offsets[i] + w
	}
	for i, o := range objects {
		s := l.slot(i)
		if s >= len(widths) {
			o.Move(fyne.NewPos(offsets[len(widths)], 0))
			o.Resize(fyne.NewSize(0, size.Height))
			continue
		}
		o.Move(fyne.NewPos(offsets[s], 0))
		o.Resize(fyne.NewSize(widths[s], size.Height))
	}
}

func (l *trackLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	content := l.autoWidths(objects)
	var width, height float32
	for i, spec := range l.specs() {
		switch {
		case spec.Unit == GridAbsolute:
			width += spec.Value
		case i < len(content):
			width += content[i]
		}
	}
	for _, o := range objects {
		if o.Visible() {
			height = max(height, o.MinSize().Height)
		}
	}
	return fyne.NewSize(width, height)
}
