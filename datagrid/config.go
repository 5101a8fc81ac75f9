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

	"fyne.io/fyne/v2"
)

// Thickness is the width of each side of a cell border.
type Thickness struct {
	Left, Top, Right, Bottom float32
}

// UniformThickness returns a thickness of v on every side.
func UniformThickness(v float32) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Config holds the appearance and behavior of a DataGrid.
type Config struct {
	// SelectionMode controls row selection.
	SelectionMode SelectionMode
	// ActiveRowColor is the background of selected rows.
	ActiveRowColor color.Color
	// RowsBackgroundColorPalette picks the background of unselected rows.
	RowsBackgroundColorPalette ColorProvider
	// RowsTextColorPalette picks the text color of every row.
	RowsTextColorPalette ColorProvider
	// BorderColor is the color of cell borders.
	BorderColor color.Color
	// BorderThickness is the size of cell borders.
	BorderThickness Thickness
	// HeaderBackground is the background of the header row.
	HeaderBackground color.Color
	// TextStyle is applied to text cells.
	TextStyle fyne.TextStyle
	// RowHeight is the minimum height of a row. Zero uses the content height.
	RowHeight float32
	// EditingEnabled lets a double tap put a row into edit mode.
	EditingEnabled bool
	// PullToRefreshEnabled lets a downward drag on the header raise a refresh.
	PullToRefreshEnabled bool
}

// DefaultConfig returns the default grid configuration.
func DefaultConfig() Config {
	return Config{
		SelectionMode:  SelectionSingle,
		ActiveRowColor: color.NRGBA{R: 0x80, G: 0xbf, B: 0xff, A: 0xff},
		RowsBackgroundColorPalette: Palette{
			color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff},
		},
		RowsTextColorPalette: Palette{color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}},
		BorderColor:          color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
		BorderThickness:      UniformThickness(1),
		HeaderBackground:     color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		RowHeight:            36,
		EditingEnabled:       true,
	}
}
