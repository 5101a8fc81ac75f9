package datagrid

import "image/color"

// ColorProvider picks a color for the row at index showing item.
type ColorProvider interface {
	Color(index int, item any) color.Color
}

// Palette cycles through its colors by row index, e.g. for alternating rows.
type Palette []color.Color

// Color implements ColorProvider.
func (p Palette) Color(index int, _ any) color.Color {
	if len(p) == 0 || index < 0 {
		return color.Transparent
	}
	return p[index%len(p)]
}

// ColorProviderFunc adapts a function to ColorProvider.
type ColorProviderFunc func(index int, item any) color.Color

// Color implements ColorProvider.
func (f ColorProviderFunc) Color(index int, item any) color.Color {
	return f(index, item)
}
