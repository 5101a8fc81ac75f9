package datagrid

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// rowTheme overrides the foreground color of the text cells of one row.
// Each row owns one rowTheme; changing its color and refreshing the cells
// recolors the row without rebuilding it.
type rowTheme struct {
	foreground color.Color
}

var _ fyne.Theme = (*rowTheme)(nil)

func (t *rowTheme) base() fyne.Theme {
	if app := fyne.CurrentApp(); app != nil {
		return app.Settings().Theme()
	}
	return theme.DefaultTheme()
}

func (t *rowTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.foreground != nil {
		switch name {
		case theme.ColorNameForeground, theme.ColorNamePlaceHolder:
			return t.foreground
		}
	}
	return t.base().Color(name, variant)
}

func (t *rowTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base().Icon(name)
}

func (t *rowTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base().Font(style)
}

func (t *rowTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base().Size(name)
}
