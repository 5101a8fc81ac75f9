package windows

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

// CustomTheme is the theme of the data grid sample application.
type CustomTheme struct{}

var _ fyne.Theme = (*CustomTheme)(nil)

func (m CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if variant == theme.VariantLight {
		switch name {
		case theme.ColorNameBackground:
			return color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
		case theme.ColorNameButton, theme.ColorNamePrimary:
			return color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff} // Material Blue
		case theme.ColorNameHover:
			return color.NRGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff}
		case theme.ColorNameForeground:
			return color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
		case theme.ColorNameInputBackground:
			return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		case theme.ColorNameSelection:
			return color.NRGBA{R: 0xbb, G: 0xde, B: 0xfb, A: 0xff}
		}
	} else {
		switch name {
		case theme.ColorNameBackground:
			return color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
		case theme.ColorNameButton, theme.ColorNamePrimary:
			return color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}
		case theme.ColorNameHover:
			return color.NRGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff}
		case theme.ColorNameForeground:
			return color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
		case theme.ColorNameInputBackground:
			return color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
		case theme.ColorNameSelection:
			return color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
		}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (m CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}

// GridConfig returns a grid configuration matching the theme variant.
func GridConfig(variant fyne.ThemeVariant) datagrid.Config {
	cfg := datagrid.DefaultConfig()
	cfg.SelectionMode = datagrid.SelectionMultiple
	cfg.PullToRefreshEnabled = true
	if variant == theme.VariantLight {
		cfg.ActiveRowColor = color.NRGBA{R: 0xbb, G: 0xde, B: 0xfb, A: 0xff}
		return cfg
	}
	cfg.ActiveRowColor = color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	cfg.RowsBackgroundColorPalette = datagrid.Palette{
		color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff},
		color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff},
	}
	cfg.RowsTextColorPalette = datagrid.Palette{color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}}
	cfg.BorderColor = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	cfg.HeaderBackground = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	return cfg
}
