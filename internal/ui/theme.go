package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameHeading is the theme color used for listing headings
const ColorNameHeading fyne.ThemeColorName = "heading"

// Palette
var (
	BackgroundColor = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	PrimaryColor    = color.NRGBA{R: 0x00, G: 0xff, B: 0xaa, A: 0xff}
	HeadingColor    = color.NRGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}
)

// ExplorerTheme is a dark theme with compact spacing. The variant requested
// by the OS is ignored.
type ExplorerTheme struct{}

// NewExplorerTheme creates the application theme
func NewExplorerTheme() fyne.Theme {
	return &ExplorerTheme{}
}

// Color returns theme colors
func (t *ExplorerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return BackgroundColor
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return PrimaryColor
	case ColorNameHeading:
		return HeadingColor
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *ExplorerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ExplorerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ExplorerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
