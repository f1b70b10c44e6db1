package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// forcedVariant renders the default theme in one variant regardless of the OS setting
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

func newForcedVariant(dark bool) *forcedVariant {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	return &forcedVariant{Theme: theme.DefaultTheme(), variant: variant}
}

func applyTheme(app fyne.App, dark bool) {
	app.Settings().SetTheme(newForcedVariant(dark))
}
