package gioui

import (
	_ "embed"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/pickupplot/pickupplot/plotter"
)

type Theme struct {
	Material material.Theme
	Window   struct {
		Bg color.NRGBA `yaml:",flow"`
	}
	Guitar  plotter.GuitarColors
	Plot    plotter.PlotColors
	Display struct {
		NormalTextSize unit.Sp // text on the guitar and the plot
		SmallTextSize  unit.Sp
	}
	Label   LabelStyle
	Heading LabelStyle
	Editor  EditorStyle
	Button  struct {
		Text       color.NRGBA `yaml:",flow"`
		Bg         color.NRGBA `yaml:",flow"`
		Disabled   color.NRGBA `yaml:",flow"`
		TextSize   unit.Sp
		Inset      layout.Inset
		IconInset  layout.Inset
		CornerSize unit.Dp
	}
	Slider struct {
		Color color.NRGBA `yaml:",flow"`
	}
	Alert   AlertStyles
	Tooltip struct {
		Color color.NRGBA `yaml:",flow"`
		Bg    color.NRGBA `yaml:",flow"`
	}
}

//go:embed theme.yml
var defaultTheme []byte

// NewTheme returns the embedded theme, overridden by the user's theme.yml if
// there is one. The returned error is a warning about the user's file; the
// theme is always usable.
func NewTheme() (*Theme, error) {
	th := &Theme{Material: *material.NewTheme()}
	warn := ReadConfig(defaultTheme, "theme.yml", th)
	th.Material.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return th, warn
}
