package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

// LabelStyle is the themable look of a single line of text.
type LabelStyle struct {
	Color     color.NRGBA `yaml:",flow"`
	Alignment layout.Direction
	Font      font.Font
	TextSize  unit.Sp
}

// LabelWidget is a styled single line label, aligned within the constraints.
type LabelWidget struct {
	LabelStyle
	Text   string
	Shaper *text.Shaper
}

func Label(th *Theme, style *LabelStyle, txt string) LabelWidget {
	return LabelWidget{LabelStyle: *style, Text: txt, Shaper: th.Material.Shaper}
}

func (l LabelWidget) Layout(gtx C) D {
	return l.Alignment.Layout(gtx, l.layoutText)
}

func (l LabelWidget) layoutText(gtx C) D {
	gtx.Constraints.Min = image.Point{}
	return widget.Label{MaxLines: 1}.Layout(gtx, l.Shaper, l.Font, l.TextSize, l.Text, colorMaterial(gtx.Ops, l.Color))
}

func colorMaterial(ops *op.Ops, c color.NRGBA) op.CallOp {
	rec := op.Record(ops)
	paint.ColorOp{Color: c}.Add(ops)
	return rec.Stop()
}
