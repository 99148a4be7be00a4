package gioui

import (
	"image"
	"image/color"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/pickupplot/pickupplot/plotter"
)

type (
	// NumberEditor is a single line text field bound to a numeric field of
	// the model. Every keystroke is sent to the model for validation; enter
	// or losing focus commits the text.
	NumberEditor struct {
		widgetEditor widget.Editor
		focused      bool
		tip          TipArea
	}

	EditorStyle struct {
		Color    color.NRGBA `yaml:",flow"`
		Bg       color.NRGBA `yaml:",flow"`
		BadInput color.NRGBA `yaml:",flow"`
		TextSize unit.Sp
		Inset    layout.Inset
	}
)

func NewNumberEditor() *NumberEditor {
	return &NumberEditor{widgetEditor: widget.Editor{SingleLine: true, Submit: true, Alignment: text.End}}
}

// Update sends the edits since the last frame to the model. Returns true if
// the model handled any of them.
func (e *NumberEditor) Update(gtx C, m *plotter.Model, target plotter.Target, pickup int) (changed bool) {
	ev := plotter.Event{Target: target, Pickup: pickup}
	for {
		we, ok := e.widgetEditor.Update(gtx)
		if !ok {
			break
		}
		switch we.(type) {
		case widget.ChangeEvent:
			ev.Kind, ev.Text = plotter.TextChanged, e.widgetEditor.Text()
		case widget.SubmitEvent:
			ev.Kind, ev.Text = plotter.TextCommitted, e.widgetEditor.Text()
			gtx.Execute(key.FocusCmd{})
		default:
			continue
		}
		if m.Dispatch(ev) {
			changed = true
		}
	}
	focused := gtx.Focused(&e.widgetEditor)
	if e.focused && !focused {
		ev.Kind, ev.Text = plotter.TextCommitted, e.widgetEditor.Text()
		if m.Dispatch(ev) {
			changed = true
		}
	}
	e.focused = focused
	return changed
}

// Layout draws the field. The text follows the model unless the user is
// editing it; invalid text gets a warning background and its error as a
// tooltip.
func (e *NumberEditor) Layout(gtx C, th *Theme, field plotter.Field) D {
	if !e.focused && e.widgetEditor.Text() != field.Text {
		e.widgetEditor.SetText(field.Text)
	}
	bg := th.Editor.Bg
	if !field.Valid() {
		bg = th.Editor.BadInput
	}
	w := func(gtx C) D {
		gtx.Constraints.Min = gtx.Constraints.Max
		paint.FillShape(gtx.Ops, bg, clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Op())
		return th.Editor.Inset.Layout(gtx, func(gtx C) D {
			me := material.Editor(&th.Material, &e.widgetEditor, "")
			me.TextSize = th.Editor.TextSize
			me.Color = th.Editor.Color
			return me.Layout(gtx)
		})
	}
	if field.Valid() {
		return w(gtx)
	}
	return e.tip.Layout(gtx, Tooltip(th, field.Err.Error()), w)
}
