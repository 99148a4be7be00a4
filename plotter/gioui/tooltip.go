package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/x/component"
)

const (
	tipDelay   = 500 * time.Millisecond
	tipFade    = 250 * time.Millisecond
	tipTimeout = 5 * time.Second
)

// TipArea fades in a tooltip under a widget after the pointer has rested on
// it for a while, and hides it again on press, on leave or after a timeout.
type TipArea struct {
	anim    component.VisibilityAnimation
	show    component.InvalidateDeadline
	timeout component.InvalidateDeadline
	ready   bool
}

func (t *TipArea) update(gtx C) {
	if !t.ready {
		t.anim = component.VisibilityAnimation{State: component.Invisible, Duration: tipFade}
		t.ready = true
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Press | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		t.timeout.SetTarget(gtx.Now.Add(tipTimeout))
		if e.Kind == pointer.Enter {
			t.show.SetTarget(gtx.Now.Add(tipDelay))
			continue
		}
		t.show.ClearTarget()
		t.anim.Disappear(gtx.Now)
	}
	if t.show.Process(gtx) {
		t.anim.Appear(gtx.Now)
	}
	if t.timeout.Process(gtx) {
		t.anim.Disappear(gtx.Now)
	}
}

func (t *TipArea) Layout(gtx C, tip component.Tooltip, w layout.Widget) D {
	t.update(gtx)
	dims := w(gtx)
	area := clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops)
	pass := pointer.PassOp{}.Push(gtx.Ops)
	event.Op(gtx.Ops, t)
	pass.Pop()
	area.Pop()
	if !t.anim.Visible() {
		return dims
	}
	tip.Bg = component.Interpolate(color.NRGBA{}, tip.Bg, t.anim.Revealed(gtx))
	tgtx := gtx
	tgtx.Constraints.Min = image.Point{}
	rec := op.Record(gtx.Ops)
	tipDims := tip.Layout(tgtx)
	call := rec.Stop()
	// deferred so the tip is drawn over the neighbouring widgets
	rec = op.Record(gtx.Ops)
	op.Offset(image.Pt((dims.Size.X-tipDims.Size.X)/2, dims.Size.Y)).Add(gtx.Ops)
	call.Add(gtx.Ops)
	op.Defer(gtx.Ops, rec.Stop())
	return dims
}

// Tooltip styles a platform tooltip with the theme colors.
func Tooltip(th *Theme, text string) component.Tooltip {
	tip := component.PlatformTooltip(&th.Material, text)
	tip.Bg = th.Tooltip.Bg
	tip.Text.Color = th.Tooltip.Color
	return tip
}
