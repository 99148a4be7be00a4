package gioui

import (
	"log"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/pickupplot/pickupplot/plotter"
)

type (
	// ButtonState is the widget state of a button bound to a plotter Target.
	ButtonState struct {
		Clickable widget.Clickable
		Tip       TipArea
	}
)

var iconCache = map[*byte]*widget.Icon{}

// widgetForIcon returns a widget for IconVG data, but caching the results
func widgetForIcon(icon []byte) *widget.Icon {
	if widget, ok := iconCache[&icon[0]]; ok {
		return widget
	}
	widget, err := widget.NewIcon(icon)
	if err != nil {
		log.Fatal(err)
	}
	iconCache[&icon[0]] = widget
	return widget
}

// Update dispatches an Activated event for every click since the last frame.
func (b *ButtonState) Update(gtx C, m *plotter.Model, target plotter.Target, pickup int) (changed bool) {
	for b.Clickable.Clicked(gtx) {
		if m.Dispatch(plotter.Event{Kind: plotter.Activated, Target: target, Pickup: pickup}) {
			changed = true
		}
	}
	return changed
}

func TextButton(th *Theme, b *ButtonState, txt, tip string, enabled bool) layout.Widget {
	btn := material.Button(&th.Material, &b.Clickable, txt)
	btn.Color = th.Button.Text
	btn.Background = th.Button.Bg
	if !enabled {
		btn.Background = th.Button.Disabled
	}
	btn.TextSize = th.Button.TextSize
	btn.Inset = th.Button.Inset
	btn.CornerRadius = th.Button.CornerSize
	return withTip(th, b, tip, btn.Layout)
}

func IconButton(th *Theme, b *ButtonState, icon []byte, tip string, enabled bool) layout.Widget {
	btn := material.IconButton(&th.Material, &b.Clickable, widgetForIcon(icon), tip)
	btn.Color = th.Button.Text
	btn.Background = th.Button.Bg
	if !enabled {
		btn.Background = th.Button.Disabled
	}
	btn.Inset = th.Button.IconInset
	return withTip(th, b, tip, btn.Layout)
}

func withTip(th *Theme, b *ButtonState, tip string, w layout.Widget) layout.Widget {
	if tip == "" {
		return w
	}
	return func(gtx C) D { return b.Tip.Layout(gtx, Tooltip(th, tip), w) }
}
