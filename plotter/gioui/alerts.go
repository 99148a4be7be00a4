package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/pickupplot/pickupplot/plotter"
)

type (
	AlertsState struct {
		prevUpdate time.Time
	}

	AlertStyle struct {
		Bg   color.NRGBA `yaml:",flow"`
		Text LabelStyle
	}

	AlertStyles struct {
		Info    AlertStyle
		Warning AlertStyle
		Error   AlertStyle
		Margin  layout.Inset
		Inset   layout.Inset
	}
)

func NewAlertsState() *AlertsState {
	return &AlertsState{prevUpdate: time.Now()}
}

// LayoutAlerts draws the alerts as banners stacked up from the bottom of the
// window, most important lowest. A banner slides down out of the window while
// it fades.
func LayoutAlerts(gtx C, th *Theme, alerts *plotter.Alerts, st *AlertsState) D {
	now := time.Now()
	if alerts.Update(now.Sub(st.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(50 * time.Millisecond)})
	}
	st.prevUpdate = now

	margin := th.Alert.Margin
	width := gtx.Constraints.Max.X - gtx.Dp(margin.Left) - gtx.Dp(margin.Right)
	if width <= 0 {
		return D{}
	}
	bottom := gtx.Constraints.Max.Y - gtx.Dp(margin.Bottom)
	used := 0
	for _, alert := range alerts.Iterate {
		style := alertStyle(th, alert.Priority)
		label := Label(th, &style.Text, alert.Message)
		bgtx := gtx
		bgtx.Constraints = layout.Exact(image.Pt(width, 0))
		bgtx.Constraints.Max.Y = gtx.Constraints.Max.Y
		rec := op.Record(gtx.Ops)
		dims := layout.Stack{Alignment: layout.Center}.Layout(bgtx,
			layout.Expanded(func(gtx C) D {
				paint.FillShape(gtx.Ops, style.Bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
				return D{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx C) D {
				return th.Alert.Inset.Layout(gtx, label.Layout)
			}),
		)
		banner := rec.Stop()
		height := dims.Size.Y + gtx.Dp(margin.Bottom)
		shown := bottom - used - dims.Size.Y
		hidden := gtx.Constraints.Max.Y
		y := int(float64(shown)*alert.FadeLevel + float64(hidden)*(1-alert.FadeLevel))
		stack := op.Offset(image.Pt(gtx.Dp(margin.Left), y)).Push(gtx.Ops)
		banner.Add(gtx.Ops)
		stack.Pop()
		used += height
	}
	return D{}
}

func alertStyle(th *Theme, p plotter.AlertPriority) *AlertStyle {
	switch p {
	case plotter.Warning:
		return &th.Alert.Warning
	case plotter.Error:
		return &th.Alert.Error
	}
	return &th.Alert.Info
}
