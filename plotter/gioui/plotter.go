package gioui

import (
	"fmt"
	"image"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/pickupplot/pickupplot/plotter"
	"github.com/pickupplot/pickupplot/version"
)

type (
	// Plotter is the Gio frontend of a plotter.Model: the guitar, the
	// response plot, the control panel and the pickup table.
	Plotter struct {
		Theme        *Theme
		Guitar       *GuitarView
		Plot         *DisplayView
		ControlPanel *ControlPanel
		Rows         []*PickupRowState
		PopupAlert   *AlertsState

		preferences Preferences
		windowSize  image.Point

		*plotter.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewPlotter(model *plotter.Model, preferences Preferences) *Plotter {
	p := &Plotter{
		Guitar:       NewGuitarView(model.GuitarDisplay()),
		Plot:         &DisplayView{Drawable: model.ResponsePlot()},
		ControlPanel: NewControlPanel(),
		PopupAlert:   NewAlertsState(),
		preferences:  preferences,
		Model:        model,
	}
	var warn error
	p.Theme, warn = NewTheme()
	model.Warn("ignoring user theme", warn)
	model.GuitarDisplay().Colors = p.Theme.Guitar
	model.ResponsePlot().Colors = p.Theme.Plot
	return p
}

func Title() string {
	if v := version.VersionOrHash; v != "" {
		return fmt.Sprintf("Pickup Plotter %s", v)
	}
	return "Pickup Plotter"
}

// Main runs the window until it is closed or Broker().CloseGUI is signaled,
// then closes Broker().FinishedGUI. Call it on its own goroutine and app.Main
// on the main goroutine.
func (p *Plotter) Main() {
	var ops op.Ops
	w := new(app.Window)
	w.Option(app.Title(Title()), app.Size(p.preferences.WindowSize()))
	if p.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	minSizePickups := -1
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
F:
	for {
		select {
		case e := <-p.Broker().ToModel:
			if p.ProcessMsg(e) {
				w.Invalidate()
			}
		case <-p.Broker().CloseGUI:
			w.Perform(system.ActionClose)
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				p.Layout(gtx)
				e.Frame(gtx.Ops)
				if n := p.PickupCount(); n != minSizePickups {
					minSizePickups = n
					w.Option(app.MinSize(MinWindowSize(p.Model)))
				}
			}
			acks <- struct{}{}
		}
	}
	close(p.Broker().FinishedGUI)
}

// MinWindowSize is the smallest window that fits the displays at their
// preferred sizes and a row for every pickup of the model.
func MinWindowSize(m *plotter.Model) (width, height unit.Dp) {
	s := m.LayoutConfig().MinSize(m.PickupCount())
	return unit.Dp(s.X), unit.Dp(s.Y)
}

// Layout draws the whole window. The model lays out the window in
// device-independent pixels; everything below is drawn in a transform
// scaled to the screen, with a 1:1 metric.
func (p *Plotter) Layout(gtx C) D {
	size := gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, p.Theme.Window.Bg)

	scale := gtx.Metric.PxPerDp
	if scale <= 0 {
		scale = 1
	}
	lgtx := gtx
	lgtx.Metric = unit.Metric{PxPerDp: 1, PxPerSp: 1}
	lsize := image.Pt(int(float32(size.X)/scale), int(float32(size.Y)/scale))
	lgtx.Constraints = layout.Exact(lsize)
	if p.Regions().Guitar.Empty() || p.windowSize != lsize {
		p.windowSize = lsize
		p.Resize(lsize.X, lsize.Y)
	}
	t := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale))).Push(gtx.Ops)
	p.layoutWindow(lgtx)
	t.Pop()

	LayoutAlerts(gtx, p.Theme, p.Alerts(), p.PopupAlert)
	return D{Size: size}
}

func (p *Plotter) layoutWindow(gtx C) {
	m := p.Model
	// input first, so that this frame already shows its effects
	p.Guitar.Update(gtx, m)
	p.ControlPanel.Update(gtx, m)
	for i, n := 0, m.PickupCount(); i < len(p.Rows) && i < n; i++ {
		p.Rows[i].Update(gtx, m, i)
		if m.PickupCount() != n {
			break // a row was removed, the rest are off by one
		}
	}
	for len(p.Rows) < m.PickupCount() {
		p.Rows = append(p.Rows, NewPickupRowState())
	}
	p.Rows = p.Rows[:m.PickupCount()]

	r := m.Regions()
	c := newCanvas(gtx, p.Theme)
	inRect(gtx, r.Guitar, func(gtx C) D { return p.Guitar.Layout(gtx, c) })
	inRect(gtx, r.Plot, func(gtx C) D { return p.Plot.Layout(gtx, c) })
	inRect(gtx, r.ControlPanel, func(gtx C) D { return p.ControlPanel.Layout(gtx, p.Theme, m) })
	cols := m.LayoutConfig().Columns
	inRect(gtx, r.Heading, func(gtx C) D { return LayoutHeading(gtx, p.Theme, cols) })
	for i, rect := range r.Rows {
		inRect(gtx, rect, func(gtx C) D { return p.Rows[i].Layout(gtx, p.Theme, m, i, cols) })
	}
}
