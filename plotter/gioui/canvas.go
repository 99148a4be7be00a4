package gioui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/pickupplot/pickupplot/plotter"
)

type (
	// canvas implements plotter.Canvas on Gio ops. Coordinates are layout
	// pixels; the caller scales them to the window.
	canvas struct {
		gtx    layout.Context
		shaper *text.Shaper
		sizes  [2]unit.Sp
	}

	// DisplayView draws a plotter.Drawable. The static layer is recorded into
	// ops of its own and replayed until the generation or the size of the
	// drawable changes.
	DisplayView struct {
		Drawable plotter.Drawable

		static     op.Ops
		staticCall op.CallOp
		generation int
		size       image.Point
		recorded   bool
	}

	// GuitarView is the DisplayView of the guitar, which also takes pointer
	// input.
	GuitarView struct {
		DisplayView
		hit   plotter.HitTester
		hover plotter.DragKind
	}
)

const unbounded = 1 << 24

func newCanvas(gtx layout.Context, th *Theme) *canvas {
	return &canvas{
		gtx:    gtx,
		shaper: th.Material.Shaper,
		sizes:  [2]unit.Sp{th.Display.NormalTextSize, th.Display.SmallTextSize},
	}
}

func (c *canvas) withOps(ops *op.Ops) *canvas {
	ret := *c
	ret.gtx.Ops = ops
	return &ret
}

func pixelCenter(pt image.Point) f32.Point {
	return f32.Pt(float32(pt.X)+.5, float32(pt.Y)+.5)
}

func (c *canvas) Line(from, to image.Point, col color.NRGBA) {
	if from.X == to.X || from.Y == to.Y {
		r := image.Rectangle{Min: from, Max: to}.Canon()
		r.Max = r.Max.Add(image.Pt(1, 1))
		paint.FillShape(c.gtx.Ops, col, clip.Rect(r).Op())
		return
	}
	var p clip.Path
	p.Begin(c.gtx.Ops)
	p.MoveTo(pixelCenter(from))
	p.LineTo(pixelCenter(to))
	paint.FillShape(c.gtx.Ops, col, clip.Stroke{Path: p.End(), Width: 1}.Op())
}

func (c *canvas) FillRect(r image.Rectangle, col color.NRGBA) {
	paint.FillShape(c.gtx.Ops, col, clip.Rect(r).Op())
}

func (c *canvas) polygon(pts []image.Point, stroke bool) clip.PathSpec {
	pt := func(p image.Point) f32.Point {
		if stroke {
			return pixelCenter(p)
		}
		return f32.Pt(float32(p.X), float32(p.Y))
	}
	var p clip.Path
	p.Begin(c.gtx.Ops)
	p.MoveTo(pt(pts[0]))
	for _, q := range pts[1:] {
		p.LineTo(pt(q))
	}
	p.Close()
	return p.End()
}

func (c *canvas) FillPolygon(pts []image.Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	paint.FillShape(c.gtx.Ops, col, clip.Outline{Path: c.polygon(pts, false)}.Op())
}

func (c *canvas) StrokePolygon(pts []image.Point, col color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	paint.FillShape(c.gtx.Ops, col, clip.Stroke{Path: c.polygon(pts, true), Width: 1}.Op())
}

func (c *canvas) FillRoundRect(r image.Rectangle, radius int, col color.NRGBA) {
	paint.FillShape(c.gtx.Ops, col, clip.UniformRRect(r, radius).Op(c.gtx.Ops))
}

func (c *canvas) StrokeRoundRect(r image.Rectangle, radius int, col color.NRGBA) {
	path := clip.UniformRRect(r, radius).Path(c.gtx.Ops)
	paint.FillShape(c.gtx.Ops, col, clip.Stroke{Path: path, Width: 1}.Op())
}

func (c *canvas) FillEllipse(r image.Rectangle, col color.NRGBA) {
	paint.FillShape(c.gtx.Ops, col, clip.Ellipse(r).Op(c.gtx.Ops))
}

// label records s without drawing it.
func (c *canvas) label(s string, f plotter.FontSize, col color.NRGBA) (op.CallOp, D) {
	gtx := c.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(unbounded, unbounded)}
	textColor := colorMaterial(gtx.Ops, col)
	macro := op.Record(gtx.Ops)
	dims := widget.Label{MaxLines: 1}.Layout(gtx, c.shaper, font.Font{}, c.sizes[f], s, textColor)
	return macro.Stop(), dims
}

func (c *canvas) Text(pos image.Point, s string, f plotter.FontSize, col color.NRGBA) {
	call, dims := c.label(s, f, col)
	ascent := dims.Size.Y - dims.Baseline
	defer op.Offset(image.Pt(pos.X, pos.Y-ascent)).Push(c.gtx.Ops).Pop()
	call.Add(c.gtx.Ops)
}

func (c *canvas) TextSize(s string, f plotter.FontSize) (width, lineHeight int) {
	_, dims := c.label(s, f, color.NRGBA{})
	return dims.Size.X, dims.Size.Y
}

// Layout draws the drawable at the origin, clipped to its size.
func (v *DisplayView) Layout(gtx C, c *canvas) D {
	size := v.Drawable.Size()
	if !v.recorded || v.generation != v.Drawable.StaticGeneration() || v.size != size {
		v.static.Reset()
		macro := op.Record(&v.static)
		v.Drawable.DrawStatic(c.withOps(&v.static))
		v.staticCall = macro.Stop()
		v.generation, v.size, v.recorded = v.Drawable.StaticGeneration(), size, true
	}
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	v.staticCall.Add(gtx.Ops)
	v.Drawable.DrawDynamic(c)
	return D{Size: size}
}

func NewGuitarView(d *plotter.GuitarDisplay) *GuitarView {
	return &GuitarView{DisplayView: DisplayView{Drawable: d}, hit: d}
}

// Update turns the pointer events on the guitar into model events. Returns
// true if the model changed.
func (v *GuitarView) Update(gtx C, m *plotter.Model) (changed bool) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Leave,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pos := e.Position.Round()
		me := plotter.Event{Target: plotter.TargetGuitarDisplay, Pos: pos}
		switch e.Kind {
		case pointer.Press:
			me.Kind = plotter.PointerDown
		case pointer.Drag:
			me.Kind = plotter.PointerDrag
		case pointer.Release, pointer.Cancel:
			me.Kind = plotter.PointerUp
		case pointer.Move:
			v.hover = v.hit.HitTest(pos)
			continue
		case pointer.Leave:
			v.hover = plotter.DragNone
			continue
		}
		if m.Dispatch(me) {
			changed = true
		}
	}
	return changed
}

func (v *GuitarView) Layout(gtx C, c *canvas) D {
	dims := v.DisplayView.Layout(gtx, c)
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	kind, _ := v.Drawable.(*plotter.GuitarDisplay).Dragging()
	if kind == plotter.DragNone {
		kind = v.hover
	}
	switch kind {
	case plotter.DragPickup:
		pointer.CursorGrab.Add(gtx.Ops)
	case plotter.DragString:
		pointer.CursorPointer.Add(gtx.Ops)
	}
	event.Op(gtx.Ops, v)
	return dims
}
