package plotter

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/pickupplot/pickupplot"
)

type (
	// GuitarDisplay draws the neck, the bridge, the pickups and the vibrating
	// string of a guitar, seen from the side, and turns pointer drags into
	// pickup moves and fret selections. The guitar is borrowed from the Model.
	GuitarDisplay struct {
		Colors GuitarColors

		guitar        *pickupplot.Guitar
		size          image.Point
		nutX, bridgeX int
		ppi           float64 // pixels per inch
		generation    int
		drag          dragState
	}

	GuitarColors struct {
		Background    color.NRGBA `yaml:",flow"`
		Ruler         color.NRGBA `yaml:",flow"`
		Fingerboard   color.NRGBA `yaml:",flow"`
		Fret          color.NRGBA `yaml:",flow"`
		Inlay         color.NRGBA `yaml:",flow"`
		OctaveInlay   color.NRGBA `yaml:",flow"`
		Nut           color.NRGBA `yaml:",flow"`
		NutOutline    color.NRGBA `yaml:",flow"`
		Bridge        color.NRGBA `yaml:",flow"`
		String        color.NRGBA `yaml:",flow"`
		StringOutline color.NRGBA `yaml:",flow"`
		PickupOutline color.NRGBA `yaml:",flow"`
		PickupLabel   color.NRGBA `yaml:",flow"`
	}

	// DragKind tells what a pointer press grabbed.
	DragKind int

	dragState struct {
		kind       DragKind
		pickup     *pickupplot.Pickup
		pressedX   int
		pressedPos float64
	}
)

const (
	DragNone DragKind = iota
	DragPickup
	DragString
)

// Vertical layout of the display, in pixels from the top.
const (
	RulerY    = 15
	StringAmp = 8
	StringY   = 50
	NeckTop   = StringY + 8
	PickupTop = NeckTop + 3
)

const (
	nutLeft              = 0.15 // fraction of the width
	bridgeRight          = 0.95
	fingerboardThickness = 0.25 // inches
	bodyDescent          = 0.375
	nutHalfWidth         = 5
	bridgeWidth          = 10
	pickupCornerRadius   = 5
	stringSegments       = 16
	tickLength           = 3
	inchLegend           = "Inches from bridge"
	fretLegend           = "Fret number"
)

// dotMarkers has bit f set when fret f has a dot inlay: 3, 5, 7, 9, 12, 15,
// 17, 19, 21, 24, 36 and 48.
const dotMarkers uint64 = 0o10001000112511250

var GuitarPreferredSize = image.Pt(600, 100)

func DefaultGuitarColors() GuitarColors {
	return GuitarColors{
		Background:    white,
		Ruler:         color.NRGBA{R: 63, G: 63, B: 63, A: 255},
		Fingerboard:   black,
		Fret:          white,
		Inlay:         white,
		OctaveInlay:   color.NRGBA{R: 255, G: 255, B: 127, A: 255},
		Nut:           color.NRGBA{R: 231, G: 231, B: 231, A: 255},
		NutOutline:    color.NRGBA{R: 63, G: 63, B: 63, A: 255},
		Bridge:        color.NRGBA{R: 31, G: 31, B: 31, A: 255},
		String:        color.NRGBA{R: 220, G: 220, B: 255, A: 255},
		StringOutline: color.NRGBA{R: 112, G: 112, B: 112, A: 255},
		PickupOutline: black,
		PickupLabel:   black,
	}
}

func NewGuitarDisplay(g *pickupplot.Guitar) *GuitarDisplay {
	return &GuitarDisplay{Colors: DefaultGuitarColors(), guitar: g}
}

// HasDotMarker reports whether the fret has a dot inlay.
func HasDotMarker(fret int) bool {
	return fret >= 0 && fret < 64 && dotMarkers>>fret&1 != 0
}

func (d *GuitarDisplay) SetSize(w, h int) {
	d.size = image.Pt(w, h)
	d.nutX = round(nutLeft * float64(w))
	d.bridgeX = round(bridgeRight * float64(w))
	d.InvalidateStatic()
}

func (d *GuitarDisplay) Size() image.Point     { return d.size }
func (d *GuitarDisplay) StaticGeneration() int { return d.generation }
func (d *GuitarDisplay) NutX() int             { return d.nutX }
func (d *GuitarDisplay) BridgeX() int          { return d.bridgeX }
func (d *GuitarDisplay) PPI() float64          { return d.ppi }

// InvalidateStatic must be called whenever the scale length or the fret count
// changes, so that the ruler and the neck get redrawn.
func (d *GuitarDisplay) InvalidateStatic() {
	d.ppi = float64(d.bridgeX-d.nutX) / d.guitar.ScaleLength
	d.generation++
}

// FretX returns the pixel x of the fret.
func (d *GuitarDisplay) FretX(fret int) int {
	return d.bridgeX - round(d.ppi*d.guitar.FretPosition(fret))
}

// XToFret returns the fret closest to pixel x, clamped to [0, FretCount].
func (d *GuitarDisplay) XToFret(x int) int {
	if x >= d.bridgeX {
		return d.guitar.FretCount
	}
	ratio := float64(d.bridgeX-d.nutX) / float64(d.bridgeX-x)
	f := round(12 / math.Ln2 * math.Log(ratio))
	return max(min(f, d.guitar.FretCount), 0)
}

func (d *GuitarDisplay) xToInches(x int) float64 {
	return float64(d.bridgeX-x) / d.ppi
}

func onString(y int) bool { return StringY-StringAmp < y && y < StringY+StringAmp }

func (d *GuitarDisplay) HitTest(pt image.Point) DragKind {
	if pt.Y >= PickupTop {
		if _, ok := d.guitar.PickupAt(d.xToInches(pt.X)); ok {
			return DragPickup
		}
	}
	if onString(pt.Y) {
		return DragString
	}
	return DragNone
}

// PointerDown grabs the topmost pickup under pt, or the string if pt is on
// it.
func (d *GuitarDisplay) PointerDown(pt image.Point) DragKind {
	d.drag = dragState{}
	if pt.Y >= PickupTop {
		if i, ok := d.guitar.PickupAt(d.xToInches(pt.X)); ok {
			p := d.guitar.Pickups[i]
			d.drag = dragState{kind: DragPickup, pickup: p, pressedX: pt.X, pressedPos: p.Position}
			return DragPickup
		}
	}
	if onString(pt.Y) {
		d.drag.kind = DragString
	}
	return d.drag.kind
}

// PointerDrag moves the grabbed pickup or selects the played fret. It returns
// what was dragged, or DragNone if nothing changed.
func (d *GuitarDisplay) PointerDrag(pt image.Point) DragKind {
	switch d.drag.kind {
	case DragPickup:
		if !slices.Contains(d.guitar.Pickups, d.drag.pickup) {
			d.drag = dragState{} // removed while dragging
			return DragNone
		}
		pos := d.drag.pressedPos - float64(pt.X-d.drag.pressedX)/d.ppi
		if changed, _ := d.drag.pickup.SetPosition(pos); changed {
			return DragPickup
		}
	case DragString:
		if d.guitar.SetPlayedFret(d.XToFret(pt.X)) {
			return DragString
		}
	}
	return DragNone
}

func (d *GuitarDisplay) PointerUp() { d.drag = dragState{} }

// Dragging returns the current drag mode and the dragged pickup, if any.
func (d *GuitarDisplay) Dragging() (DragKind, *pickupplot.Pickup) {
	return d.drag.kind, d.drag.pickup
}

func (d *GuitarDisplay) DrawStatic(c Canvas) {
	c.FillRect(image.Rectangle{Max: d.size}, d.Colors.Background)
	d.drawRuler(c)
	d.drawNeck(c)
}

func (d *GuitarDisplay) drawRuler(c Canvas) {
	col := d.Colors.Ruler
	c.Line(image.Pt(d.nutX, RulerY), image.Pt(d.bridgeX, RulerY), col)
	w, lh := c.TextSize(inchLegend, SmallFont)
	c.Text(image.Pt(d.nutX-w-4, RulerY), inchLegend, SmallFont, col)
	for inch := 0; float64(inch) <= d.guitar.ScaleLength; inch++ {
		x := d.bridgeX - round(float64(inch)*d.ppi)
		c.Line(image.Pt(x, RulerY-tickLength), image.Pt(x, RulerY), col)
		if inch%2 == 0 {
			label := itoa(inch)
			w, _ := c.TextSize(label, SmallFont)
			c.Text(image.Pt(x-w/2, RulerY-tickLength), label, SmallFont, col)
		}
	}
	w, _ = c.TextSize(fretLegend, SmallFont)
	c.Text(image.Pt(d.nutX-w-4, RulerY+lh), fretLegend, SmallFont, col)
	for f := 0; f <= d.guitar.FretCount; f++ {
		x := d.FretX(f)
		c.Line(image.Pt(x, RulerY), image.Pt(x, RulerY+tickLength), col)
		if HasDotMarker(f) {
			label := itoa(f)
			w, _ := c.TextSize(label, SmallFont)
			c.Text(image.Pt(x-w/2, RulerY+lh), label, SmallFont, col)
		}
	}
}

func (d *GuitarDisplay) drawNeck(c Canvas) {
	thickness := round(fingerboardThickness * d.ppi)
	neckRight := d.FretX(d.guitar.FretCount)
	c.FillRect(image.Rect(d.nutX, NeckTop, neckRight, NeckTop+thickness), d.Colors.Fingerboard)
	prevX := d.nutX
	for f := 0; f <= d.guitar.FretCount; f++ {
		x := d.FretX(f)
		c.Line(image.Pt(x, NeckTop), image.Pt(x, NeckTop+thickness), d.Colors.Fret)
		if HasDotMarker(f) {
			left := round(float64(x+prevX) / 2)
			r := image.Rect(left, NeckTop, left+thickness, NeckTop+thickness)
			col := d.Colors.Inlay
			if f%12 == 0 {
				r.Min.X -= thickness / 2
				r.Max.X += thickness / 2
				col = d.Colors.OctaveInlay
			}
			c.FillEllipse(r, col)
		}
		prevX = x - thickness
	}
	nut := []image.Point{
		{d.nutX, StringY},
		{d.nutX + nutHalfWidth, NeckTop},
		{d.nutX - nutHalfWidth, NeckTop},
	}
	c.FillPolygon(nut, d.Colors.Nut)
	c.StrokePolygon(nut, d.Colors.NutOutline)
	length := d.bridgeX - d.nutX
	bridge := make([]image.Point, len(nut))
	for i, p := range nut {
		bridge[i] = p.Add(image.Pt(length, 0))
	}
	c.FillPolygon(bridge, d.Colors.Bridge)
	descent := round(bodyDescent * d.ppi)
	c.FillRect(image.Rect(d.bridgeX-bridgeWidth/2, NeckTop, d.bridgeX+bridgeWidth/2, NeckTop+descent), d.Colors.Bridge)
}

func (d *GuitarDisplay) DrawDynamic(c Canvas) {
	for _, p := range d.guitar.Pickups {
		d.drawPickup(c, p)
	}
	d.drawString(c)
}

// PickupRect returns the rectangle the pickup is drawn in.
func (d *GuitarDisplay) PickupRect(p *pickupplot.Pickup) image.Rectangle {
	x := d.bridgeX - round(d.ppi*(p.Position+0.5*p.Width))
	w := round(p.Width * d.ppi)
	h := round(p.Height * d.ppi)
	return image.Rect(x, PickupTop, x+w, PickupTop+h)
}

func (d *GuitarDisplay) drawPickup(c Canvas, p *pickupplot.Pickup) {
	r := d.PickupRect(p)
	c.FillRoundRect(r, pickupCornerRadius, p.Color)
	c.StrokeRoundRect(r, pickupCornerRadius, d.Colors.PickupOutline)
	label := FormatDecimal(p.Position)
	w, lh := c.TextSize(label, NormalFont)
	c.Text(image.Pt(r.Min.X+(r.Dx()-w)/2, r.Max.Y+lh), label, NormalFont, d.Colors.PickupLabel)
}

// StringPolygon returns the outline of the vibrating part of the string, from
// the played fret to the bridge: the upper half wave followed by the lower
// half wave back, 2*16+1 points.
func (d *GuitarDisplay) StringPolygon() []image.Point {
	const n = stringSegments
	pts := make([]image.Point, 2*n+1)
	leftX := d.FretX(d.guitar.PlayedFret)
	incX := float64(d.bridgeX-leftX) / n
	for i := 0; i <= n; i++ {
		dist := StringAmp * math.Sin(float64(i)*math.Pi/n)
		x := leftX + round(float64(i)*incX)
		pts[i] = image.Pt(x, round(StringY-dist))
		pts[2*n-i] = image.Pt(x, round(StringY+dist))
	}
	return pts
}

func (d *GuitarDisplay) drawString(c Canvas) {
	pts := d.StringPolygon()
	c.FillPolygon(pts, d.Colors.String)
	c.StrokePolygon(pts, d.Colors.StringOutline)
	c.Line(image.Pt(d.nutX, StringY), image.Pt(d.bridgeX, StringY), d.Colors.StringOutline)
}
