package plotter_test

import (
	"image"
	"math"
	"testing"

	"github.com/pickupplot/pickupplot"
	"github.com/pickupplot/pickupplot/plotter"
)

func newDisplay(t *testing.T) (*pickupplot.Guitar, *plotter.GuitarDisplay) {
	t.Helper()
	g := pickupplot.NewGuitar(1)
	d := plotter.NewGuitarDisplay(g)
	d.SetSize(600, 100)
	return g, d
}

func TestGuitarDisplayGeometry(t *testing.T) {
	_, d := newDisplay(t)
	if d.NutX() != 90 || d.BridgeX() != 570 {
		t.Fatalf("nut at %d, bridge at %d", d.NutX(), d.BridgeX())
	}
	if x := d.FretX(0); x != d.NutX() {
		t.Errorf("FretX(0) = %d, want the nut at %d", x, d.NutX())
	}
	if x := d.FretX(12); x != 330 {
		t.Errorf("FretX(12) = %d, want 330", x)
	}
}

func TestXToFretRoundTrip(t *testing.T) {
	g, d := newDisplay(t)
	for f := 0; f <= g.FretCount; f++ {
		if got := d.XToFret(d.FretX(f)); got != f {
			t.Errorf("XToFret(FretX(%d)) = %d", f, got)
		}
	}
}

func TestXToFretClamps(t *testing.T) {
	g, d := newDisplay(t)
	cases := []struct{ x, want int }{
		{0, 0},
		{d.NutX() - 30, 0},
		{d.BridgeX(), g.FretCount},
		{d.BridgeX() + 20, g.FretCount},
		{d.BridgeX() - 1, g.FretCount},
	}
	for _, c := range cases {
		if got := d.XToFret(c.x); got != c.want {
			t.Errorf("XToFret(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestHasDotMarker(t *testing.T) {
	want := map[int]bool{3: true, 5: true, 7: true, 9: true, 12: true, 15: true, 17: true, 19: true, 21: true, 24: true, 36: true, 48: true}
	for f := -1; f < 70; f++ {
		if got := plotter.HasDotMarker(f); got != want[f] {
			t.Errorf("HasDotMarker(%d) = %v", f, got)
		}
	}
}

func TestGuitarDisplayInvalidateStatic(t *testing.T) {
	g, d := newDisplay(t)
	gen, ppi := d.StaticGeneration(), d.PPI()
	g.SetScaleLength(34)
	d.InvalidateStatic()
	if d.StaticGeneration() == gen {
		t.Fatalf("InvalidateStatic did not bump the generation")
	}
	if want := 480 / 34.0; math.Abs(d.PPI()-want) > 1e-9 || d.PPI() == ppi {
		t.Fatalf("PPI() = %v, want %v", d.PPI(), want)
	}
}

func TestGuitarDisplayHitTest(t *testing.T) {
	g, d := newDisplay(t)
	var hit plotter.HitTester = d
	p := g.AddPickup()
	center := d.BridgeX() - int(math.Round(p.Position*d.PPI()))
	cases := []struct {
		pt   image.Point
		want plotter.DragKind
	}{
		{image.Pt(center, plotter.PickupTop+2), plotter.DragPickup},
		{image.Pt(300, plotter.StringY), plotter.DragString},
		{image.Pt(300, plotter.RulerY), plotter.DragNone},
	}
	for _, c := range cases {
		if got := hit.HitTest(c.pt); got != c.want {
			t.Errorf("HitTest(%v) = %v, want %v", c.pt, got, c.want)
		}
	}
	if kind, _ := d.Dragging(); kind != plotter.DragNone {
		t.Fatalf("HitTest started a drag: %v", kind)
	}
}

func TestPointerProtocol(t *testing.T) {
	g, d := newDisplay(t)
	p := g.AddPickup() // 5.375 inches from the bridge
	center := d.BridgeX() - int(math.Round(p.Position*d.PPI()))
	y := plotter.PickupTop + 2
	if kind := d.HitTest(image.Pt(center, y)); kind != plotter.DragPickup {
		t.Fatalf("HitTest on the pickup = %v", kind)
	}
	if kind := d.PointerDown(image.Pt(center, y)); kind != plotter.DragPickup {
		t.Fatalf("PointerDown on the pickup = %v", kind)
	}
	if kind := d.PointerDrag(image.Pt(center-19, y+40)); kind != plotter.DragPickup {
		t.Fatalf("PointerDrag of the pickup = %v", kind)
	}
	if want := 5.375 + 19/d.PPI(); math.Abs(p.Position-want) > 1e-9 {
		t.Fatalf("dragged position = %v, want %v", p.Position, want)
	}
	d.PointerUp()

	if kind := d.PointerDown(image.Pt(300, plotter.StringY)); kind != plotter.DragString {
		t.Fatalf("PointerDown on the string = %v", kind)
	}
	if kind := d.PointerDrag(image.Pt(d.FretX(12), 0)); kind != plotter.DragString {
		t.Fatalf("PointerDrag of the string = %v", kind)
	}
	if g.PlayedFret != 12 {
		t.Fatalf("PlayedFret = %d, want 12", g.PlayedFret)
	}
	if kind := d.PointerDrag(image.Pt(d.FretX(12)+1, 0)); kind != plotter.DragNone {
		t.Fatalf("dragging within the same fret = %v, want DragNone", kind)
	}

	if kind := d.PointerDown(image.Pt(300, plotter.RulerY)); kind != plotter.DragNone {
		t.Fatalf("PointerDown on the ruler = %v", kind)
	}
	if kind := d.PointerDrag(image.Pt(200, plotter.RulerY)); kind != plotter.DragNone || g.PlayedFret != 12 {
		t.Fatalf("dragging nothing changed the guitar")
	}
}

func TestDragRemovedPickup(t *testing.T) {
	g, d := newDisplay(t)
	p := g.AddPickup()
	center := d.BridgeX() - int(math.Round(p.Position*d.PPI()))
	d.PointerDown(image.Pt(center, plotter.PickupTop))
	g.RemovePickup(p)
	if kind := d.PointerDrag(image.Pt(center+10, plotter.PickupTop)); kind != plotter.DragNone {
		t.Fatalf("dragging a removed pickup = %v", kind)
	}
}

func TestStringPolygon(t *testing.T) {
	g, d := newDisplay(t)
	g.SetPlayedFret(5)
	pts := d.StringPolygon()
	if len(pts) != 33 {
		t.Fatalf("%d points, want 33", len(pts))
	}
	if pts[0].X != d.FretX(5) || pts[16].X != d.BridgeX() || pts[32] != pts[0] {
		t.Fatalf("polygon ends at %v, %v, %v", pts[0], pts[16], pts[32])
	}
	if pts[8].Y != plotter.StringY-plotter.StringAmp || pts[24].Y != plotter.StringY+plotter.StringAmp {
		t.Fatalf("antinode at %v and %v", pts[8], pts[24])
	}
}

func TestGuitarDisplayDraw(t *testing.T) {
	g, d := newDisplay(t)
	var c recordingCanvas
	d.DrawStatic(&c)
	if got := c.count("fillEllipse"); got != 10 {
		t.Errorf("drew %d inlays for %d frets, want 10", got, g.FretCount)
	}
	if got := c.count("fillPolygon"); got != 2 {
		t.Errorf("drew %d filled polygons, want the nut and the bridge", got)
	}
	g.AddPickup()
	g.AddPickup()
	c = recordingCanvas{}
	d.DrawDynamic(&c)
	if c.count("fillRoundRect") != 2 || c.count("strokeRoundRect") != 2 {
		t.Errorf("pickups not drawn: %d", c.count("fillRoundRect"))
	}
	texts := c.texts()
	if len(texts) != 2 || texts[0] != "5.375" || texts[1] != "3.875" {
		t.Errorf("pickup labels = %v", texts)
	}
}
