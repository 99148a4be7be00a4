package plotter_test

import (
	"math"
	"testing"

	"github.com/pickupplot/pickupplot/plotter"
)

func TestAmplitudeToDB(t *testing.T) {
	cases := []struct {
		amp, want float64
	}{
		{1, 0},
		{-1, 0},
		{0.1, -20},
		{-0.01, -40},
		{0.001, plotter.DBMin},
		{0, plotter.DBMin},
		{math.NaN(), plotter.DBMin},
		{100, plotter.DBMax},
		{math.Inf(-1), plotter.DBMax},
	}
	for _, c := range cases {
		if got := plotter.AmplitudeToDB(c.amp); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AmplitudeToDB(%v) = %v, want %v", c.amp, got, c.want)
		}
	}
}

func TestResponsePlotLayout(t *testing.T) {
	p := plotter.NewResponsePlot()
	p.SetSize(640, 200)
	if got := p.PlotPointCount(); got != 512 {
		t.Fatalf("PlotPointCount() = %d, want 512", got)
	}
	area := p.PlotArea()
	if area.Min.X != 64 || area.Max.X != 576 || area.Min.Y != 6 || area.Max.Y != 175 {
		t.Fatalf("PlotArea() = %v", area)
	}
	if x := p.FreqToX(plotter.FMin); x != area.Min.X {
		t.Errorf("FreqToX(FMin) = %d, want %d", x, area.Min.X)
	}
	if x := p.FreqToX(plotter.FMax); x != area.Max.X {
		t.Errorf("FreqToX(FMax) = %d, want %d", x, area.Max.X)
	}
	if y := p.DBToY(plotter.DBMax); y != area.Min.Y {
		t.Errorf("DBToY(DBMax) = %d, want %d", y, area.Min.Y)
	}
	if y := p.DBToY(plotter.DBMin); y != area.Max.Y {
		t.Errorf("DBToY(DBMin) = %d, want %d", y, area.Max.Y)
	}
}

func TestSetPlotPointOrder(t *testing.T) {
	p := plotter.NewResponsePlot()
	p.SetSize(640, 200)
	if p.SetPlotPoint(1, 20, 1) {
		t.Fatalf("SetPlotPoint(1) accepted before point 0")
	}
	if !p.SetPlotPoint(0, 20, 1) {
		t.Fatalf("SetPlotPoint(0) rejected")
	}
	if p.SetPlotPoint(0, 20, 1) {
		t.Fatalf("SetPlotPoint(0) accepted twice")
	}
	if y, _ := p.PlotY(0); y != p.DBToY(0) {
		t.Fatalf("PlotY(0) = %d, want %d", y, p.DBToY(0))
	}
	for i := 1; i < p.PlotPointCount(); i++ {
		if !p.SetPlotPoint(i, 20, 0) {
			t.Fatalf("SetPlotPoint(%d) rejected", i)
		}
	}
	if p.SetPlotPoint(p.PlotPointCount(), 20, 0) {
		t.Fatalf("SetPlotPoint accepted a point past the plot")
	}
	p.ClearPlot()
	if p.PointCount() != 0 || !p.SetPlotPoint(0, 20, 1) {
		t.Fatalf("ClearPlot did not restart the plot")
	}
}

func TestSetBar(t *testing.T) {
	p := plotter.NewResponsePlot()
	p.SetSize(640, 200)
	p.SetBar(110, 24) // two octaves
	bar := p.BarRect()
	if bar.Min.X != p.FreqToX(110) {
		t.Errorf("bar starts at %d, want %d", bar.Min.X, p.FreqToX(110))
	}
	if want := p.FreqToX(440) - p.FreqToX(110); bar.Dx() < want-1 || bar.Dx() > want+1 {
		t.Errorf("bar width = %d, want about %d", bar.Dx(), want)
	}
	if bar.Min.Y != p.PlotArea().Min.Y+5 || bar.Dy() != 6 {
		t.Errorf("bar = %v", bar)
	}
}

func TestResponsePlotStaticGeneration(t *testing.T) {
	p := plotter.NewResponsePlot()
	g := p.StaticGeneration()
	p.SetSize(640, 200)
	if p.StaticGeneration() == g {
		t.Fatalf("SetSize did not invalidate the static layer")
	}
}

func TestResponsePlotDraw(t *testing.T) {
	p := plotter.NewResponsePlot()
	p.SetSize(640, 200)
	for i := 0; i < 10; i++ {
		p.SetPlotPoint(i, 20, 0.5)
	}
	var c recordingCanvas
	p.DrawDynamic(&c)
	// bar, then a fill column per point, outline segments between them and
	// the cursor
	if got, want := c.count("line"), 10+9+1; got != want {
		t.Errorf("dynamic layer drew %d lines, want %d", got, want)
	}
	if got := c.count("fillRect"); got != 1 {
		t.Errorf("dynamic layer drew %d rects, want 1", got)
	}
	c = recordingCanvas{}
	p.DrawStatic(&c)
	want := len(p.XTicks()) + len(p.YTicks()) + 2
	if got := c.count("line"); got != want {
		t.Errorf("static layer drew %d lines, want %d", got, want)
	}
	texts := c.texts()
	if len(texts) == 0 || texts[0] != "2" {
		t.Errorf("static layer texts = %v", texts)
	}
}

func TestDBToYRoundsHalvesUp(t *testing.T) {
	p := plotter.NewResponsePlot()
	p.SetSize(640, 148) // 125 px for 50 dB, 2.5 px per dB
	area := p.PlotArea()
	if area.Dy() != 125 {
		t.Fatalf("plot area %v, want 125 px high", area)
	}
	cases := []struct {
		db   float64
		want int
	}{
		{0, 29},
		{1, 27}, // -2.5 px rounds up to -2
		{-1, 32},
		{3, 22},
		{-3, 37},
	}
	for _, c := range cases {
		if got := p.DBToY(c.db); got != c.want {
			t.Errorf("DBToY(%v) = %d, want %d", c.db, got, c.want)
		}
	}
}
