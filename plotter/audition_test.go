package plotter_test

import (
	"math"
	"testing"

	"github.com/pickupplot/pickupplot"
	"github.com/pickupplot/pickupplot/plotter"
)

func TestWavetableMatchesHarmonicSum(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	g.AddPickup()
	g.SetPlayedFret(5)
	s := plotter.DefaultAuditionSettings()
	s.TableSize = 256
	table := plotter.Wavetable(g, s)
	if len(table) != 256 {
		t.Fatalf("len(table) = %d", len(table))
	}
	f0 := g.FretFreq()
	for _, i := range []int{0, 17, 64, 200} {
		want := 0.0
		for k := 1; k < 128 && float64(k)*f0 < 20000; k++ {
			a := g.ResponseAt(float64(k)*f0) / float64(k)
			want += a * math.Sin(2*math.Pi*float64(k*i)/256)
		}
		if math.Abs(float64(table[i])-want) > 1e-4 {
			t.Errorf("table[%d] = %v, want %v", i, table[i], want)
		}
	}
}

func TestRenderAudition(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	g.AddPickup()
	s := plotter.DefaultAuditionSettings()
	buf := plotter.RenderAudition(g, s)
	if len(buf) != 2*66150 {
		t.Fatalf("rendered %d samples, want %d", len(buf), 2*66150)
	}
	peak := float32(0)
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != buf[i+1] {
			t.Fatalf("channels differ at frame %d", i/2)
		}
		peak = max(peak, buf[i], -buf[i])
	}
	if math.Abs(float64(peak-s.Peak)) > 1e-5 {
		t.Fatalf("peak = %v, want %v", peak, s.Peak)
	}
	if tail := buf[len(buf)-2]; math.Abs(float64(tail)) > 0.1 {
		t.Errorf("note has not decayed: %v", tail)
	}
}

func TestRenderAuditionSilent(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	for _, v := range plotter.RenderAudition(g, plotter.DefaultAuditionSettings()) {
		if v != 0 {
			t.Fatalf("guitar without pickups is not silent")
		}
	}
	s := plotter.DefaultAuditionSettings()
	s.Length = 0
	if buf := plotter.RenderAudition(g, s); buf != nil {
		t.Fatalf("zero length rendered %d samples", len(buf))
	}
}
