package report_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pickupplot/pickupplot"
	"github.com/pickupplot/pickupplot/internal/report"
	"github.com/pickupplot/pickupplot/plotter"
)

func TestParsePickup(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	if err := report.ParsePickup(g, "5.375"); err != nil {
		t.Fatalf("ParsePickup: %v", err)
	}
	if err := report.ParsePickup(g, "1.5:0.5:-6:-"); err != nil {
		t.Fatalf("ParsePickup: %v", err)
	}
	if len(g.Pickups) != 2 {
		t.Fatalf("%d pickups", len(g.Pickups))
	}
	p := g.Pickups[1]
	if p.Position != 1.5 || p.Width != 0.5 || p.LevelDB != -6 || p.Polarity != -1 {
		t.Fatalf("pickup = %+v", p)
	}
	if g.Pickups[0].Width != 1 || g.Pickups[0].Polarity != 1 {
		t.Fatalf("defaults not kept: %+v", g.Pickups[0])
	}
}

func TestParsePickupErrors(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	cases := []struct {
		s    string
		want error
	}{
		{"abc", pickupplot.ErrNotNumeric},
		{"1:-1", pickupplot.ErrOutOfRange},
		{"1:1:0:x", nil},
		{"1:1:0:+:5", nil},
	}
	for _, c := range cases {
		err := report.ParsePickup(g, c.s)
		if err == nil {
			t.Errorf("ParsePickup(%q) accepted", c.s)
			continue
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Errorf("ParsePickup(%q) = %v, want %v", c.s, err, c.want)
		}
	}
	if len(g.Pickups) != 0 {
		t.Fatalf("rejected pickups were added: %d", len(g.Pickups))
	}
}

func TestResponse(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	freqs, dB := report.Response(g, 10)
	if len(freqs) != 10 || len(dB) != 10 {
		t.Fatalf("%d freqs, %d values", len(freqs), len(dB))
	}
	if math.Abs(freqs[0]-plotter.FMin) > 1e-9 || math.Abs(freqs[9]-plotter.FMax) > 1e-6 {
		t.Fatalf("freqs span %v..%v", freqs[0], freqs[9])
	}
	for _, v := range dB {
		if v != plotter.DBMin {
			t.Fatalf("silent guitar at %v dB", v)
		}
	}
}

func TestRender(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	report.ParsePickup(g, "5.375:1:0:-")
	var b strings.Builder
	if err := report.Render(&b, g, report.DefaultOptions()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Pickup response", "25.5 in", "5.375", "negative", "20 Hz to 20 kHz"} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q:\n%s", want, out)
		}
	}
}
