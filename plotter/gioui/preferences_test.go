package gioui_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pickupplot/pickupplot"
	"github.com/pickupplot/pickupplot/plotter"
	"github.com/pickupplot/pickupplot/plotter/gioui"
)

func TestDefaultPreferences(t *testing.T) {
	userConfig(t, nil)
	p, warn := gioui.LoadPreferences()
	if warn != nil {
		t.Fatalf("LoadPreferences: %v", warn)
	}
	if w, h := p.WindowSize(); w != 800 || h != 600 {
		t.Errorf("window %vx%v", w, h)
	}
	if p.Log.Level != "info" {
		t.Errorf("log level %q", p.Log.Level)
	}
	g, err := p.Guitar.NewGuitar()
	if err != nil {
		t.Fatalf("NewGuitar: %v", err)
	}
	if g.StringOpenFreq != pickupplot.DefaultStringOpenFreq || g.FretCount != pickupplot.DefaultFretCount || len(g.Pickups) != 2 {
		t.Errorf("guitar = %+v", g)
	}
	if s := p.Audition.Settings(); s != plotter.DefaultAuditionSettings() {
		t.Errorf("audition = %+v", s)
	}
}

func TestUserPreferences(t *testing.T) {
	userConfig(t, map[string]string{"preferences.yml": `
guitar:
  fretcount: 99
  scalelength: 34
  pickups: 1
  seed: 7
midi:
  inputprefix: Key
audition:
  peak: 2
`})
	p, warn := gioui.LoadPreferences()
	if warn != nil {
		t.Fatalf("LoadPreferences: %v", warn)
	}
	g, err := p.Guitar.NewGuitar()
	if !errors.Is(err, pickupplot.ErrOutOfRange) {
		t.Errorf("NewGuitar error = %v, want ErrOutOfRange", err)
	}
	if err != nil && !strings.Contains(err.Error(), "fretcount") {
		t.Errorf("error %q does not name the preference", err)
	}
	if g.FretCount != pickupplot.DefaultFretCount {
		t.Errorf("out of range fret count used: %d", g.FretCount)
	}
	if g.ScaleLength != 34 || len(g.Pickups) != 1 {
		t.Errorf("guitar = %+v", g)
	}
	if p.MIDI.InputPrefix != "Key" {
		t.Errorf("MIDI prefix %q", p.MIDI.InputPrefix)
	}
	if s := p.Audition.Settings(); s.Peak != plotter.DefaultAuditionSettings().Peak {
		t.Errorf("out of range peak used: %v", s.Peak)
	}
}

func TestPreferencesReportEveryBadValue(t *testing.T) {
	bad := gioui.GuitarPreferences{StringOpenFreq: 5, ScaleLength: 25.5, FretCount: 61, Seed: 1}
	g, err := bad.NewGuitar()
	if err == nil {
		t.Fatalf("NewGuitar accepted %+v", bad)
	}
	for _, name := range []string{"stringopenfreq", "fretcount"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
	if strings.Contains(err.Error(), "scalelength") {
		t.Errorf("valid scale length reported: %q", err)
	}
	if g.StringOpenFreq != pickupplot.DefaultStringOpenFreq || g.FretCount != pickupplot.DefaultFretCount {
		t.Errorf("bad values used: %+v", g)
	}
}

func TestMinWindowSizeGrowsWithPickups(t *testing.T) {
	g := pickupplot.NewGuitar(1)
	m := plotter.NewModel(plotter.NewBroker(), g, plotter.DefaultLayoutConfig())
	m.Resize(800, 600)
	_, h0 := gioui.MinWindowSize(m)
	for range 10 {
		m.AddPickup().Do()
	}
	w, h := gioui.MinWindowSize(m)
	want := m.LayoutConfig().MinSize(10)
	if int(w) != want.X || int(h) != want.Y {
		t.Fatalf("MinWindowSize = %vx%v, want %v", w, h, want)
	}
	if h <= h0 {
		t.Fatalf("min height %v with 10 pickups, %v with none", h, h0)
	}
}
