package gioui

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gioui.org/unit"
	"github.com/pickupplot/pickupplot"
	"github.com/pickupplot/pickupplot/plotter"
)

type (
	Preferences struct {
		Window   WindowPreferences
		Log      LogPreferences
		Guitar   GuitarPreferences
		MIDI     MIDIPreferences
		Audition AuditionPreferences
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	LogPreferences struct {
		Level string
		File  string `yaml:",omitempty"`
	}

	// GuitarPreferences is the guitar the window starts with.
	GuitarPreferences struct {
		StringOpenFreq float64
		ScaleLength    float64
		FretCount      int
		Pickups        int
		Seed           uint64 `yaml:",omitempty"` // 0 picks the pickup colors at random
	}

	MIDIPreferences struct {
		InputPrefix string `yaml:",omitempty"` // open the first input with this prefix at startup
	}

	AuditionPreferences struct {
		Length float64 // seconds
		Decay  float64
		Peak   float32
	}
)

//go:embed preferences.yml
var defaultPreferences []byte

// LoadPreferences returns the embedded preferences overridden by the user's
// preferences.yml. The error is a warning; the preferences are always
// usable.
func LoadPreferences() (Preferences, error) {
	var p Preferences
	warn := ReadConfig(defaultPreferences, "preferences.yml", &p)
	return p, warn
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

// NewGuitar builds the starting guitar. Values out of range keep the defaults
// and are returned as errors, joined.
func (p GuitarPreferences) NewGuitar() (*pickupplot.Guitar, error) {
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := pickupplot.NewGuitar(seed)
	var errs []error
	if _, err := g.SetStringOpenFreq(p.StringOpenFreq); err != nil {
		errs = append(errs, fmt.Errorf("guitar.stringopenfreq %v: %w", p.StringOpenFreq, err))
	}
	if _, err := g.SetScaleLength(p.ScaleLength); err != nil {
		errs = append(errs, fmt.Errorf("guitar.scalelength %v: %w", p.ScaleLength, err))
	}
	if _, err := g.SetFretCount(p.FretCount); err != nil {
		errs = append(errs, fmt.Errorf("guitar.fretcount %v: %w", p.FretCount, err))
	}
	for range p.Pickups {
		g.AddPickup()
	}
	return g, errors.Join(errs...)
}

func (p AuditionPreferences) Settings() plotter.AuditionSettings {
	s := plotter.DefaultAuditionSettings()
	if p.Length > 0 {
		s.Length = p.Length
	}
	if p.Decay > 0 {
		s.Decay = p.Decay
	}
	if p.Peak > 0 && p.Peak <= 1 {
		s.Peak = p.Peak
	}
	return s
}
