package pickupplot

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

type (
	// Guitar is the physical model of a single string: its tuning, the
	// geometry of the neck and the pickups reading the vibration. Pickups are
	// kept in insertion order, which is also the drawing order and the
	// numbering order.
	Guitar struct {
		StringOpenFreq float64 // Hz
		ScaleLength    float64 // inches, nut to bridge
		FretCount      int
		PlayedFret     int
		Pickups        []*Pickup

		rng *rand.Rand
	}

	// RangeFloat is an inclusive range of valid values for a parameter.
	RangeFloat struct{ Min, Max float64 }
	RangeInt   struct{ Min, Max int }
)

const (
	DefaultStringOpenFreq = 110.0
	DefaultScaleLength    = 25.5
	DefaultFretCount      = 24
)

var (
	StringOpenFreqRange = RangeFloat{20, 10e3}
	ScaleLengthRange    = RangeFloat{10, 100}
	FretCountRange      = RangeInt{0, 60}
)

var (
	// ErrOutOfRange is returned by setters when the value is outside the valid
	// range of the parameter. The model is left unchanged.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNotNumeric is returned when a parameter text cannot be parsed as a
	// number. The model is left unchanged.
	ErrNotNumeric = errors.New("not a number")
)

// NewGuitar returns a guitar with the default tuning and neck and no pickups.
// The seed drives the random pickup colors.
func NewGuitar(seed uint64) *Guitar {
	return &Guitar{
		StringOpenFreq: DefaultStringOpenFreq,
		ScaleLength:    DefaultScaleLength,
		FretCount:      DefaultFretCount,
		rng:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r RangeFloat) Contains(v float64) bool { return r.Min <= v && v <= r.Max } // false for NaN
func (r RangeInt) Contains(v int) bool       { return r.Min <= v && v <= r.Max }

// FretPosition returns the distance from the bridge to the fret, in inches.
// Fret 0 is the nut.
func (g *Guitar) FretPosition(fret int) float64 {
	return g.ScaleLength * math.Pow(0.5, float64(fret)/12)
}

// FretFreq returns the fundamental of the string when held at PlayedFret.
func (g *Guitar) FretFreq() float64 {
	return g.StringOpenFreq * math.Pow(2, float64(g.PlayedFret)/12)
}

// RadRelFreq converts a frequency to the dimensionless radian relative
// frequency used by the pickup response.
func (g *Guitar) RadRelFreq(freq float64) float64 {
	return freq * math.Pi / (g.ScaleLength * g.StringOpenFreq)
}

// ResponseAt sums the contribution of all pickups at the given frequency.
func (g *Guitar) ResponseAt(freq float64) float64 {
	r := g.RadRelFreq(freq)
	var a float64
	for _, p := range g.Pickups {
		a += p.ResponseAt(r)
	}
	return a
}

// AddPickup creates a pickup with the next number, places it next to the
// existing ones and appends it.
func (g *Guitar) AddPickup() *Pickup {
	p := newPickup(len(g.Pickups)+1, g.rng)
	p.Position = g.bestLocationForNewPickup()
	g.Pickups = append(g.Pickups, p)
	return p
}

// bestLocationForNewPickup puts the first pickup an inch past the end of the
// neck and every other one an inch towards the bridge from the pickup edge
// closest to the bridge, but never closer than an inch to the bridge.
func (g *Guitar) bestLocationForNewPickup() float64 {
	neckEnd := g.FretPosition(g.FretCount) - 1.0
	if len(g.Pickups) == 0 {
		return neckEnd
	}
	minX := neckEnd
	for _, p := range g.Pickups {
		minX = min(minX, p.Left())
	}
	if minX > 1.5 {
		return minX - 1.0
	}
	return 1.0
}

// RemovePickup removes the pickup (by identity) and renumbers the pickups
// after it. Returns false if the pickup does not belong to this guitar.
func (g *Guitar) RemovePickup(p *Pickup) bool {
	i := slices.Index(g.Pickups, p)
	if i < 0 {
		return false
	}
	g.Pickups = slices.Delete(g.Pickups, i, i+1)
	for ; i < len(g.Pickups); i++ {
		g.Pickups[i].Number = i + 1
	}
	return true
}

// PickupAt returns the index of the topmost pickup covering xFromBridge.
// Later pickups are drawn on top, so the search goes backwards.
func (g *Guitar) PickupAt(xFromBridge float64) (index int, ok bool) {
	for i := len(g.Pickups) - 1; i >= 0; i-- {
		if g.Pickups[i].Contains(xFromBridge) {
			return i, true
		}
	}
	return -1, false
}

func (g *Guitar) SetFretCount(v int) (changed bool, err error) {
	if !FretCountRange.Contains(v) {
		return false, fmt.Errorf("fret count %d not in [%d, %d]: %w", v, FretCountRange.Min, FretCountRange.Max, ErrOutOfRange)
	}
	if v == g.FretCount {
		return false, nil
	}
	g.FretCount = v
	g.PlayedFret = min(g.PlayedFret, v)
	return true, nil
}

func (g *Guitar) SetStringOpenFreq(v float64) (changed bool, err error) {
	if !StringOpenFreqRange.Contains(v) {
		return false, fmt.Errorf("open string frequency %v not in [%v, %v]: %w", v, StringOpenFreqRange.Min, StringOpenFreqRange.Max, ErrOutOfRange)
	}
	if v == g.StringOpenFreq {
		return false, nil
	}
	g.StringOpenFreq = v
	return true, nil
}

func (g *Guitar) SetScaleLength(v float64) (changed bool, err error) {
	if !ScaleLengthRange.Contains(v) {
		return false, fmt.Errorf("scale length %v not in [%v, %v]: %w", v, ScaleLengthRange.Min, ScaleLengthRange.Max, ErrOutOfRange)
	}
	if v == g.ScaleLength {
		return false, nil
	}
	g.ScaleLength = v
	return true, nil
}

// SetPlayedFret clamps the fret into [0, FretCount].
func (g *Guitar) SetPlayedFret(fret int) (changed bool) {
	fret = max(min(fret, g.FretCount), 0)
	if fret == g.PlayedFret {
		return false
	}
	g.PlayedFret = fret
	return true
}
