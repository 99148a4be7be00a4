package pickupplot

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
)

// Pickup is a single magnetic pickup mounted under the string. Position and
// Width are in inches, Position measured from the bridge to the center of the
// pickup.
type Pickup struct {
	Position float64
	Width    float64
	Polarity int
	LevelDB  float64
	Level    float64 // linear gain, always 10^(LevelDB/20)
	Height   float64 // cosmetic only
	Depth    float64 // cosmetic only
	Number   int     // 1-based index in the owning guitar
	Color    color.NRGBA
}

func newPickup(number int, rng *rand.Rand) *Pickup {
	return &Pickup{
		Position: 1.0,
		Width:    1.0,
		Polarity: +1,
		Level:    1.0,
		Height:   0.75,
		Depth:    0.5,
		Number:   number,
		Color:    randomPastel(rng),
	}
}

// pale colors so that the black outlines and labels stay readable
func randomPastel(rng *rand.Rand) color.NRGBA {
	return color.NRGBA{
		R: uint8(128 + rng.IntN(128)),
		G: uint8(128 + rng.IntN(128)),
		B: uint8(128 + rng.IntN(128)),
		A: 255,
	}
}

// SetLevelDB sets the pickup gain in decibels and updates the linear Level.
func (p *Pickup) SetLevelDB(db float64) (changed bool, err error) {
	if !finite(db) {
		return false, fmt.Errorf("level %v dB: %w", db, ErrOutOfRange)
	}
	if db == p.LevelDB {
		return false, nil
	}
	p.LevelDB = db
	p.Level = math.Pow(10, db/20)
	return true, nil
}

func (p *Pickup) SetPosition(pos float64) (changed bool, err error) {
	if !finite(pos) {
		return false, fmt.Errorf("position %v: %w", pos, ErrOutOfRange)
	}
	if pos == p.Position {
		return false, nil
	}
	p.Position = pos
	return true, nil
}

// SetWidth sets the width of the pickup aperture. Zero width is allowed and
// models an ideal point pickup.
func (p *Pickup) SetWidth(w float64) (changed bool, err error) {
	if !finite(w) || w < 0 {
		return false, fmt.Errorf("width %v: %w", w, ErrOutOfRange)
	}
	if w == p.Width {
		return false, nil
	}
	p.Width = w
	return true, nil
}

func (p *Pickup) SetPolarity(polarity int) (changed bool, err error) {
	if polarity != 1 && polarity != -1 {
		return false, fmt.Errorf("polarity %d: %w", polarity, ErrOutOfRange)
	}
	if polarity == p.Polarity {
		return false, nil
	}
	p.Polarity = polarity
	return true, nil
}

// ResponseAt returns the contribution of this pickup at the given radian
// relative frequency, freq*pi/(scaleLength*openFreq). The position term is the
// string's mode shape sampled at the pickup; the sinc term averages it over the
// pickup width.
func (p *Pickup) ResponseAt(radRelFreq float64) float64 {
	widthPart := 1.0
	if p.Width != 0 {
		widthPart = sinc(0.5 * p.Width * radRelFreq)
	}
	return float64(p.Polarity) * p.Level * math.Sin(p.Position*radRelFreq) * widthPart
}

// Contains reports whether xFromBridge (inches) falls on the pickup, edges
// included.
func (p *Pickup) Contains(xFromBridge float64) bool {
	return p.Position-0.5*p.Width <= xFromBridge && xFromBridge <= p.Position+0.5*p.Width
}

// Left is the edge of the pickup closest to the bridge.
func (p *Pickup) Left() float64 { return p.Position - 0.5*p.Width }

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
