package plotter

import (
	"math"
	"strconv"
)

// Tick is an axis tick mark. Pos is the pixel coordinate along the axis (x for
// the frequency axis, y for the decibel axis). Minor ticks on the decibel axis
// have no label.
type Tick struct {
	Pos   int
	Major bool
	Label string
}

const (
	MajorTickLength = 5
	MinorTickLength = 2
)

var minorFreqTicks = [...]float64{2, 5}

var engPrefixes = [...]string{"f", "p", "n", "u", "m", "", "K", "M", "G"}

// EngNotationDecade formats 10^decade in engineering notation: 1, 10 or 100
// followed by an SI prefix, e.g. 3 -> "1K", 4 -> "10K", -1 -> "100m".
// Decades outside the prefix table are returned as "1e<decade>".
func EngNotationDecade(decade int) string {
	q := decade / 3
	if decade%3 < 0 {
		q--
	}
	r := decade - 3*q
	i := q + 5
	if i < 0 || i >= len(engPrefixes) {
		return "1e" + strconv.Itoa(decade)
	}
	return [...]string{"1", "10", "100"}[r] + engPrefixes[i]
}

// XTicks returns the frequency axis ticks that fall inside the plot: a major
// tick at every decade and minor ticks at two and five times the decade.
func (p *ResponsePlot) XTicks() []Tick {
	var ret []Tick
	lo := int(math.Floor(math.Log10(FMin)))
	hi := int(math.Ceil(math.Log10(FMax)))
	for i := lo; i <= hi; i++ {
		x := p.unityX + round(float64(i)*p.ppd)
		if p.left <= x && x <= p.right {
			ret = append(ret, Tick{Pos: x, Major: true, Label: EngNotationDecade(i) + " Hz"})
		}
		for _, m := range minorFreqTicks {
			x := p.unityX + round((float64(i)+math.Log10(m))*p.ppd)
			if p.left <= x && x <= p.right {
				ret = append(ret, Tick{Pos: x, Label: strconv.Itoa(int(m))})
			}
		}
	}
	return ret
}

// YTicks returns the decibel axis ticks inside the plot: a labeled major tick
// every 10 dB and a minor tick every dB.
func (p *ResponsePlot) YTicks() []Tick {
	var ret []Tick
	lo := 10 * int(math.Floor(DBMin/10))
	hi := 10 * int(math.Ceil(DBMax/10))
	for i := lo; i <= hi; i += 10 {
		y := p.unityY + round(float64(i)*p.ppdb)
		if p.top <= y && y <= p.bottom {
			label := strconv.Itoa(i)
			if i == 0 {
				label = "0 dB"
			}
			ret = append(ret, Tick{Pos: y, Major: true, Label: label})
		}
		for j := 1; j < 10; j++ {
			y := p.unityY + round(float64(i+j)*p.ppdb)
			if p.top <= y && y <= p.bottom {
				ret = append(ret, Tick{Pos: y})
			}
		}
	}
	return ret
}

// round rounds halves up, also for negative values.
func round(v float64) int { return int(math.Floor(v + 0.5)) }
