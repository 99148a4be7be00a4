package plotter

import (
	"image"
	"image/color"
	"math"
)

type (
	// ResponsePlot draws the frequency response of the guitar on a
	// logarithmic frequency axis and a decibel amplitude axis. The curve is
	// fed one pixel column at a time with SetPlotPoint.
	ResponsePlot struct {
		Colors PlotColors

		size                     image.Point
		left, right, top, bottom int
		ppd                      float64 // pixels per decade
		ppdb                     float64 // pixels per dB, negative as y grows downwards
		unityX, unityY           int     // x of 1 Hz, y of 0 dB

		points      []int // y of each plotted column
		barOpenFreq float64
		barDecades  float64
		cursorFreq  float64

		generation int
	}

	PlotColors struct {
		Background color.NRGBA `yaml:",flow"`
		Axis       color.NRGBA `yaml:",flow"`
		Fill       color.NRGBA `yaml:",flow"`
		Outline    color.NRGBA `yaml:",flow"`
		Cursor     color.NRGBA `yaml:",flow"`
		NoteBar    color.NRGBA `yaml:",flow"`
	}
)

const (
	FMin  = 20.0
	FMax  = 20000.0
	DBMin = -40.0
	DBMax = 10.0
)

var PlotPreferredSize = image.Pt(640, 200)

func DefaultPlotColors() PlotColors {
	return PlotColors{
		Background: white,
		Axis:       color.NRGBA{R: 63, G: 63, B: 63, A: 255},
		Fill:       color.NRGBA{R: 220, G: 220, B: 160, A: 255},
		Outline:    color.NRGBA{R: 31, G: 63, B: 63, A: 255},
		Cursor:     color.NRGBA{R: 255, G: 255, A: 255},
		NoteBar:    color.NRGBA{R: 255, G: 128, B: 128, A: 255},
	}
}

func NewResponsePlot() *ResponsePlot {
	return &ResponsePlot{Colors: DefaultPlotColors(), barOpenFreq: FMin, cursorFreq: FMin}
}

// AmplitudeToDB converts a linear amplitude to decibels, clamped to
// [DBMin, DBMax]. The sign of the amplitude is ignored; zero and NaN map to
// DBMin.
func AmplitudeToDB(amp float64) float64 {
	db := 20 * math.Log10(math.Abs(amp))
	if math.IsNaN(db) || db < DBMin {
		return DBMin
	}
	return min(db, DBMax)
}

func (p *ResponsePlot) SetSize(w, h int) {
	p.size = image.Pt(w, h)
	p.left = round(0.1 * float64(w))
	p.right = round(0.9 * float64(w))
	p.top = h / 32
	p.bottom = h * 7 / 8
	p.ppd = float64(p.right-p.left) / math.Log10(FMax/FMin)
	p.unityX = p.left - round(math.Log10(FMin)*p.ppd)
	p.ppdb = float64(p.top-p.bottom) / (DBMax - DBMin)
	p.unityY = p.top + round(DBMax/(DBMax-DBMin)*float64(p.bottom-p.top))
	p.points = p.points[:0]
	p.InvalidateStatic()
}

func (p *ResponsePlot) Size() image.Point     { return p.size }
func (p *ResponsePlot) StaticGeneration() int { return p.generation }
func (p *ResponsePlot) InvalidateStatic()     { p.generation++ }

// PlotArea is the rectangle covered by the curve.
func (p *ResponsePlot) PlotArea() image.Rectangle {
	return image.Rect(p.left, p.top, p.right, p.bottom)
}

// PlotPointCount is the number of points GeneratePlot should feed, one per
// pixel column of the plot area.
func (p *ResponsePlot) PlotPointCount() int { return max(p.right-p.left, 0) }

// FreqToX maps a frequency to the x pixel coordinate. freq must be positive.
func (p *ResponsePlot) FreqToX(freq float64) int {
	return p.unityX + round(math.Log10(freq)*p.ppd)
}

// DBToY maps a decibel value to the y pixel coordinate.
func (p *ResponsePlot) DBToY(db float64) int {
	return p.unityY + round(db*p.ppdb)
}

func (p *ResponsePlot) ClearPlot() { p.points = p.points[:0] }

// SetPlotPoint sets the amplitude of column i. Points must be set in order,
// starting from 0 after ClearPlot; an out of order or out of range index is
// ignored and reported by returning false.
func (p *ResponsePlot) SetPlotPoint(i int, freq, amp float64) bool {
	if i != len(p.points) || i >= p.PlotPointCount() {
		return false
	}
	p.points = append(p.points, p.DBToY(AmplitudeToDB(amp)))
	return true
}

// PlotY returns the y coordinate of the i:th plotted column.
func (p *ResponsePlot) PlotY(i int) (y int, ok bool) {
	if i < 0 || i >= len(p.points) {
		return 0, false
	}
	return p.points[i], true
}

func (p *ResponsePlot) PointCount() int { return len(p.points) }

// SetBar marks the playable range of the string: from the open string
// frequency up fretCount semitones.
func (p *ResponsePlot) SetBar(openFreq float64, fretCount int) {
	p.barOpenFreq = openFreq
	p.barDecades = math.Ln2 * (float64(fretCount) / 12) / math.Ln10
}

func (p *ResponsePlot) BarRect() image.Rectangle {
	x := p.FreqToX(p.barOpenFreq)
	w := round(p.barDecades * p.ppd)
	return image.Rect(x, p.top+5, x+w, p.top+11)
}

func (p *ResponsePlot) SetLineCursor(freq float64) { p.cursorFreq = freq }
func (p *ResponsePlot) CursorX() int               { return p.FreqToX(p.cursorFreq) }

func (p *ResponsePlot) DrawStatic(c Canvas) {
	c.FillRect(image.Rectangle{Max: p.size}, p.Colors.Background)
	p.drawXAxis(c)
	p.drawYAxis(c)
}

func (p *ResponsePlot) drawXAxis(c Canvas) {
	y := p.bottom + 1
	c.Line(image.Pt(p.left, y), image.Pt(p.right, y), p.Colors.Axis)
	for _, t := range p.XTicks() {
		l := MinorTickLength
		if t.Major {
			l = MajorTickLength
		}
		c.Line(image.Pt(t.Pos, y), image.Pt(t.Pos, y+l), p.Colors.Axis)
		w, lh := c.TextSize(t.Label, NormalFont)
		c.Text(image.Pt(t.Pos-w/2, p.bottom+l+lh), t.Label, NormalFont, p.Colors.Axis)
	}
}

func (p *ResponsePlot) drawYAxis(c Canvas) {
	x := p.left - 1
	c.Line(image.Pt(x, p.top), image.Pt(x, p.bottom), p.Colors.Axis)
	for _, t := range p.YTicks() {
		if !t.Major {
			c.Line(image.Pt(x, t.Pos), image.Pt(x-MinorTickLength, t.Pos), p.Colors.Axis)
			continue
		}
		c.Line(image.Pt(x, t.Pos), image.Pt(x-MajorTickLength, t.Pos), p.Colors.Axis)
		w, lh := c.TextSize(t.Label, NormalFont)
		c.Text(image.Pt(p.left-MajorTickLength-w-2, t.Pos+lh/2), t.Label, NormalFont, p.Colors.Axis)
	}
}

func (p *ResponsePlot) DrawDynamic(c Canvas) {
	c.FillRect(p.BarRect(), p.Colors.NoteBar)
	for i, y := range p.points {
		x := p.left + i
		c.Line(image.Pt(x, p.bottom), image.Pt(x, y), p.Colors.Fill)
		if i > 0 {
			c.Line(image.Pt(x-1, p.points[i-1]), image.Pt(x, y), p.Colors.Outline)
		}
	}
	cx := p.CursorX()
	c.Line(image.Pt(cx, p.bottom), image.Pt(cx, p.top), p.Colors.Cursor)
}
