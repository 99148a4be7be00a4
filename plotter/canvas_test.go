package plotter_test

import (
	"image"
	"image/color"

	"github.com/pickupplot/pickupplot/plotter"
)

// recordingCanvas records the draw calls made on it. Text is measured with a
// fixed width font: 6 pixels per character, 12 pixel line height.
type recordingCanvas struct {
	calls []drawCall
}

type drawCall struct {
	op    string
	rect  image.Rectangle
	pts   []image.Point
	text  string
	color color.NRGBA
}

func (c *recordingCanvas) Line(from, to image.Point, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "line", pts: []image.Point{from, to}, color: col})
}

func (c *recordingCanvas) FillRect(r image.Rectangle, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "fillRect", rect: r, color: col})
}

func (c *recordingCanvas) FillPolygon(pts []image.Point, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "fillPolygon", pts: pts, color: col})
}

func (c *recordingCanvas) StrokePolygon(pts []image.Point, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "strokePolygon", pts: pts, color: col})
}

func (c *recordingCanvas) FillRoundRect(r image.Rectangle, radius int, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "fillRoundRect", rect: r, color: col})
}

func (c *recordingCanvas) StrokeRoundRect(r image.Rectangle, radius int, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "strokeRoundRect", rect: r, color: col})
}

func (c *recordingCanvas) FillEllipse(r image.Rectangle, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "fillEllipse", rect: r, color: col})
}

func (c *recordingCanvas) Text(pos image.Point, s string, font plotter.FontSize, col color.NRGBA) {
	c.calls = append(c.calls, drawCall{op: "text", pts: []image.Point{pos}, text: s, color: col})
}

func (c *recordingCanvas) TextSize(s string, font plotter.FontSize) (width, lineHeight int) {
	return 6 * len(s), 12
}

func (c *recordingCanvas) count(op string) int {
	n := 0
	for _, call := range c.calls {
		if call.op == op {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) texts() []string {
	var ret []string
	for _, call := range c.calls {
		if call.op == "text" {
			ret = append(ret, call.text)
		}
	}
	return ret
}
