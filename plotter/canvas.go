package plotter

import (
	"image"
	"image/color"
)

type (
	// Canvas is the minimal set of drawing primitives the displays need.
	// Coordinates are in logical pixels relative to the top-left corner of the
	// display being drawn. Lines and outlines are one pixel wide.
	Canvas interface {
		Line(from, to image.Point, c color.NRGBA)
		FillRect(r image.Rectangle, c color.NRGBA)
		FillPolygon(pts []image.Point, c color.NRGBA)
		StrokePolygon(pts []image.Point, c color.NRGBA)
		FillRoundRect(r image.Rectangle, radius int, c color.NRGBA)
		StrokeRoundRect(r image.Rectangle, radius int, c color.NRGBA)
		FillEllipse(r image.Rectangle, c color.NRGBA)
		// Text draws s with its baseline starting at pos.
		Text(pos image.Point, s string, font FontSize, c color.NRGBA)
		// TextSize returns the advance width of s and the line height of the
		// font.
		TextSize(s string, font FontSize) (width, lineHeight int)
	}

	// FontSize selects one of the two fonts used by the displays.
	FontSize int

	// Drawable is implemented by the displays. The static layer only changes
	// when StaticGeneration changes, so frontends may cache it; the dynamic
	// layer is drawn on top of it every frame.
	Drawable interface {
		Size() image.Point
		DrawStatic(c Canvas)
		DrawDynamic(c Canvas)
		StaticGeneration() int
	}

	// HitTester tells what a pointer press at pt would grab, without grabbing
	// it.
	HitTester interface {
		HitTest(pt image.Point) DragKind
	}
)

const (
	NormalFont FontSize = iota
	SmallFont
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)
