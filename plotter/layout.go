package plotter

import "image"

type (
	// LayoutConfig holds the sizes and spacings of the window layout. It is
	// built once, usually with DefaultLayoutConfig, and passed to NewModel.
	LayoutConfig struct {
		Margin           int // left margin of the whole window
		DisplayGap       int // gap below the guitar and the plot
		ControlPanelDrop int // extra offset of the control panel from the plot
		ControlPanelGap  int // gap right of the control panel
		GuitarHeight     int
		PlotHeight       int // minimum; the plot takes any extra height
		ControlPanel     image.Point
		Columns          PickupColumns
		HeadingHeight    int
		RowHeight        int
		RowGap           int
	}

	// PickupColumns are the widths of the columns of a pickup row, left to
	// right.
	PickupColumns struct {
		Number       int
		Position     int
		Width        int
		Level        int
		LevelControl int
		Polarity     int
		Remove       int
	}

	// Regions is the result of Layout: where each part of the window goes.
	Regions struct {
		Guitar       image.Rectangle
		Plot         image.Rectangle
		ControlPanel image.Rectangle
		Heading      image.Rectangle
		Rows         []image.Rectangle
	}
)

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Margin:           5,
		DisplayGap:       5,
		ControlPanelDrop: 10,
		ControlPanelGap:  5,
		GuitarHeight:     GuitarPreferredSize.Y,
		PlotHeight:       PlotPreferredSize.Y,
		ControlPanel:     image.Pt(280, 120),
		Columns: PickupColumns{
			Number:       48,
			Position:     50,
			Width:        50,
			Level:        50,
			LevelControl: 100,
			Polarity:     72,
			Remove:       50,
		},
		HeadingHeight: 28 + 2,
		RowHeight:     22,
		RowGap:        2,
	}
}

// Total is the width of a full pickup row.
func (c PickupColumns) Total() int {
	return c.Number + c.Position + c.Width + c.Level + c.LevelControl + c.Polarity + c.Remove
}

// Split divides a row rectangle into its seven columns, in the order of the
// PickupColumns fields.
func (c PickupColumns) Split(row image.Rectangle) [7]image.Rectangle {
	var ret [7]image.Rectangle
	x := row.Min.X
	for i, w := range [7]int{c.Number, c.Position, c.Width, c.Level, c.LevelControl, c.Polarity, c.Remove} {
		ret[i] = image.Rect(x, row.Min.Y, x+w, row.Max.Y)
		x += w
	}
	return ret
}

// MinSize is the smallest window that fits the guitar and the plot at their
// preferred sizes and the control area with the given number of pickups.
func (c LayoutConfig) MinSize(pickups int) image.Point {
	w := c.Margin + max(GuitarPreferredSize.X, PlotPreferredSize.X, c.ControlPanel.X+c.ControlPanelGap+c.Columns.Total()) + c.Margin
	h := c.GuitarHeight + c.DisplayGap + c.PlotHeight + c.DisplayGap + c.controlsHeight(pickups)
	return image.Pt(w, h)
}

func (c LayoutConfig) controlsHeight(pickups int) int {
	rows := c.HeadingHeight + c.RowGap + pickups*(c.RowHeight+c.RowGap)
	return max(c.ControlPanelDrop+c.ControlPanel.Y, rows)
}

// Layout stacks the guitar above the plot, both filling the width of the
// window, and below them the control panel with the pickup heading and rows to
// its right. The plot grows to use any height left over.
func (c LayoutConfig) Layout(w, h, pickups int) Regions {
	var r Regions
	x, y := c.Margin, 0
	width := max(w-2*c.Margin, 0)
	r.Guitar = image.Rect(x, y, x+width, y+c.GuitarHeight)
	y += c.GuitarHeight + c.DisplayGap
	plotHeight := max(c.PlotHeight, h-y-c.DisplayGap-c.controlsHeight(pickups))
	r.Plot = image.Rect(x, y, x+width, y+plotHeight)
	y += plotHeight + c.DisplayGap
	r.ControlPanel = image.Rectangle{Max: c.ControlPanel}.Add(image.Pt(x, y+c.ControlPanelDrop))
	x += c.ControlPanel.X + c.ControlPanelGap
	r.Heading = image.Rect(x, y, x+c.Columns.Total(), y+c.HeadingHeight)
	y += c.HeadingHeight + c.RowGap
	r.Rows = make([]image.Rectangle, pickups)
	for i := range r.Rows {
		r.Rows[i] = image.Rect(x, y, x+c.Columns.Total(), y+c.RowHeight)
		y += c.RowHeight + c.RowGap
	}
	return r
}
