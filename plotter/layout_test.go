package plotter_test

import (
	"image"
	"testing"

	"github.com/pickupplot/pickupplot/plotter"
)

func TestLayout(t *testing.T) {
	c := plotter.DefaultLayoutConfig()
	r := c.Layout(800, 600, 2)
	if want := image.Rect(5, 0, 795, 100); r.Guitar != want {
		t.Errorf("Guitar = %v, want %v", r.Guitar, want)
	}
	// the plot takes the height the controls do not need
	if want := image.Rect(5, 105, 795, 465); r.Plot != want {
		t.Errorf("Plot = %v, want %v", r.Plot, want)
	}
	if want := image.Rect(5, 480, 285, 600); r.ControlPanel != want {
		t.Errorf("ControlPanel = %v, want %v", r.ControlPanel, want)
	}
	if want := image.Rect(290, 470, 710, 500); r.Heading != want {
		t.Errorf("Heading = %v, want %v", r.Heading, want)
	}
	if len(r.Rows) != 2 {
		t.Fatalf("%d rows, want 2", len(r.Rows))
	}
	if want := image.Rect(290, 502, 710, 524); r.Rows[0] != want {
		t.Errorf("Rows[0] = %v, want %v", r.Rows[0], want)
	}
	if want := image.Rect(290, 526, 710, 548); r.Rows[1] != want {
		t.Errorf("Rows[1] = %v, want %v", r.Rows[1], want)
	}
}

func TestLayoutKeepsMinimumPlotHeight(t *testing.T) {
	c := plotter.DefaultLayoutConfig()
	r := c.Layout(300, 100, 20)
	if r.Plot.Dy() != c.PlotHeight {
		t.Errorf("plot height = %d, want %d", r.Plot.Dy(), c.PlotHeight)
	}
	if r.Guitar.Dx() != 290 || r.Plot.Dx() != 290 {
		t.Errorf("displays are %d and %d wide, want 290", r.Guitar.Dx(), r.Plot.Dx())
	}
	if r := c.Layout(4, 100, 0); r.Guitar.Dx() != 0 {
		t.Errorf("guitar width %d in a tiny window", r.Guitar.Dx())
	}
}

func TestMinSizeFitsLayout(t *testing.T) {
	c := plotter.DefaultLayoutConfig()
	for _, n := range []int{0, 1, 8} {
		s := c.MinSize(n)
		r := c.Layout(s.X, s.Y, n)
		bounds := image.Rectangle{Max: s}
		for _, rect := range append([]image.Rectangle{r.Guitar, r.Plot, r.ControlPanel, r.Heading}, r.Rows...) {
			if !rect.In(bounds) {
				t.Errorf("%d pickups: %v does not fit in %v", n, rect, s)
			}
		}
		if r.Plot.Dy() != c.PlotHeight {
			t.Errorf("%d pickups: plot height %d, want %d", n, r.Plot.Dy(), c.PlotHeight)
		}
	}
}

func TestPickupColumnsSplit(t *testing.T) {
	c := plotter.DefaultLayoutConfig().Columns
	if c.Total() != 420 {
		t.Fatalf("Total() = %d, want 420", c.Total())
	}
	cols := c.Split(image.Rect(10, 0, 430, 22))
	if cols[0].Min.X != 10 || cols[0].Dx() != 48 || cols[4].Dx() != 100 || cols[6].Max.X != 430 {
		t.Fatalf("Split = %v", cols)
	}
}
