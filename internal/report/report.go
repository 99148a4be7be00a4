// Package report renders the response of a guitar as text: a table of the
// pickups and an ASCII chart of the response in dB.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/pickupplot/pickupplot"
	"github.com/pickupplot/pickupplot/plotter"
	"gonum.org/v1/gonum/floats"
)

type Options struct {
	Width  int // chart columns, one response sample each
	Height int // chart rows
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(24)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cellStyle   = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
)

func DefaultOptions() Options { return Options{Width: 72, Height: 16} }

// Response samples the response of g in dB at n geometrically spaced
// frequencies from plotter.FMin to plotter.FMax.
func Response(g *pickupplot.Guitar, n int) (freqs, dB []float64) {
	if n < 2 {
		n = 2
	}
	freqs = floats.LogSpan(make([]float64, n), plotter.FMin, plotter.FMax)
	dB = make([]float64, n)
	for i, f := range freqs {
		dB[i] = plotter.AmplitudeToDB(g.ResponseAt(f))
	}
	return freqs, dB
}

// Render writes the report of g to w.
func Render(w io.Writer, g *pickupplot.Guitar, o Options) error {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Pickup response") + "\n")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Open string frequency", plotter.FormatDecimal(g.StringOpenFreq)+" Hz")
	row("Scale length", plotter.FormatDecimal(g.ScaleLength)+" in")
	row("Frets", strconv.Itoa(g.FretCount))
	row("Played fret", fmt.Sprintf("%d (%s Hz)", g.PlayedFret, plotter.FormatDecimal(g.FretFreq())))
	if len(g.Pickups) > 0 {
		s.WriteString("\n")
		for _, h := range []string{"Pickup", "Position", "Width", "Level dB", "Polarity"} {
			s.WriteString(cellStyle.Render(h))
		}
		s.WriteString("\n")
		for _, p := range g.Pickups {
			polarity := "positive"
			if p.Polarity < 0 {
				polarity = "negative"
			}
			for _, c := range []string{strconv.Itoa(p.Number), plotter.FormatDecimal(p.Position), plotter.FormatDecimal(p.Width), plotter.FormatDecimal(p.LevelDB), polarity} {
				s.WriteString(cellStyle.Render(c))
			}
			s.WriteString("\n")
		}
	}
	_, dB := Response(g, o.Width)
	chart := asciigraph.Plot(dB,
		asciigraph.Height(o.Height),
		asciigraph.LowerBound(plotter.DBMin),
		asciigraph.UpperBound(plotter.DBMax),
		asciigraph.Caption("response in dB, 20 Hz to 20 kHz on a log scale"),
	)
	s.WriteString(graphStyle.Render(chart) + "\n")
	_, err := io.WriteString(w, s.String())
	return err
}

// ParsePickup parses a pickup given as position[:width[:level dB[:polarity]]],
// e.g. "5.375:1:-6:-", and adds it to g. Polarity is + or -.
func ParsePickup(g *pickupplot.Guitar, s string) error {
	parts := strings.Split(s, ":")
	if len(parts) > 4 {
		return fmt.Errorf("pickup %q: too many fields", s)
	}
	var vals [3]float64
	for i, part := range parts[:min(len(parts), 3)] {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("pickup %q: %w", s, pickupplot.ErrNotNumeric)
		}
		vals[i] = v
	}
	polarity := 1
	if len(parts) == 4 {
		switch strings.TrimSpace(parts[3]) {
		case "+":
		case "-":
			polarity = -1
		default:
			return fmt.Errorf("pickup %q: polarity must be + or -", s)
		}
	}
	p := g.AddPickup()
	setters := []func() (bool, error){
		func() (bool, error) { return p.SetPosition(vals[0]) },
		func() (bool, error) {
			if len(parts) < 2 {
				return false, nil
			}
			return p.SetWidth(vals[1])
		},
		func() (bool, error) { return p.SetLevelDB(vals[2]) },
		func() (bool, error) { return p.SetPolarity(polarity) },
	}
	for _, set := range setters {
		if _, err := set(); err != nil {
			g.RemovePickup(p)
			return fmt.Errorf("pickup %q: %w", s, err)
		}
	}
	return nil
}
