package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pickupplot/pickupplot"
	"github.com/pickupplot/pickupplot/internal/report"
	"github.com/pickupplot/pickupplot/version"
)

type pickupFlags []string

func (p *pickupFlags) String() string     { return strings.Join(*p, " ") }
func (p *pickupFlags) Set(s string) error { *p = append(*p, s); return nil }

func main() {
	var pickups pickupFlags
	flag.Var(&pickups, "pickup", "add a pickup as `position[:width[:level dB[:polarity]]]`, e.g. 5.375:1:-6:-; repeatable")
	openFreq := flag.Float64("freq", pickupplot.DefaultStringOpenFreq, "open string frequency in Hz")
	scaleLength := flag.Float64("scale", pickupplot.DefaultScaleLength, "scale length in inches")
	frets := flag.Int("frets", pickupplot.DefaultFretCount, "number of frets")
	fret := flag.Int("fret", 0, "played fret")
	width := flag.Int("width", report.DefaultOptions().Width, "chart width in columns")
	height := flag.Int("height", report.DefaultOptions().Height, "chart height in rows")
	versionFlag := flag.Bool("v", false, "print version")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	g := pickupplot.NewGuitar(1)
	for _, err := range []error{
		second(g.SetStringOpenFreq(*openFreq)),
		second(g.SetScaleLength(*scaleLength)),
		second(g.SetFretCount(*frets)),
	} {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	g.SetPlayedFret(*fret)
	for _, p := range pickups {
		if err := report.ParsePickup(g, p); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if err := report.Render(os.Stdout, g, report.Options{Width: *width, Height: *height}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func second(_ bool, err error) error { return err }

func printUsage() {
	fmt.Fprintf(os.Stderr, "pickupplot-print prints the frequency response of guitar pickups.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
