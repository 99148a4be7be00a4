//go:build !cgo

package cmd

import (
	"github.com/pickupplot/pickupplot/plotter"
)

func NewMidiContext(broker *plotter.Broker) plotter.MIDIContext {
	// with no cgo, we cannot use MIDI, so return a null context
	return plotter.NullMIDIContext{}
}
