//go:build cgo

package cmd

import (
	"github.com/pickupplot/pickupplot/plotter"
	"github.com/pickupplot/pickupplot/plotter/gomidi"
)

func NewMidiContext(broker *plotter.Broker) plotter.MIDIContext {
	return gomidi.NewContext(broker)
}
