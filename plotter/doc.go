// Package plotter contains the UI-agnostic part of the pickup plotter: the
// guitar drawing, the response chart and the Model that keeps them in sync
// with a pickupplot.Guitar. Displays draw through the Canvas interface and
// receive input as Events, so a frontend only needs to implement Canvas and
// translate its own input into Events.
//
// The Model is not thread safe; it should only be touched from the goroutine
// running the GUI. Other goroutines (e.g. MIDI drivers) talk to it through the
// Broker.
package plotter
