package plotter

import "time"

type (
	// Broker carries messages from other goroutines to the Model. MIDI drivers
	// call back on their own goroutines; they only ever TrySend into ToModel
	// and the GUI loop drains it with Model.ProcessMsg.
	//
	// CloseGUI has capacity 1, so a close request never blocks; FinishedGUI is
	// closed by the GUI loop once it has exited.
	Broker struct {
		ToModel     chan MsgToModel
		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// MsgToModel is a message sent to the model. Data is one of the message
	// types of this package, e.g. MIDINoteEvent.
	MsgToModel struct {
		Data any
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:     make(chan MsgToModel, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent,
// false otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// CloseAndWait asks the GUI to close and waits at most t for it to finish.
// Returns false if the GUI was still running after t.
func (b *Broker) CloseAndWait(t time.Duration) bool {
	TrySend(b.CloseGUI, struct{}{})
	select {
	case <-b.FinishedGUI:
		return true
	case <-time.After(t):
		return false
	}
}
