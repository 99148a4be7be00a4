package gomidi

import (
	"errors"
	"fmt"
	"time"

	"github.com/pickupplot/pickupplot/plotter"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	RTMIDIContext struct {
		driver    *rtmididrv.Driver
		broker    *plotter.Broker
		currentIn *RTMIDIInputDevice
		stop      func()
	}

	RTMIDIInputDevice struct {
		context *RTMIDIContext
		in      drivers.In
	}
)

// NewContext opens the rtmidi driver. If that fails, the context reports
// MIDISupportNoDriver and has no inputs.
func NewContext(broker *plotter.Broker) *RTMIDIContext {
	m := &RTMIDIContext{broker: broker}
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	m.driver, _ = rtmididrv.New()
	return m
}

func (m *RTMIDIContext) Inputs(yield func(plotter.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	for _, in := range ins {
		if !yield(&RTMIDIInputDevice{context: m, in: in}) {
			break
		}
	}
}

func (m *RTMIDIContext) Support() plotter.MIDISupport {
	if m.driver == nil {
		return plotter.MIDISupportNoDriver
	}
	return plotter.MIDISupported
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	if m.currentIn != nil {
		m.currentIn.Close()
	}
	m.driver.Close()
}

// Open starts listening to the input. Only one input is open at a time; any
// other open input of the context is closed first.
func (d *RTMIDIInputDevice) Open() error {
	c := d.context
	if c.driver == nil {
		return errors.New("no driver available")
	}
	if c.currentIn != nil && c.currentIn.in == d.in && d.in.IsOpen() {
		return nil
	}
	if c.currentIn != nil {
		c.currentIn.Close()
	}
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, c.HandleMessage, midi.HandleError(func(err error) {
		plotter.TrySend(c.broker.ToModel, plotter.MsgToModel{Data: plotter.Alert{
			Name:     "MIDIError",
			Priority: plotter.Warning,
			Message:  fmt.Sprintf("MIDI input %s: %v", d.in, err),
			Duration: 3 * time.Second,
		}})
	}))
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	c.currentIn, c.stop = d, stop
	return nil
}

func (d *RTMIDIInputDevice) Close() error {
	c := d.context
	if c.currentIn != nil && c.currentIn.in == d.in {
		if c.stop != nil {
			c.stop()
		}
		c.currentIn, c.stop = nil, nil
	}
	if !d.in.IsOpen() {
		return nil
	}
	return d.in.Close()
}

func (d *RTMIDIInputDevice) IsOpen() bool   { return d.in.IsOpen() }
func (d *RTMIDIInputDevice) String() string { return d.in.String() }

// HandleMessage is called by the driver on its own goroutine. Note starts and
// ends are forwarded to the model; if the channel is full, the message is
// dropped.
func (m *RTMIDIContext) HandleMessage(msg midi.Message, timestampms int32) {
	var channel, key, velocity uint8
	var e plotter.MIDINoteEvent
	switch {
	case msg.GetNoteStart(&channel, &key, &velocity):
		e = plotter.MIDINoteEvent{On: true, Channel: int(channel), Note: key, Velocity: velocity}
	case msg.GetNoteEnd(&channel, &key):
		e = plotter.MIDINoteEvent{Channel: int(channel), Note: key}
	default:
		return
	}
	plotter.TrySend(m.broker.ToModel, plotter.MsgToModel{Data: e})
}
