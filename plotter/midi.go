package plotter

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

type (
	midiState struct {
		context      MIDIContext
		inputs       []MIDIInputDevice
		currentInput MIDIInputDevice
	}

	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int

	// MIDINoteEvent is sent by the MIDI driver to the model through the
	// Broker.
	MIDINoteEvent struct {
		On       bool
		Channel  int
		Note     byte
		Velocity byte
	}
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

// NoteToFret returns the fret at which a string tuned to openFreq plays the
// MIDI note. The result may be negative or past the end of the neck.
func NoteToFret(note int, openFreq float64) int {
	openNote := 69 + 12*math.Log2(openFreq/440)
	return int(math.Round(float64(note) - openNote))
}

// FindMIDIDeviceByPrefix returns the first input whose name starts with
// prefix.
func FindMIDIDeviceByPrefix(c MIDIContext, prefix string) (input MIDIInputDevice, ok bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Inputs {
		if strings.HasPrefix(i.String(), prefix) {
			return i, true
		}
	}
	return nil, false
}

// MIDIInputName is the name of the open MIDI input, or a description of why
// there is none.
func (m *Model) MIDIInputName() string {
	if m.midi.currentInput != nil {
		return m.midi.currentInput.String()
	}
	if m.midi.context == nil {
		return "Not compiled"
	}
	switch m.midi.context.Support() {
	case MIDISupportNotCompiled:
		return "Not compiled"
	case MIDISupportNoDriver:
		return "No driver"
	default:
		return "Closed"
	}
}

// OpenMIDIInput opens the first input whose name starts with prefix, closing
// the current one.
func (m *Model) OpenMIDIInput(prefix string) error {
	m.refreshMIDIInputs()
	input, ok := FindMIDIDeviceByPrefix(m.midi.context, prefix)
	if !ok {
		return fmt.Errorf("no MIDI input device found with prefix %q", prefix)
	}
	return m.openMIDIInput(input)
}

func (m *Model) openMIDIInput(input MIDIInputDevice) error {
	m.closeMIDIInput()
	if input == nil {
		return nil
	}
	if err := input.Open(); err != nil {
		return fmt.Errorf("cannot open MIDI input %s: %w", input, err)
	}
	m.midi.currentInput = input
	m.log.Info("opened MIDI input", zap.String("input", input.String()))
	return nil
}

func (m *Model) closeMIDIInput() {
	if m.midi.currentInput == nil {
		return
	}
	if err := m.midi.currentInput.Close(); err != nil {
		m.reportError("cannot close MIDI input", err)
	}
	m.midi.currentInput = nil
}

func (m *Model) refreshMIDIInputs() {
	m.midi.inputs = m.midi.inputs[:0]
	if m.midi.context == nil {
		return
	}
	for i := range m.midi.context.Inputs {
		m.midi.inputs = append(m.midi.inputs, i)
	}
}

// NextMIDIInput cycles through closed, first input, second input and so on.
func (m *Model) NextMIDIInput() Action { return MakeAction((*nextMIDIInput)(m)) }

type nextMIDIInput Model

func (m *nextMIDIInput) Enabled() bool {
	return m.midi.context != nil && m.midi.context.Support() == MIDISupported
}

func (m *nextMIDIInput) Do() {
	model := (*Model)(m)
	model.refreshMIDIInputs()
	next := 0
	for i, in := range m.midi.inputs {
		if m.midi.currentInput != nil && in.String() == m.midi.currentInput.String() {
			next = i + 1
		}
	}
	if next >= len(m.midi.inputs) {
		model.closeMIDIInput()
		return
	}
	if err := model.openMIDIInput(m.midi.inputs[next]); err != nil {
		model.reportError("MIDI", err)
		return
	}
	model.alerts.AddNamed("MIDIInput", fmt.Sprintf("Opened MIDI input port: %s", m.midi.inputs[next]), Info)
}

// handleNote selects the fret that plays the note. Notes that cannot be played
// on the neck are ignored.
func (m *Model) handleNote(e MIDINoteEvent) bool {
	if !e.On {
		return false
	}
	fret := NoteToFret(int(e.Note), m.guitar.StringOpenFreq)
	if fret < 0 || fret > m.guitar.FretCount {
		m.log.Debug("note outside the neck", zap.Int("note", int(e.Note)), zap.Int("fret", fret))
		return false
	}
	if !m.guitar.SetPlayedFret(fret) {
		return false
	}
	m.plot.SetLineCursor(m.guitar.FretFreq())
	return true
}

// NullMIDIContext is a mockup MIDIContext if you don't want to create a real
// one.
type NullMIDIContext struct{}

func (m NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (m NullMIDIContext) Close()                                        {}
func (m NullMIDIContext) Support() MIDISupport                          { return MIDISupportNotCompiled }
