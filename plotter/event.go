package plotter

import "image"

type (
	// Event is a single input to the Model. Frontends translate their own
	// pointer, keyboard and widget events into Events and pass them to
	// Model.Dispatch.
	Event struct {
		Kind   EventKind
		Target Target
		Pickup int         // index of the pickup, for the pickup row targets
		Pos    image.Point // pointer position relative to the guitar display
		Value  float64     // ValueChanged: level in dB, or polarity +1/-1
		Text   string      // TextChanged, TextCommitted
	}

	EventKind int

	// Target is the control or display an Event is aimed at.
	Target int
)

const (
	PointerDown EventKind = iota
	PointerDrag
	PointerUp
	ValueChanged  // level control moved, polarity chosen
	TextChanged   // a keystroke in a text field
	TextCommitted // enter pressed or focus lost
	Activated     // button pressed
)

const (
	TargetGuitarDisplay Target = iota
	TargetFretCount
	TargetStringOpenFreq
	TargetScaleLength
	TargetAddPickup
	TargetAudition
	TargetMIDIInput
	TargetPickupPosition
	TargetPickupWidth
	TargetPickupLevel
	TargetPickupLevelControl
	TargetPickupPolarity
	TargetRemovePickup
)

var targetNames = [...]string{
	"guitar display", "fret count", "open string frequency", "scale length",
	"add pickup", "audition", "MIDI input", "pickup position", "pickup width",
	"pickup level", "pickup level control", "pickup polarity", "remove pickup",
}

func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return "unknown"
	}
	return targetNames[t]
}

// IsPickupTarget reports whether the target is a control on a pickup row, in
// which case Event.Pickup selects the row.
func (t Target) IsPickupTarget() bool { return t >= TargetPickupPosition }
