package plotter

type (
	// Enabler is implemented by the values behind an Action or a Bool that are
	// not always available, e.g. removing a pickup that no longer exists.
	Enabler interface {
		Enabled() bool
	}

	// Doer performs the work of an Action.
	Doer interface {
		Do()
	}

	// Action is a button-like operation on the model. The zero Action is
	// disabled.
	Action struct {
		doer Doer
	}

	// BoolValue is the model state behind a Bool.
	BoolValue interface {
		Value() bool
		SetValue(bool)
	}

	// Bool is a two-state control, like the polarity of a pickup. The zero Bool
	// is disabled and false.
	Bool struct {
		value BoolValue
	}
)

func enabled(v any) bool {
	if v == nil {
		return false
	}
	if e, ok := v.(Enabler); ok {
		return e.Enabled()
	}
	return true
}

func MakeAction(doer Doer) Action { return Action{doer: doer} }

func (a Action) Enabled() bool { return enabled(a.doer) }

// Do does nothing when the action is disabled.
func (a Action) Do() {
	if a.Enabled() {
		a.doer.Do()
	}
}

func MakeBool(value BoolValue) Bool { return Bool{value: value} }

func (v Bool) Enabled() bool { return enabled(v.value) }

func (v Bool) Value() bool { return v.value != nil && v.value.Value() }

func (v Bool) Toggle() { v.SetValue(!v.Value()) }

// SetValue reports whether the value changed; a disabled Bool never does.
func (v Bool) SetValue(value bool) (changed bool) {
	if !v.Enabled() || v.Value() == value {
		return false
	}
	v.value.SetValue(value)
	return true
}

// Field

// Field is a read-only snapshot of a numeric text field: the text as the user
// typed it and the error of its last validation. A nil Err means the text was
// accepted into the model.
type Field struct {
	Text string
	Err  error
}

func (f Field) Valid() bool { return f.Err == nil }

// fieldState is the mutable counterpart of Field kept by the Model.
type fieldState struct {
	text string
	err  error
}

func (f *fieldState) field() Field { return Field{Text: f.text, Err: f.err} }
