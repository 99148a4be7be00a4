package gioui

import (
	"image"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/pickupplot/pickupplot/plotter"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	// ControlPanel holds the widgets of the guitar parameters and the
	// buttons below them.
	ControlPanel struct {
		FretCount      *NumberEditor
		StringOpenFreq *NumberEditor
		ScaleLength    *NumberEditor
		AddPickup      ButtonState
		Audition       ButtonState
		MIDIInput      ButtonState
	}

	// PickupRowState holds the widgets of one row of the pickup table. Rows
	// are matched to pickups by index, so removing a pickup shifts the
	// widgets of the following rows up; the editors resync their text from
	// the model when not focused.
	PickupRowState struct {
		Position     *NumberEditor
		Width        *NumberEditor
		Level        *NumberEditor
		LevelControl widget.Float
		Polarity     ButtonState
		Remove       ButtonState
	}
)

var headingLines = [7][2]string{
	{"Pickup", "number"},
	{"Position", "(inches)"},
	{"Width", "(inches)"},
	{"Level", "(dB)"},
	{"Level", "control"},
	{"Polarity", ""},
	{"", ""},
}

func NewControlPanel() *ControlPanel {
	return &ControlPanel{
		FretCount:      NewNumberEditor(),
		StringOpenFreq: NewNumberEditor(),
		ScaleLength:    NewNumberEditor(),
	}
}

func NewPickupRowState() *PickupRowState {
	return &PickupRowState{
		Position: NewNumberEditor(),
		Width:    NewNumberEditor(),
		Level:    NewNumberEditor(),
	}
}

// inRect lays out w with its constraints fixed to r.
func inRect(gtx C, r image.Rectangle, w layout.Widget) D {
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	return w(gtx)
}

func (p *ControlPanel) Update(gtx C, m *plotter.Model) (changed bool) {
	changed = p.FretCount.Update(gtx, m, plotter.TargetFretCount, 0) || changed
	changed = p.StringOpenFreq.Update(gtx, m, plotter.TargetStringOpenFreq, 0) || changed
	changed = p.ScaleLength.Update(gtx, m, plotter.TargetScaleLength, 0) || changed
	changed = p.AddPickup.Update(gtx, m, plotter.TargetAddPickup, 0) || changed
	changed = p.Audition.Update(gtx, m, plotter.TargetAudition, 0) || changed
	changed = p.MIDIInput.Update(gtx, m, plotter.TargetMIDIInput, 0) || changed
	return changed
}

func (p *ControlPanel) Layout(gtx C, th *Theme, m *plotter.Model) D {
	field := func(name string, e *NumberEditor, target plotter.Target) layout.FlexChild {
		return layout.Flexed(1, func(gtx C) D {
			return layout.Inset{Bottom: 2}.Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, Label(th, &th.Label, name).Layout),
					layout.Rigid(func(gtx C) D {
						gtx.Constraints = layout.Exact(image.Pt(70, gtx.Constraints.Max.Y))
						return e.Layout(gtx, th, m.Field(target, 0))
					}),
				)
			})
		})
	}
	buttons := layout.Flexed(1, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(TextButton(th, &p.AddPickup, "Add pickup", "", m.AddPickup().Enabled())),
			layout.Rigid(IconButton(th, &p.Audition, icons.AVPlayArrow, "Play the note at the played fret", m.Audition().Enabled())),
			layout.Rigid(TextButton(th, &p.MIDIInput, "MIDI: "+m.MIDIInputName(), "Switch the MIDI input", m.NextMIDIInput().Enabled())),
		)
	})
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		field("Number of frets", p.FretCount, plotter.TargetFretCount),
		field("Open string frequency (Hz)", p.StringOpenFreq, plotter.TargetStringOpenFreq),
		field("Scale length (inches)", p.ScaleLength, plotter.TargetScaleLength),
		buttons,
	)
}

// LayoutHeading draws the column titles of the pickup table.
func LayoutHeading(gtx C, th *Theme, columns plotter.PickupColumns) D {
	size := gtx.Constraints.Max
	cols := columns.Split(image.Rectangle{Max: size})
	for i, lines := range headingLines {
		inRect(gtx, cols[i], func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Flexed(1, centered(th, &th.Heading, lines[0])),
				layout.Flexed(1, centered(th, &th.Heading, lines[1])),
			)
		})
	}
	return D{Size: size}
}

func centered(th *Theme, style *LabelStyle, txt string) layout.Widget {
	l := Label(th, style, txt)
	l.Alignment = layout.Center
	return func(gtx C) D {
		gtx.Constraints.Min = gtx.Constraints.Max
		return l.Layout(gtx)
	}
}

func (r *PickupRowState) Update(gtx C, m *plotter.Model, i int) (changed bool) {
	changed = r.Position.Update(gtx, m, plotter.TargetPickupPosition, i) || changed
	changed = r.Width.Update(gtx, m, plotter.TargetPickupWidth, i) || changed
	changed = r.Level.Update(gtx, m, plotter.TargetPickupLevel, i) || changed
	if r.LevelControl.Update(gtx) {
		db := plotter.LevelControlMin + float64(r.LevelControl.Value)*(plotter.LevelControlMax-plotter.LevelControlMin)
		changed = m.Dispatch(plotter.Event{Kind: plotter.ValueChanged, Target: plotter.TargetPickupLevelControl, Pickup: i, Value: db}) || changed
	}
	for r.Polarity.Clickable.Clicked(gtx) {
		if negative := m.PickupNegative(i); negative.Enabled() {
			negative.Toggle()
			changed = true
		}
	}
	// removal last, the row is gone afterwards
	changed = r.Remove.Update(gtx, m, plotter.TargetRemovePickup, i) || changed
	return changed
}

func (r *PickupRowState) Layout(gtx C, th *Theme, m *plotter.Model, i int, columns plotter.PickupColumns) D {
	row, ok := m.PickupRow(i)
	if !ok {
		return D{}
	}
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, row.Color, clip.Rect(image.Rectangle{Max: size}).Op())
	if !r.LevelControl.Dragging() {
		v := (row.LevelDB - plotter.LevelControlMin) / (plotter.LevelControlMax - plotter.LevelControlMin)
		r.LevelControl.Value = float32(max(min(v, 1), 0))
	}
	polarity := "positive"
	if m.PickupNegative(i).Value() {
		polarity = "negative"
	}
	cols := columns.Split(image.Rectangle{Max: size})
	pad := layout.Inset{Left: 1, Right: 1, Top: 1, Bottom: 1}
	cells := [7]layout.Widget{
		centered(th, &th.Label, strconv.Itoa(row.Number)),
		func(gtx C) D { return r.Position.Layout(gtx, th, row.Position) },
		func(gtx C) D { return r.Width.Layout(gtx, th, row.Width) },
		func(gtx C) D { return r.Level.Layout(gtx, th, row.Level) },
		func(gtx C) D {
			s := material.Slider(&th.Material, &r.LevelControl)
			s.Color = th.Slider.Color
			s.FingerSize = unit.Dp(gtx.Constraints.Max.Y)
			return s.Layout(gtx)
		},
		TextButton(th, &r.Polarity, polarity, "Flip the polarity", m.PickupNegative(i).Enabled()),
		IconButton(th, &r.Remove, icons.ActionDelete, "Remove the pickup", m.RemovePickup(i).Enabled()),
	}
	for c, w := range cells {
		inRect(gtx, cols[c], func(gtx C) D {
			return pad.Layout(gtx, func(gtx C) D {
				return layout.Center.Layout(gtx, w)
			})
		})
	}
	return D{Size: size}
}
