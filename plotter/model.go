package plotter

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pickupplot/pickupplot"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

type (
	// Model owns the guitar and keeps the guitar display, the response plot
	// and the state of the parameter fields consistent with it. All input
	// arrives through Dispatch or ProcessMsg.
	Model struct {
		guitar  *pickupplot.Guitar
		display *GuitarDisplay
		plot    *ResponsePlot

		layout  LayoutConfig
		size    image.Point
		regions Regions

		fretCount      fieldState
		stringOpenFreq fieldState
		scaleLength    fieldState
		rows           []pickupRow

		freqs []float64

		alerts           Alerts
		broker           *Broker
		midi             midiState
		audio            AudioSink
		auditionSettings AuditionSettings
		log              *zap.Logger
	}

	pickupRow struct {
		position, width, level fieldState
	}

	// PickupRow is a snapshot of a pickup row of the control area.
	PickupRow struct {
		Number   int
		Color    color.NRGBA
		Position Field
		Width    Field
		Level    Field
		LevelDB  float64
		Polarity int
	}

	Option func(*Model)
)

// Range of the level control of the pickup rows, in dB. The level field
// accepts any finite value.
const (
	LevelControlMin = -40
	LevelControlMax = 0
)

func WithLogger(l *zap.Logger) Option { return func(m *Model) { m.log = l } }

func WithAudio(sink AudioSink) Option { return func(m *Model) { m.audio = sink } }

func WithMIDI(c MIDIContext) Option { return func(m *Model) { m.midi.context = c } }

func WithAuditionSettings(s AuditionSettings) Option {
	return func(m *Model) { m.auditionSettings = s }
}

// NewModel takes ownership of the guitar. Rows are created for any pickups
// the guitar already has.
func NewModel(broker *Broker, g *pickupplot.Guitar, layout LayoutConfig, opts ...Option) *Model {
	m := &Model{
		guitar:           g,
		display:          NewGuitarDisplay(g),
		plot:             NewResponsePlot(),
		layout:           layout,
		broker:           broker,
		auditionSettings: DefaultAuditionSettings(),
		log:              zap.NewNop(),
	}
	for _, o := range opts {
		o(m)
	}
	m.fretCount.text = strconv.Itoa(g.FretCount)
	m.stringOpenFreq.text = FormatDecimal(g.StringOpenFreq)
	m.scaleLength.text = FormatDecimal(g.ScaleLength)
	for _, p := range g.Pickups {
		m.rows = append(m.rows, newPickupRow(p))
	}
	return m
}

func newPickupRow(p *pickupplot.Pickup) pickupRow {
	var r pickupRow
	r.sync(p)
	return r
}

// sync resets the texts of the row to the values of the pickup.
func (r *pickupRow) sync(p *pickupplot.Pickup) {
	r.position = fieldState{text: FormatDecimal(p.Position)}
	r.width = fieldState{text: FormatDecimal(p.Width)}
	r.level = fieldState{text: FormatDecimal(p.LevelDB)}
}

func (m *Model) Broker() *Broker                { return m.broker }
func (m *Model) GuitarDisplay() *GuitarDisplay  { return m.display }
func (m *Model) ResponsePlot() *ResponsePlot    { return m.plot }
func (m *Model) Regions() Regions               { return m.regions }
func (m *Model) LayoutConfig() LayoutConfig     { return m.layout }
func (m *Model) PickupCount() int               { return len(m.rows) }
func (m *Model) PlayedFret() int                { return m.guitar.PlayedFret }
func (m *Model) FretFreq() float64              { return m.guitar.FretFreq() }
func (m *Model) ResponseAt(freq float64) float64 { return m.guitar.ResponseAt(freq) }

func (m *Model) PickupRow(i int) (row PickupRow, ok bool) {
	if i < 0 || i >= len(m.rows) {
		return PickupRow{}, false
	}
	p, r := m.guitar.Pickups[i], &m.rows[i]
	return PickupRow{
		Number:   p.Number,
		Color:    p.Color,
		Position: r.position.field(),
		Width:    r.width.field(),
		Level:    r.level.field(),
		LevelDB:  p.LevelDB,
		Polarity: p.Polarity,
	}, true
}

// Field returns the state of a text field. pickup is ignored for the fields
// of the control panel.
func (m *Model) Field(t Target, pickup int) Field {
	if f := m.fieldState(t, pickup); f != nil {
		return f.field()
	}
	return Field{}
}

func (m *Model) fieldState(t Target, pickup int) *fieldState {
	switch t {
	case TargetFretCount:
		return &m.fretCount
	case TargetStringOpenFreq:
		return &m.stringOpenFreq
	case TargetScaleLength:
		return &m.scaleLength
	}
	if !t.IsPickupTarget() || pickup < 0 || pickup >= len(m.rows) {
		return nil
	}
	switch t {
	case TargetPickupPosition:
		return &m.rows[pickup].position
	case TargetPickupWidth:
		return &m.rows[pickup].width
	case TargetPickupLevel:
		return &m.rows[pickup].level
	}
	return nil
}

// Resize lays out the window and resizes the displays. The plot is
// regenerated if either display changed size.
func (m *Model) Resize(w, h int) {
	m.size = image.Pt(w, h)
	m.relayout()
}

func (m *Model) relayout() {
	m.regions = m.layout.Layout(m.size.X, m.size.Y, len(m.rows))
	resized := false
	if s := m.regions.Guitar.Size(); s != m.display.Size() {
		m.display.SetSize(s.X, s.Y)
		resized = true
	}
	if s := m.regions.Plot.Size(); s != m.plot.Size() {
		m.plot.SetSize(s.X, s.Y)
		resized = true
	}
	if resized {
		m.UpdateDisplay()
	}
}

// UpdateDisplay pushes the guitar state to the response plot and resamples
// the response curve.
func (m *Model) UpdateDisplay() {
	m.plot.SetBar(m.guitar.StringOpenFreq, m.guitar.FretCount)
	m.plot.SetLineCursor(m.guitar.FretFreq())
	m.GeneratePlot()
}

// GeneratePlot samples the response of the guitar at one geometrically spaced
// frequency per pixel column of the plot, from FMin to FMax.
func (m *Model) GeneratePlot() {
	m.plot.ClearPlot()
	n := m.plot.PlotPointCount()
	switch {
	case n == 0:
		return
	case n == 1:
		m.freqs = append(m.freqs[:0], FMin)
	default:
		if cap(m.freqs) < n {
			m.freqs = make([]float64, n)
		}
		m.freqs = floats.LogSpan(m.freqs[:n], FMin, FMax)
	}
	for i, f := range m.freqs {
		m.plot.SetPlotPoint(i, f, m.guitar.ResponseAt(f))
	}
}

// Dispatch applies an input event to the model. It returns true if anything
// visible changed, i.e. the frontend should redraw.
func (m *Model) Dispatch(e Event) bool {
	switch e.Kind {
	case PointerDown:
		if e.Target == TargetGuitarDisplay {
			m.display.PointerDown(e.Pos)
		}
		return false
	case PointerDrag:
		if e.Target != TargetGuitarDisplay {
			return false
		}
		switch m.display.PointerDrag(e.Pos) {
		case DragPickup:
			_, p := m.display.Dragging()
			// the other fields of the row may hold text the user is editing
			m.rows[p.Number-1].position = fieldState{text: FormatDecimal(p.Position)}
			m.UpdateDisplay()
			return true
		case DragString:
			// the response does not depend on the played fret
			m.plot.SetLineCursor(m.guitar.FretFreq())
			return true
		}
		return false
	case PointerUp:
		m.display.PointerUp()
		return false
	case TextChanged:
		return m.setText(e.Target, e.Pickup, e.Text)
	case TextCommitted:
		m.setText(e.Target, e.Pickup, e.Text)
		m.commit(e.Target, e.Pickup)
		return true
	case ValueChanged:
		return m.setValue(e.Target, e.Pickup, e.Value)
	case Activated:
		var a Action
		switch e.Target {
		case TargetAddPickup:
			a = m.AddPickup()
		case TargetAudition:
			a = m.Audition()
		case TargetMIDIInput:
			a = m.NextMIDIInput()
		case TargetRemovePickup:
			a = m.RemovePickup(e.Pickup)
		default:
			return false
		}
		if !a.Enabled() {
			return false
		}
		a.Do()
		return true
	}
	return false
}

// setText stores the text of a field and, if it parses and is in range,
// applies it to the guitar. Invalid text leaves the guitar untouched and marks
// the field invalid until the next valid text.
func (m *Model) setText(t Target, pickup int, text string) bool {
	f := m.fieldState(t, pickup)
	if f == nil {
		return false
	}
	f.text = text
	changed, err := m.applyText(t, pickup, text)
	f.err = err
	if err != nil {
		m.log.Debug("rejected parameter", zap.Stringer("field", t), zap.String("text", text), zap.Error(err))
		return true
	}
	if changed {
		m.log.Debug("parameter changed", zap.Stringer("field", t), zap.String("text", text))
	}
	return true
}

func (m *Model) applyText(t Target, pickup int, text string) (changed bool, err error) {
	if t == TargetFretCount {
		v, err := parseInt(text)
		if err != nil {
			return false, err
		}
		if changed, err = m.guitar.SetFretCount(v); changed {
			m.display.InvalidateStatic()
			m.UpdateDisplay()
		}
		return changed, err
	}
	v, err := parseFloat(text)
	if err != nil {
		return false, err
	}
	switch t {
	case TargetStringOpenFreq:
		changed, err = m.guitar.SetStringOpenFreq(v)
	case TargetScaleLength:
		if changed, err = m.guitar.SetScaleLength(v); changed {
			m.display.InvalidateStatic()
		}
	case TargetPickupPosition:
		changed, err = m.guitar.Pickups[pickup].SetPosition(v)
	case TargetPickupWidth:
		changed, err = m.guitar.Pickups[pickup].SetWidth(v)
	case TargetPickupLevel:
		changed, err = m.guitar.Pickups[pickup].SetLevelDB(v)
	}
	if changed {
		m.UpdateDisplay()
	}
	return changed, err
}

// commit reformats a valid field canonically, e.g. "05.50" -> "5.5".
func (m *Model) commit(t Target, pickup int) {
	f := m.fieldState(t, pickup)
	if f == nil || f.err != nil {
		return
	}
	switch t {
	case TargetFretCount:
		f.text = strconv.Itoa(m.guitar.FretCount)
	case TargetStringOpenFreq:
		f.text = FormatDecimal(m.guitar.StringOpenFreq)
	case TargetScaleLength:
		f.text = FormatDecimal(m.guitar.ScaleLength)
	case TargetPickupPosition:
		f.text = FormatDecimal(m.guitar.Pickups[pickup].Position)
	case TargetPickupWidth:
		f.text = FormatDecimal(m.guitar.Pickups[pickup].Width)
	case TargetPickupLevel:
		f.text = FormatDecimal(m.guitar.Pickups[pickup].LevelDB)
	}
}

func (m *Model) setValue(t Target, pickup int, v float64) bool {
	if pickup < 0 || pickup >= len(m.rows) {
		return false
	}
	p := m.guitar.Pickups[pickup]
	var changed bool
	var err error
	switch t {
	case TargetPickupLevelControl:
		db := max(min(math.Round(v), LevelControlMax), LevelControlMin)
		if changed, err = p.SetLevelDB(db); changed {
			m.rows[pickup].level = fieldState{text: FormatDecimal(db)}
		}
	case TargetPickupPolarity:
		changed, err = p.SetPolarity(int(v))
	default:
		return false
	}
	if err != nil {
		m.log.Debug("rejected value", zap.Stringer("control", t), zap.Float64("value", v), zap.Error(err))
		return false
	}
	if changed {
		m.UpdateDisplay()
	}
	return changed
}

// AddPickup adds a pickup next to the existing ones, with a row of its own.
func (m *Model) AddPickup() Action { return MakeAction((*addPickup)(m)) }

type addPickup Model

func (m *addPickup) Do() {
	p := m.guitar.AddPickup()
	m.rows = append(m.rows, newPickupRow(p))
	m.log.Debug("added pickup", zap.Int("number", p.Number), zap.Float64("position", p.Position))
	(*Model)(m).relayout()
	(*Model)(m).UpdateDisplay()
}

// RemovePickup removes the i:th pickup and its row; the pickups after it are
// renumbered.
func (m *Model) RemovePickup(i int) Action {
	return MakeAction(&removePickup{m: m, index: i})
}

type removePickup struct {
	m     *Model
	index int
}

func (r *removePickup) Enabled() bool { return r.index >= 0 && r.index < len(r.m.rows) }

func (r *removePickup) Do() {
	m := r.m
	p := m.guitar.Pickups[r.index]
	if !m.guitar.RemovePickup(p) {
		return
	}
	m.rows = append(m.rows[:r.index], m.rows[r.index+1:]...)
	m.log.Debug("removed pickup", zap.Int("index", r.index))
	m.relayout()
	m.UpdateDisplay()
}

// PickupNegative is true when the i:th pickup has negative polarity.
func (m *Model) PickupNegative(i int) Bool {
	return MakeBool(&pickupNegative{m: m, index: i})
}

type pickupNegative struct {
	m     *Model
	index int
}

func (p *pickupNegative) Enabled() bool { return p.index >= 0 && p.index < len(p.m.rows) }
func (p *pickupNegative) Value() bool {
	return p.Enabled() && p.m.guitar.Pickups[p.index].Polarity < 0
}
func (p *pickupNegative) SetValue(v bool) {
	polarity := 1.0
	if v {
		polarity = -1
	}
	p.m.setValue(TargetPickupPolarity, p.index, polarity)
}

// ProcessMsg handles a message received through the Broker. Returns true if
// the frontend should redraw.
func (m *Model) ProcessMsg(msg MsgToModel) bool {
	switch e := msg.Data.(type) {
	case MIDINoteEvent:
		return m.handleNote(e)
	case Alert:
		m.alerts.AddAlert(e)
		return true
	}
	return false
}

// Warn logs err and shows it as a warning alert. A nil err is ignored.
func (m *Model) Warn(context string, err error) {
	if err == nil {
		return
	}
	m.log.Warn(context, zap.Error(err))
	m.alerts.AddAlert(Alert{
		Priority: Warning,
		Message:  fmt.Sprintf("%s: %v", context, err),
		Duration: warningAlertDuration,
	})
}

func (m *Model) reportError(context string, err error) {
	m.log.Error(context, zap.Error(err))
	m.alerts.Add(fmt.Sprintf("%s: %v", context, err), Error)
}

// Close closes the MIDI input and context.
func (m *Model) Close() {
	m.closeMIDIInput()
	if m.midi.context != nil {
		m.midi.context.Close()
	}
}

func parseFloat(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, pickupplot.ErrNotNumeric)
	}
	return v, nil
}

func parseInt(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, pickupplot.ErrNotNumeric)
	}
	return v, nil
}
