package plotter

import (
	"slices"
	"time"
)

type (
	// Alerts is a list of messages shown to the user for a while, e.g. when a
	// MIDI device cannot be opened. Alerts with a Name replace any earlier
	// alert with the same name.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	warningAlertDuration = 10 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

func (m *Model) Alerts() *Alerts { return &m.alerts }

// Update advances the clock of the alerts by d, fading in new ones and
// removing expired ones. Returns true while something is still animating.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	for i := len(m.alerts) - 1; i >= 0; i-- {
		a := &m.alerts[i]
		if a.Duration >= d {
			a.Duration -= d
			if a.FadeLevel < 1 {
				animating = true
				a.FadeLevel = min(a.FadeLevel+float64(d)/float64(alertFadeTime), 1)
			}
			continue
		}
		a.Duration = 0
		a.FadeLevel -= float64(d) / float64(alertFadeTime)
		if a.FadeLevel <= 0 {
			m.alerts = slices.Delete(m.alerts, i, i+1)
			continue
		}
		animating = true
	}
	return
}

// Iterate yields the alerts in priority order, highest last.
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			return
		}
	}
}

func (m *Alerts) Len() int { return len(m.alerts) }

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				m.sort()
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
	m.sort()
}

func (m *Alerts) sort() {
	slices.SortStableFunc(m.alerts, func(a, b Alert) int { return int(a.Priority) - int(b.Priority) })
}
