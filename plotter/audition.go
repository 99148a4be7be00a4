package plotter

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/pickupplot/pickupplot"
	"github.com/viterin/vek/vek32"
)

type (
	// AudioSink plays interleaved stereo float32 samples at AuditionSampleRate.
	// Play must not block until the sound has finished.
	AudioSink interface {
		Play(samples []float32) error
	}

	// AuditionSettings control how the played note is rendered.
	AuditionSettings struct {
		SampleRate int
		Length     float64 // seconds
		Decay      float64 // time constant of the exponential decay, seconds
		Peak       float32 // peak level after normalization
		TableSize  int     // samples in one period of the wavetable, a power of two
	}
)

const (
	AuditionSampleRate = 44100
	maxAuditionFreq    = 20000.0
)

func DefaultAuditionSettings() AuditionSettings {
	return AuditionSettings{
		SampleRate: AuditionSampleRate,
		Length:     1.5,
		Decay:      0.4,
		Peak:       0.8,
		TableSize:  4096,
	}
}

// Wavetable returns one period of the note played at the current fret, as
// heard through the pickups: harmonic k of the fundamental gets the amplitude
// ResponseAt(k*f)/k, i.e. the spectrum of an ideal plucked string filtered by
// the pickups. Harmonics at or above 20 kHz or the Nyquist frequency are left
// out. The table is synthesized with an inverse FFT.
func Wavetable(g *pickupplot.Guitar, s AuditionSettings) []float32 {
	n := s.TableSize
	f0 := g.FretFreq()
	limit := min(maxAuditionFreq, float64(s.SampleRate)/2)
	spectrum := make([]complex128, n)
	for k := 1; k < n/2 && float64(k)*f0 < limit; k++ {
		a := g.ResponseAt(float64(k)*f0) / float64(k)
		// a sine of amplitude a in bins k and n-k
		spectrum[k] = complex(0, -a*float64(n)/2)
		spectrum[n-k] = complex(0, a*float64(n)/2)
	}
	wave := fft.IFFT(spectrum)
	table := make([]float32, n)
	for i, c := range wave {
		table[i] = float32(real(c))
	}
	return table
}

// RenderAudition renders the note played at the current fret as interleaved
// stereo samples, decaying exponentially and normalized to s.Peak. A guitar
// with a silent response renders silence.
func RenderAudition(g *pickupplot.Guitar, s AuditionSettings) []float32 {
	table := Wavetable(g, s)
	frames := int(s.Length * float64(s.SampleRate))
	if frames <= 0 {
		return nil
	}
	mono := make([]float32, frames)
	step := g.FretFreq() * float64(len(table)) / float64(s.SampleRate)
	phase := 0.0
	for i := range mono {
		j := int(phase)
		frac := float32(phase - float64(j))
		a, b := table[j], table[(j+1)%len(table)]
		env := math.Exp(-float64(i) / float64(s.SampleRate) / s.Decay)
		mono[i] = (a + (b-a)*frac) * float32(env)
		phase = math.Mod(phase+step, float64(len(table)))
	}
	if peak := max(vek32.Max(mono), -vek32.Min(mono)); peak > 0 {
		vek32.MulNumber_Inplace(mono, s.Peak/peak)
	}
	out := make([]float32, 2*frames)
	for i, v := range mono {
		out[2*i] = v
		out[2*i+1] = v
	}
	return out
}

// Audition renders the played note and hands it to the audio sink.
func (m *Model) Audition() Action { return MakeAction((*audition)(m)) }

type audition Model

func (m *audition) Enabled() bool { return m.audio != nil }

func (m *audition) Do() {
	buf := RenderAudition(m.guitar, m.auditionSettings)
	if err := m.audio.Play(buf); err != nil {
		(*Model)(m).reportError("cannot play the note", err)
	}
}
