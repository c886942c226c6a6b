package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSaw
	WaveSquare
)

// Ramp is how a parameter moves from its start to its end value
type Ramp int

const (
	RampLinear Ramp = iota
	RampExponential
)

// Param is a value ramped across a voice's duration
type Param struct {
	From, To float64
	Ramp     Ramp
}

// at evaluates the ramp at fraction f in [0, 1]
func (p Param) at(f float64) float64 {
	if p.Ramp == RampExponential && p.From > 0 && p.To > 0 {
		return p.From * math.Pow(p.To/p.From, f)
	}
	return p.From + (p.To-p.From)*f
}

// Voice is one oscillator+gain pair with explicit start and stop times
type Voice struct {
	Wave     Wave
	Freq     Param // Hz
	Gain     Param
	Start    time.Duration // offset from cue start
	Duration time.Duration
}

// voiceStreamer renders a Voice sample by sample
type voiceStreamer struct {
	v        Voice
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// Streamer renders the voice, including its leading silence
func (v Voice) Streamer(rate beep.SampleRate) beep.Streamer {
	tone := &voiceStreamer{v: v, rate: rate, total: rate.N(v.Duration)}
	if v.Start <= 0 {
		return tone
	}
	return beep.Seq(beep.Silence(rate.N(v.Start)), tone)
}

func (s *voiceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		f := float64(s.position) / float64(s.total)
		val := waveAt(s.v.Wave, s.phase) * s.v.Gain.at(f)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.v.Freq.at(f) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *voiceStreamer) Err() error { return nil }

// waveAt samples a unit-amplitude waveform at phase in [0, 1)
func waveAt(w Wave, phase float64) float64 {
	switch w {
	case WaveTriangle:
		switch {
		case phase < 0.25:
			return 4 * phase
		case phase < 0.75:
			return 2 - 4*phase
		default:
			return 4*phase - 4
		}
	case WaveSaw:
		if phase < 0.5 {
			return 2 * phase
		}
		return 2*phase - 2
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// newVolume scales a stream linearly.
// math.Log2(0) is -Inf, so zero volume becomes a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
