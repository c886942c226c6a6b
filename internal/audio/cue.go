package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names one of the synthesized sound effects
type Cue int

const (
	CueHit     Cue = iota // short triangle chirp down
	CueDefeat             // long sawtooth sweep down
	CueVictory            // five-note square arpeggio up
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueDefeat:
		return "defeat"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// Cue timings
const (
	HitDuration     = 100 * time.Millisecond
	DefeatDuration  = 600 * time.Millisecond
	VictoryNoteGap  = 100 * time.Millisecond
	VictoryNoteTail = 500 * time.Millisecond
)

// VictoryNotes is C5 E5 G5 C6 E6
var VictoryNotes = []float64{523.25, 659.25, 783.99, 1046.50, 1318.51}

// Voices returns the oscillator+envelope pairs making up a cue
func Voices(c Cue) []Voice {
	switch c {
	case CueHit:
		return []Voice{{
			Wave:     WaveTriangle,
			Freq:     Param{From: 150, To: 80, Ramp: RampExponential},
			Gain:     Param{From: 0.3, To: 0, Ramp: RampLinear},
			Duration: HitDuration,
		}}
	case CueDefeat:
		return []Voice{{
			Wave:     WaveSaw,
			Freq:     Param{From: 100, To: 20, Ramp: RampLinear},
			Gain:     Param{From: 0.2, To: 0, Ramp: RampLinear},
			Duration: DefeatDuration,
		}}
	case CueVictory:
		voices := make([]Voice, len(VictoryNotes))
		for i, freq := range VictoryNotes {
			voices[i] = Voice{
				Wave:     WaveSquare,
				Freq:     Param{From: freq, To: freq},
				Gain:     Param{From: 0.1, To: 0.0001, Ramp: RampExponential},
				Start:    time.Duration(i) * VictoryNoteGap,
				Duration: VictoryNoteTail,
			}
		}
		return voices
	}
	return nil
}

// Length is the time from cue start to the end of its last voice
func Length(c Cue) time.Duration {
	var end time.Duration
	for _, v := range Voices(c) {
		if e := v.Start + v.Duration; e > end {
			end = e
		}
	}
	return end
}

// Build mixes a cue's voices into one stream at the given master volume
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	voices := Voices(c)
	if len(voices) == 0 {
		return nil
	}
	streams := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		streams[i] = v.Streamer(rate)
	}
	if len(streams) == 1 {
		return newVolume(streams[0], volume)
	}
	return newVolume(beep.Mix(streams...), volume)
}
