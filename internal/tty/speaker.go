package tty

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"bossfight/internal/audio"
)

// speakerOutput mixes cue streams into the beep speaker
type speakerOutput struct {
	mixer *beep.Mixer
}

// OpenSpeaker initialises the speaker with a 100ms buffer
func OpenSpeaker(rate beep.SampleRate) (audio.Output, error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	m := &beep.Mixer{}
	speaker.Play(m)
	return &speakerOutput{mixer: m}, nil
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// CloseSpeaker releases the speaker if it was opened
func CloseSpeaker(dev *audio.Device) {
	if dev != nil && dev.Active() {
		speaker.Close()
	}
}
