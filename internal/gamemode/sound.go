package gamemode

import (
	"fmt"
	"log"

	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"bossfight/internal/audio"
)

// ebitenOutput plays finished cue streams through ebiten's audio context
type ebitenOutput struct {
	ctx     *ebaudio.Context
	players []*ebaudio.Player
}

// OpenEbitenAudio creates the process-wide ebiten audio context.
// ebiten allows one context per process, so an existing one is reused.
func OpenEbitenAudio(rate beep.SampleRate) (audio.Output, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(rate))
	} else if ctx.SampleRate() != int(rate) {
		return nil, fmt.Errorf("existing context runs at %d Hz", ctx.SampleRate())
	}
	return &ebitenOutput{ctx: ctx}, nil
}

func (o *ebitenOutput) Play(s beep.Streamer) {
	p, err := o.ctx.NewPlayer(audio.NewPCMReader(s))
	if err != nil {
		log.Printf("audio: new player: %v", err)
		return
	}
	p.Play()
	// Keep players referenced until they finish
	o.players = append(o.players, p)
}

// Sweep closes finished players
func (o *ebitenOutput) Sweep() {
	live := o.players[:0]
	for _, q := range o.players {
		if q.IsPlaying() {
			live = append(live, q)
		} else {
			q.Close()
		}
	}
	clear(o.players[len(live):])
	o.players = live
}
