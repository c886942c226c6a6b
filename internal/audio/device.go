// Package audio synthesizes the fight's sound cues and routes them to a
// lazily opened output.
package audio

import (
	"fmt"
	"log"

	"github.com/gopxl/beep"
)

// Output is somewhere a finished stream can be played
type Output interface {
	Play(s beep.Streamer)
}

// Opener creates the platform output. Called at most once per successful activation.
type Opener func(rate beep.SampleRate) (Output, error)

// Device defers opening the output until the first user gesture and plays
// cues through it. Cues before activation are dropped.
type Device struct {
	rate   beep.SampleRate
	volume float64
	open   Opener
	out    Output
}

// NewDevice creates an inactive device
func NewDevice(rate int, volume float64, open Opener) *Device {
	return &Device{
		rate:   beep.SampleRate(rate),
		volume: volume,
		open:   open,
	}
}

// Activate opens the output. Safe to call repeatedly.
func (d *Device) Activate() error {
	if d.out != nil {
		return nil
	}
	if d.open == nil {
		return fmt.Errorf("audio: no output configured")
	}
	out, err := d.open(d.rate)
	if err != nil {
		return fmt.Errorf("audio: open output at %d Hz: %w", int(d.rate), err)
	}
	d.out = out
	log.Printf("audio: active at %d Hz", int(d.rate))
	return nil
}

// Sweeper is an Output that holds per-cue resources until told to release
// the finished ones
type Sweeper interface {
	Sweep()
}

// Active reports whether cues will be heard. A nil device is silent.
func (d *Device) Active() bool {
	return d != nil && d.out != nil
}

// SampleRate is the synthesis rate
func (d *Device) SampleRate() beep.SampleRate {
	return d.rate
}

// Play synthesizes a cue; silently skipped until activation
func (d *Device) Play(c Cue) {
	if !d.Active() {
		return
	}
	s := Build(c, d.rate, d.volume)
	if s == nil {
		return
	}
	d.out.Play(s)
}

// Sweep releases finished cues on outputs that keep them around
func (d *Device) Sweep() {
	if !d.Active() {
		return
	}
	if sw, ok := d.out.(Sweeper); ok {
		sw.Sweep()
	}
}
