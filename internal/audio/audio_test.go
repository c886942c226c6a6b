package audio

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never drained")
	return nil
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueHit, 100 * time.Millisecond},
		{CueDefeat, 600 * time.Millisecond},
		{CueVictory, 900 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			if got := Length(tt.cue); got != tt.want {
				t.Fatalf("Length = %v, want %v", got, tt.want)
			}
			samples := drain(t, Build(tt.cue, testRate, 1))
			want := testRate.N(tt.want)
			if d := len(samples) - want; d < -2 || d > 2 {
				t.Fatalf("streamed %d samples, want about %d", len(samples), want)
			}
		})
	}
}

func TestCueVoices(t *testing.T) {
	hit := Voices(CueHit)
	if len(hit) != 1 || hit[0].Wave != WaveTriangle || hit[0].Freq.Ramp != RampExponential {
		t.Fatalf("hit voices = %+v", hit)
	}
	defeat := Voices(CueDefeat)
	if len(defeat) != 1 || defeat[0].Wave != WaveSaw || defeat[0].Freq.To != 20 {
		t.Fatalf("defeat voices = %+v", defeat)
	}
	victory := Voices(CueVictory)
	if len(victory) != 5 {
		t.Fatalf("victory has %d notes, want 5", len(victory))
	}
	for i, v := range victory {
		if v.Wave != WaveSquare {
			t.Errorf("note %d wave = %v, want square", i, v.Wave)
		}
		if v.Start != time.Duration(i)*VictoryNoteGap {
			t.Errorf("note %d starts at %v", i, v.Start)
		}
		if i > 0 && v.Freq.From <= victory[i-1].Freq.From {
			t.Errorf("note %d does not ascend", i)
		}
	}
	if Voices(Cue(99)) != nil || Build(Cue(99), testRate, 1) != nil {
		t.Fatal("unknown cue produced voices")
	}
}

func TestHitEnvelopeFadesOut(t *testing.T) {
	samples := drain(t, Build(CueHit, testRate, 1))
	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	n := len(samples)
	head, tail := peak(0, n/4), peak(3*n/4, n)
	if head > 0.3+1e-9 {
		t.Fatalf("head peak %f exceeds start gain", head)
	}
	if tail >= head {
		t.Fatalf("tail peak %f not below head peak %f", tail, head)
	}
}

func TestVictoryLeadingSilence(t *testing.T) {
	v := Voices(CueVictory)[4]
	samples := drain(t, v.Streamer(testRate))
	silent := testRate.N(v.Start)
	for i := 0; i < silent; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d = %f during leading silence", i, samples[i][0])
		}
	}
	if samples[silent+10][0] == 0 {
		t.Fatal("note did not start after its offset")
	}
}

func TestParamRamps(t *testing.T) {
	lin := Param{From: 100, To: 20}
	if got := lin.at(0.5); got != 60 {
		t.Fatalf("linear midpoint = %f, want 60", got)
	}
	exp := Param{From: 160, To: 40, Ramp: RampExponential}
	if got := exp.at(0.5); math.Abs(got-80) > 1e-9 {
		t.Fatalf("exponential midpoint = %f, want 80", got)
	}
	// exponential to zero falls back to linear
	z := Param{From: 0.3, To: 0, Ramp: RampExponential}
	if got := z.at(1); got != 0 {
		t.Fatalf("exponential-to-zero end = %f", got)
	}
}

func TestWaveRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveTriangle, WaveSaw, WaveSquare} {
		for i := 0; i < 100; i++ {
			v := waveAt(w, float64(i)/100)
			if v < -1 || v > 1 {
				t.Fatalf("wave %d at phase %d = %f", w, i, v)
			}
		}
	}
}

func TestPCMReaderEncodes(t *testing.T) {
	r := NewPCMReader(Build(CueHit, testRate, 1))
	var data []byte
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	want := testRate.N(HitDuration) * bytesPerFrame
	if d := len(data) - want; d < -8 || d > 8 {
		t.Fatalf("read %d bytes, want about %d", len(data), want)
	}
	if len(data)%bytesPerFrame != 0 {
		t.Fatalf("partial frame in %d bytes", len(data))
	}
	// left and right channels carry the same mono voice
	for i := 0; i+3 < len(data); i += bytesPerFrame {
		if data[i] != data[i+2] || data[i+1] != data[i+3] {
			t.Fatalf("channels differ at frame %d", i/bytesPerFrame)
		}
	}
}

func TestToInt16Clips(t *testing.T) {
	if toInt16(2) != 32767 || toInt16(-2) != -32767 || toInt16(0) != 0 {
		t.Fatal("toInt16 does not clip to full scale")
	}
}

type recordingOutput struct {
	played int
}

func (o *recordingOutput) Play(s beep.Streamer) { o.played++ }

func TestDeviceLazyActivation(t *testing.T) {
	out := &recordingOutput{}
	opens := 0
	d := NewDevice(44100, 0.5, func(rate beep.SampleRate) (Output, error) {
		opens++
		if rate != testRate {
			t.Errorf("opened at %d Hz", rate)
		}
		return out, nil
	})

	d.Play(CueHit)
	if out.played != 0 || opens != 0 {
		t.Fatal("cue played before activation")
	}
	if d.Active() {
		t.Fatal("device active before activation")
	}

	for i := 0; i < 3; i++ {
		if err := d.Activate(); err != nil {
			t.Fatalf("Activate: %v", err)
		}
	}
	if opens != 1 {
		t.Fatalf("output opened %d times, want 1", opens)
	}

	d.Play(CueHit)
	d.Play(CueVictory)
	if out.played != 2 {
		t.Fatalf("played %d cues, want 2", out.played)
	}
}

func TestDeviceActivationFailure(t *testing.T) {
	boom := errors.New("no sound card")
	d := NewDevice(44100, 1, func(beep.SampleRate) (Output, error) { return nil, boom })

	err := d.Activate()
	if !errors.Is(err, boom) {
		t.Fatalf("Activate error = %v, want wrapped %v", err, boom)
	}
	if d.Active() {
		t.Fatal("device active after failed open")
	}
	d.Play(CueDefeat) // must not panic

	if err := NewDevice(44100, 1, nil).Activate(); err == nil {
		t.Fatal("Activate without opener succeeded")
	}
}

func TestNilDeviceIsSilent(t *testing.T) {
	var d *Device
	if d.Active() {
		t.Fatal("nil device reports active")
	}
	d.Play(CueHit)
	d.Play(CueVictory)
	d.Sweep()
}

type sweepingOutput struct {
	recordingOutput
	sweeps int
}

func (o *sweepingOutput) Sweep() { o.sweeps++ }

func TestDeviceSweep(t *testing.T) {
	out := &sweepingOutput{}
	d := NewDevice(44100, 1, func(beep.SampleRate) (Output, error) { return out, nil })

	d.Sweep()
	if out.sweeps != 0 {
		t.Fatal("swept before activation")
	}
	if err := d.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	d.Sweep()
	if out.sweeps != 1 {
		t.Fatalf("sweeps = %d, want 1", out.sweeps)
	}

	// outputs without per-cue resources are left alone
	plain := NewDevice(44100, 1, func(beep.SampleRate) (Output, error) { return &recordingOutput{}, nil })
	if err := plain.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	plain.Sweep()
}
