package audio

import (
	"io"

	"github.com/gopxl/beep"
)

const bytesPerFrame = 4 // 16-bit little-endian, two channels

// PCMReader exposes a beep stream as signed 16-bit stereo PCM, the format
// ebiten's audio players consume
type PCMReader struct {
	s   beep.Streamer
	buf [][2]float64
	eof bool
}

// NewPCMReader wraps a stream
func NewPCMReader(s beep.Streamer) *PCMReader {
	return &PCMReader{s: s}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.s.Stream(buf)
	if !ok || n == 0 {
		r.eof = true
		if err := r.s.Err(); err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
	}

	for i := 0; i < n; i++ {
		l := toInt16(buf[i][0])
		rr := toInt16(buf[i][1])
		p[i*4] = byte(l)
		p[i*4+1] = byte(l >> 8)
		p[i*4+2] = byte(rr)
		p[i*4+3] = byte(rr >> 8)
	}
	return n * bytesPerFrame, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
