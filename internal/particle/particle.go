package particle

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind selects the particle shape
type Kind int

const (
	Confetti Kind = iota
	Heart
)

func (k Kind) String() string {
	if k == Heart {
		return "heart"
	}
	return "confetti"
}

// --- Tuning ---
const (
	SpreadX   = 15.0 // horizontal launch range, centered on zero
	LaunchY   = 10.0 // vertical launch scale; mean impulse is -1.5*LaunchY
	Gravity   = 0.2
	LifeStep  = 0.01 // ~100 frames from spawn to removal
	MinSize   = 3.0
	SizeRange = 5.0
)

// HeartColor is the fixed fill for hearts (#ff4d6d)
var HeartColor = color.RGBA{0xff, 0x4d, 0x6d, 0xff}

// Particle is one confetti square or heart glyph
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  color.RGBA
	Size   float64
	Kind   Kind
}

// Rect is a filled square in viewport pixels
type Rect struct {
	X, Y, W, H float64
}

// New launches a particle from (x, y) with a random upward/lateral impulse
func New(x, y float64, kind Kind, rng *rand.Rand) Particle {
	p := Particle{
		X:    x,
		Y:    y,
		Kind: kind,
		VX:   (rng.Float64() - 0.5) * SpreadX,
		VY:   (rng.Float64() - 2) * LaunchY,
		Life: 1.0,
	}
	if kind == Heart {
		p.Color = HeartColor
	} else {
		r, g, b := colorful.Hsl(rng.Float64()*360, 1.0, 0.7).Clamped().RGB255()
		p.Color = color.RGBA{r, g, b, 0xff}
	}
	p.Size = rng.Float64()*SizeRange + MinSize
	return p
}

// Advance integrates one frame: move, fall, fade
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity
	p.Life -= LifeStep
}

// Dead reports whether the particle has exhausted its life
func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// Alpha is the draw opacity, proportional to remaining life
func (p *Particle) Alpha() float64 {
	switch {
	case p.Life <= 0:
		return 0
	case p.Life >= 1:
		return 1
	}
	return p.Life
}

// Rects returns the squares that make up the shape.
// A heart is three half-size squares: one at the anchor and two offset up-left and up-right.
func (p *Particle) Rects() []Rect {
	if p.Kind != Heart {
		return []Rect{{p.X, p.Y, p.Size, p.Size}}
	}
	s := p.Size / 2
	return []Rect{
		{p.X, p.Y, s, s},
		{p.X - s, p.Y - s, s, s},
		{p.X + s, p.Y - s, s, s},
	}
}

// Faded returns the fill color pre-multiplied by the current alpha
func (p *Particle) Faded() color.RGBA {
	a := p.Alpha()
	return color.RGBA{
		R: uint8(float64(p.Color.R) * a),
		G: uint8(float64(p.Color.G) * a),
		B: uint8(float64(p.Color.B) * a),
		A: uint8(255 * a),
	}
}
