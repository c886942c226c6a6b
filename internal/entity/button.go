package entity

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shake animation
const (
	shakeAmplitude = 4.0
	shakeSpeed     = 1.7 // radians per tick
)

// Button is a centered, clickable label drawn with vector shapes
type Button struct {
	Label      string
	X, Y       float64 // center
	W, H       float64 // unscaled size
	Scale      float64
	Fill, Edge color.RGBA
	Text       color.Color

	Shaking     bool
	tickCounter int
}

// NewButton creates a button of the given size
func NewButton(label string, w, h float64, fill, edge color.RGBA) *Button {
	return &Button{
		Label: label,
		W:     w,
		H:     h,
		Scale: 1,
		Fill:  fill,
		Edge:  edge,
		Text:  color.White,
	}
}

// Update advances the shake animation
func (b *Button) Update() {
	if !b.Shaking {
		b.tickCounter = 0
		return
	}
	b.tickCounter++
}

// Offset is the current horizontal shake displacement
func (b *Button) Offset() float64 {
	if !b.Shaking {
		return 0
	}
	return math.Sin(float64(b.tickCounter)*shakeSpeed) * shakeAmplitude
}

// Bounds returns the scaled rectangle as x, y, w, h
func (b *Button) Bounds() (float64, float64, float64, float64) {
	w, h := b.W*b.Scale, b.H*b.Scale
	return b.X - w/2 + b.Offset(), b.Y - h/2, w, h
}

// Contains hit-tests a pointer position against the scaled rectangle
func (b *Button) Contains(px, py float64) bool {
	x, y, w, h := b.Bounds()
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// Draw renders the button with its label centered
func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	x, y, w, h := b.Bounds()
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	vector.DrawFilledRect(screen, fx, fy, fw, fh, b.Fill, true)
	vector.StrokeRect(screen, fx, fy, fw, fh, 2, b.Edge, true)

	op := &text.DrawOptions{}
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(x+w/2, y+h/2)
	op.ColorScale.ScaleWithColor(b.Text)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, b.Label, face, op)
}
