package gamemode

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bossfight/internal/audio"
	"bossfight/internal/entity"
	"bossfight/internal/particle"
	"bossfight/internal/session"
)

// --- Colors ---
var (
	ColBg         = color.RGBA{0x12, 0x0c, 0x1c, 0xff}
	ColNo         = color.RGBA{0x3a, 0x3a, 0x48, 0xff}
	ColNoEdge     = color.RGBA{0x90, 0x90, 0xa8, 0xff}
	ColYes        = color.RGBA{0xe0, 0x2f, 0x5a, 0xff}
	ColYesEdge    = color.RGBA{0xff, 0xb3, 0xc6, 0xff}
	ColHeartFull  = color.RGBA{0xff, 0x4d, 0x6d, 0xff}
	ColHeartLost  = color.RGBA{0x30, 0x30, 0x30, 0xff}
	ColHitShade   = color.RGBA{0x80, 0x00, 0x10, 0xa0}
	ColVictory    = color.RGBA{0x10, 0x00, 0x20, 0x90}
	ColText       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	ColTextAccent = color.RGBA{0xff, 0xd1, 0x66, 0xff}
)

// Widget sizes
const (
	ButtonWidth    = 120
	ButtonHeight   = 44
	EnlargedScale  = 1.6
	HeartGlyphSize = 18
	textScale      = 2.0
)

// Fight binds a session to ebiten input and draws it
type Fight struct {
	Session *session.Session
	Audio   *audio.Device

	no    *entity.Button
	yes   *entity.Button
	sound *entity.Button
	face  text.Face
}

// NewFight wraps a session. dev may be nil for a silent game.
func NewFight(s *session.Session, dev *audio.Device) *Fight {
	return &Fight{
		Session: s,
		Audio:   dev,
		no:      entity.NewButton("NO", ButtonWidth, ButtonHeight, ColNo, ColNoEdge),
		yes:     entity.NewButton("YES", ButtonWidth, ButtonHeight, ColYes, ColYesEdge),
		sound:   entity.NewButton("AUDIO OFF", 110, 24, ColNo, ColNoEdge),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update handles one tick of input, then advances the session
func (f *Fight) Update(dt time.Duration) {
	// 1. Pointer
	cx, cy := ebiten.CursorPosition()
	px, py := float64(cx), float64(cy)
	f.Session.MovePointer(px, py)

	// 2. Activation (widgets reflect the last drawn frame)
	f.layout()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.click(px, py)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		f.activateAudio()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.Session.Reset()
	}

	// 3. Frame
	f.Session.Frame(dt)
	f.layout()
	f.no.Update()

	// 4. Release finished cue players
	f.Audio.Sweep()
}

func (f *Fight) click(px, py float64) {
	v := f.Session.View()
	switch {
	case f.sound.Contains(px, py):
		f.activateAudio()
	case v.BossVisible && f.no.Contains(px, py):
		f.Session.Hit()
	case f.yes.Contains(px, py):
		f.Session.Accept()
	}
}

func (f *Fight) activateAudio() {
	if f.Audio == nil {
		return
	}
	if err := f.Audio.Activate(); err != nil {
		log.Printf("Audio activation failed: %v (continuing without audio)", err)
	}
}

// layout moves the widgets to match the session
func (f *Fight) layout() {
	v := f.Session.View()

	f.no.X, f.no.Y = v.Boss.X, v.Boss.Y
	f.no.Shaking = v.Agitated

	f.yes.X, f.yes.Y = v.Trigger.X, v.Trigger.Y
	f.yes.Scale = 1
	if v.TriggerEnlarged {
		f.yes.Scale = EnlargedScale
	}

	f.sound.X, f.sound.Y = v.Bounds.W-70, 20
	f.sound.Label = "AUDIO OFF"
	if f.Audio != nil && f.Audio.Active() {
		f.sound.Label = "AUDIO ACTIVE"
	}
}

// Draw renders the frame: playfield, particles, overlays
func (f *Fight) Draw(screen *ebiten.Image) {
	v := f.Session.View()

	// 1. Clear
	screen.Fill(ColBg)

	// 2. Header
	f.drawText(screen, v.Label, v.Bounds.W/2, 40, textScale, ColTextAccent)
	f.drawHearts(screen, v)

	// 3. Controls
	f.yes.Draw(screen, f.face)
	if v.BossVisible {
		f.no.Draw(screen, f.face)
	}
	f.sound.Draw(screen, f.face)

	// 4. Particles
	for i := range v.Particles {
		p := &v.Particles[i]
		c := p.Faded()
		for _, r := range p.Rects() {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		}
	}

	// 5. Overlays
	if v.HitOverlay {
		vector.DrawFilledRect(screen, 0, 0, float32(v.Bounds.W), float32(v.Bounds.H), ColHitShade, false)
		f.drawText(screen, "CRITICAL HIT!", v.Bounds.W/2, v.Bounds.H/2, 3, ColText)
	}
	if v.VictoryOverlay {
		vector.DrawFilledRect(screen, 0, float32(v.Bounds.H/2-70), float32(v.Bounds.W), 140, ColVictory, false)
		f.drawText(screen, "VICTORY", v.Bounds.W/2, v.Bounds.H/2-20, 4, ColTextAccent)
		f.drawText(screen, "The boss has accepted its fate.", v.Bounds.W/2, v.Bounds.H/2+35, textScale, ColText)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  HP %d/%d  [M] audio  [R] reset  [Esc] quit", v.Phase, v.HP, v.MaxHP), 8, int(v.Bounds.H)-20)
}

// drawHearts draws the health readout as heart glyphs, full then lost
func (f *Fight) drawHearts(screen *ebiten.Image, v session.View) {
	spacing := float64(HeartGlyphSize) * 1.5
	x0 := v.Bounds.W/2 - spacing*float64(v.MaxHP-1)/2
	for i := 0; i < v.MaxHP; i++ {
		c := ColHeartFull
		if i >= v.HP {
			c = ColHeartLost
		}
		glyph := particle.Particle{X: x0 + float64(i)*spacing, Y: 80, Size: HeartGlyphSize, Kind: particle.Heart}
		for _, r := range glyph.Rects() {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		}
	}
}

func (f *Fight) drawText(screen *ebiten.Image, s string, cx, cy, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, f.face, op)
}
