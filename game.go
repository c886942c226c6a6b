package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bossfight/internal/audio"
	"bossfight/internal/config"
	"bossfight/internal/gamemode"
	"bossfight/internal/session"
)

// Game adapts the fight to ebiten's loop
type Game struct {
	Fight *gamemode.Fight

	// Last size reported by Layout
	width, height int
}

func NewGame(cfg *config.Config, rng *rand.Rand) *Game {
	dev := audio.NewDevice(cfg.Audio.SampleRate, cfg.Audio.Volume, gamemode.OpenEbitenAudio)
	s := session.New(session.OptionsFromConfig(cfg), float64(cfg.Window.Width), float64(cfg.Window.Height), rng, dev)

	return &Game{
		Fight:  gamemode.NewFight(s, dev),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
}

// Update: Logic (one call per tick)
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.syncSize()
	g.Fight.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// syncSize re-seeds the boss when the window size changed since the last tick
func (g *Game) syncSize() {
	v := g.Fight.Session.View()
	if int(v.Bounds.W) != g.width || int(v.Bounds.H) != g.height {
		g.Fight.Session.Resize(float64(g.width), float64(g.height))
	}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.Fight.Draw(screen)
}

// Layout: the playfield is the whole window, one unit per device-independent pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
