// Package tty runs the boss fight in a terminal.
//
// Every character cell stands for a block of virtual pixels, so the fight
// keeps its pixel tuning on any terminal size.
package tty

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"bossfight/internal/audio"
	"bossfight/internal/config"
	"bossfight/internal/session"
)

// App binds a session to a tcell screen
type App struct {
	screen  tcell.Screen
	session *session.Session
	audio   *audio.Device
	grid    grid
	fps     int

	buttons tcell.ButtonMask // held mouse buttons, for press edges
	frame   int
	widgets layout
}

// New wraps an initialised screen. dev may be nil for a silent game.
func New(screen tcell.Screen, s *session.Session, dev *audio.Device, cfg config.Terminal) *App {
	a := &App{
		screen:  screen,
		session: s,
		audio:   dev,
		grid:    grid{cw: cfg.CellWidth, ch: cfg.CellHeight},
		fps:     cfg.FPS,
	}
	a.resize()
	return a
}

// Size is the pixel playfield for the current terminal size
func (a *App) Size() (float64, float64) {
	cols, rows := a.screen.Size()
	return float64(cols * a.grid.cw), float64(rows * a.grid.ch)
}

func (a *App) resize() {
	w, h := a.Size()
	a.session.Resize(w, h)
	a.relayout()
}

func (a *App) relayout() {
	cols, _ := a.screen.Size()
	shake := 0
	v := a.session.View()
	if v.Agitated {
		shake = 1 - 2*(a.frame%2)
	}
	a.widgets = placeWidgets(v, a.grid, cols, shake, a.audio != nil && a.audio.Active())
}

// HandleEvent applies one terminal event. Returns false when the player quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				a.session.Reset()
			case 'm', 'M':
				a.activateAudio()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.grid.center(col, row)
		a.session.MovePointer(x, y)

		btn := ev.Buttons()
		pressed := btn&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = btn
		if pressed {
			a.click(col, row)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *App) click(col, row int) {
	switch {
	case a.widgets.audio.contains(col, row):
		a.activateAudio()
	case a.widgets.noVisible && a.widgets.no.contains(col, row):
		a.session.Hit()
	case a.widgets.yes.contains(col, row):
		a.session.Accept()
	}
}

func (a *App) activateAudio() {
	if a.audio == nil {
		return
	}
	if err := a.audio.Activate(); err != nil {
		log.Printf("Audio activation failed: %v (continuing without audio)", err)
	}
	a.relayout()
}

// Frame advances the session and redraws
func (a *App) Frame(dt time.Duration) {
	a.session.Frame(dt)
	a.frame++
	a.relayout()
	draw(a.screen, a.session.View(), a.widgets)
	a.screen.Show()
}

// poll forwards screen events until the screen stops or ctx ends, then
// closes events
func (a *App) poll(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Run drives the loop until the player quits or ctx ends
func (a *App) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(a.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go a.poll(ctx, events)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.Frame(now.Sub(last))
			last = now
		}
	}
}
