package session

import (
	"bossfight/internal/evasion"
	"bossfight/internal/particle"
)

// View is what a frontend needs to draw one frame
type View struct {
	Phase  Phase
	HP     int
	MaxHP  int
	Health string
	Label  string

	HitOverlay     bool
	VictoryOverlay bool

	BossVisible bool
	Boss        evasion.Point
	Agitated    bool

	Trigger         evasion.Point
	TriggerEnlarged bool

	Bounds    evasion.Bounds
	Particles []particle.Particle // valid until the next Frame
}

// View snapshots the session for drawing
func (s *Session) View() View {
	return View{
		Phase:           s.phase,
		HP:              s.hp,
		MaxHP:           s.opts.MaxHP,
		Health:          Health(s.hp, s.opts.MaxHP),
		Label:           s.label,
		HitOverlay:      s.hitOverlay,
		VictoryOverlay:  s.victoryOverlay,
		BossVisible:     s.bossAlive,
		Boss:            evasion.Point{X: s.boss.X, Y: s.boss.Y},
		Agitated:        s.agitated,
		Trigger:         s.trigger,
		TriggerEnlarged: s.triggerEnlarged,
		Bounds:          s.bounds,
		Particles:       s.particles.Items(),
	}
}
