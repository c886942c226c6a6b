// Package session owns the state of one boss fight and advances it a frame
// at a time.
//
// A Session is driven from a single goroutine: pointer and activation events
// and the frame callback must not overlap. Delayed transitions (the hit
// pause and the staggered confetti) run on the session's own game clock, so
// Reset drops any that are still pending.
package session

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"bossfight/internal/audio"
	"bossfight/internal/config"
	"bossfight/internal/evasion"
	"bossfight/internal/particle"
	"bossfight/internal/schedule"
)

// Phase of the fight
type Phase int

const (
	Playing  Phase = iota
	Paused         // hit reaction, resumes after the hit pause
	Defeated       // boss deleted; only the victory trigger remains
	Winning        // terminal
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Defeated:
		return "defeated"
	case Winning:
		return "winning"
	}
	return "unknown"
}

// Health readout glyphs
const (
	HeartFull = "❤️"
	HeartLost = "🖤"
)

// Sounder receives the cues for each transition
type Sounder interface {
	Play(c audio.Cue)
}

// Options is the fight tuning
type Options struct {
	MaxHP         int
	HitPause      time.Duration
	BossName      string
	DefeatedLabel string
	SpawnOffset   float64 // boss starts right of center, trigger left of it
	RespawnInset  float64
	Evasion       evasion.Tuning

	ParticleCount   int
	ParticleStagger time.Duration
	HeartChance     float64
	SpawnBelow      float64 // particles launch from this far under the bottom edge
}

// DefaultOptions is the stock fight
func DefaultOptions() Options {
	return Options{
		MaxHP:           3,
		HitPause:        time.Second,
		BossName:        "THE_REJECTION",
		DefeatedLabel:   "ENTITY_DELETED",
		SpawnOffset:     120,
		RespawnInset:    100,
		Evasion:         evasion.DefaultTuning(),
		ParticleCount:   300,
		ParticleStagger: 5 * time.Millisecond,
		HeartChance:     0.3,
		SpawnBelow:      20,
	}
}

// OptionsFromConfig maps the loaded config onto fight options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxHP:           cfg.Fight.MaxHP,
		HitPause:        cfg.Fight.HitPause.Duration,
		BossName:        cfg.Fight.BossName,
		DefeatedLabel:   cfg.Fight.DefeatedLabel,
		SpawnOffset:     cfg.Fight.SpawnOffset,
		RespawnInset:    cfg.Fight.RespawnInset,
		Evasion:         cfg.Evasion.Tuning(),
		ParticleCount:   cfg.Particles.Count,
		ParticleStagger: cfg.Particles.Stagger.Duration,
		HeartChance:     cfg.Particles.HeartChance,
		SpawnBelow:      cfg.Particles.SpawnBelow,
	}
}

// Session is one fight
type Session struct {
	opts  Options
	rng   *rand.Rand
	sound Sounder
	sched *schedule.Scheduler

	bounds  evasion.Bounds
	pointer evasion.Point

	boss      evasion.State
	bossAlive bool
	agitated  bool

	resumeTask schedule.Task

	trigger         evasion.Point
	triggerEnlarged bool

	phase          Phase
	hp             int
	hitOverlay     bool
	victoryOverlay bool
	label          string

	particles particle.Collection
}

// New starts a fight on a width x height playfield. sound may be nil.
func New(opts Options, width, height float64, rng *rand.Rand, sound Sounder) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{
		opts:  opts,
		rng:   rng,
		sound: sound,
		sched: schedule.New(),
	}
	s.bounds = evasion.Bounds{W: width, H: height}
	s.Reset()
	return s
}

// Reset restores the opening state and drops every pending delayed transition
func (s *Session) Reset() {
	if n := s.sched.CancelAll(); n > 0 {
		log.Printf("session: reset dropped %d pending tasks", n)
	}
	s.particles.Clear()
	s.phase = Playing
	s.hp = s.opts.MaxHP
	s.hitOverlay = false
	s.victoryOverlay = false
	s.label = s.opts.BossName
	s.bossAlive = true
	s.agitated = false
	s.triggerEnlarged = false
	s.boss = evasion.State{}
	s.Resize(s.bounds.W, s.bounds.H)
}

// Resize adopts a new playfield and re-seeds the boss beside the center
func (s *Session) Resize(width, height float64) {
	s.bounds = evasion.Bounds{W: width, H: height}
	s.boss.X = width/2 + s.opts.SpawnOffset
	s.boss.Y = height / 2
	s.trigger = evasion.Point{X: width/2 - s.opts.SpawnOffset, Y: height / 2}
}

// MovePointer records the latest pointer position
func (s *Session) MovePointer(x, y float64) {
	s.pointer = evasion.Point{X: x, Y: y}
}

// Hit lands a blow on the boss. Reports whether the hit counted.
func (s *Session) Hit() bool {
	if s.phase != Playing || s.hp <= 0 || !s.bossAlive {
		return false
	}
	s.hp--
	s.phase = Paused
	s.hitOverlay = true
	s.agitated = false
	s.play(audio.CueHit)
	s.resumeTask = s.sched.After(s.opts.HitPause, s.resume)
	log.Printf("session: hit at %v, %d hp left", s.sched.Now(), s.hp)
	return true
}

// resume ends the hit pause
func (s *Session) resume() {
	if s.phase != Paused {
		return
	}
	s.hitOverlay = false
	if s.hp > 0 {
		s.phase = Playing
		s.relocate()
		return
	}

	s.phase = Defeated
	s.bossAlive = false
	s.agitated = false
	s.triggerEnlarged = true
	s.label = s.opts.DefeatedLabel
	s.play(audio.CueDefeat)
	log.Printf("session: boss defeated")
}

// relocate drops the boss somewhere random, inset from the edges
func (s *Session) relocate() {
	inset := s.opts.RespawnInset
	p := evasion.Point{
		X: s.rng.Float64()*(s.bounds.W-2*inset) + inset,
		Y: s.rng.Float64()*(s.bounds.H-2*inset) + inset,
	}
	p = evasion.Clamp(p, s.bounds, s.opts.Evasion)
	s.boss.X, s.boss.Y = p.X, p.Y
}

// Accept activates the victory trigger. Only the first activation counts.
func (s *Session) Accept() bool {
	if s.phase == Winning {
		return false
	}
	// a pending hit resume would otherwise pull the fight out of Winning
	s.sched.Cancel(s.resumeTask)

	s.phase = Winning
	s.agitated = false
	s.hitOverlay = false
	s.victoryOverlay = true
	s.play(audio.CueVictory)
	for i := 0; i < s.opts.ParticleCount; i++ {
		s.sched.After(time.Duration(i)*s.opts.ParticleStagger, s.spawnParticle)
	}
	log.Printf("session: victory, %d particles queued", s.opts.ParticleCount)
	return true
}

func (s *Session) spawnParticle() {
	kind := particle.Confetti
	if s.rng.Float64() < s.opts.HeartChance {
		kind = particle.Heart
	}
	s.particles.Add(particle.New(s.rng.Float64()*s.bounds.W, s.bounds.H+s.opts.SpawnBelow, kind, s.rng))
}

// Frame advances the fight by one display frame that lasted dt
func (s *Session) Frame(dt time.Duration) {
	// 1. Delayed transitions
	s.sched.Advance(dt)

	// 2. Evasion
	s.agitated = false
	if s.phase == Playing && s.hp > 0 && s.bossAlive {
		s.agitated = evasion.Step(&s.boss, s.pointer, s.bounds, s.opts.Evasion)
	}

	// 3. Particles
	s.particles.Step()
}

func (s *Session) play(c audio.Cue) {
	if s.sound != nil {
		s.sound.Play(c)
	}
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) HP() int      { return s.hp }

// Pending is the number of delayed transitions still queued
func (s *Session) Pending() int { return s.sched.Pending() }

// Health renders hp as full hearts followed by lost ones, total symbols overall
func Health(hp, total int) string {
	if hp < 0 {
		hp = 0
	}
	if hp > total {
		hp = total
	}
	return strings.Repeat(HeartFull, hp) + strings.Repeat(HeartLost, total-hp)
}
