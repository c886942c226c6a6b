// Package evasion moves the boss control away from the pointer.
//
// The controller works in viewport pixels and advances one frame per Step.
// Fleeing is an impulse that overwrites velocity rather than a force, which
// gives the control its sharp dodges; damping then bleeds the speed off.
package evasion

import "math"

// Defaults
const (
	ThreatRadius = 200.0
	FleeSpeed    = 25.0
	Damping      = 0.92
	Margin       = 80.0
)

// Tuning holds the controller constants
type Tuning struct {
	ThreatRadius float64
	FleeSpeed    float64
	Damping      float64 // applied every frame, in (0, 1)
	Margin       float64 // keep-out band along every edge
}

// DefaultTuning returns the stock constants
func DefaultTuning() Tuning {
	return Tuning{
		ThreatRadius: ThreatRadius,
		FleeSpeed:    FleeSpeed,
		Damping:      Damping,
		Margin:       Margin,
	}
}

// Point is a viewport position
type Point struct {
	X, Y float64
}

// Bounds is the playfield size
type Bounds struct {
	W, H float64
}

// State is the control's position and velocity
type State struct {
	X, Y   float64
	VX, VY float64
}

// Flee overwrites velocity with a flee impulse when the pointer is inside
// the threat radius. Returns the agitated flag.
func Flee(s *State, pointer Point, t Tuning) bool {
	dx := pointer.X - s.X
	dy := pointer.Y - s.Y
	if math.Hypot(dx, dy) >= t.ThreatRadius {
		return false
	}
	angle := math.Atan2(dy, dx)
	s.VX = -math.Cos(angle) * t.FleeSpeed
	s.VY = -math.Sin(angle) * t.FleeSpeed
	return true
}

// Damp scales both velocity components down
func Damp(s *State, t Tuning) {
	s.VX *= t.Damping
	s.VY *= t.Damping
}

// Integrate moves the control by one frame of velocity
func Integrate(s *State) {
	s.X += s.VX
	s.Y += s.VY
}

// Bounce clamps each axis into [margin, dim-margin] and reflects the
// velocity component of any axis that was clamped
func Bounce(s *State, b Bounds, t Tuning) {
	s.X, s.VX = bounceAxis(s.X, s.VX, b.W, t.Margin)
	s.Y, s.VY = bounceAxis(s.Y, s.VY, b.H, t.Margin)
}

func bounceAxis(pos, vel, dim, margin float64) (float64, float64) {
	lo, hi := Limits(dim, margin)
	if pos < lo {
		return lo, -vel
	}
	if pos > hi {
		return hi, -vel
	}
	return pos, vel
}

// Limits is the allowed interval on one axis.
// A playfield narrower than two margins collapses to its center line.
func Limits(dim, margin float64) (lo, hi float64) {
	lo, hi = margin, dim-margin
	if hi < lo {
		lo = dim / 2
		hi = lo
	}
	return lo, hi
}

// Clamp pulls a position into bounds without touching velocity
func Clamp(p Point, b Bounds, t Tuning) Point {
	xlo, xhi := Limits(b.W, t.Margin)
	ylo, yhi := Limits(b.H, t.Margin)
	return Point{
		X: math.Min(math.Max(p.X, xlo), xhi),
		Y: math.Min(math.Max(p.Y, ylo), yhi),
	}
}

// Step runs one frame: flee, damp, integrate, bounce
func Step(s *State, pointer Point, b Bounds, t Tuning) (agitated bool) {
	agitated = Flee(s, pointer, t)
	Damp(s, t)
	Integrate(s)
	Bounce(s, b, t)
	return agitated
}
