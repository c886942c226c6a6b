package evasion

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func TestFleeOutsideRadiusLeavesVelocity(t *testing.T) {
	tn := DefaultTuning()
	tests := []struct {
		name    string
		pointer Point
	}{
		{"exactly at radius", Point{500 + ThreatRadius, 400}},
		{"far right", Point{1200, 400}},
		{"far diagonal", Point{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{X: 500, Y: 400, VX: 3.5, VY: -1.25}
			if Flee(&s, tt.pointer, tn) {
				t.Fatal("agitated outside threat radius")
			}
			if s.VX != 3.5 || s.VY != -1.25 {
				t.Fatalf("velocity changed to (%f, %f)", s.VX, s.VY)
			}
		})
	}
}

func TestStepOutsideRadiusOnlyDamps(t *testing.T) {
	tn := DefaultTuning()
	s := State{X: 500, Y: 400, VX: 10, VY: -4}
	Step(&s, Point{5, 5}, Bounds{1280, 800}, tn)

	if math.Abs(s.VX-10*Damping) > eps || math.Abs(s.VY+4*Damping) > eps {
		t.Fatalf("velocity = (%f, %f), want only damping", s.VX, s.VY)
	}
}

func TestFleeInsideRadiusSetsSpeedAwayFromPointer(t *testing.T) {
	tn := DefaultTuning()
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		s := State{X: 640, Y: 400, VX: rng.Float64()*40 - 20, VY: rng.Float64()*40 - 20}
		angle := rng.Float64() * 2 * math.Pi
		dist := rng.Float64() * (ThreatRadius - 1)
		p := Point{s.X + math.Cos(angle)*dist, s.Y + math.Sin(angle)*dist}

		if !Flee(&s, p, tn) {
			t.Fatalf("not agitated at distance %f", dist)
		}
		if speed := math.Hypot(s.VX, s.VY); math.Abs(speed-FleeSpeed) > 1e-6 {
			t.Fatalf("speed = %f, want %f", speed, FleeSpeed)
		}
		// velocity points away from the pointer
		dx, dy := p.X-s.X, p.Y-s.Y
		if dist > 1e-6 && s.VX*dx+s.VY*dy >= 0 {
			t.Fatalf("velocity (%f, %f) not opposite pointer offset (%f, %f)", s.VX, s.VY, dx, dy)
		}
	}
}

func TestBounceReflects(t *testing.T) {
	tn := DefaultTuning()
	b := Bounds{1000, 600}

	s := State{X: 10, Y: 700, VX: -5, VY: 8}
	Bounce(&s, b, tn)
	if s.X != Margin || s.VX != 5 {
		t.Fatalf("x axis = (%f, %f), want (%f, 5)", s.X, s.VX, Margin)
	}
	if s.Y != 600-Margin || s.VY != -8 {
		t.Fatalf("y axis = (%f, %f), want (%f, -8)", s.Y, s.VY, 600-Margin)
	}

	s = State{X: 300, Y: 300, VX: 2, VY: 2}
	Bounce(&s, b, tn)
	if s.VX != 2 || s.VY != 2 {
		t.Fatal("in-bounds control was reflected")
	}
}

func TestBounceAlwaysInBounds(t *testing.T) {
	tn := DefaultTuning()
	rng := rand.New(rand.NewSource(9))
	sizes := []Bounds{{1280, 800}, {320, 240}, {161, 90}, {100, 100}}
	for _, b := range sizes {
		xlo, xhi := Limits(b.W, tn.Margin)
		ylo, yhi := Limits(b.H, tn.Margin)
		for i := 0; i < 1000; i++ {
			s := State{
				X: rng.Float64()*4000 - 2000, Y: rng.Float64()*4000 - 2000,
				VX: rng.Float64()*60 - 30, VY: rng.Float64()*60 - 30,
			}
			Bounce(&s, b, tn)
			if s.X < xlo || s.X > xhi || s.Y < ylo || s.Y > yhi {
				t.Fatalf("bounds %v: (%f, %f) escaped [%f,%f]x[%f,%f]", b, s.X, s.Y, xlo, xhi, ylo, yhi)
			}
		}
	}
}

func TestLimitsCollapseOnNarrowAxis(t *testing.T) {
	lo, hi := Limits(100, Margin)
	if lo != 50 || hi != 50 {
		t.Fatalf("Limits(100) = [%f, %f], want [50, 50]", lo, hi)
	}
	lo, hi = Limits(1000, Margin)
	if lo != Margin || hi != 1000-Margin {
		t.Fatalf("Limits(1000) = [%f, %f]", lo, hi)
	}
}

func TestStepChasedControlStaysInBounds(t *testing.T) {
	tn := DefaultTuning()
	b := Bounds{1024, 768}
	s := State{X: 632, Y: 384}
	start := s

	// pointer parks right on the control's start and stays there
	p := Point{start.X - 10, start.Y}
	agitatedFrames := 0
	for i := 0; i < 240; i++ {
		if Step(&s, p, b, tn) {
			agitatedFrames++
		}
		if s.X < Margin || s.X > b.W-Margin || s.Y < Margin || s.Y > b.H-Margin {
			t.Fatalf("frame %d: escaped to (%f, %f)", i, s.X, s.Y)
		}
	}
	if agitatedFrames == 0 {
		t.Fatal("control never fled")
	}
	if s.X == start.X && s.Y == start.Y {
		t.Fatal("control did not move")
	}
}

func TestClampKeepsVelocity(t *testing.T) {
	got := Clamp(Point{-50, 5000}, Bounds{800, 600}, DefaultTuning())
	if got != (Point{Margin, 600 - Margin}) {
		t.Fatalf("Clamp = %v", got)
	}
}
