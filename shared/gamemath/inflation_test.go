package gamemath

import (
	"math"
	"testing"
)

func testInflationParams() InflationParams {
	return InflationParams{
		Speed:          1.2,
		MinRate:        1.6,
		MaxRate:        8.0,
		MaxScale:       8.0,
		DrainRate:      0.5,
		AnchorX:        -0.5,
		AnchorY:        -0.5,
		MinMass:        0.1,
		MaxMass:        1.0,
		MinGravity:     0.3,
		MaxGravity:     1.0,
		MinRestitution: 0.1,
		MaxRestitution: 2.0,
		RestitutionDiv: 10,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func never(x, y, w, h float64) bool  { return false }
func always(x, y, w, h float64) bool { return true }

func TestSizeForRateMonotonic(t *testing.T) {
	p := testInflationParams()
	prev := -1.0
	for rate := p.MinRate; rate <= p.MaxRate; rate += 0.01 {
		s := SizeForRate(32, rate, p)
		if s < prev {
			t.Fatalf("size decreased at rate %f: %f < %f", rate, s, prev)
		}
		prev = s
	}
	if got := SizeForRate(32, p.MaxRate, p); !near(got, 32*p.MaxScale) {
		t.Fatalf("size at max rate = %f, want %f", got, 32*p.MaxScale)
	}
}

func TestBodyForRate(t *testing.T) {
	p := testInflationParams()
	tests := []struct {
		name                   string
		rate                   float64
		mass, grav, restitutio float64
	}{
		{"min rate", 1.6, 0.625, 0.625, 0.16},
		{"default rate", 2.8, 1 / 2.8, 1 / 2.8, 0.28},
		{"max rate", 8.0, 0.125, 0.3, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, g, r := BodyForRate(tt.rate, p)
			if !near(m, tt.mass) || !near(g, tt.grav) || !near(r, tt.restitutio) {
				t.Fatalf("BodyForRate(%f) = (%f, %f, %f), want (%f, %f, %f)",
					tt.rate, m, g, r, tt.mass, tt.grav, tt.restitutio)
			}
		})
	}
}

func TestNewInflationStateCapsSpawnSize(t *testing.T) {
	p := testInflationParams()
	s := NewInflationState(0, 0, 32, 32, 6, p)
	if s.Box.W != 32 || s.Box.H != 32 {
		t.Fatalf("spawn size = %fx%f, want 32x32", s.Box.W, s.Box.H)
	}
	s = NewInflationState(0, 0, 32, 32, 100, p)
	if s.Rate != p.MaxRate {
		t.Fatalf("spawn rate = %f, want clamped to %f", s.Rate, p.MaxRate)
	}
}

func TestInflationDirection(t *testing.T) {
	p := testInflationParams()
	tests := []struct {
		name             string
		inflate, deflate bool
		rate             float64
		want             int
	}{
		{"idle", false, false, 2.8, 0},
		{"grow", true, false, 2.8, 1},
		{"shrink", false, true, 2.8, -1},
		{"inflate wins ties", true, true, 2.8, 1},
		{"grow at max is no request", true, false, 8.0, 0},
		{"shrink at min is no request", false, true, 1.6, 0},
		{"both at max does not fall through to shrink", true, true, 8.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InflationDirection(tt.inflate, tt.deflate, tt.rate, p); got != tt.want {
				t.Fatalf("InflationDirection = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStepInflationGrowScenario(t *testing.T) {
	p := testInflationParams()
	s := NewInflationState(100, 100, 32, 32, 2.8, p)
	air := 1.0
	dt := 0.016

	out := StepInflation(p, &s, 1, dt, &air, never)
	if out != InflationGrew {
		t.Fatalf("outcome = %v, want grew", out)
	}
	if !near(s.Rate, 2.8192) {
		t.Fatalf("rate = %f, want 2.8192", s.Rate)
	}
	if !near(air, 1.0-0.5*dt) {
		t.Fatalf("air = %f, want %f", air, 1.0-0.5*dt)
	}
	wantW := SizeForRate(32, 2.8192, p)
	if !near(s.Box.W, wantW) {
		t.Fatalf("width = %f, want %f", s.Box.W, wantW)
	}
	// centre anchored
	oldW := SizeForRate(32, 2.8, p)
	if !near(s.Box.X, 100-(wantW-oldW)/2) {
		t.Fatalf("x = %f, want %f", s.Box.X, 100-(wantW-oldW)/2)
	}
	if !s.Growing || s.Direction != 1 {
		t.Fatalf("growing=%v direction=%d, want true/1", s.Growing, s.Direction)
	}
	m, g, r := BodyForRate(s.Rate, p)
	if s.Mass != m || s.GravityScale != g || s.Restitution != r {
		t.Fatalf("derived body not recomputed")
	}
}

func TestStepInflationStarved(t *testing.T) {
	p := testInflationParams()
	s := NewInflationState(100, 100, 32, 32, 2.8, p)
	before := s
	air := 0.0

	out := StepInflation(p, &s, 1, 0.016, &air, never)
	if out != InflationStarved {
		t.Fatalf("outcome = %v, want starved", out)
	}
	if s != before {
		t.Fatalf("state changed while starved: %+v -> %+v", before, s)
	}
	if air != 0 {
		t.Fatalf("air = %f, want 0", air)
	}
}

func TestStepInflationSurroundedRejects(t *testing.T) {
	p := testInflationParams()
	for _, dir := range []int{1, -1} {
		s := NewInflationState(100, 100, 32, 32, 2.8, p)
		before := s
		air := 0.5

		out := StepInflation(p, &s, dir, 0.016, &air, always)
		if out != InflationBlocked {
			t.Fatalf("dir %d: outcome = %v, want blocked", dir, out)
		}
		if s != before {
			t.Fatalf("dir %d: state changed on a blocked resize", dir)
		}
		if dir > 0 && !near(air, 0.5-0.5*0.016) {
			t.Fatalf("air drain should not be refunded, air = %f", air)
		}
		if dir < 0 && air != 0.5 {
			t.Fatalf("shrink must not drain air, air = %f", air)
		}
	}
}

func TestStepInflationStop(t *testing.T) {
	p := testInflationParams()
	s := NewInflationState(0, 0, 32, 32, 2.8, p)
	air := 1.0
	StepInflation(p, &s, 1, 0.016, &air, never)
	rate := s.Rate

	if out := StepInflation(p, &s, 0, 0.016, &air, never); out != InflationStopped {
		t.Fatalf("outcome = %v, want stopped", out)
	}
	if s.Growing || s.Direction != 0 || s.Rate != rate {
		t.Fatalf("stop changed more than the flags: %+v", s)
	}
}

func TestStepInflationNeverCommitsBlockedBox(t *testing.T) {
	p := testInflationParams()
	// a solid wall at x >= 200
	wall := func(x, y, w, h float64) bool { return x+w >= 200 || x < 0 || y < 0 }
	s := NewInflationState(150, 150, 32, 32, 2.8, p)
	air := 1.0
	prevAir := air

	for i := 0; i < 600; i++ {
		out := StepInflation(p, &s, 1, 1.0/60, &air, wall)
		if out == InflationGrew && wall(s.Box.X, s.Box.Y, s.Box.W, s.Box.H) {
			t.Fatalf("tick %d committed a blocked box %+v", i, s.Box)
		}
		if air > prevAir || air < 0 || air > 1 {
			t.Fatalf("tick %d air out of order: %f after %f", i, air, prevAir)
		}
		if s.Rate < p.MinRate || s.Rate > p.MaxRate {
			t.Fatalf("tick %d rate out of bounds: %f", i, s.Rate)
		}
		prevAir = air
	}
	if air != 0 {
		t.Fatalf("air = %f after ten seconds of growth, want 0", air)
	}
}
