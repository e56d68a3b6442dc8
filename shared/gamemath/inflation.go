package gamemath

import "math"

// InflationOutcome is what a single inflation step did.
type InflationOutcome int

const (
	InflationNone    InflationOutcome = iota
	InflationStopped                  // no request this tick
	InflationStarved                  // growth requested with an empty air gauge
	InflationBlocked                  // candidate box hit a solid or unmapped cell
	InflationGrew
	InflationShrank
)

func (o InflationOutcome) String() string {
	switch o {
	case InflationStopped:
		return "stopped"
	case InflationStarved:
		return "starved"
	case InflationBlocked:
		return "blocked"
	case InflationGrew:
		return "grew"
	case InflationShrank:
		return "shrank"
	}
	return "none"
}

// InflationParams holds the tuning for the inflation curve and derived body values.
type InflationParams struct {
	Speed     float64 // rate units per second
	MinRate   float64
	MaxRate   float64
	MaxScale  float64
	DrainRate float64 // air per second while growing
	AnchorX   float64
	AnchorY   float64

	MinMass, MaxMass               float64
	MinGravity, MaxGravity         float64
	MinRestitution, MaxRestitution float64
	RestitutionDiv                 float64
}

// Rect is an axis aligned box anchored at its min corner.
type Rect struct {
	X, Y, W, H float64
}

// InflationState is the part of the player that inflation owns.
type InflationState struct {
	Rate         float64
	OriginalW    float64
	OriginalH    float64
	Box          Rect
	Mass         float64
	GravityScale float64
	Restitution  float64
	Growing      bool
	Direction    int // last accepted direction, 0 when idle
}

// ProbeFunc reports whether a candidate box is obstructed.
type ProbeFunc func(x, y, w, h float64) bool

// SizeForRate maps an original extent onto the inflation curve.
// It is quadratic in rate/MaxRate and reaches original*MaxScale at MaxRate.
func SizeForRate(original, rate float64, p InflationParams) float64 {
	t := rate / p.MaxRate
	return original * p.MaxScale * t * t
}

// BodyForRate returns mass, gravity scale and restitution for an inflation rate.
func BodyForRate(rate float64, p InflationParams) (mass, gravity, restitution float64) {
	inv := 1 / rate
	mass = Clamp(inv, p.MinMass, p.MaxMass)
	gravity = Clamp(inv, p.MinGravity, p.MaxGravity)
	restitution = Clamp(rate/p.RestitutionDiv, p.MinRestitution, p.MaxRestitution)
	return mass, gravity, restitution
}

// NewInflationState builds the state a freshly spawned player starts with.
// The spawn size never exceeds the original size.
func NewInflationState(x, y, originalW, originalH, rate float64, p InflationParams) InflationState {
	rate = Clamp(rate, p.MinRate, p.MaxRate)
	s := InflationState{
		Rate:      rate,
		OriginalW: originalW,
		OriginalH: originalH,
		Box: Rect{
			X: x,
			Y: y,
			W: math.Min(SizeForRate(originalW, rate, p), originalW),
			H: math.Min(SizeForRate(originalH, rate, p), originalH),
		},
	}
	s.Mass, s.GravityScale, s.Restitution = BodyForRate(rate, p)
	return s
}

// InflationDirection resolves the held buttons into +1, -1 or 0.
// Inflate wins when both are held. A request that would push past a bound is no request.
func InflationDirection(inflate, deflate bool, rate float64, p InflationParams) int {
	switch {
	case inflate && rate < p.MaxRate:
		return 1
	case inflate:
		return 0
	case deflate && rate > p.MinRate:
		return -1
	}
	return 0
}

// StepInflation advances the inflation state by dt in direction dir.
// air is the shared gauge and is only drained by growth requests.
// A candidate the probe reports blocked is discarded without touching s.
func StepInflation(p InflationParams, s *InflationState, dir int, dt float64, air *float64, blocked ProbeFunc) InflationOutcome {
	if dir == 0 {
		s.Growing = false
		s.Direction = 0
		return InflationStopped
	}

	if dir > 0 {
		if *air <= 0 {
			return InflationStarved
		}
		*air = math.Max(0, *air-p.DrainRate*dt)
	}

	rate := Clamp(s.Rate+float64(dir)*p.Speed*dt, p.MinRate, p.MaxRate)
	w := SizeForRate(s.OriginalW, rate, p)
	h := SizeForRate(s.OriginalH, rate, p)
	oldW := SizeForRate(s.OriginalW, s.Rate, p)
	oldH := SizeForRate(s.OriginalH, s.Rate, p)

	x := s.Box.X + (w-oldW)*p.AnchorX
	y := s.Box.Y + (h-oldH)*p.AnchorY

	if blocked != nil && blocked(x, y, w, h) {
		return InflationBlocked
	}

	s.Rate = rate
	s.Box = Rect{X: x, Y: y, W: w, H: h}
	s.Mass, s.GravityScale, s.Restitution = BodyForRate(rate, p)
	s.Growing = dir > 0
	s.Direction = dir
	if dir > 0 {
		return InflationGrew
	}
	return InflationShrank
}
