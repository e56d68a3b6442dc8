package gamemath

// JumpPhase is the jump state machine position.
type JumpPhase int

const (
	JumpGroundedReady JumpPhase = iota
	JumpAirborne
	JumpRisingCharged
)

func (p JumpPhase) String() string {
	switch p {
	case JumpAirborne:
		return "airborne"
	case JumpRisingCharged:
		return "rising"
	}
	return "grounded"
}

// JumpParams holds jump tuning.
type JumpParams struct {
	Velocity  float64 // initial upward speed
	HighTime  float64 // seconds of charge window
	HighAccel float64 // extra upward acceleration while charging
}

// JumpData is the per-player jump state.
type JumpData struct {
	Phase   JumpPhase
	CanJump bool
	Charge  float64 // seconds of boost left
}

// JumpInput is the per-tick input the jump controller reads.
type JumpInput struct {
	JustPressed bool
	Held        bool
	Grounded    bool
}

// StepJump advances the jump state and returns the new vertical velocity.
// jumped is true on the tick the jump starts.
func StepJump(p JumpParams, s *JumpData, in JumpInput, vy, dt float64) (float64, bool) {
	if in.JustPressed && in.Grounded && s.CanJump {
		s.CanJump = false
		s.Charge = p.HighTime
		s.Phase = JumpRisingCharged
		return -p.Velocity, true
	}

	if s.Phase == JumpRisingCharged && in.Held && s.Charge > 0 {
		s.Charge -= dt
		f := dt
		if s.Charge < 0 {
			f = dt + s.Charge
			s.Charge = 0
		}
		vy -= p.HighAccel * f
		if s.Charge > 0 {
			return vy, false
		}
	}

	s.Charge = 0
	if in.Grounded {
		s.Phase = JumpGroundedReady
	} else {
		s.Phase = JumpAirborne
	}
	// Holding the button never re-arms, so a held jump cannot repeat.
	if !in.Held {
		s.CanJump = in.Grounded
	}
	return vy, false
}
