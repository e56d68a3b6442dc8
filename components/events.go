package components

import (
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ImpactEvent is a contact raised by the integrator.
type ImpactEvent struct {
	Speed       float64 // |vx|+|vy| before the contact was resolved
	WasAirborne bool
}

// TickEventsData collects what happened during one tick (singleton).
// It is cleared at the end of every tick.
type TickEventsData struct {
	Inflation gamemath.InflationOutcome
	Jumped    bool
	Impacts   []ImpactEvent
	Deaths    int
	Touched   []string // kinds touched this tick, for logs and tests
}

func (d *TickEventsData) Reset() {
	d.Inflation = gamemath.InflationNone
	d.Jumped = false
	d.Impacts = d.Impacts[:0]
	d.Deaths = 0
	d.Touched = d.Touched[:0]
}

var TickEvents = donburi.NewComponentType[TickEventsData]()
