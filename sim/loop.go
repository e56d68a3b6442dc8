package sim

import (
	"log"
	"time"
)

// GameLoop steps a simulation on a wall-clock ticker.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	onTick   func(tick int) bool
	stopChan chan struct{}
}

// NewGameLoop creates a loop running sim at tickRate. onTick runs after every
// step; returning false ends the loop.
func NewGameLoop(sim *Simulation, tickRate int, onTick func(tick int) bool) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or onTick returns false.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for tick := 0; ; {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.sim.Step()
			tick++
			if g.onTick != nil && !g.onTick(tick) {
				log.Println("Game loop finished")
				return
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
