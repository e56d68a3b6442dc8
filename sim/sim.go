// Package sim wires the per-tick systems into a self-contained simulation.
// Every piece of state lives in the simulation's own donburi world, so any
// number of simulations can run side by side.
package sim

import (
	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation owns one game world and the systems that step it.
type Simulation struct {
	ECS    *ecs.ECS
	loader systems.LevelLoader
}

// New builds a simulation. input and sink may be nil: no input holds nothing,
// no sink plays nothing.
func New(loader systems.LevelLoader, input systems.InputSource, sink components.AudioSink) *Simulation {
	e := ecs.NewECS(donburi.NewWorld())

	// Singletons first so every system finds them.
	systems.GetOrCreateProgress(e)
	systems.GetOrCreateTickEvents(e)
	systems.GetOrCreateInput(e)
	systems.GetOrCreateSettings(e)
	systems.GetOrCreateCamera(e)
	systems.GetOrCreateFade(e)
	systems.SetAudioSink(e, sink)

	e.AddSystem(systems.UpdateInput(input))
	e.AddSystem(systems.UpdateRestart)
	e.AddSystem(systems.UpdateInflation)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateJump)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateTouches)
	e.AddSystem(systems.UpdateCues)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateFade)
	e.AddSystem(systems.UpdateLevelFlow(loader))
	e.AddSystem(systems.UpdateTickEvents)

	return &Simulation{ECS: e, loader: loader}
}

// Start loads level index immediately.
func (s *Simulation) Start(index int) error {
	return systems.LoadLevel(s.ECS, s.loader, index)
}

// Step advances the world by one fixed tick.
func (s *Simulation) Step() {
	s.ECS.Update()
}

// Progress returns a copy of the session progress.
func (s *Simulation) Progress() components.ProgressData {
	return *systems.GetOrCreateProgress(s.ECS)
}

// Player returns the player entity of the current level.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	return components.Player.First(s.ECS.World)
}
