package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InflationParams builds the inflation tuning from the player config.
func InflationParams() gamemath.InflationParams {
	p := cfg.Player
	return gamemath.InflationParams{
		Speed:          p.InflationSpeed,
		MinRate:        p.MinInflationRate,
		MaxRate:        p.MaxInflationRate,
		MaxScale:       p.MaxScale,
		DrainRate:      p.AirDrainRate,
		AnchorX:        p.AnchorX,
		AnchorY:        p.AnchorY,
		MinMass:        p.MinMass,
		MaxMass:        p.MaxMass,
		MinGravity:     p.MinGravity,
		MaxGravity:     p.MaxGravity,
		MinRestitution: p.MinRestitution,
		MaxRestitution: p.MaxRestitution,
		RestitutionDiv: p.RestitutionDiv,
	}
}

// JumpParams builds the jump tuning from the player config.
func JumpParams() gamemath.JumpParams {
	return gamemath.JumpParams{
		Velocity:  cfg.Player.JumpVelocity,
		HighTime:  cfg.Player.JumpHighTime,
		HighAccel: cfg.Player.JumpHighAccel,
	}
}

// livePlayer returns the player entry unless it is missing or dead.
func livePlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok || entry.HasComponent(components.Death) {
		return nil, false
	}
	return entry, true
}

// UpdateRestart kills the player when Restart is pressed. If the player is already
// dead, for example because the reload failed, it asks for the current level again.
func UpdateRestart(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	if !input.JustPressed(cfg.ActionRestart) {
		return
	}

	if entry, ok := livePlayer(ecs); ok {
		KillPlayer(ecs, entry, "restart")
		return
	}
	progress := GetOrCreateProgress(ecs)
	RequestLevel(ecs, progress.CurrentLevel)
}

// UpdateMovement turns directional input into acceleration and the facing normal.
func UpdateMovement(ecs *ecs.ECS) {
	entry, ok := livePlayer(ecs)
	if !ok {
		return
	}
	input := GetOrCreateInput(ecs)
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)

	physics.AccelX, physics.AccelY = 0, 0
	if physics.OnGround {
		physics.Friction = cfg.Player.FrictionGround
	} else {
		physics.Friction = cfg.Player.FrictionAir
	}

	accel := cfg.Player.AccelAir
	if physics.OnGround {
		accel = cfg.Player.AccelGround
	}

	// dir is this tick's input; player.Facing remembers the last non-zero x.
	var dir components.Vector
	switch {
	case input.Pressed(cfg.ActionRight):
		physics.AccelX = accel
		dir.X = 1
	case input.Pressed(cfg.ActionLeft):
		physics.AccelX = -accel
		dir.X = -1
	}
	if dir.X != 0 {
		player.Facing.X = dir.X
	}

	switch {
	case input.Pressed(cfg.ActionUp):
		dir.Y = -1
	case input.Pressed(cfg.ActionDown):
		dir.Y = 1
	}
	player.Facing.Y = dir.Y

	if dir == (components.Vector{}) {
		dir = player.Facing
	}

	// Deflating pushes the balloon like escaping air.
	if player.Inflation.Direction < 0 {
		physics.AccelX += dir.X * cfg.Player.AccelDeflation
		physics.AccelY += dir.Y * cfg.Player.AccelDeflation
	}
}
