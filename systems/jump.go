package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump runs the jump state machine against the ground flag from the last physics step.
func UpdateJump(ecs *ecs.ECS) {
	entry, ok := livePlayer(ecs)
	if !ok {
		return
	}
	input := GetOrCreateInput(ecs)
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)

	vy, jumped := gamemath.StepJump(JumpParams(), &player.Jump, gamemath.JumpInput{
		JustPressed: input.JustPressed(cfg.ActionJump),
		Held:        input.Pressed(cfg.ActionJump),
		Grounded:    physics.OnGround,
	}, physics.SpeedY, cfg.TickSeconds())
	physics.SpeedY = vy

	if jumped {
		physics.OnGround = false
		GetOrCreateTickEvents(ecs).Jumped = true
	}
}
