package factory

import (
	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the balloon centred on (cx, cy) at the given inflation rate.
func CreatePlayer(ecs *ecs.ECS, cx, cy, rate float64, p gamemath.InflationParams) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	state := gamemath.NewInflationState(0, 0, cfg.Player.BaseWidth, cfg.Player.BaseHeight, rate, p)
	state.Box.X = cx - state.Box.W/2
	state.Box.Y = cy - state.Box.H/2

	obj := resolv.NewObject(state.Box.X, state.Box.Y, state.Box.W, state.Box.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, state.Box.W, state.Box.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Inflation: state,
		Jump:      gamemath.JumpData{CanJump: true},
		Facing:    components.Vector{X: 1, Y: 0},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Friction: cfg.Player.FrictionAir,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Color: cfg.Palette.Player,
		Shape: components.ShapeCircle,
	})

	addToSpace(ecs, obj)
	return player
}
