package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInflation grows or shrinks the player from the Inflate/Deflate actions.
// Every candidate size is checked against the level grid before it is committed.
// Without a live player nothing is requested, so the tick counts as stopped.
func UpdateInflation(ecs *ecs.ECS) {
	events := GetOrCreateTickEvents(ecs)
	entry, ok := livePlayer(ecs)
	if !ok {
		events.Inflation = gamemath.InflationStopped
		return
	}
	input := GetOrCreateInput(ecs)
	progress := GetOrCreateProgress(ecs)
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	p := InflationParams()
	dir := gamemath.InflationDirection(
		input.Pressed(cfg.ActionInflate),
		input.Pressed(cfg.ActionDeflate),
		player.Inflation.Rate, p,
	)

	// The integrator owns position; inflation owns size.
	player.Inflation.Box.X, player.Inflation.Box.Y = obj.X, obj.Y
	before := player.Inflation.Box

	outcome := gamemath.StepInflation(p, &player.Inflation, dir, cfg.TickSeconds(), &progress.Air, levelProbe(ecs))
	events.Inflation = outcome

	if player.Inflation.Box != before {
		obj.SetRect(player.Inflation.Box)
	}
}

// levelProbe returns the collision probe for the loaded level.
// Without a level every box is blocked.
func levelProbe(ecs *ecs.ECS) gamemath.ProbeFunc {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return func(x, y, w, h float64) bool { return true }
	}
	level := components.Level.Get(entry).Level
	if level == nil || level.Grid == nil {
		return func(x, y, w, h float64) bool { return true }
	}
	grid := level.Grid
	return func(x, y, w, h float64) bool {
		return leveldata.Blocked(grid, x, y, w, h)
	}
}
