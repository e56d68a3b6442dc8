package systems

import (
	"math"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the player: acceleration, scaled gravity, friction, then
// axis-separated moves against solids with a restitution bounce. Contacts are recorded
// as impact events.
func UpdatePhysics(ecs *ecs.ECS) {
	entry, ok := livePlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object
	events := GetOrCreateTickEvents(ecs)
	dt := cfg.TickSeconds()

	physics.SpeedX += physics.AccelX * dt
	physics.SpeedY += (physics.AccelY + cfg.Physics.Gravity*player.Inflation.GravityScale) * dt
	physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction, dt)
	physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, cfg.Physics.MaxSpeed)
	physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, cfg.Physics.MaxSpeed)

	wasAirborne := !physics.OnGround
	restitution := player.Inflation.Restitution

	if speed, hit := resolveHorizontal(physics, obj, dt, restitution); hit {
		events.Impacts = append(events.Impacts, components.ImpactEvent{Speed: speed, WasAirborne: wasAirborne})
	}
	if speed, hit := resolveVertical(physics, obj, dt, restitution); hit {
		events.Impacts = append(events.Impacts, components.ImpactEvent{Speed: speed, WasAirborne: wasAirborne})
	}
	obj.Update()
}

// resolveHorizontal moves the object along x, stopping at the first solid that
// overlaps it vertically. It returns the pre-contact speed when it hit something.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dt, restitution float64) (float64, bool) {
	dx := physics.SpeedX * dt
	if dx == 0 {
		return 0, false
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return 0, false
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if object.Y+object.H <= solid.Y || object.Y >= solid.Y+solid.H {
			continue
		}
		speed := gamemath.ImpactSpeed(physics.SpeedX, physics.SpeedY)
		object.X += check.ContactWithObject(solid).X()
		physics.SpeedX = gamemath.Bounce(physics.SpeedX, restitution, cfg.Physics.MinBounceSpeed)
		return speed, true
	}

	object.X += dx
	return 0, false
}

// resolveVertical moves the object along y. A downward contact that does not bounce
// grounds the object. The check reaches one pixel further down so resting contact is seen.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dt, restitution float64) (float64, bool) {
	physics.OnGround = false
	dy := physics.SpeedY * dt

	checkDistance := dy
	if dy >= 0 {
		checkDistance += cfg.Physics.GroundProbeDepth
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return 0, false
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if object.X+object.W <= solid.X || object.X >= solid.X+solid.W {
			continue
		}
		contact := check.ContactWithObject(solid).Y()
		if math.Abs(dy)+cfg.Physics.ImpactEpsilon < math.Abs(contact) {
			// the surface is inside the probe margin but out of reach this tick
			break
		}
		speed := gamemath.ImpactSpeed(physics.SpeedX, physics.SpeedY)
		object.Y += contact
		physics.SpeedY = gamemath.Bounce(physics.SpeedY, restitution, cfg.Physics.MinBounceSpeed)
		if dy >= 0 && physics.SpeedY == 0 {
			physics.OnGround = true
		}
		return speed, true
	}

	object.Y += dy
	return 0, false
}
