package systems

import (
	"math"

	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// FollowCamera points the camera at target. With snap the next update jumps
// straight there instead of easing.
func FollowCamera(ecs *ecs.ECS, target *donburi.Entry, snap bool) {
	camera := GetOrCreateCamera(ecs)
	camera.Target = target
	camera.Snap = snap
}

func UpdateCamera(e *ecs.ECS) {
	camera := GetOrCreateCamera(e)
	if camera.Target == nil || !camera.Target.Valid() || !camera.Target.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(camera.Target)
	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2

	// Keep the view inside the level when the level is bigger than the screen
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).Level; level != nil {
			targetX = clampAxis(targetX, float64(config.C.Width), float64(level.PixelWidth))
			targetY = clampAxis(targetY, float64(config.C.Height), float64(level.PixelHeight))
		}
	}

	if camera.Snap {
		camera.Position = dmath.Vec2{X: targetX, Y: targetY}
		camera.Snap = false
		return
	}

	dt := config.TickSeconds()
	camera.Position.X = approach(camera.Position.X, targetX, dt)
	camera.Position.Y = approach(camera.Position.Y, targetY, dt)
}

// approach moves from toward to at Camera.Speed times the distance per second,
// never slower than Camera.MinVel and never past to.
func approach(from, to, dt float64) float64 {
	diff := to - from
	if diff == 0 {
		return to
	}
	vel := math.Max(math.Abs(diff)*config.Camera.Speed, config.Camera.MinVel)
	step := vel * dt
	if step >= math.Abs(diff) {
		return to
	}
	return from + math.Copysign(step, diff)
}

func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}

// CameraOffset is the translation that puts the camera centre in the middle of the screen.
func CameraOffset(e *ecs.ECS, screenW, screenH float64) (float64, float64) {
	camera := GetOrCreateCamera(e)
	return math.Round(screenW/2 - camera.Position.X), math.Round(screenH/2 - camera.Position.Y)
}

// GetOrCreateCamera returns the singleton Camera component, creating if needed.
func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Camera))
	}
	return components.Camera.Get(entry)
}
