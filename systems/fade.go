package systems

import (
	"image/color"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartFadeIn begins the black-to-level fade shown after a level load.
func StartFadeIn(ecs *ecs.ECS) {
	fade := GetOrCreateFade(ecs)
	if cfg.Transition.FadeInSeconds <= 0 {
		fade.Tween, fade.Alpha = nil, 0
		return
	}
	fade.Tween = gween.New(1, 0, float32(cfg.Transition.FadeInSeconds), ease.OutQuad)
	fade.Alpha = 1
}

// UpdateFade advances the level fade.
func UpdateFade(ecs *ecs.ECS) {
	fade := GetOrCreateFade(ecs)
	if fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(float32(cfg.TickSeconds()))
	fade.Alpha = alpha
	if finished {
		fade.Tween, fade.Alpha = nil, 0
	}
}

// DrawFade covers the screen while a level fades in.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	fade := GetOrCreateFade(ecs)
	if fade.Alpha <= 0 {
		return
	}
	b := screen.Bounds()
	c := color.RGBA{A: uint8(fade.Alpha * 255)}
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

// GetOrCreateFade returns the singleton Fade component, creating if needed.
func GetOrCreateFade(ecs *ecs.ECS) *components.FadeData {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Fade))
	}
	return components.Fade.Get(entry)
}
