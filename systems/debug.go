package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(_ *ecs.ECS) {
	if inpututil.IsKeyJustPressed(cfg.Input.DebugKey) {
		cfg.Debug.DrawGrid = !cfg.Debug.DrawGrid
	}
}

// DrawDebug outlines every object in the collision space and prints the
// player's body parameters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawGrid {
		return
	}
	if entry, ok := tags.Player.First(ecs.World); ok {
		line := bodyReadout(components.Player.Get(entry).Inflation)
		ebitenutil.DebugPrintAt(screen, line, int(cfg.HUD.Margin), screen.Bounds().Dy()-int(cfg.HUD.LineHeight)-int(cfg.HUD.Margin))
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := CameraOffset(ecs, float64(width), float64(height))

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY
		// Cull objects outside viewport
		if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvItem) {
			c = color.RGBA{0, 255, 0, 255}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}

func bodyReadout(s gamemath.InflationState) string {
	return fmt.Sprintf("rate %.2f  mass %.2f  gravity %.2f  bounce %.2f",
		s.Rate, s.Mass, s.GravityScale, s.Restitution)
}
