package systems

import (
	"fmt"
	"math"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
)

// DrawHUD renders the level name, death count and the stored air.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	progress := GetOrCreateProgress(ecs)
	margin := cfg.HUD.Margin

	if fonts.Loaded(fonts.HUD) {
		face := fonts.HUD.Get()
		line := fmt.Sprintf("%s   deaths: %d", LevelIdentifier(progress.CurrentLevel), progress.Deaths)
		text.Draw(screen, line, face, int(margin), int(margin+cfg.HUD.FontSize), cfg.HUD.DeathColor)
	}

	if progress.Air <= 0 {
		return
	}
	barY := margin + cfg.HUD.LineHeight + margin/2

	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(margin), float32(barY),
		float32(hudBarWidth), float32(hudBarHeight),
		cfg.Palette.Background, false)

	ratio := float32(math.Min(progress.Air, 1))
	vector.DrawFilledRect(screen,
		float32(margin), float32(barY),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		cfg.HUD.AirColor, false)

	if fonts.Loaded(fonts.HUDSmall) {
		label := fmt.Sprintf("air %d%%", int(math.Round(progress.Air*100)))
		text.Draw(screen, label, fonts.HUDSmall.Get(), int(margin)+hudBarWidth+int(margin), int(barY)+hudBarHeight, cfg.HUD.AirColor)
	}
}

// DrawPlayerMarker rings the player while they are crowned.
func DrawPlayerMarker(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(ecs.World)
	if !ok || !components.Player.Get(entry).Crowned {
		return
	}
	o := components.Object.Get(entry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := CameraOffset(ecs, float64(width), float64(height))
	cx, cy := float32(o.X+o.W/2+offX), float32(o.Y+o.H/2+offY)
	r := float32(math.Max(o.W, o.H)/2) + 2
	vector.StrokeCircle(screen, cx, cy, r, 2, cfg.Palette.Crown, true)
}
