package components

import (
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData is the currently loaded level (singleton).
type LevelData struct {
	Level *leveldata.Level
	// Art is the pre-rendered tile art, nil when the level is drawn from its grid.
	Art *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
