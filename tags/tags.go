package tags

import (
	cfg "github.com/automoto/balloon/config"
	"github.com/yohamta/donburi"
)

var (
	Player   = donburi.NewTag().SetName("Player")
	Wall     = donburi.NewTag().SetName("Wall")
	Door     = donburi.NewTag().SetName("Door")
	Spikes   = donburi.NewTag().SetName("Spikes")
	Button   = donburi.NewTag().SetName("Button")
	Inflator = donburi.NewTag().SetName("Inflator")
	Crown    = donburi.NewTag().SetName("Crown")

	// LevelEntity marks everything a level load removes.
	LevelEntity = donburi.NewTag().SetName("LevelEntity")
)

var byKind = map[cfg.EntityKind]*donburi.ComponentType[donburi.Tag]{
	cfg.KindPlayer:   Player,
	cfg.KindDoor:     Door,
	cfg.KindSpikes:   Spikes,
	cfg.KindButton:   Button,
	cfg.KindInflator: Inflator,
	cfg.KindCrown:    Crown,
}

// ForKind returns the tag that indexes entities of kind k.
func ForKind(k cfg.EntityKind) (*donburi.ComponentType[donburi.Tag], bool) {
	t, ok := byKind[k]
	return t, ok
}

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvItem   = "item"
)
