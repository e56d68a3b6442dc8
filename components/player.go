package components

import (
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData is the balloon's per-level state. It is rebuilt on every level load.
type PlayerData struct {
	Inflation gamemath.InflationState
	Jump      gamemath.JumpData
	Facing    Vector // last non-zero directional input
	Crowned   bool
}

var Player = donburi.NewComponentType[PlayerData]()
