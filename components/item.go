package components

import (
	cfg "github.com/automoto/balloon/config"
	"github.com/yohamta/donburi"
)

// ItemData is a level entity the player can touch.
type ItemData struct {
	Kind cfg.EntityKind
}

var Item = donburi.NewComponentType[ItemData]()
