package components

import "github.com/yohamta/donburi"

// DeathData marks a player that has died and is waiting for its level to reload.
// A second kill while the marker is present is ignored.
type DeathData struct {
	Cause string
}

var Death = donburi.NewComponentType[DeathData]()
