package components

import (
	cfg "github.com/automoto/balloon/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed is computed on demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

func (d *InputData) JustReleased(a cfg.ActionID) bool {
	return !d.Current[a] && d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
