package systems

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource is polled once per tick for each action.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// KeyboardInput reads cfg.Input bindings from the keyboard and standard-layout gamepads.
type KeyboardInput struct {
	gamepadIDs []ebiten.GamepadID
}

func (k *KeyboardInput) Pressed(action cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}

	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// UpdateInput samples source into the Input singleton.
// Must run BEFORE every system that reads actions.
func UpdateInput(source InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := GetOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then resample current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		if source == nil {
			return
		}
		for a := cfg.ActionNone + 1; a < cfg.ActionCount; a++ {
			input.Current[a] = source.Pressed(a)
		}
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
