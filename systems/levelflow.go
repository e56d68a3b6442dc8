package systems

import (
	"fmt"
	"log"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/yohamta/donburi/ecs"
)

// LevelLoader replaces the level-scoped entities with the level named identifier.
// On error the world must be left as it was.
type LevelLoader interface {
	LoadLevel(ecs *ecs.ECS, identifier string) error
}

// LevelIdentifier formats a level index the way level files are named.
func LevelIdentifier(index int) string {
	return fmt.Sprintf(cfg.Level.IdentifierFormat, index)
}

// RequestLevel schedules a load of level index at the end of the tick.
// A later request in the same tick replaces it.
func RequestLevel(ecs *ecs.ECS, index int) {
	progress := GetOrCreateProgress(ecs)
	progress.Pending = index
	progress.HasPending = true
}

// RequestNextLevel schedules the level after the current one.
func RequestNextLevel(ecs *ecs.ECS) {
	RequestLevel(ecs, GetOrCreateProgress(ecs).CurrentLevel+1)
}

// UpdateLevelFlow applies the pending level request. It runs once per tick after
// every entity system, so whatever requested a level last this tick wins.
func UpdateLevelFlow(loader LevelLoader) ecs.System {
	return func(ecs *ecs.ECS) {
		progress := GetOrCreateProgress(ecs)
		if !progress.HasPending {
			return
		}
		target := progress.Pending
		progress.HasPending = false
		progress.Pending = 0

		if err := LoadLevel(ecs, loader, target); err != nil {
			log.Printf("Can't load level %d: %v", target, err)
		}
	}
}

// LoadLevel loads level index now and resets the level-scoped progress on success.
func LoadLevel(ecs *ecs.ECS, loader LevelLoader, index int) error {
	if loader == nil {
		return fmt.Errorf("load level %d: no loader", index)
	}
	identifier := LevelIdentifier(index)
	if err := loader.LoadLevel(ecs, identifier); err != nil {
		return err
	}

	progress := GetOrCreateProgress(ecs)
	progress.CurrentLevel = index
	progress.Air = 0
	StartFadeIn(ecs)

	log.Printf("Here we go.... %s", identifier)
	return nil
}

// GetOrCreateProgress returns the singleton Progress component, creating if needed.
func GetOrCreateProgress(ecs *ecs.ECS) *components.ProgressData {
	entry, ok := components.Progress.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Progress))
		components.Progress.SetValue(entry, components.ProgressData{
			CurrentLevel: cfg.Level.FirstLevel,
		})
	}
	return components.Progress.Get(entry)
}
