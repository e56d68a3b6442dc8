package factory

import (
	"fmt"
	"log"

	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/systems"
	"github.com/automoto/balloon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArtFunc renders a level's tile art. A nil ArtFunc draws levels from their grid.
type ArtFunc func(level *leveldata.Level) (*ebiten.Image, error)

// Loader builds level entities from a TMX project. It implements systems.LevelLoader.
type Loader struct {
	Project *leveldata.Project
	Art     ArtFunc
}

// NewLoader returns a loader for project.
func NewLoader(project *leveldata.Project) *Loader {
	return &Loader{Project: project}
}

// LoadLevel replaces every level-scoped entity with the contents of level identifier.
// Lookup and validation happen before anything is removed, so a failed load keeps the
// current level.
func (l *Loader) LoadLevel(ecs *ecs.ECS, identifier string) error {
	if l == nil || l.Project == nil {
		return fmt.Errorf("load %s: no level project", identifier)
	}
	level, err := l.Project.Level(identifier)
	if err != nil {
		return fmt.Errorf("load %s: %w", identifier, err)
	}
	if level.Grid == nil {
		return fmt.Errorf("load %s: level has no collision grid", identifier)
	}
	kinds := make([]cfg.EntityKind, len(level.Entities))
	for i, spawn := range level.Entities {
		kind, err := ItemKind(spawn)
		if err != nil {
			return fmt.Errorf("load %s: %w", identifier, err)
		}
		kinds[i] = kind
	}

	var art *ebiten.Image
	if l.Art != nil {
		if art, err = l.Art(level); err != nil {
			log.Printf("Warning: level art for %s: %v", identifier, err)
			art = nil
		}
	}

	ClearLevel(ecs)

	cs := level.Grid.CellSize()
	CreateSpace(ecs, level.PixelWidth, level.PixelHeight, int(cs))
	CreateLevel(ecs, level, art)
	CreateWalls(ecs, level.Grid)
	for i, spawn := range level.Entities {
		CreateItem(ecs, kinds[i], spawn, cs)
	}

	rate := level.InflationRate
	if rate == 0 {
		rate = cfg.Player.DefaultInflationRate
	}
	spawn := level.Player
	player := CreatePlayer(ecs, spawn.X+spawn.W/2, spawn.Y+spawn.H/2, rate, systems.InflationParams())
	systems.FollowCamera(ecs, player, true)
	return nil
}

// CreateLevel stores the loaded level as the Level singleton.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, art *ebiten.Image) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level: level, Art: art})
	return entry
}

// ClearLevel removes every level-scoped entity.
func ClearLevel(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	tags.LevelEntity.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	for _, e := range entries {
		if e.HasComponent(components.Level) {
			if art := components.Level.Get(e).Art; art != nil {
				art.Deallocate()
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
