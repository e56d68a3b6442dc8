package archetypes

import (
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.LevelEntity,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		tags.LevelEntity,
		components.Object,
	)
	Item = newArchetype(
		tags.LevelEntity,
		components.Item,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		tags.LevelEntity,
		components.Space,
	)
	Level = newArchetype(
		tags.LevelEntity,
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Progress = newArchetype(
		components.Progress,
	)
	Input = newArchetype(
		components.Input,
	)
	TickEvents = newArchetype(
		components.TickEvents,
	)
	Cue = newArchetype(
		components.Cue,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Fade = newArchetype(
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
