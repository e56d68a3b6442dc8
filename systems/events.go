package systems

import (
	"github.com/automoto/balloon/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTickEvents clears the per-tick event record. Runs last.
func UpdateTickEvents(ecs *ecs.ECS) {
	GetOrCreateTickEvents(ecs).Reset()
}

// GetOrCreateTickEvents returns the singleton TickEvents component, creating if needed.
func GetOrCreateTickEvents(ecs *ecs.ECS) *components.TickEventsData {
	entry, ok := components.TickEvents.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.TickEvents))
		components.TickEvents.SetValue(entry, components.TickEventsData{
			Impacts: make([]components.ImpactEvent, 0, 4),
		})
	}
	return components.TickEvents.Get(entry)
}
