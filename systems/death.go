package systems

import (
	"log"

	"github.com/automoto/balloon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KillPlayer records a death and asks for the current level to be reloaded.
// The player is frozen with a Death marker until the reload replaces it; killing
// an already dead player does nothing.
func KillPlayer(ecs *ecs.ECS, player *donburi.Entry, cause string) {
	if player.HasComponent(components.Death) {
		return
	}
	donburi.Add(player, components.Death, &components.DeathData{Cause: cause})

	progress := GetOrCreateProgress(ecs)
	progress.Deaths++
	RequestLevel(ecs, progress.CurrentLevel)
	GetOrCreateTickEvents(ecs).Deaths++

	log.Printf("Player dead (%s)... reload level", cause)
}
