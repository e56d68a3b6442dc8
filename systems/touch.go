package systems

import (
	"math"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// touchFunc reacts to the player overlapping an item. It returns true when the
// item should be removed once dispatch is finished.
type touchFunc func(ecs *ecs.ECS, player, item *donburi.Entry) (remove bool)

var touchHandlers = map[cfg.EntityKind]touchFunc{
	cfg.KindDoor:     touchDoor,
	cfg.KindSpikes:   touchSpikes,
	cfg.KindButton:   touchButton,
	cfg.KindInflator: touchInflator,
	cfg.KindCrown:    touchCrown,
}

// UpdateTouches dispatches every item the player overlaps to its kind's handler.
func UpdateTouches(ecs *ecs.ECS) {
	entry, ok := livePlayer(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	events := GetOrCreateTickEvents(ecs)

	check := obj.Check(0, 0, tags.ResolvItem)
	if check == nil {
		return
	}

	var removals []*donburi.Entry
	for _, other := range check.ObjectsByTags(tags.ResolvItem) {
		item, ok := other.Data.(*donburi.Entry)
		if !ok || !item.Valid() || !obj.Overlaps(other) {
			continue
		}
		kind := components.Item.Get(item).Kind
		handler, ok := touchHandlers[kind]
		if !ok {
			continue
		}
		events.Touched = append(events.Touched, kind.String())
		if handler(ecs, entry, item) {
			removals = append(removals, item)
		}
		if entry.HasComponent(components.Death) {
			break
		}
	}

	for _, item := range removals {
		RemoveItem(ecs, item)
	}
}

// RemoveItem takes an item out of the collision space and the world.
func RemoveItem(ecs *ecs.ECS, item *donburi.Entry) {
	if !item.Valid() {
		return
	}
	if item.HasComponent(components.Object) {
		if obj := components.Object.Get(item).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	ecs.World.Remove(item.Entity())
}

func touchDoor(ecs *ecs.ECS, _, _ *donburi.Entry) bool {
	RequestNextLevel(ecs)
	return false
}

func touchSpikes(ecs *ecs.ECS, player, _ *donburi.Entry) bool {
	KillPlayer(ecs, player, "spikes")
	return false
}

// touchButton removes every spike in the level, then the button itself.
func touchButton(ecs *ecs.ECS, _, _ *donburi.Entry) bool {
	var spikes []*donburi.Entry
	tags.Spikes.Each(ecs.World, func(e *donburi.Entry) {
		spikes = append(spikes, e)
	})
	for _, e := range spikes {
		RemoveItem(ecs, e)
	}
	return true
}

func touchInflator(ecs *ecs.ECS, _, _ *donburi.Entry) bool {
	GetOrCreateProgress(ecs).Air = 1
	return true
}

// touchCrown doubles the player's original size for the rest of the level.
// The body is capped at the new original size and resized around its centre. When
// the bigger box does not fit, the box stays as it is until the next accepted
// inflation step.
func touchCrown(ecs *ecs.ECS, player, _ *donburi.Entry) bool {
	data := components.Player.Get(player)
	obj := components.Object.Get(player)
	p := InflationParams()

	data.Inflation.OriginalW *= 2
	data.Inflation.OriginalH *= 2
	data.Crowned = true

	w := math.Min(gamemath.SizeForRate(data.Inflation.OriginalW, data.Inflation.Rate, p), data.Inflation.OriginalW)
	h := math.Min(gamemath.SizeForRate(data.Inflation.OriginalH, data.Inflation.Rate, p), data.Inflation.OriginalH)
	x := obj.X + (w-obj.W)*p.AnchorX
	y := obj.Y + (h-obj.H)*p.AnchorY
	if !levelProbe(ecs)(x, y, w, h) {
		data.Inflation.Box = gamemath.Rect{X: x, Y: y, W: w, H: h}
		obj.SetRect(data.Inflation.Box)
	}

	if player.HasComponent(components.Sprite) {
		components.Sprite.Get(player).Color = cfg.Palette.Crowned
	}
	return true
}
