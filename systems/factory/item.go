package factory

import (
	"fmt"

	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var itemSprites = map[cfg.EntityKind]components.SpriteData{
	cfg.KindDoor:     {Shape: components.ShapeRect},
	cfg.KindSpikes:   {Shape: components.ShapeSpikes},
	cfg.KindButton:   {Shape: components.ShapeRect},
	cfg.KindInflator: {Shape: components.ShapeCircle},
	cfg.KindCrown:    {Shape: components.ShapeCircle},
}

func itemColor(kind cfg.EntityKind) components.SpriteData {
	sprite := itemSprites[kind]
	switch kind {
	case cfg.KindDoor:
		sprite.Color = cfg.Palette.Door
	case cfg.KindSpikes:
		sprite.Color = cfg.Palette.Spikes
	case cfg.KindButton:
		sprite.Color = cfg.Palette.Button
	case cfg.KindInflator:
		sprite.Color = cfg.Palette.Inflator
	case cfg.KindCrown:
		sprite.Color = cfg.Palette.Crown
	}
	return sprite
}

// ItemKind resolves the entity kind a spawn's class names. The player is not an item.
func ItemKind(spawn leveldata.EntitySpawn) (cfg.EntityKind, error) {
	kind, ok := cfg.KindByName(spawn.Class)
	if !ok || kind == cfg.KindPlayer {
		return cfg.KindNone, fmt.Errorf("unknown entity class %q", spawn.Class)
	}
	if _, ok := tags.ForKind(kind); !ok {
		return cfg.KindNone, fmt.Errorf("no tag for entity kind %s", kind)
	}
	return kind, nil
}

// CreateItem spawns a touchable entity of a kind returned by ItemKind.
// Point objects get a one-cell box.
func CreateItem(ecs *ecs.ECS, kind cfg.EntityKind, spawn leveldata.EntitySpawn, cellSize float64) *donburi.Entry {
	kindTag, _ := tags.ForKind(kind)

	w, h := spawn.W, spawn.H
	if w <= 0 || h <= 0 {
		w, h = cellSize, cellSize
	}

	item := archetypes.Item.Spawn(ecs, kindTag)
	obj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvItem)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = item

	components.Object.SetValue(item, components.ObjectData{Object: obj})
	components.Item.SetValue(item, components.ItemData{Kind: kind})
	components.Sprite.SetValue(item, itemColor(kind))
	addToSpace(ecs, obj)
	return item
}
