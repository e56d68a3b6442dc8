package factory

import (
	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return wall
}

// CreateWalls adds one wall per horizontal run of solid cells.
func CreateWalls(ecs *ecs.ECS, grid *leveldata.TileGrid) int {
	cs := grid.CellSize()
	count := 0
	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); {
			if !grid.Solid(cx, cy) {
				cx++
				continue
			}
			start := cx
			for cx < grid.Width() && grid.Solid(cx, cy) {
				cx++
			}
			CreateWall(ecs, float64(start)*cs, float64(cy)*cs, float64(cx-start)*cs, cs)
			count++
		}
	}
	return count
}
