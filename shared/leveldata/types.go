// Package leveldata provides TMX level parsing and the tile collision probe.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "errors"

var (
	// ErrLevelNotFound is returned when a project has no level with the requested identifier.
	ErrLevelNotFound = errors.New("level not found")
	// ErrNoPlayerSpawn is returned when a level has no Player object.
	ErrNoPlayerSpawn = errors.New("level has no player spawn")
)

// Level holds everything the game needs from one TMX level.
type Level struct {
	Identifier    string
	Path          string // path inside the project fs, used for art rendering
	Grid          *TileGrid
	Entities      []EntitySpawn
	Player        EntitySpawn
	InflationRate float64 // 0 when the map does not set inflationRate
	PixelWidth    int
	PixelHeight   int
}

// EntitySpawn is one object from the entity group, keyed by its class name.
type EntitySpawn struct {
	Class      string
	X, Y, W, H float64
}

// Options selects the layer and group names a level uses.
type Options struct {
	CollisionLayer string
	EntityGroup    string
}

// DefaultOptions matches the layer names used by the shipped levels.
func DefaultOptions() Options {
	return Options{
		CollisionLayer: "Collision",
		EntityGroup:    "Entities",
	}
}
