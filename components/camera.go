package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // centre of the view in world space
	Target   *donburi.Entry
	Snap     bool // jump straight to the target on the next update
}

var Camera = donburi.NewComponentType[CameraData]()
