package components

import (
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's box.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetRect moves and resizes the object, keeping its collision shape in sync.
func (o ObjectData) SetRect(r gamemath.Rect) {
	o.X, o.Y = r.X, r.Y
	if o.W != r.W || o.H != r.H {
		o.W, o.H = r.W, r.H
		o.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	}
	o.Update()
}

// Overlaps reports whether two objects' boxes intersect.
func (o ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && other.X < o.X+o.W &&
		o.Y < other.Y+other.H && other.Y < o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
