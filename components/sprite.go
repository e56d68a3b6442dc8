package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteShape selects how an entity without art is drawn.
type SpriteShape int

const (
	ShapeRect SpriteShape = iota
	ShapeCircle
	ShapeSpikes
)

type SpriteData struct {
	Color color.RGBA
	Shape SpriteShape
}

var Sprite = donburi.NewComponentType[SpriteData]()
