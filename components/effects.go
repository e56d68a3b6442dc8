package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the black overlay shown while a level fades in.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32 // 1 = fully black
}

var Fade = donburi.NewComponentType[FadeData]()
