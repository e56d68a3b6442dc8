package components

import "github.com/yohamta/donburi"

// ProgressData is session-wide progress (singleton). Level loads never reset it,
// apart from the air gauge which starts empty on each level.
type ProgressData struct {
	CurrentLevel int
	Pending      int
	HasPending   bool
	Deaths       int
	Air          float64 // 0..1
}

var Progress = donburi.NewComponentType[ProgressData]()
