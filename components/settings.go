package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the user's persisted settings (singleton).
type SettingsData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	Fullscreen bool
	Dirty      bool // changed since the last save
}

// EffectiveVolume is the volume cues should play at.
func (s *SettingsData) EffectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.SFXVolume
}

var Settings = donburi.NewComponentType[SettingsData]()
