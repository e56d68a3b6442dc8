package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

// SettingsStore reads and writes SavedSettings through gdata.
// A nil store loads defaults and saves nothing.
type SettingsStore struct {
	m *gdata.Manager
}

// OpenSettingsStore initializes the gdata manager for settings storage
func OpenSettingsStore() (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return &SettingsStore{m: m}, nil
}

// Load returns the saved settings, or nil when there are none yet.
func (s *SettingsStore) Load() (*SavedSettings, error) {
	if s == nil || s.m == nil {
		return nil, nil
	}

	data, err := s.m.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// Save writes settings to disk
func (s *SettingsStore) Save(settings *SavedSettings) error {
	if s == nil || s.m == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.m.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySavedSettings copies loaded settings into the Settings singleton.
func ApplySavedSettings(ecs *ecs.ECS, saved *SavedSettings) {
	settings := GetOrCreateSettings(ecs)
	if saved == nil {
		return
	}
	settings.SFXVolume = saved.SFXVolume
	settings.Muted = saved.Muted
	settings.Fullscreen = saved.Fullscreen
}

// UpdateSettings handles the settings hotkeys and writes changes back to the store.
func UpdateSettings(store *SettingsStore) ecs.System {
	return func(ecs *ecs.ECS) {
		settings := GetOrCreateSettings(ecs)
		if inpututil.IsKeyJustPressed(cfg.Input.MuteKey) {
			settings.Muted = !settings.Muted
			settings.Dirty = true
		}
		if inpututil.IsKeyJustPressed(cfg.Input.VolumeDownKey) {
			settings.SFXVolume = StepVolume(settings.SFXVolume, -1)
			settings.Dirty = true
		}
		if inpututil.IsKeyJustPressed(cfg.Input.VolumeUpKey) {
			settings.SFXVolume = StepVolume(settings.SFXVolume, 1)
			settings.Dirty = true
		}
		if inpututil.IsKeyJustPressed(cfg.Input.FullscreenKey) {
			settings.Fullscreen = !settings.Fullscreen
			ebiten.SetFullscreen(settings.Fullscreen)
			settings.Dirty = true
		}
		SaveSettingsIfDirty(ecs, store)
	}
}

// StepVolume moves v to the neighbouring entry of cfg.Settings.VolumeSteps.
func StepVolume(v float64, delta int) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return v
	}
	// nearest step to the current value
	cur := 0
	for i, s := range steps {
		if math.Abs(s-v) < math.Abs(steps[cur]-v) {
			cur = i
		}
	}
	next := min(max(cur+delta, 0), len(steps)-1)
	return steps[next]
}

// SaveSettingsIfDirty persists the Settings singleton when it changed.
func SaveSettingsIfDirty(ecs *ecs.ECS, store *SettingsStore) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	if err := store.Save(&SavedSettings{
		SFXVolume:  settings.SFXVolume,
		Muted:      settings.Muted,
		Fullscreen: settings.Fullscreen,
	}); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
		})
	}
	return components.Settings.Get(entry)
}
