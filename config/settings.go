package config

// SettingsConfig contains user settings storage configuration
type SettingsConfig struct {
	AppName     string
	ItemKey     string
	VolumeSteps []float64
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "balloon",
		ItemKey:     "settings",
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
