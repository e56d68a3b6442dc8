package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Tuning is the subset of configuration that can be overridden from a TOML file.
// Zero values leave the compiled-in default untouched.
type Tuning struct {
	Player struct {
		InflationSpeed       float64 `toml:"inflation_speed"`
		MinInflationRate     float64 `toml:"min_inflation_rate"`
		MaxInflationRate     float64 `toml:"max_inflation_rate"`
		DefaultInflationRate float64 `toml:"default_inflation_rate"`
		AirDrainRate         float64 `toml:"air_drain_rate"`
		JumpVelocity         float64 `toml:"jump_velocity"`
		JumpHighTime         float64 `toml:"jump_high_time"`
		JumpHighAccel        float64 `toml:"jump_high_accel"`
		AccelGround          float64 `toml:"accel_ground"`
		AccelAir             float64 `toml:"accel_air"`
		AccelDeflation       float64 `toml:"accel_deflation"`
	} `toml:"player"`
	Physics struct {
		Gravity float64 `toml:"gravity"`
	} `toml:"physics"`
	Camera struct {
		Speed  float64 `toml:"speed"`
		MinVel float64 `toml:"min_vel"`
	} `toml:"camera"`
	Cue struct {
		ImpactThreshold float64 `toml:"impact_threshold"`
	} `toml:"cue"`
}

// LoadTuning decodes a TOML file and applies every non-zero value to the globals.
func LoadTuning(path string) error {
	var t Tuning
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return fmt.Errorf("decode tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("decode tuning %s: unknown keys %v", path, undecoded)
	}
	ApplyTuning(t)
	return nil
}

// ApplyTuning copies non-zero overrides into the global configuration.
func ApplyTuning(t Tuning) {
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}

	set(&Player.InflationSpeed, t.Player.InflationSpeed)
	set(&Player.MinInflationRate, t.Player.MinInflationRate)
	set(&Player.MaxInflationRate, t.Player.MaxInflationRate)
	set(&Player.DefaultInflationRate, t.Player.DefaultInflationRate)
	set(&Player.AirDrainRate, t.Player.AirDrainRate)
	set(&Player.JumpVelocity, t.Player.JumpVelocity)
	set(&Player.JumpHighTime, t.Player.JumpHighTime)
	set(&Player.JumpHighAccel, t.Player.JumpHighAccel)
	set(&Player.AccelGround, t.Player.AccelGround)
	set(&Player.AccelAir, t.Player.AccelAir)
	set(&Player.AccelDeflation, t.Player.AccelDeflation)
	set(&Physics.Gravity, t.Physics.Gravity)
	set(&Camera.Speed, t.Camera.Speed)
	set(&Camera.MinVel, t.Camera.MinVel)
	set(&Cue.ImpactThreshold, t.Cue.ImpactThreshold)
}
