package config

import "time"

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// CueConfig holds the pitch, volume and timing for each gameplay cue
type CueConfig struct {
	ImpactThreshold float64 // |vx|+|vy| above which an airborne landing is audible
	ImpactVolume    float64
	ImpactRateMin   float64
	ImpactRateMax   float64 // exclusive

	GrowthVolume    float64
	GrowthRate      float64
	GrowthLoopStart time.Duration
	GrowthLoopEnd   time.Duration
	GrowthFade      time.Duration

	ShrinkVolume   float64
	ShrinkRate     float64
	ShrinkCooldown time.Duration // a playing shrink cue younger than this suppresses a new one

	DeathVolume float64
	DeathRate   float64
}

// SoundConfig maps cues to clip paths
type SoundConfig struct {
	ImpactClips []string
	InflateClip string
	DeathClip   string
}

var (
	Audio AudioConfig
	Cue   CueConfig
	Sound SoundConfig
)

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Cue = CueConfig{
		ImpactThreshold: 120,
		ImpactVolume:    0.3,
		ImpactRateMin:   2.8,
		ImpactRateMax:   3.4,

		GrowthVolume:    0.5,
		GrowthRate:      2.4,
		GrowthLoopStart: 0,
		GrowthLoopEnd:   time.Second,
		GrowthFade:      500 * time.Millisecond,

		ShrinkVolume:   0.5,
		ShrinkRate:     3.8,
		ShrinkCooldown: 2 * time.Second,

		DeathVolume: 1.0,
		DeathRate:   2.0,
	}

	Sound = SoundConfig{
		ImpactClips: []string{
			"sounds/arrowHit/arrowHit01.wav",
			"sounds/arrowHit/arrowHit02.wav",
			"sounds/arrowHit/arrowHit03.wav",
			"sounds/arrowHit/arrowHit04.wav",
			"sounds/arrowHit/arrowHit05.wav",
			"sounds/arrowHit/arrowHit06.wav",
			"sounds/arrowHit/arrowHit07.wav",
			"sounds/arrowHit/arrowHit08.wav",
		},
		InflateClip: "sounds/48_Speed_up_02.wav",
		DeathClip:   "sounds/21_Debuff_01.wav",
	}
}
