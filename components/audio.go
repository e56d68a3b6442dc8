package components

import (
	"math/rand/v2"
	"time"

	"github.com/yohamta/donburi"
)

// SoundHandle controls one playing voice.
type SoundHandle interface {
	SetVolume(v float64)
	SetPlaybackRate(r float64)
	SetLoopRegion(start, end time.Duration)
	// Stop fades the voice out over fade; zero stops immediately.
	Stop(fade time.Duration)
	Playing() bool
	Position() time.Duration
}

// AudioSink starts voices. Play returns an error when the clip cannot be loaded.
type AudioSink interface {
	Play(clip string) (SoundHandle, error)
}

// CueData is the cue dispatcher's state (singleton).
type CueData struct {
	Sink   AudioSink
	Growth SoundHandle // looping growth cue, nil when idle
	Shrink SoundHandle // last shrink one-shot
	Rand   *rand.Rand
	Failed map[string]bool // clips that failed to load, logged once
}

var Cue = donburi.NewComponentType[CueData]()
