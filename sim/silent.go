package sim

import (
	"time"

	"github.com/automoto/balloon/components"
)

// SilentSink accepts every cue and plays nothing. It counts plays per clip.
type SilentSink struct {
	Plays map[string]int
}

func NewSilentSink() *SilentSink {
	return &SilentSink{Plays: make(map[string]int)}
}

func (s *SilentSink) Play(clip string) (components.SoundHandle, error) {
	s.Plays[clip]++
	return &silentHandle{}, nil
}

// Total is the number of cues played.
func (s *SilentSink) Total() int {
	n := 0
	for _, c := range s.Plays {
		n += c
	}
	return n
}

// silentHandle loops until stopped; one-shots end immediately.
type silentHandle struct {
	looping bool
	stopped bool
}

func (h *silentHandle) SetVolume(float64)       {}
func (h *silentHandle) SetPlaybackRate(float64) {}
func (h *silentHandle) SetLoopRegion(start, end time.Duration) {
	h.looping = end > start
}
func (h *silentHandle) Stop(time.Duration)      { h.stopped = true }
func (h *silentHandle) Playing() bool           { return h.looping && !h.stopped }
func (h *silentHandle) Position() time.Duration { return 0 }
