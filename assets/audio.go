package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/automoto/balloon/components"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// bytesPerFrame is 16-bit stereo, the format ebiten players consume.
const bytesPerFrame = 4

var errNoContext = errors.New("audio context unavailable")

// AudioSink plays cue clips from a file system through an ebiten audio context.
// Clips are decoded once and cached. Voices requested during a tick start on the
// next Update so their volume, rate and loop region apply from the first sample.
type AudioSink struct {
	context *audio.Context
	fsys    fs.FS
	sfx     map[string][]byte
	voices  []*voice
}

// NewAudioSink creates a sink reading clips from fsys.
func NewAudioSink(ctx *audio.Context, fsys fs.FS) *AudioSink {
	return &AudioSink{
		context: ctx,
		fsys:    fsys,
		sfx:     make(map[string][]byte),
	}
}

// Preload decodes clips ahead of time and reports the ones that failed.
func (s *AudioSink) Preload(clips ...string) error {
	var errs []error
	for _, clip := range clips {
		if _, err := s.decode(clip); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Play implements components.AudioSink.
func (s *AudioSink) Play(clip string) (components.SoundHandle, error) {
	data, err := s.decode(clip)
	if err != nil {
		return nil, err
	}
	v := &voice{sink: s, data: data, volume: 1, rate: 1}
	s.voices = append(s.voices, v)
	return v, nil
}

// Update starts pending voices, advances fades and drops finished voices.
func (s *AudioSink) Update(dt float64) {
	alive := s.voices[:0]
	for _, v := range s.voices {
		if !v.started && !v.stopped {
			if err := v.start(); err != nil {
				v.stopped = true
			}
		}
		v.updateFade(dt)
		if v.Playing() {
			alive = append(alive, v)
		} else {
			v.close()
		}
	}
	for i := len(alive); i < len(s.voices); i++ {
		s.voices[i] = nil
	}
	s.voices = alive
}

// Close stops every voice.
func (s *AudioSink) Close() {
	for _, v := range s.voices {
		v.close()
	}
	s.voices = nil
}

func (s *AudioSink) decode(clip string) ([]byte, error) {
	if data, ok := s.sfx[clip]; ok {
		return data, nil
	}
	if s.context == nil {
		return nil, errNoContext
	}
	if err := s.context.Err(); err != nil {
		return nil, fmt.Errorf("audio device: %w", err)
	}

	raw, err := fs.ReadFile(s.fsys, clip)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", clip, err)
	}

	var stream io.Reader
	switch strings.ToLower(path.Ext(clip)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(s.context.SampleRate(), bytes.NewReader(raw))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(s.context.SampleRate(), bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", clip)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", clip, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", clip, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("empty audio clip %s", clip)
	}

	s.sfx[clip] = decoded
	return decoded, nil
}

// voice is one playing clip. It implements components.SoundHandle.
type voice struct {
	sink   *AudioSink
	data   []byte
	player *audio.Player

	volume    float64
	rate      float64
	loop      bool
	loopStart time.Duration
	loopEnd   time.Duration

	fade    *gween.Tween
	started bool
	stopped bool
}

func (v *voice) SetVolume(volume float64) {
	v.volume = volume
	if v.player != nil && v.fade == nil {
		v.player.SetVolume(volume)
	}
}

// SetPlaybackRate takes effect when the voice starts.
func (v *voice) SetPlaybackRate(rate float64) {
	if rate > 0 {
		v.rate = rate
	}
}

// SetLoopRegion takes effect when the voice starts. Times are in clip time.
func (v *voice) SetLoopRegion(start, end time.Duration) {
	v.loop = end > start
	v.loopStart, v.loopEnd = start, end
}

// Stop fades the voice out over fade, or cuts it when fade is zero.
func (v *voice) Stop(fade time.Duration) {
	if v.stopped || v.fade != nil {
		return
	}
	if fade <= 0 || v.player == nil {
		v.close()
		return
	}
	v.fade = gween.New(float32(v.volume), 0, float32(fade.Seconds()), ease.Linear)
}

func (v *voice) Playing() bool {
	if v.stopped {
		return false
	}
	if !v.started {
		return true
	}
	return v.player.IsPlaying()
}

func (v *voice) Position() time.Duration {
	if v.player == nil {
		return 0
	}
	return v.player.Position()
}

func (v *voice) start() error {
	v.started = true
	sr := v.sink.context.SampleRate()
	size := int64(len(v.data))

	var src io.ReadSeeker = bytes.NewReader(v.data)
	if v.rate != 1 {
		// Reading the clip as if it were recorded at sr*rate shifts its pitch and speed.
		resampled := audio.Resample(src, size, int(float64(sr)*v.rate), sr)
		src, size = resampled, resampled.Length()
	}
	if v.loop {
		intro := alignFrame(durationBytes(v.loopStart, sr, v.rate), size)
		end := alignFrame(durationBytes(v.loopEnd, sr, v.rate), size)
		if end > intro {
			src = audio.NewInfiniteLoopWithIntro(src, intro, end-intro)
		}
	}

	player, err := v.sink.context.NewPlayer(src)
	if err != nil {
		return err
	}
	player.SetVolume(v.volume)
	player.Play()
	v.player = player
	return nil
}

func (v *voice) updateFade(dt float64) {
	if v.fade == nil || v.player == nil {
		return
	}
	vol, finished := v.fade.Update(float32(dt))
	v.player.SetVolume(float64(vol))
	if finished {
		v.close()
	}
}

func (v *voice) close() {
	v.stopped = true
	v.fade = nil
	if v.player != nil {
		_ = v.player.Close()
		v.player = nil
	}
}

// durationBytes converts clip time to a byte offset in a stream played at rate.
func durationBytes(d time.Duration, sampleRate int, rate float64) int64 {
	return int64(d.Seconds() / rate * float64(sampleRate) * bytesPerFrame)
}

func alignFrame(n, limit int64) int64 {
	n = min(max(n, 0), limit)
	return n - n%bytesPerFrame
}
