package systems

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCues turns this tick's events into audio cues.
func UpdateCues(ecs *ecs.ECS) {
	cue := GetOrCreateCue(ecs)
	events := GetOrCreateTickEvents(ecs)
	volume := GetOrCreateSettings(ecs).EffectiveVolume()

	for _, impact := range events.Impacts {
		if !impact.WasAirborne || events.Jumped || impact.Speed <= cfg.Cue.ImpactThreshold {
			continue
		}
		playImpact(cue, volume)
		break
	}

	switch events.Inflation {
	case gamemath.InflationGrew:
		if cue.Growth == nil || !cue.Growth.Playing() {
			cue.Growth = playCue(cue, cfg.Sound.InflateClip, cfg.Cue.GrowthVolume*volume, cfg.Cue.GrowthRate, true)
		}
	case gamemath.InflationShrank:
		if cue.Shrink != nil && cue.Shrink.Playing() && cue.Shrink.Position() < cfg.Cue.ShrinkCooldown {
			break
		}
		cue.Shrink = playCue(cue, cfg.Sound.InflateClip, cfg.Cue.ShrinkVolume*volume, cfg.Cue.ShrinkRate, false)
	case gamemath.InflationStopped:
		StopGrowthCue(ecs)
	}

	for i := 0; i < events.Deaths; i++ {
		playCue(cue, cfg.Sound.DeathClip, cfg.Cue.DeathVolume*volume, cfg.Cue.DeathRate, false)
	}
}

// StopGrowthCue fades out the growth loop if it is running.
func StopGrowthCue(ecs *ecs.ECS) {
	cue := GetOrCreateCue(ecs)
	if cue.Growth == nil {
		return
	}
	cue.Growth.Stop(cfg.Cue.GrowthFade)
	cue.Growth = nil
}

func playImpact(cue *components.CueData, volume float64) {
	clips := cfg.Sound.ImpactClips
	if len(clips) == 0 {
		return
	}
	clip := clips[cue.Rand.IntN(len(clips))]
	rate := cfg.Cue.ImpactRateMin + cue.Rand.Float64()*(cfg.Cue.ImpactRateMax-cfg.Cue.ImpactRateMin)
	playCue(cue, clip, cfg.Cue.ImpactVolume*volume, rate, false)
}

// playCue starts clip on the sink. Missing sinks and unloadable clips play nothing.
func playCue(cue *components.CueData, clip string, volume, rate float64, loop bool) components.SoundHandle {
	if cue.Sink == nil || clip == "" || cue.Failed[clip] {
		return nil
	}
	h, err := cue.Sink.Play(clip)
	if err != nil {
		if cue.Failed == nil {
			cue.Failed = make(map[string]bool)
		}
		cue.Failed[clip] = true
		log.Printf("Warning: cue %s disabled: %v", clip, err)
		return nil
	}
	h.SetVolume(volume)
	h.SetPlaybackRate(rate)
	if loop {
		h.SetLoopRegion(cfg.Cue.GrowthLoopStart, cfg.Cue.GrowthLoopEnd)
	}
	return h
}

// SetAudioSink replaces the sink cues play on.
func SetAudioSink(ecs *ecs.ECS, sink components.AudioSink) {
	GetOrCreateCue(ecs).Sink = sink
}

// GetOrCreateCue returns the singleton Cue component, creating if needed.
func GetOrCreateCue(ecs *ecs.ECS) *components.CueData {
	entry, ok := components.Cue.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Cue))
		components.Cue.SetValue(entry, components.CueData{
			Rand: rand.New(rand.NewPCG(1, 2)),
		})
	}
	return components.Cue.Get(entry)
}
