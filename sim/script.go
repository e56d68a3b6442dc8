package sim

import (
	"fmt"
	"io"

	cfg "github.com/automoto/balloon/config"
	"gopkg.in/yaml.v3"
)

// Script is a recorded input sequence for headless runs.
//
//	level: 0
//	steps:
//	  - hold: [right, inflate]
//	    ticks: 30
//	  - ticks: 10
type Script struct {
	Level int          `yaml:"level"`
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep holds a set of actions for a number of ticks.
type ScriptStep struct {
	Hold  []string `yaml:"hold"`
	Ticks int      `yaml:"ticks"`
}

// ParseScript decodes and validates a YAML script.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, step := range s.Steps {
		if step.Ticks < 0 {
			return nil, fmt.Errorf("parse script: step %d: negative tick count", i)
		}
		for _, name := range step.Hold {
			if _, ok := cfg.ActionByName(name); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, name)
			}
		}
	}
	return &s, nil
}

// Ticks is the total length of the script.
func (s *Script) Ticks() int {
	n := 0
	for _, step := range s.Steps {
		n += step.Ticks
	}
	return n
}

// ScriptInput plays a script back as an input source.
type ScriptInput struct {
	held  [][cfg.ActionCount]bool
	ticks []int
	step  int
	left  int
}

// Input returns a fresh playback of the script.
func (s *Script) Input() *ScriptInput {
	in := &ScriptInput{step: -1}
	for _, step := range s.Steps {
		var held [cfg.ActionCount]bool
		for _, name := range step.Hold {
			a, _ := cfg.ActionByName(name)
			held[a] = true
		}
		in.held = append(in.held, held)
		in.ticks = append(in.ticks, step.Ticks)
	}
	return in
}

// Advance moves to the next tick. It returns false once the script is over.
func (in *ScriptInput) Advance() bool {
	for in.left == 0 {
		in.step++
		if in.step >= len(in.ticks) {
			in.step = len(in.ticks)
			return false
		}
		in.left = in.ticks[in.step]
	}
	in.left--
	return true
}

func (in *ScriptInput) Pressed(action cfg.ActionID) bool {
	if in.step < 0 || in.step >= len(in.held) || action < 0 || action >= cfg.ActionCount {
		return false
	}
	return in.held[in.step][action]
}
