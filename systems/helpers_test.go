package systems

import (
	"errors"
	"time"

	"github.com/automoto/balloon/archetypes"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testCell = 32

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// fakeLoader records requested identifiers and optionally fails.
type fakeLoader struct {
	loads []string
	fail  bool
}

func (l *fakeLoader) LoadLevel(_ *ecs.ECS, identifier string) error {
	l.loads = append(l.loads, identifier)
	if l.fail {
		return errors.New("broken level")
	}
	return nil
}

// spawnTestLevel adds a level, its collision space and one wall per solid cell.
func spawnTestLevel(e *ecs.ECS, rows ...string) *leveldata.Level {
	grid := leveldata.ParseRows(testCell, rows...)
	level := &leveldata.Level{
		Identifier:  "Level_0",
		Grid:        grid,
		PixelWidth:  grid.Width() * testCell,
		PixelHeight: grid.Height() * testCell,
	}
	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{Level: level})

	space := archetypes.Space.Spawn(e)
	components.Space.Set(space, resolv.NewSpace(level.PixelWidth, level.PixelHeight, testCell, testCell))

	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); cx++ {
			if !grid.Solid(cx, cy) {
				continue
			}
			wall := archetypes.Wall.Spawn(e)
			obj := resolv.NewObject(float64(cx*testCell), float64(cy*testCell), testCell, testCell, tags.ResolvSolid)
			obj.SetShape(resolv.NewRectangle(0, 0, testCell, testCell))
			obj.Data = wall
			components.Object.SetValue(wall, components.ObjectData{Object: obj})
			addTestObject(e, obj)
		}
	}
	return level
}

func addTestObject(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// spawnTestPlayer adds a player whose box has its min corner at (x, y).
func spawnTestPlayer(e *ecs.ECS, x, y, rate float64) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	state := gamemath.NewInflationState(x, y, cfg.Player.BaseWidth, cfg.Player.BaseHeight, rate, InflationParams())

	obj := resolv.NewObject(state.Box.X, state.Box.Y, state.Box.W, state.Box.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, state.Box.W, state.Box.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Inflation: state,
		Jump:      gamemath.JumpData{CanJump: true},
		Facing:    components.Vector{X: 1},
	})
	components.Sprite.SetValue(player, components.SpriteData{Color: cfg.Palette.Player})
	addTestObject(e, obj)
	return player
}

func spawnTestItem(e *ecs.ECS, kind cfg.EntityKind, x, y, w, h float64) *donburi.Entry {
	kindTag, _ := tags.ForKind(kind)
	item := archetypes.Item.Spawn(e, kindTag)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvItem)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = item
	components.Object.SetValue(item, components.ObjectData{Object: obj})
	components.Item.SetValue(item, components.ItemData{Kind: kind})
	addTestObject(e, obj)
	return item
}

func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := GetOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

// fakeSink records every cue it is asked to play.
type fakeSink struct {
	plays   []*fakeHandle
	failing map[string]bool
	calls   map[string]int
}

func newFakeSink() *fakeSink {
	return &fakeSink{failing: map[string]bool{}, calls: map[string]int{}}
}

func (s *fakeSink) Play(clip string) (components.SoundHandle, error) {
	s.calls[clip]++
	if s.failing[clip] {
		return nil, errors.New("missing clip")
	}
	h := &fakeHandle{clip: clip, playing: true}
	s.plays = append(s.plays, h)
	return h, nil
}

func (s *fakeSink) count(clip string) int {
	n := 0
	for _, h := range s.plays {
		if h.clip == clip {
			n++
		}
	}
	return n
}

type fakeHandle struct {
	clip      string
	volume    float64
	rate      float64
	loopStart time.Duration
	loopEnd   time.Duration
	playing   bool
	position  time.Duration
	stopped   bool
	fade      time.Duration
}

func (h *fakeHandle) SetVolume(v float64)       { h.volume = v }
func (h *fakeHandle) SetPlaybackRate(r float64) { h.rate = r }
func (h *fakeHandle) SetLoopRegion(start, end time.Duration) {
	h.loopStart, h.loopEnd = start, end
}
func (h *fakeHandle) Stop(fade time.Duration) {
	h.stopped, h.fade = true, fade
	h.playing = false
}
func (h *fakeHandle) Playing() bool           { return h.playing }
func (h *fakeHandle) Position() time.Duration { return h.position }
