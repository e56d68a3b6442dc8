package systems

import (
	"math"
	"testing"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/tags"
	"github.com/yohamta/donburi"
)

var openRoom = []string{
	"......",
	"......",
	"......",
	"......",
	"......",
	"......",
}

func TestTouchDoorRequestsNextLevel(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, openRoom...)
	spawnTestPlayer(e, 64, 64, cfg.Player.DefaultInflationRate)
	door := spawnTestItem(e, cfg.KindDoor, 70, 70, 16, 16)
	GetOrCreateProgress(e).CurrentLevel = 2

	UpdateTouches(e)

	progress := GetOrCreateProgress(e)
	if !progress.HasPending || progress.Pending != 3 {
		t.Fatalf("progress = %+v, want pending level 3", *progress)
	}
	if !door.Valid() {
		t.Fatal("the door stays in the level")
	}
	if got := GetOrCreateTickEvents(e).Touched; len(got) != 1 || got[0] != "Door" {
		t.Fatalf("Touched = %v, want [Door]", got)
	}
}

func TestTouchSpikesKills(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, openRoom...)
	player := spawnTestPlayer(e, 64, 64, cfg.Player.DefaultInflationRate)
	spawnTestItem(e, cfg.KindSpikes, 64, 80, 32, 16)

	UpdateTouches(e)

	if !player.HasComponent(components.Death) {
		t.Fatal("spikes should kill the player")
	}
	if got := GetOrCreateProgress(e).Deaths; got != 1 {
		t.Fatalf("Deaths = %d, want 1", got)
	}

	// The dead player no longer touches anything.
	UpdateTouches(e)
	if got := GetOrCreateProgress(e).Deaths; got != 1 {
		t.Fatalf("Deaths = %d after a second tick, want 1", got)
	}
}

func TestTouchButtonRemovesSpikes(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, openRoom...)
	player := spawnTestPlayer(e, 64, 64, cfg.Player.DefaultInflationRate)
	button := spawnTestItem(e, cfg.KindButton, 70, 70, 8, 8)
	spawnTestItem(e, cfg.KindSpikes, 0, 160, 32, 16)
	spawnTestItem(e, cfg.KindSpikes, 128, 160, 32, 16)

	UpdateTouches(e)

	n := 0
	tags.Spikes.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 0 {
		t.Fatalf("%d spikes left, want 0", n)
	}
	if button.Valid() {
		t.Fatal("the button removes itself")
	}
	if player.HasComponent(components.Death) {
		t.Fatal("pressing the button must not kill")
	}
}

func TestTouchInflatorFillsAir(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, openRoom...)
	spawnTestPlayer(e, 64, 64, cfg.Player.DefaultInflationRate)
	inflator := spawnTestItem(e, cfg.KindInflator, 72, 72, 16, 16)
	GetOrCreateProgress(e).Air = 0.25

	UpdateTouches(e)

	if got := GetOrCreateProgress(e).Air; got != 1 {
		t.Fatalf("Air = %v, want 1", got)
	}
	if inflator.Valid() {
		t.Fatal("the inflator is used up")
	}
}

func TestTouchCrownDoublesOriginalSize(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, openRoom...)
	player := spawnTestPlayer(e, 64, 64, cfg.Player.DefaultInflationRate)
	crown := spawnTestItem(e, cfg.KindCrown, 72, 72, 16, 16)

	UpdateTouches(e)

	data := components.Player.Get(player)
	if !data.Crowned {
		t.Fatal("player should be crowned")
	}
	if data.Inflation.OriginalW != 2*cfg.Player.BaseWidth || data.Inflation.OriginalH != 2*cfg.Player.BaseHeight {
		t.Fatalf("original size = %vx%v, want doubled", data.Inflation.OriginalW, data.Inflation.OriginalH)
	}
	want := math.Min(gamemath.SizeForRate(data.Inflation.OriginalW, data.Inflation.Rate, InflationParams()), data.Inflation.OriginalW)
	obj := components.Object.Get(player)
	if obj.W != want || data.Inflation.Box.W != want {
		t.Fatalf("width = %v (box %v), want %v", obj.W, data.Inflation.Box.W, want)
	}
	if crown.Valid() {
		t.Fatal("the crown is picked up")
	}
	if got := components.Sprite.Get(player).Color; got != cfg.Palette.Crowned {
		t.Fatalf("color = %v, want crowned color", got)
	}
}

func TestTouchCrownGrowsAroundCentre(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, openRoom...)
	player := spawnTestPlayer(e, 64, 64, cfg.Player.DefaultInflationRate)
	before := components.Object.Get(player).Rect()
	spawnTestItem(e, cfg.KindCrown, 72, 72, 16, 16)

	UpdateTouches(e)

	after := components.Object.Get(player).Rect()
	cx, cy := before.X+before.W/2, before.Y+before.H/2
	if math.Abs(after.X+after.W/2-cx) > 1e-9 || math.Abs(after.Y+after.H/2-cy) > 1e-9 {
		t.Fatalf("centre moved from (%v, %v) to (%v, %v)", cx, cy, after.X+after.W/2, after.Y+after.H/2)
	}
}

func TestTouchCrownInTightGapKeepsBox(t *testing.T) {
	e := newTestECS()
	level := spawnTestLevel(e,
		"######",
		"#....#",
		"######",
	)
	player := spawnTestPlayer(e, 32, 32.32, cfg.Player.DefaultInflationRate)
	before := components.Object.Get(player).Rect()
	crown := spawnTestItem(e, cfg.KindCrown, 40, 40, 16, 16)

	UpdateTouches(e)

	data := components.Player.Get(player)
	if !data.Crowned || crown.Valid() {
		t.Fatal("the crown is picked up even when the body cannot grow yet")
	}
	if data.Inflation.OriginalW != 2*cfg.Player.BaseWidth {
		t.Fatalf("OriginalW = %v, want doubled", data.Inflation.OriginalW)
	}
	got := components.Object.Get(player).Rect()
	if leveldata.Blocked(level.Grid, got.X, got.Y, got.W, got.H) {
		t.Fatalf("committed box %+v overlaps the level", got)
	}
	if got != before || data.Inflation.Box != before {
		t.Fatalf("box = %+v (state %+v), want unchanged %+v", got, data.Inflation.Box, before)
	}
}

func TestTouchNeedsOverlap(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, openRoom...)
	spawnTestPlayer(e, 64, 64, cfg.Player.DefaultInflationRate)
	inflator := spawnTestItem(e, cfg.KindInflator, 96, 96, 16, 16)

	UpdateTouches(e)

	if !inflator.Valid() {
		t.Fatal("an item next to the player is not touched")
	}
	if got := GetOrCreateProgress(e).Air; got != 0 {
		t.Fatalf("Air = %v, want 0", got)
	}
}
