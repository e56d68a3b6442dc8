package systems

import (
	"math"
	"testing"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/gamemath"
)

var walledRoom = []string{
	"########",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"########",
}

func TestUpdateInflationGrowsAroundCentre(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, walledRoom...)
	player := spawnTestPlayer(e, 112, 112, cfg.Player.DefaultInflationRate)
	GetOrCreateProgress(e).Air = 1
	obj := components.Object.Get(player)
	centreX, centreY := obj.X+obj.W/2, obj.Y+obj.H/2

	hold(e, cfg.ActionInflate)
	UpdateInflation(e)

	if got := GetOrCreateTickEvents(e).Inflation; got != gamemath.InflationGrew {
		t.Fatalf("outcome = %v, want grew", got)
	}
	data := components.Player.Get(player)
	if obj.W != data.Inflation.Box.W || obj.H != data.Inflation.Box.H {
		t.Fatalf("object %vx%v out of sync with box %vx%v", obj.W, obj.H, data.Inflation.Box.W, data.Inflation.Box.H)
	}
	if obj.W <= 31.36 {
		t.Fatalf("width = %v, want growth", obj.W)
	}
	if math.Abs(obj.X+obj.W/2-centreX) > 1e-9 || math.Abs(obj.Y+obj.H/2-centreY) > 1e-9 {
		t.Fatal("growth should keep the centre in place")
	}
	if air := GetOrCreateProgress(e).Air; air >= 1 {
		t.Fatalf("Air = %v, want drained", air)
	}
}

func TestUpdateInflationBlockedByWall(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, walledRoom...)
	// The right edge sits just short of the wall at x=224.
	player := spawnTestPlayer(e, 192.5, 112.32, cfg.Player.DefaultInflationRate)
	GetOrCreateProgress(e).Air = 1
	obj := components.Object.Get(player)
	before := obj.Rect()

	hold(e, cfg.ActionInflate)
	UpdateInflation(e)

	if got := GetOrCreateTickEvents(e).Inflation; got != gamemath.InflationBlocked {
		t.Fatalf("outcome = %v, want blocked", got)
	}
	if obj.Rect() != before {
		t.Fatalf("rect = %+v, want unchanged %+v", obj.Rect(), before)
	}
	if rate := components.Player.Get(player).Inflation.Rate; rate != cfg.Player.DefaultInflationRate {
		t.Fatalf("rate = %v, want unchanged", rate)
	}
}

func TestUpdateInflationStarved(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, walledRoom...)
	player := spawnTestPlayer(e, 112, 112, cfg.Player.DefaultInflationRate)
	before := components.Object.Get(player).Rect()

	hold(e, cfg.ActionInflate)
	UpdateInflation(e)

	if got := GetOrCreateTickEvents(e).Inflation; got != gamemath.InflationStarved {
		t.Fatalf("outcome = %v, want starved", got)
	}
	if components.Object.Get(player).Rect() != before {
		t.Fatal("a starved request must not resize")
	}
}

func TestUpdateInflationDeflateNeedsNoAir(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, walledRoom...)
	player := spawnTestPlayer(e, 112, 112, cfg.Player.DefaultInflationRate)

	hold(e, cfg.ActionDeflate)
	UpdateInflation(e)

	if got := GetOrCreateTickEvents(e).Inflation; got != gamemath.InflationShrank {
		t.Fatalf("outcome = %v, want shrank", got)
	}
	if d := components.Player.Get(player).Inflation.Direction; d != -1 {
		t.Fatalf("direction = %d, want -1", d)
	}
	if air := GetOrCreateProgress(e).Air; air != 0 {
		t.Fatalf("Air = %v, want untouched", air)
	}
}

func TestUpdateInflationWithoutLevelIsBlocked(t *testing.T) {
	e := newTestECS()
	spawnTestPlayer(e, 112, 112, cfg.Player.DefaultInflationRate)

	hold(e, cfg.ActionDeflate)
	UpdateInflation(e)

	if got := GetOrCreateTickEvents(e).Inflation; got != gamemath.InflationBlocked {
		t.Fatalf("outcome = %v, want blocked without a level", got)
	}
}

func TestUpdateInflationIdle(t *testing.T) {
	e := newTestECS()
	spawnTestLevel(e, walledRoom...)
	spawnTestPlayer(e, 112, 112, cfg.Player.DefaultInflationRate)

	hold(e)
	UpdateInflation(e)

	if got := GetOrCreateTickEvents(e).Inflation; got != gamemath.InflationStopped {
		t.Fatalf("outcome = %v, want stopped", got)
	}
}

func TestUpdateMovement(t *testing.T) {
	tests := []struct {
		name      string
		held      []cfg.ActionID
		onGround  bool
		deflating bool
		wantAX    float64
		wantAY    float64
		wantFace  components.Vector
	}{
		{"idle", nil, true, false, 0, 0, components.Vector{X: 1}},
		{"run right on ground", []cfg.ActionID{cfg.ActionRight}, true, false, cfg.Player.AccelGround, 0, components.Vector{X: 1}},
		{"steer left in air", []cfg.ActionID{cfg.ActionLeft}, false, false, -cfg.Player.AccelAir, 0, components.Vector{X: -1}},
		{"deflation thrust along facing", nil, false, true, cfg.Player.AccelDeflation, 0, components.Vector{X: 1}},
		{"deflation thrust upward", []cfg.ActionID{cfg.ActionUp}, false, true, 0, -cfg.Player.AccelDeflation, components.Vector{X: 1, Y: -1}},
		{"thrust adds to steering", []cfg.ActionID{cfg.ActionRight}, false, true, cfg.Player.AccelAir + cfg.Player.AccelDeflation, 0, components.Vector{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			player := spawnTestPlayer(e, 0, 0, cfg.Player.DefaultInflationRate)
			components.Physics.Get(player).OnGround = tt.onGround
			if tt.deflating {
				components.Player.Get(player).Inflation.Direction = -1
			}

			hold(e, tt.held...)
			UpdateMovement(e)

			physics := components.Physics.Get(player)
			if physics.AccelX != tt.wantAX || physics.AccelY != tt.wantAY {
				t.Fatalf("accel = (%v, %v), want (%v, %v)", physics.AccelX, physics.AccelY, tt.wantAX, tt.wantAY)
			}
			if got := components.Player.Get(player).Facing; got != tt.wantFace {
				t.Fatalf("facing = %+v, want %+v", got, tt.wantFace)
			}
		})
	}
}

func TestUpdateJumpStartsFromGround(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e, 0, 0, cfg.Player.DefaultInflationRate)
	components.Physics.Get(player).OnGround = true

	hold(e, cfg.ActionJump)
	UpdateJump(e)

	physics := components.Physics.Get(player)
	if physics.SpeedY >= 0 {
		t.Fatalf("SpeedY = %v, want upward", physics.SpeedY)
	}
	if physics.OnGround {
		t.Fatal("a jump leaves the ground")
	}
	if !GetOrCreateTickEvents(e).Jumped {
		t.Fatal("jump event not recorded")
	}
}
