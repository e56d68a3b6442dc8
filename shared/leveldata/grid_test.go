package leveldata

import "testing"

func TestBlocked(t *testing.T) {
	// 6x5 room of 32px cells with a solid border and one pillar
	grid := ParseRows(32,
		"######",
		"#....#",
		"#..#.#",
		"#....#",
		"######",
	)

	tests := []struct {
		name       string
		x, y, w, h float64
		want       bool
	}{
		{"box between grid lines probes nothing", 33, 33, 20, 20, false},
		{"open interior", 40, 40, 40, 40, false},
		{"covers pillar corner", 70, 40, 40, 40, true},
		{"overlaps border on max side", 140, 40, 40, 40, true},
		{"min side rounds up past border", 10, 40, 40, 30, false},
		{"outside grid is solid", -100, -100, 10, 10, true},
		{"past far edge is solid", 300, 40, 40, 40, true},
		{"whole room", 0, 0, 192, 160, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blocked(grid, tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Fatalf("Blocked(%v, %v, %v, %v) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestBlockedHasNoSideEffects(t *testing.T) {
	grid := ParseRows(16, "....", "..#.", "....")
	before := append([]uint32(nil), grid.cells...)
	for i := 0; i < 10; i++ {
		Blocked(grid, float64(i*4), 0, 20, 20)
	}
	for i := range before {
		if grid.cells[i] != before[i] {
			t.Fatalf("cell %d changed from %d to %d", i, before[i], grid.cells[i])
		}
	}
}

type countingGrid struct {
	*TileGrid
	calls int
}

func (g *countingGrid) Get(cx, cy int) (uint32, bool) {
	g.calls++
	return g.TileGrid.Get(cx, cy)
}

func TestBlockedCellRange(t *testing.T) {
	g := &countingGrid{TileGrid: ParseRows(10, "..........", "..........", "..........", "..........")}
	// x: ceil(12/10)=2 .. floor(37/10)=3, y: ceil(5/10)=1 .. floor(25/10)=2
	if Blocked(g, 12, 5, 25, 20) {
		t.Fatalf("empty grid reported blocked")
	}
	if g.calls != 4 {
		t.Fatalf("probed %d cells, want 4", g.calls)
	}
}

func TestTileGridGet(t *testing.T) {
	grid := ParseRows(8, "#.", ".#")
	tests := []struct {
		cx, cy int
		want   uint32
		ok     bool
	}{
		{0, 0, 1, true},
		{1, 0, 0, true},
		{1, 1, 1, true},
		{2, 0, 0, false},
		{0, -1, 0, false},
	}
	for _, tt := range tests {
		v, ok := grid.Get(tt.cx, tt.cy)
		if v != tt.want || ok != tt.ok {
			t.Fatalf("Get(%d, %d) = (%d, %v), want (%d, %v)", tt.cx, tt.cy, v, ok, tt.want, tt.ok)
		}
	}
	if !grid.Solid(5, 5) {
		t.Fatalf("cell outside grid should be solid")
	}
}
