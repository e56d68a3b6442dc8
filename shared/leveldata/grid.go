package leveldata

import "math"

// Grid is a read-only tile occupancy lookup. A zero value is empty; anything else is solid.
type Grid interface {
	Get(cx, cy int) (uint32, bool)
	CellSize() float64
}

// TileGrid is a row-major occupancy grid built from a TMX tile layer.
type TileGrid struct {
	cells    []uint32
	width    int
	height   int
	cellSize float64
}

// NewTileGrid wraps cells (len width*height) as a grid.
func NewTileGrid(width, height int, cellSize float64, cells []uint32) *TileGrid {
	if len(cells) != width*height {
		fixed := make([]uint32, width*height)
		copy(fixed, cells)
		cells = fixed
	}
	return &TileGrid{cells: cells, width: width, height: height, cellSize: cellSize}
}

// ParseRows builds a grid from rows of '#' (solid) and '.' (empty). Used by tests and tools.
func ParseRows(cellSize float64, rows ...string) *TileGrid {
	h := len(rows)
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	cells := make([]uint32, w*h)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' {
				cells[y*w+x] = 1
			}
		}
	}
	return NewTileGrid(w, h, cellSize, cells)
}

func (g *TileGrid) Get(cx, cy int) (uint32, bool) {
	if cx < 0 || cy < 0 || cx >= g.width || cy >= g.height {
		return 0, false
	}
	return g.cells[cy*g.width+cx], true
}

func (g *TileGrid) CellSize() float64 { return g.cellSize }

func (g *TileGrid) Width() int  { return g.width }
func (g *TileGrid) Height() int { return g.height }

// Solid reports whether a single cell is solid. Cells outside the grid count as solid.
func (g *TileGrid) Solid(cx, cy int) bool {
	v, ok := g.Get(cx, cy)
	return !ok || v != 0
}

// Blocked reports whether the box at (x, y) with size (w, h) is obstructed by grid.
// The covered cells run from ceil(min/cell) to floor(max/cell) inclusive. Cells outside
// the grid are solid. It has no side effects.
func Blocked(grid Grid, x, y, w, h float64) bool {
	cs := grid.CellSize()
	if cs <= 0 {
		return true
	}
	x0 := int(math.Ceil(x / cs))
	y0 := int(math.Ceil(y / cs))
	x1 := int(math.Floor((x + w) / cs))
	y1 := int(math.Floor((y + h) / cs))

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			v, ok := grid.Get(cx, cy)
			if !ok || v != 0 {
				return true
			}
		}
	}
	return false
}
