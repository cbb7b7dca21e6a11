package core

import "math/rand/v2"

// Cell is a single map cell value. Both generation passes share the same
// byte: the automaton writes CellBlocked for dense regions and the carving
// agent stamps the same value for corridors and rooms.
type Cell = uint8

const (
	// CellOpen marks an empty cell.
	CellOpen Cell = 0
	// CellBlocked marks a set cell.
	CellBlocked Cell = 1
)

// Grid stores a 2D field of cells in row-major order. Dimensions are fixed
// for the lifetime of the grid and every access is bounds-checked by the
// accessors.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions. Callers validate
// dimensions at the configuration boundary; this clamps as a backstop.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Out-of-bounds reads yield CellOpen.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellOpen
	}
	return g.cells[y*g.W+x]
}

// Set writes the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.W+x] = c
}

// Fill randomizes every cell to CellOpen or CellBlocked with equal
// probability using the provided source.
func (g *Grid) Fill(rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = Cell(rng.IntN(2))
	}
}

// Clear fills the grid with CellOpen.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = CellOpen
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{W: g.W, H: g.H, cells: make([]Cell, len(g.cells))}
	copy(dup.cells, g.cells)
	return dup
}

// Count reports how many cells hold the given value.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}
