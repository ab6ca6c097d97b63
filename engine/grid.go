package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Cell is a single grid cell. Owner is uuid.Nil exactly when Orbs == 0.
// Capacity is fixed at grid construction from the cell's position.
type Cell struct {
	Orbs     int
	Owner    uuid.UUID
	Capacity int
}

// Grid is a fixed-size rectangular board stored row-major in a flat slice.
// Dimensions never change for the lifetime of a game.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// CapacityAt returns the critical mass of the cell at (row, col): the number
// of in-bounds orthogonal neighbors. For grids with rows, cols >= 2 this is
// 2 at the four corners, 3 on non-corner border cells, and 4 in the interior.
func CapacityAt(row, col, rows, cols int) int {
	n := 0
	if row > 0 {
		n++
	}
	if row < rows-1 {
		n++
	}
	if col > 0 {
		n++
	}
	if col < cols-1 {
		n++
	}
	return n
}

// NewGrid returns an empty grid of the given dimensions with all capacities
// precomputed. Grids smaller than 2x2 are rejected as a caller precondition
// violation rather than given degenerate capacities.
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 2 || cols < 2 {
		return Grid{}, fmt.Errorf("grid must be at least 2x2, got %dx%d", rows, cols)
	}
	g := Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Cells[r*cols+c].Capacity = CapacityAt(r, c, rows, cols)
		}
	}
	return g, nil
}

// InBounds reports whether (row, col) is a valid coordinate on this grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns a pointer to the cell at (row, col). Coordinates must be in
// bounds; callers validate first.
func (g *Grid) At(row, col int) *Cell {
	return &g.Cells[row*g.Cols+col]
}

// Clone returns a deep copy sharing no memory with the receiver.
func (g *Grid) Clone() Grid {
	out := Grid{Rows: g.Rows, Cols: g.Cols, Cells: make([]Cell, len(g.Cells))}
	copy(out.Cells, g.Cells)
	return out
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// OrbCount returns the total number of orbs on cells owned by the given
// player.
func (g *Grid) OrbCount(owner uuid.UUID) int {
	total := 0
	for i := range g.Cells {
		if g.Cells[i].Orbs > 0 && g.Cells[i].Owner == owner {
			total += g.Cells[i].Orbs
		}
	}
	return total
}
