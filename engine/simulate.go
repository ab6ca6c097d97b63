package engine

import "github.com/google/uuid"

// SimResult is the outcome of running the explosion fixed-point.
type SimResult struct {
	Grid      Grid
	WaveCount int
	Runaway   bool
	Waves     []Wave
}

// neighborOffsets lists the four orthogonal directions in a fixed order.
// No diagonals, no wraparound.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Simulate runs the bounded wave-based explosion propagation on a copy of
// the grid and returns the stabilized result. The input grid is never
// mutated.
//
// Each wave: scan the current snapshot for cells with Orbs >= Capacity
// (the unstable set); if empty, stop. Otherwise every unstable cell
// explodes simultaneously — it is reset to zero orbs and no owner, and
// each in-bounds orthogonal neighbor gains one orb and is converted to the
// acting player, overwriting prior ownership. All of a wave's updates are
// computed against the pre-wave snapshot and committed together, so the
// result is independent of scan order.
//
// A cell fed by two or more exploding neighbors in one wave can accumulate
// orbs beyond its capacity; when it next explodes it is still zeroed
// entirely, so total orb count is not conserved across waves. That
// clearing rule is the authoritative one.
//
// If unstable cells remain after maxWaves waves, Runaway is true. The wave
// cap is the simulation's only termination guarantee; cost is bounded by
// O(maxWaves * rows * cols).
func Simulate(grid *Grid, actingPlayer uuid.UUID, maxWaves int) SimResult {
	cur := grid.Clone()
	var waves []Wave

	for wave := 0; wave < maxWaves; wave++ {
		unstable := unstableCells(&cur)
		if len(unstable) == 0 {
			return SimResult{Grid: cur, WaveCount: wave, Runaway: false, Waves: waves}
		}

		rec := Wave{Index: wave}
		next := cur.Clone()

		// Commit phase 1: zero every exploding cell.
		for _, idx := range unstable {
			row, col := idx/cur.Cols, idx%cur.Cols
			next.Cells[idx].Orbs = 0
			next.Cells[idx].Owner = uuid.Nil
			rec.Explosions = append(rec.Explosions, Explosion{Row: row, Col: col, Wave: wave})
		}

		// Commit phase 2: distribute one orb to each orthogonal neighbor.
		// Increments land on the post-clear grid so a cell that both
		// explodes and is fed this wave keeps only the fed orbs.
		for _, idx := range unstable {
			row, col := idx/cur.Cols, idx%cur.Cols
			for _, d := range neighborOffsets {
				nr, nc := row+d[0], col+d[1]
				if !cur.InBounds(nr, nc) {
					continue
				}
				n := next.At(nr, nc)
				n.Orbs++
				n.Owner = actingPlayer
				rec.Moves = append(rec.Moves, OrbMove{
					FromRow: row, FromCol: col,
					ToRow: nr, ToCol: nc,
					Wave: wave,
				})
			}
		}

		cur = next
		waves = append(waves, rec)
	}

	// Cap reached. Runaway only if the board is still unstable.
	runaway := len(unstableCells(&cur)) > 0
	return SimResult{Grid: cur, WaveCount: maxWaves, Runaway: runaway, Waves: waves}
}

// unstableCells returns the flat indices of all cells at or above capacity,
// in row-major order.
func unstableCells(g *Grid) []int {
	var out []int
	for i := range g.Cells {
		if g.Cells[i].Orbs >= g.Cells[i].Capacity {
			out = append(out, i)
		}
	}
	return out
}
