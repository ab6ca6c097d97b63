package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// pid returns a deterministic player id for test fixtures.
func pid(n byte) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-0000000000%02x", n))
}

var (
	playerA = pid(1)
	playerB = pid(2)
	playerC = pid(3)
)

// t0 is the fixed reference instant used by tests that need a clock.
var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, rows, cols int) Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

// setCell places orbs with an owner at (row, col).
func setCell(g *Grid, row, col, orbs int, owner uuid.UUID) {
	cell := g.At(row, col)
	cell.Orbs = orbs
	cell.Owner = owner
}

// totalOrbs sums all orbs on the grid.
func totalOrbs(g *Grid) int {
	total := 0
	for i := range g.Cells {
		total += g.Cells[i].Orbs
	}
	return total
}

// newActiveState builds an active two-player game on a rows x cols grid
// with player A to move.
func newActiveState(t *testing.T, rows, cols int) GameState {
	t.Helper()
	settings := DefaultRoomSettings()
	settings.Rows = rows
	settings.Cols = cols
	players := []Player{
		{ID: playerA, Color: "red", Connected: true},
		{ID: playerB, Color: "blue", Connected: true},
	}
	g, err := NewGameState(settings, players)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return g.Begin(t0)
}
