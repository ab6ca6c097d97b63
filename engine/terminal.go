package engine

import "github.com/google/uuid"

// CheckWin returns the winner, if any, from the elimination bookkeeping.
// Exactly one non-eliminated player wins. Two or more means the game goes
// on (returns uuid.Nil, false).
//
// Zero non-eliminated players should not occur under the elimination rule
// (the acting player always owns the cell they just played when the pass
// runs), but CheckWin is a total function over arbitrary player lists: in
// that case it falls back to the player with the highest orb count, ties
// broken by first occurrence in list order. The tie-break is an explicit
// scan, not a property of any sort.
func CheckWin(players []Player) (uuid.UUID, bool) {
	alive := 0
	var last uuid.UUID
	for i := range players {
		if !players[i].Eliminated {
			alive++
			last = players[i].ID
		}
	}
	switch {
	case alive == 1:
		return last, true
	case alive >= 2:
		return uuid.Nil, false
	}

	// All eliminated — fall back to highest orb count, first occurrence.
	if len(players) == 0 {
		return uuid.Nil, false
	}
	best := 0
	for i := 1; i < len(players); i++ {
		if players[i].OrbCount > players[best].OrbCount {
			best = i
		}
	}
	return players[best].ID, true
}

// leadingPlayer returns the first non-eliminated player with the maximum
// orb count, counted fresh from the grid. Used to pick a winner when the
// game clock expires.
func leadingPlayer(grid *Grid, players []Player) (uuid.UUID, bool) {
	found := false
	var winner uuid.UUID
	bestCount := -1
	for i := range players {
		if players[i].Eliminated {
			continue
		}
		count := grid.OrbCount(players[i].ID)
		if count > bestCount {
			bestCount = count
			winner = players[i].ID
			found = true
		}
	}
	return winner, found
}
