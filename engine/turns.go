package engine

import "github.com/google/uuid"

// CheckEliminated recomputes every player's orb count from the grid and
// returns a new player slice with elimination applied. A player becomes
// eliminated when their recomputed orb count is zero and every player has
// had at least one turn (moveCount > len(players)) — the opening-round
// guard that keeps a player from being knocked out before they have acted.
// Elimination is one-way: a player already eliminated stays eliminated no
// matter what the grid says.
func CheckEliminated(grid *Grid, players []Player, moveCount int) []Player {
	out := make([]Player, len(players))
	copy(out, players)

	everyoneActed := moveCount > len(players)
	for i := range out {
		out[i].OrbCount = grid.OrbCount(out[i].ID)
		if !out[i].Eliminated && out[i].OrbCount == 0 && everyoneActed {
			out[i].Eliminated = true
		}
	}
	return out
}

// NextPlayer returns the id of the next non-eliminated player after
// currentID in turn-list order, wrapping to the start. If only one
// non-eliminated player remains it returns that same player. If currentID
// is not in the list, the scan starts from the head.
func NextPlayer(players []Player, currentID uuid.UUID) uuid.UUID {
	n := len(players)
	if n == 0 {
		return uuid.Nil
	}

	start := 0
	for i := range players {
		if players[i].ID == currentID {
			start = i
			break
		}
	}

	for step := 1; step <= n; step++ {
		p := &players[(start+step)%n]
		if !p.Eliminated {
			return p.ID
		}
	}
	return currentID
}
