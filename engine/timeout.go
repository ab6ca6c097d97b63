package engine

import (
	"time"

	"github.com/google/uuid"
)

// TimeoutResult reports which wall-clock limits have expired. Both flags
// can be true at once; resolving the game timeout takes precedence over
// skipping a turn. Winner is set only for a game timeout.
type TimeoutResult struct {
	GameTimeout bool
	MoveTimeout bool
	Winner      uuid.UUID
	HasWinner   bool
}

// CheckTimeouts evaluates the game clock and the move clock against now.
// It is pure and side-effect free: the caller supplies both reference
// times and is responsible for applying the result under its own per-room
// serialization. A limit of 0 disables the corresponding clock. Non-active
// games never time out.
//
// On game timeout the winner is the non-eliminated player with the highest
// orb count, counted fresh from the grid, first in list order on a tie.
func CheckTimeouts(g *GameState, settings RoomSettings, gameStartedAt, now time.Time) TimeoutResult {
	var res TimeoutResult
	if g.Status != StatusActive {
		return res
	}

	if settings.GameTimeLimitMin > 0 {
		limit := time.Duration(settings.GameTimeLimitMin) * time.Minute
		if now.Sub(gameStartedAt) > limit {
			res.GameTimeout = true
			res.Winner, res.HasWinner = leadingPlayer(&g.Grid, g.Players)
		}
	}

	if settings.MoveTimeLimitSec > 0 {
		limit := time.Duration(settings.MoveTimeLimitSec) * time.Second
		if now.Sub(g.TurnStartedAt) > limit {
			res.MoveTimeout = true
		}
	}

	return res
}

// HandleMoveTimeout forces a turn skip: the turn passes to the next
// non-eliminated player and the move clock restarts. Grid and move count
// are untouched. Returns a new state; the receiver is unchanged.
func HandleMoveTimeout(g *GameState, now time.Time) GameState {
	out := g.Clone()
	if out.Status != StatusActive {
		return out
	}
	out.CurrentPlayer = NextPlayer(out.Players, out.CurrentPlayer)
	out.TurnStartedAt = now
	return out
}

// FinishByTimeout marks the game finished with the given winner. The host
// applies this after CheckTimeouts reports a game timeout.
func FinishByTimeout(g *GameState, winner uuid.UUID) GameState {
	out := g.Clone()
	if out.Status != StatusActive {
		return out
	}
	out.Status = StatusFinished
	out.Winner = winner
	return out
}
