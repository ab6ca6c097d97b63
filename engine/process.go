package engine

import (
	"time"

	"github.com/google/uuid"
)

// MoveResult is the outcome of ProcessMove. On failure, Success is false,
// Reason names the rejection, and State is nil — a rejected move never
// yields a partial state. On success, State is the complete new game state
// and Trace carries the animation contract for the move.
type MoveResult struct {
	Success bool
	Reason  Reason
	State   *GameState
	Runaway bool
	Trace   *MoveTrace
}

// reject builds a failure result.
func reject(reason Reason) MoveResult {
	return MoveResult{Success: false, Reason: reason}
}

// ProcessMove applies one move as a single atomic state transition:
//
//  1. Reject unless the game is active, with the status-specific reason.
//  2. Reject per ValidateMove.
//  3. Deep-copy the state (no aliasing with the input).
//  4. Increment the move count and reset the turn clock to now.
//  5. Place one orb at the target, owned by the mover.
//  6. Run the explosion simulation.
//  7. On runaway, the acting player wins outright: status becomes runaway
//     and the elimination/win passes are skipped.
//  8. Otherwise run the elimination pass, then the win check.
//  9. On a win, status becomes finished; otherwise the turn advances to
//     the next non-eliminated player.
//
// The input state is never mutated, on success or failure.
func ProcessMove(g *GameState, playerID uuid.UUID, row, col int, now time.Time) MoveResult {
	if reason := ValidateMove(g, playerID, row, col); reason != ReasonNone {
		return reject(reason)
	}

	out := g.Clone()
	out.MoveCount++
	out.TurnStartedAt = now

	cell := out.Grid.At(row, col)
	cell.Orbs++
	cell.Owner = playerID

	trace := &MoveTrace{
		Placement: Placement{Row: row, Col: col, Color: out.Players[out.playerIndex(playerID)].Color},
	}

	sim := Simulate(&out.Grid, playerID, out.Settings.maxWaves())
	out.Grid = sim.Grid
	trace.Waves = sim.Waves

	if sim.Runaway {
		out.Status = StatusRunaway
		out.Winner = playerID
		return MoveResult{Success: true, State: &out, Runaway: true, Trace: trace}
	}

	out.Players = CheckEliminated(&out.Grid, out.Players, out.MoveCount)

	if winner, ok := CheckWin(out.Players); ok {
		out.Status = StatusFinished
		out.Winner = winner
		return MoveResult{Success: true, State: &out, Trace: trace}
	}

	out.CurrentPlayer = NextPlayer(out.Players, out.CurrentPlayer)
	return MoveResult{Success: true, State: &out, Trace: trace}
}
