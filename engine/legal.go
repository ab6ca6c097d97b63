package engine

import "github.com/google/uuid"

// Reason identifies why a move was rejected. ReasonNone means the move is
// legal. The set is fixed and enumerable: expected domain conditions are
// reported through it, never through panics.
type Reason uint8

const (
	ReasonNone             Reason = iota // 0 — move is legal
	ReasonGameInLobby                    // 1 — game has not started
	ReasonGameFinished                   // 2 — game already has a winner
	ReasonGameRunaway                    // 3 — game ended in a runaway chain
	ReasonGameNotActive                  // 4 — any other non-active status
	ReasonUnknownPlayer                  // 5 — player is not seated in this game
	ReasonPlayerEliminated               // 6 — player was eliminated
	ReasonNotYourTurn                    // 7 — another player's turn
	ReasonOutOfBounds                    // 8 — coordinates outside the grid
	ReasonCellTaken                      // 9 — cell owned by a different player
)

// String returns a stable snake_case identifier for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonGameInLobby:
		return "game_in_lobby"
	case ReasonGameFinished:
		return "game_finished"
	case ReasonGameRunaway:
		return "game_runaway"
	case ReasonGameNotActive:
		return "game_not_active"
	case ReasonUnknownPlayer:
		return "unknown_player"
	case ReasonPlayerEliminated:
		return "player_eliminated"
	case ReasonNotYourTurn:
		return "not_your_turn"
	case ReasonOutOfBounds:
		return "out_of_bounds"
	case ReasonCellTaken:
		return "cell_taken"
	}
	return "unknown"
}

// statusReason maps a non-active status to its rejection reason.
func statusReason(s Status) Reason {
	switch s {
	case StatusLobby:
		return ReasonGameInLobby
	case StatusFinished:
		return ReasonGameFinished
	case StatusRunaway:
		return ReasonGameRunaway
	}
	return ReasonGameNotActive
}

// ValidateMove checks the legality of placing an orb at (row, col) for the
// given player. Checks run in a fixed order, each with its own reason:
// game status, player known, player not eliminated, player's turn,
// coordinates in bounds, cell not owned by another player. Placing on an
// empty cell or one the mover already owns is legal regardless of orb
// count.
func ValidateMove(g *GameState, playerID uuid.UUID, row, col int) Reason {
	if g.Status != StatusActive {
		return statusReason(g.Status)
	}

	idx := g.playerIndex(playerID)
	if idx < 0 {
		return ReasonUnknownPlayer
	}
	if g.Players[idx].Eliminated {
		return ReasonPlayerEliminated
	}
	if g.CurrentPlayer != playerID {
		return ReasonNotYourTurn
	}
	if !g.Grid.InBounds(row, col) {
		return ReasonOutOfBounds
	}

	cell := g.Grid.At(row, col)
	if cell.Orbs > 0 && cell.Owner != playerID {
		return ReasonCellTaken
	}
	return ReasonNone
}
