// internal/game/events.go
package game

import (
	"github.com/google/uuid"

	"github.com/kinetick/chainreaction/engine"
)

// RoomEventType identifies a room-level event fanned out to the host's
// broadcast layer. The host decides how to deliver it (this package does
// no networking).
type RoomEventType string

const (
	EventGameStart        RoomEventType = "game_start"         // Public: game left the lobby.
	EventPlayerTurn       RoomEventType = "game_player_turn"   // Public: whose move it is now.
	EventMoveApplied      RoomEventType = "player_move"        // Public: a move landed, with its animation trace.
	EventPlayerEliminated RoomEventType = "player_eliminated"  // Public: a player lost their last orb.
	EventTurnSkipped      RoomEventType = "turn_skipped"       // Public: the move clock expired.
	EventGameEnd          RoomEventType = "game_end"           // Public: game finished, includes winner and reason.
)

// EventPlayer identifies a player within a RoomEvent payload.
type EventPlayer struct {
	ID    uuid.UUID `json:"id"`
	Color string    `json:"color,omitempty"`
}

// EventMove describes the placement that triggered an event.
type EventMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// RoomEvent is the standard structure for broadcasting room state changes.
type RoomEvent struct {
	Type   RoomEventType     `json:"type"`
	Player *EventPlayer      `json:"player,omitempty"` // The player initiating or affected by the event.
	Move   *EventMove        `json:"move,omitempty"`
	Trace  *engine.MoveTrace `json:"trace,omitempty"`  // Animation contract for EventMoveApplied.
	Reason string            `json:"reason,omitempty"` // "elimination", "runaway", "timeout" for EventGameEnd.

	State *StateSnapshot `json:"state,omitempty"` // Full snapshot for sync events.
}

// SnapshotCell is one cell in a client-facing snapshot.
type SnapshotCell struct {
	Row      int       `json:"row"`
	Col      int       `json:"col"`
	Orbs     int       `json:"orbs"`
	Owner    uuid.UUID `json:"owner,omitempty"`
	Capacity int       `json:"capacity"`
}

// SnapshotPlayer is one seat in a client-facing snapshot.
type SnapshotPlayer struct {
	ID            uuid.UUID `json:"id"`
	Color         string    `json:"color"`
	OrbCount      int       `json:"orbCount"`
	Eliminated    bool      `json:"eliminated"`
	Connected     bool      `json:"connected"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
}

// StateSnapshot is the full client-facing view of a room. The grid game
// has no hidden information, so the same snapshot serves every observer.
type StateSnapshot struct {
	RoomID        uuid.UUID        `json:"roomId"`
	Status        string           `json:"status"`
	Rows          int              `json:"rows"`
	Cols          int              `json:"cols"`
	Cells         []SnapshotCell   `json:"cells"` // only occupied cells
	Players       []SnapshotPlayer `json:"players"`
	CurrentPlayer uuid.UUID        `json:"currentPlayerId"`
	MoveCount     int              `json:"moveCount"`
	Winner        uuid.UUID        `json:"winnerId,omitempty"`
}

// buildSnapshot renders a GameState into the client-facing view.
// Reads from engine state as the authoritative source.
func buildSnapshot(roomID uuid.UUID, s *engine.GameState) *StateSnapshot {
	snap := &StateSnapshot{
		RoomID:        roomID,
		Status:        s.Status.String(),
		Rows:          s.Grid.Rows,
		Cols:          s.Grid.Cols,
		CurrentPlayer: s.CurrentPlayer,
		MoveCount:     s.MoveCount,
		Winner:        s.Winner,
	}

	for r := 0; r < s.Grid.Rows; r++ {
		for c := 0; c < s.Grid.Cols; c++ {
			cell := s.Grid.At(r, c)
			if cell.Orbs == 0 {
				continue
			}
			snap.Cells = append(snap.Cells, SnapshotCell{
				Row: r, Col: c,
				Orbs:     cell.Orbs,
				Owner:    cell.Owner,
				Capacity: cell.Capacity,
			})
		}
	}

	snap.Players = make([]SnapshotPlayer, len(s.Players))
	for i, p := range s.Players {
		snap.Players[i] = SnapshotPlayer{
			ID:            p.ID,
			Color:         p.Color,
			OrbCount:      p.OrbCount,
			Eliminated:    p.Eliminated,
			Connected:     p.Connected,
			IsCurrentTurn: s.Status == engine.StatusActive && p.ID == s.CurrentPlayer,
		}
	}
	return snap
}
