// Package engine implements the chain-reaction orb game rules.
//
// This package is the deterministic core: given a grid state and a move it
// computes the resulting grid, elimination status, win condition, and the
// move's legality. Every transition is a pure function that returns a new
// state value; the package never mutates its inputs, holds no state across
// calls, and performs no I/O. Networking, persistence, and room management
// live with the host integration (see internal/game).
package engine

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle phase of a game. Transitions are one-way:
// lobby -> active -> {finished | runaway}.
type Status uint8

const (
	StatusLobby    Status = iota // 0 — waiting for players, no moves accepted
	StatusActive                 // 1 — moves accepted
	StatusFinished               // 2 — a winner was decided by elimination or timeout
	StatusRunaway                // 3 — the wave cap was hit; the acting player won outright
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusLobby:
		return "lobby"
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	case StatusRunaway:
		return "runaway"
	}
	return "unknown"
}

// Player holds one seat in turn order. OrbCount is a cached derivation of
// the grid, refreshed by the elimination pass after every applied move.
// Eliminated is monotonic: once true it is never reset by this package.
type Player struct {
	ID         uuid.UUID
	Color      string
	OrbCount   int
	Eliminated bool
	Connected  bool
}

// GameState is the complete, self-contained state of one game. It is a
// value type with deep-copy support; no two states alias the same grid or
// player slice.
type GameState struct {
	Grid          Grid
	Players       []Player // turn order, fixed at creation
	CurrentPlayer uuid.UUID
	MoveCount     int
	TurnStartedAt time.Time
	Status        Status
	Winner        uuid.UUID // uuid.Nil unless Status is finished or runaway
	Settings      RoomSettings
}

// NewGameState creates a lobby-state game on an empty grid sized from the
// settings. Turn order follows the given player slice. The first player in
// the list acts first once the game begins.
func NewGameState(settings RoomSettings, players []Player) (GameState, error) {
	grid, err := NewGrid(settings.Rows, settings.Cols)
	if err != nil {
		return GameState{}, err
	}
	ps := make([]Player, len(players))
	copy(ps, players)
	g := GameState{
		Grid:     grid,
		Players:  ps,
		Status:   StatusLobby,
		Settings: settings,
	}
	if len(ps) > 0 {
		g.CurrentPlayer = ps[0].ID
	}
	return g, nil
}

// Begin transitions the game from lobby to active and stamps the first
// turn's start time. Returns a new state; the receiver is unchanged.
// Begin on a non-lobby state is a no-op copy.
func (g *GameState) Begin(now time.Time) GameState {
	out := g.Clone()
	if out.Status != StatusLobby {
		return out
	}
	out.Status = StatusActive
	out.TurnStartedAt = now
	return out
}

// Clone returns a deep copy sharing no memory with the receiver.
func (g *GameState) Clone() GameState {
	out := *g
	out.Grid = g.Grid.Clone()
	out.Players = make([]Player, len(g.Players))
	copy(out.Players, g.Players)
	return out
}

// IsTerminal returns true when the game has ended.
func (g *GameState) IsTerminal() bool {
	return g.Status == StatusFinished || g.Status == StatusRunaway
}

// playerIndex returns the turn-order index of the given player, or -1.
func (g *GameState) playerIndex(id uuid.UUID) int {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return i
		}
	}
	return -1
}
