// internal/game/room.go

// Package game hosts the engine inside a room: it serializes state
// mutation behind a per-room mutex, drives the move and game clocks, and
// fans state changes out through caller-supplied callbacks. The engine
// assumes at most one in-flight ProcessMove per room; this package is
// where that discipline lives. Different rooms share no mutable state and
// run fully in parallel.
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kinetick/chainreaction/engine"
)

// OnGameEndFunc is the callback executed when a room's game ends. It
// receives the room ID, the winner, and the terminal status (finished or
// runaway). Persisting and broadcasting the final state is the host's job.
type OnGameEndFunc func(roomID uuid.UUID, winner uuid.UUID, status engine.Status)

// Room wraps one game behind a single-writer lock.
type Room struct {
	ID       uuid.UUID
	Settings engine.RoomSettings

	// Communication callbacks. Set before Start; never called with the
	// room lock released mid-transition, so handlers see consistent
	// snapshots. Nil callbacks are skipped.
	BroadcastFn func(ev RoomEvent)
	OnGameEnd   OnGameEndFunc

	mu        sync.Mutex
	state     engine.GameState
	startedAt time.Time
	moveTimer *time.Timer
	closed    bool

	now func() time.Time
	log *logrus.Entry
}

// NewRoom creates an empty lobby-state room with the given settings.
func NewRoom(settings engine.RoomSettings) (*Room, error) {
	state, err := engine.NewGameState(settings, nil)
	if err != nil {
		return nil, err
	}
	id, _ := uuid.NewRandom()
	return &Room{
		ID:       id,
		Settings: settings,
		state:    state,
		now:      time.Now,
		log:      logrus.WithField("room", id),
	}, nil
}

// Seat adds a player during the lobby phase, or marks an already-seated
// player as reconnected.
func (r *Room) Seat(p engine.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.state.Players {
		if r.state.Players[i].ID == p.ID {
			r.state.Players[i].Connected = true
			r.log.WithField("player", p.ID).Info("player reconnected")
			return nil
		}
	}
	if r.state.Status != engine.StatusLobby {
		return fmt.Errorf("room %s: game already started", r.ID)
	}
	if r.Settings.MaxPlayers > 0 && len(r.state.Players) >= r.Settings.MaxPlayers {
		return fmt.Errorf("room %s: full (%d players)", r.ID, len(r.state.Players))
	}
	p.Connected = true
	r.state.Players = append(r.state.Players, p)
	r.log.WithFields(logrus.Fields{"player": p.ID, "seats": len(r.state.Players)}).Info("player seated")
	return nil
}

// Start transitions the room from lobby to active play: the first seated
// player moves first and the move clock begins.
func (r *Room) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Status != engine.StatusLobby {
		return fmt.Errorf("room %s: Start called in status %s", r.ID, r.state.Status)
	}
	if len(r.state.Players) < 2 {
		return fmt.Errorf("room %s: need at least 2 players, have %d", r.ID, len(r.state.Players))
	}

	now := r.now()
	r.state.CurrentPlayer = r.state.Players[0].ID
	r.state = r.state.Begin(now)
	r.startedAt = now
	r.log.WithField("players", len(r.state.Players)).Info("game started")

	r.broadcast(RoomEvent{Type: EventGameStart, State: buildSnapshot(r.ID, &r.state)})
	r.broadcastTurn()
	r.scheduleMoveClock()
	return nil
}

// SubmitMove applies one move for the given player. Rejections come back
// in the result's Reason; the room state is untouched on failure.
func (r *Room) SubmitMove(playerID uuid.UUID, row, col int) engine.MoveResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := engine.ProcessMove(&r.state, playerID, row, col, r.now())
	if !res.Success {
		r.log.WithFields(logrus.Fields{
			"player": playerID, "row": row, "col": col, "reason": res.Reason.String(),
		}).Debug("move rejected")
		return res
	}

	prev := r.state
	r.state = *res.State

	r.broadcast(RoomEvent{
		Type:   EventMoveApplied,
		Player: &EventPlayer{ID: playerID},
		Move:   &EventMove{Row: row, Col: col},
		Trace:  res.Trace,
		State:  buildSnapshot(r.ID, &r.state),
	})

	// Announce fresh eliminations.
	for i := range r.state.Players {
		if r.state.Players[i].Eliminated && !prev.Players[i].Eliminated {
			r.broadcast(RoomEvent{
				Type:   EventPlayerEliminated,
				Player: &EventPlayer{ID: r.state.Players[i].ID, Color: r.state.Players[i].Color},
			})
		}
	}

	if r.state.IsTerminal() {
		reason := "elimination"
		if r.state.Status == engine.StatusRunaway {
			reason = "runaway"
		}
		r.finishLocked(reason)
		return res
	}

	r.broadcastTurn()
	r.scheduleMoveClock()
	return res
}

// CheckClocks evaluates both clocks against the current time and applies
// whatever expired: a game timeout finishes the game, a move timeout
// skips the turn. The game clock takes precedence. Hosts without their
// own poller can rely on the internal move timer, which calls this.
func (r *Room) CheckClocks() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkClocksLocked()
}

func (r *Room) checkClocksLocked() {
	if r.closed || r.state.Status != engine.StatusActive {
		return
	}

	now := r.now()
	tr := engine.CheckTimeouts(&r.state, r.Settings, r.startedAt, now)
	switch {
	case tr.GameTimeout:
		if tr.HasWinner {
			r.state = engine.FinishByTimeout(&r.state, tr.Winner)
		} else {
			r.state = engine.FinishByTimeout(&r.state, uuid.Nil)
		}
		r.log.WithField("winner", r.state.Winner).Info("game clock expired")
		r.finishLocked("timeout")

	case tr.MoveTimeout:
		skipped := r.state.CurrentPlayer
		r.state = engine.HandleMoveTimeout(&r.state, now)
		r.log.WithFields(logrus.Fields{"skipped": skipped, "next": r.state.CurrentPlayer}).Info("move clock expired")
		r.broadcast(RoomEvent{Type: EventTurnSkipped, Player: &EventPlayer{ID: skipped}})
		r.broadcastTurn()
		r.scheduleMoveClock()
	}
}

// State returns a deep copy of the current game state.
func (r *Room) State() engine.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone()
}

// SetConnected updates a player's connection flag. Disconnected players
// still hold their seat and their turn; the move clock handles stalls.
func (r *Room) SetConnected(playerID uuid.UUID, connected bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.state.Players {
		if r.state.Players[i].ID == playerID {
			r.state.Players[i].Connected = connected
			return
		}
	}
}

// Close stops the room's timers. The room rejects no further calls, but
// no clock will fire after Close returns.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.stopMoveClock()
}

// finishLocked broadcasts the end of the game and stops the clocks.
// Assumes lock is held by caller and state is already terminal.
func (r *Room) finishLocked(reason string) {
	r.stopMoveClock()
	r.broadcast(RoomEvent{
		Type:   EventGameEnd,
		Player: &EventPlayer{ID: r.state.Winner},
		Reason: reason,
		State:  buildSnapshot(r.ID, &r.state),
	})
	if r.OnGameEnd != nil {
		r.OnGameEnd(r.ID, r.state.Winner, r.state.Status)
	}
}

// scheduleMoveClock arms the per-turn timer. Assumes lock is held.
func (r *Room) scheduleMoveClock() {
	r.stopMoveClock()
	if r.closed || r.Settings.MoveTimeLimitSec <= 0 || r.state.Status != engine.StatusActive {
		return
	}
	d := time.Duration(r.Settings.MoveTimeLimitSec) * time.Second
	// Fire slightly after the deadline so CheckTimeouts sees it expired.
	r.moveTimer = time.AfterFunc(d+50*time.Millisecond, r.CheckClocks)
}

// stopMoveClock disarms the per-turn timer. Assumes lock is held.
func (r *Room) stopMoveClock() {
	if r.moveTimer != nil {
		r.moveTimer.Stop()
		r.moveTimer = nil
	}
}

// broadcastTurn announces the current player. Assumes lock is held.
func (r *Room) broadcastTurn() {
	r.broadcast(RoomEvent{Type: EventPlayerTurn, Player: &EventPlayer{ID: r.state.CurrentPlayer}})
}

// broadcast delivers an event if a sink is attached. Assumes lock is held.
func (r *Room) broadcast(ev RoomEvent) {
	if r.BroadcastFn != nil {
		r.BroadcastFn(ev)
	}
}
