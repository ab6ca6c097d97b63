package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestFullGameRunawayOn2x2 plays a complete 2x2 game move by move. On a
// 2x2 board every cell is a corner with capacity 2, and once four orbs are
// on the board the chain oscillates forever — the wave cap converts that
// into a runaway win for the player who triggered it.
func TestFullGameRunawayOn2x2(t *testing.T) {
	g := newActiveState(t, 2, 2)

	play := func(state GameState, id uuid.UUID, row, col int) GameState {
		t.Helper()
		res := ProcessMove(&state, id, row, col, t0)
		if !res.Success {
			t.Fatalf("move (%d,%d) rejected: %v", row, col, res.Reason)
		}
		return *res.State
	}

	g = play(g, playerA, 0, 0) // A: 1 orb
	if g.CurrentPlayer != playerB {
		t.Fatalf("turn = %v after move 1, want B", g.CurrentPlayer)
	}
	g = play(g, playerB, 1, 1) // B: 1 orb
	g = play(g, playerA, 0, 0) // A corner explodes, claims (0,1) and (1,0)
	if g.MoveCount != 3 {
		t.Fatalf("MoveCount = %d, want 3", g.MoveCount)
	}
	if got := g.Grid.OrbCount(playerA); got != 2 {
		t.Fatalf("A orbs = %d after corner explosion, want 2", got)
	}

	// B's fourth move brings the board to four orbs; the cascade never
	// stabilizes and the wave cap fires.
	res := ProcessMove(&g, playerB, 1, 1, t0)
	if !res.Success {
		t.Fatalf("move 4 rejected: %v", res.Reason)
	}
	if !res.Runaway {
		t.Fatal("expected a runaway on the saturated 2x2 board")
	}
	final := res.State
	if final.Status != StatusRunaway {
		t.Errorf("Status = %v, want runaway", final.Status)
	}
	if final.Winner != playerB {
		t.Errorf("Winner = %v, want B (acting player)", final.Winner)
	}
	if len(res.Trace.Waves) != final.Settings.maxWaves() {
		t.Errorf("trace has %d waves, want %d", len(res.Trace.Waves), final.Settings.maxWaves())
	}

	// Terminal state rejects further moves with the runaway reason.
	after := ProcessMove(final, playerA, 0, 1, t0)
	if after.Success || after.Reason != ReasonGameRunaway {
		t.Errorf("post-game move: success=%v reason=%v, want rejection with game_runaway", after.Success, after.Reason)
	}
}

// TestProcessMoveDeterministic verifies the whole transition is a pure
// function of its inputs: replaying the same move on equal states yields
// equal results.
func TestProcessMoveDeterministic(t *testing.T) {
	build := func() GameState {
		g := newActiveState(t, 3, 3)
		g.MoveCount = 6
		setCell(&g.Grid, 0, 0, 1, playerA)
		setCell(&g.Grid, 0, 1, 2, playerA)
		setCell(&g.Grid, 1, 0, 2, playerB)
		setCell(&g.Grid, 2, 2, 1, playerB)
		return g
	}

	now := t0.Add(5 * time.Second)
	s1, s2 := build(), build()
	r1 := ProcessMove(&s1, playerA, 0, 0, now)
	r2 := ProcessMove(&s2, playerA, 0, 0, now)

	if !r1.Success || !r2.Success {
		t.Fatalf("moves rejected: %v, %v", r1.Reason, r2.Reason)
	}
	if !r1.State.Grid.Equal(&r2.State.Grid) {
		t.Error("replayed move produced a different grid")
	}
	if r1.State.CurrentPlayer != r2.State.CurrentPlayer || r1.State.Status != r2.State.Status {
		t.Error("replayed move produced different turn state")
	}
	if len(r1.Trace.Waves) != len(r2.Trace.Waves) {
		t.Fatal("replayed move produced a different trace")
	}
	for i := range r1.Trace.Waves {
		if len(r1.Trace.Waves[i].Moves) != len(r2.Trace.Waves[i].Moves) {
			t.Errorf("wave %d differs between replays", i)
		}
	}
}

// TestLifecycleTransitions verifies the one-way status path
// lobby -> active -> finished and that lobby states reject moves.
func TestLifecycleTransitions(t *testing.T) {
	settings := DefaultRoomSettings()
	settings.Rows, settings.Cols = 3, 3
	lobby, err := NewGameState(settings, []Player{
		{ID: playerA, Color: "red"},
		{ID: playerB, Color: "blue"},
	})
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	if lobby.Status != StatusLobby {
		t.Fatalf("Status = %v, want lobby", lobby.Status)
	}

	if res := ProcessMove(&lobby, playerA, 0, 0, t0); res.Success || res.Reason != ReasonGameInLobby {
		t.Errorf("lobby move: success=%v reason=%v, want rejection with game_in_lobby", res.Success, res.Reason)
	}

	active := lobby.Begin(t0)
	if active.Status != StatusActive {
		t.Fatalf("Status = %v after Begin, want active", active.Status)
	}
	if lobby.Status != StatusLobby {
		t.Error("Begin mutated the lobby state")
	}

	// Begin on an active game is a no-op copy.
	again := active.Begin(t0.Add(time.Hour))
	if !again.TurnStartedAt.Equal(t0) {
		t.Error("Begin restarted the clock on an active game")
	}
}
