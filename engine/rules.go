package engine

// DefaultMaxWaves bounds the explosion fixed-point loop when RoomSettings
// leaves MaxWaves at 0. Hitting the bound is not an error: it is the
// runaway terminal outcome, and the only cancellation mechanism the
// simulation has.
const DefaultMaxWaves = 1000

// RoomSettings holds the per-room configuration supplied by room-management
// code. The core reads only the board-size, time-limit, and wave-cap
// fields; the rest is carried for the host's benefit.
type RoomSettings struct {
	MaxPlayers       int
	Rows             int
	Cols             int
	GameTimeLimitMin int // 0 = no game clock
	MoveTimeLimitSec int // 0 = no move clock
	MaxWaves         int // 0 = DefaultMaxWaves
	UndoEnabled      bool
	IsPrivate        bool
}

// DefaultRoomSettings returns the standard room configuration: a 9x6 board
// for up to 4 players with a 30-second move clock and no game clock.
func DefaultRoomSettings() RoomSettings {
	return RoomSettings{
		MaxPlayers:       4,
		Rows:             9,
		Cols:             6,
		GameTimeLimitMin: 0,
		MoveTimeLimitSec: 30,
		MaxWaves:         DefaultMaxWaves,
		UndoEnabled:      false,
		IsPrivate:        false,
	}
}

// maxWaves returns the effective wave cap, treating 0 as the default.
func (r *RoomSettings) maxWaves() int {
	if r.MaxWaves <= 0 {
		return DefaultMaxWaves
	}
	return r.MaxWaves
}
