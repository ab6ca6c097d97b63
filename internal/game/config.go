// internal/game/config.go
package game

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kinetick/chainreaction/engine"
)

// Environment variable names for host-side room defaults. Settings passed
// explicitly to NewRoom always win; these only seed DefaultSettings.
const (
	envRows        = "GAME_BOARD_ROWS"
	envCols        = "GAME_BOARD_COLS"
	envMaxPlayers  = "GAME_MAX_PLAYERS"
	envMoveSeconds = "GAME_MOVE_SECONDS"
	envGameMinutes = "GAME_TIME_MINUTES"
	envMaxWaves    = "GAME_MAX_WAVES"
)

// DefaultSettings returns the engine defaults overridden by any
// environment variables, loading a .env file first if one exists.
func DefaultSettings() engine.RoomSettings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not load .env file")
	}

	s := engine.DefaultRoomSettings()
	s.Rows = envInt(envRows, s.Rows)
	s.Cols = envInt(envCols, s.Cols)
	s.MaxPlayers = envInt(envMaxPlayers, s.MaxPlayers)
	s.MoveTimeLimitSec = envInt(envMoveSeconds, s.MoveTimeLimitSec)
	s.GameTimeLimitMin = envInt(envGameMinutes, s.GameTimeLimitMin)
	s.MaxWaves = envInt(envMaxWaves, s.MaxWaves)
	return s
}

// envInt reads an integer environment variable, falling back on absence
// or a parse failure.
func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{"var": key, "value": raw}).Warn("ignoring non-integer environment value")
		return fallback
	}
	return n
}
