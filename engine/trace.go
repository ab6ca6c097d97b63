package engine

import "fmt"

// Animation trace records. A presentation layer replays a move as an
// ordered sequence of waves. Every record key is a pure function of
// (row, col, wave index) so that recomputing the same move yields
// byte-identical identifiers — no wall-clock or random input.

// Placement records the orb placed by the move itself, before any wave.
type Placement struct {
	Row   int
	Col   int
	Color string
}

// Key returns the stable identifier for this placement.
func (p Placement) Key() string {
	return fmt.Sprintf("place-%d-%d", p.Row, p.Col)
}

// Explosion records one cell clearing during a wave.
type Explosion struct {
	Row  int
	Col  int
	Wave int
}

// Key returns the stable identifier for this explosion.
func (e Explosion) Key() string {
	return fmt.Sprintf("boom-%d-%d-w%d", e.Row, e.Col, e.Wave)
}

// OrbMove records one orb travelling from an exploding cell to an
// orthogonal neighbor during a wave.
type OrbMove struct {
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
	Wave    int
}

// Key returns the stable identifier for this orb movement.
func (m OrbMove) Key() string {
	return fmt.Sprintf("orb-%d-%d-%d-%d-w%d", m.FromRow, m.FromCol, m.ToRow, m.ToCol, m.Wave)
}

// Wave is one synchronous round of the simulation: the set of cells that
// exploded and the orb movements they produced, all computed against the
// pre-wave snapshot.
type Wave struct {
	Index      int
	Explosions []Explosion
	Moves      []OrbMove
}

// MoveTrace is the full animation contract for one applied move. It is
// derived from the authoritative simulation — there is no second
// predictive computation that could diverge from it.
type MoveTrace struct {
	Placement Placement
	Waves     []Wave
}
