// Package game implements the skyflap simulation: a gravity-bound actor
// threading a stream of gated obstacles under a fixed tick rate. The
// package is pure - no I/O, no wall clock - so every behavior is
// reproducible from a seed and an input sequence.
package game

import "github.com/skyflap/skyflap/internal/core"

// Actor is the player-controlled falling entity. Position is the top-left
// corner of its bounding box in world units.
type Actor struct {
	X, Y  float64
	Vel   float64 // Vertical velocity; negative is up
	W, H  float64
	Lives int
	Skin  string // Cosmetic identifier consumed by the renderer
}

// NewActor creates an actor centered on (cx, cy) with full lives.
func NewActor(cx, cy, w, h float64, lives int, skin string) *Actor {
	return &Actor{
		X:     cx - w/2,
		Y:     cy - h/2,
		W:     w,
		H:     h,
		Lives: lives,
		Skin:  skin,
	}
}

// Flap sets the vertical velocity to the given upward impulse,
// unconditionally replacing any existing velocity. Taps never accumulate.
func (a *Actor) Flap(impulse float64) {
	a.Vel = impulse
}

// ApplyGravity advances the actor by one tick: position moves by the
// current velocity, then the velocity gains the gravity constant
// (semi-implicit Euler, one tick = one frame).
func (a *Actor) ApplyGravity(gravity float64) {
	a.Y += a.Vel
	a.Vel += gravity
}

// ReduceLife decrements the remaining lives. Lives never go below zero;
// the caller checks for the terminal condition.
func (a *Actor) ReduceLife() {
	if a.Lives > 0 {
		a.Lives--
	}
}

// Box returns the actor's bounding box, derived from its position and
// fixed size.
func (a *Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.W, a.H)
}

// AdoptState copies the run state - position, velocity and lives - from
// another actor. Used during stage hand-off so a cosmetic skin change
// never disturbs the run.
func (a *Actor) AdoptState(from *Actor) {
	a.X = from.X
	a.Y = from.Y
	a.Vel = from.Vel
	a.Lives = from.Lives
}

// MoveTo recenters the actor on (cx, cy) and zeroes its velocity.
// Used by the soft reset after a non-fatal collision.
func (a *Actor) MoveTo(cx, cy float64) {
	a.X = cx - a.W/2
	a.Y = cy - a.H/2
	a.Vel = 0
}
