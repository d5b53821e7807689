package game

import "github.com/skyflap/skyflap/internal/core"

// DetectCollision reports whether the actor's box intersects any
// obstacle's top or bottom barrier, or has reached the world bounds.
// Boundary contact is inclusive: an actor exactly at the ceiling or floor
// counts as collided.
//
// The test is pure: it mutates nothing, and the caller decides what a
// collision costs.
func DetectCollision(actor core.Box, obstacles []Obstacle, worldH float64) bool {
	for _, o := range obstacles {
		if actor.Intersects(o.TopBox()) || actor.Intersects(o.BottomBox(worldH)) {
			return true
		}
	}

	if actor.Y <= 0 {
		return true
	}
	if actor.Y >= worldH-actor.H {
		return true
	}
	return false
}
