package game

import "github.com/skyflap/skyflap/internal/core"

// Obstacle is a paired top/bottom barrier with a passable gap. The top bar
// spans from the world ceiling down to GapStart; the bottom bar spans from
// GapStart+GapSize to the world floor.
type Obstacle struct {
	X        float64 // Left edge; decreases as the obstacle scrolls
	GapStart float64 // Top of the passable gap
	GapSize  float64
	Width    float64
}

// Advance scrolls the obstacle left by the given per-tick speed.
func (o *Obstacle) Advance(speed float64) {
	o.X -= speed
}

// Offscreen reports whether the obstacle has fully left the playfield.
// This is a query, not a failure state.
func (o Obstacle) Offscreen() bool {
	return o.X+o.Width < 0
}

// TopBox returns the collision box of the upper barrier.
func (o Obstacle) TopBox() core.Box {
	return core.NewBox(o.X, 0, o.Width, o.GapStart)
}

// BottomBox returns the collision box of the lower barrier for a world of
// the given height.
func (o Obstacle) BottomBox(worldH float64) core.Box {
	bottomY := o.GapStart + o.GapSize
	return core.NewBox(o.X, bottomY, o.Width, worldH-bottomY)
}
