package game

import (
	"github.com/skyflap/skyflap/internal/config"
	"github.com/skyflap/skyflap/internal/core"
)

// ObstacleView is a render-ready pair of barrier boxes.
type ObstacleView struct {
	Top    core.Box
	Bottom core.Box
}

// Snapshot is the read-only view of one frame, handed to the renderer
// after every step. The renderer never reaches into the session.
type Snapshot struct {
	Phase   Phase
	Started bool // False until the first flap of the run arms motion

	Actor     core.Box
	Skin      string
	Lives     int
	Obstacles []ObstacleView

	Score        int
	HighScore    int
	ElapsedTicks int // Simulated ticks this session; divide by tick rate for seconds

	Theme  config.StageTheme
	WorldW float64
	WorldH float64
}
