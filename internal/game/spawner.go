package game

import (
	"math/rand"

	"github.com/skyflap/skyflap/internal/config"
)

// Spawner creates obstacles at randomized intervals. Intervals are
// configured in milliseconds and converted to ticks up front, so the
// spawner counts ticks and never touches the wall clock. The interval is
// re-rolled after every spawn; the roll range narrows in fixed score bands
// as difficulty ramps up.
type Spawner struct {
	rng       *rand.Rand
	cfg       config.SpawnerConfig
	obstacles config.ObstacleConfig
	worldW    float64
	worldH    float64
	tickRate  int

	lastSpawnTick int
	intervalTicks int
}

// NewSpawner creates a spawner seeded for deterministic sequences.
func NewSpawner(seed int64, cfg config.SpawnerConfig, obstacles config.ObstacleConfig, worldW, worldH float64, tickRate int) *Spawner {
	s := &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		obstacles: obstacles,
		worldW:    worldW,
		worldH:    worldH,
		tickRate:  tickRate,
	}
	s.intervalTicks = s.rollInterval(0)
	return s
}

// Reset restarts the spawn timer from the given tick and re-rolls the
// interval for the given score, so a mid-run reset keeps the difficulty
// band the score has already reached. The RNG stream is not rewound;
// determinism comes from the session feeding the same inputs in the same
// order.
func (s *Spawner) Reset(tick, score int) {
	s.lastSpawnTick = tick
	s.intervalTicks = s.rollInterval(score)
}

// Update spawns a new obstacle when the elapsed ticks since the previous
// spawn reach the active randomized interval. Returns nil otherwise.
// Timer logic can never produce two spawns in one tick.
func (s *Spawner) Update(tick, score int) *Obstacle {
	if tick-s.lastSpawnTick < s.intervalTicks {
		return nil
	}

	gapStart := s.rollGapStart()
	ob := &Obstacle{
		X:        s.worldW,
		GapStart: gapStart,
		GapSize:  s.obstacles.GapSize,
		Width:    s.obstacles.Width,
	}

	s.lastSpawnTick = tick
	s.intervalTicks = s.rollInterval(score)
	return ob
}

// Interval returns the currently active spawn interval in ticks.
func (s *Spawner) Interval() int {
	return s.intervalTicks
}

// rollGapStart draws a gap position uniformly from
// [minGapStart, worldH-gapSize].
func (s *Spawner) rollGapStart() float64 {
	min := s.obstacles.MinGapStart
	max := s.worldH - s.obstacles.GapSize
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// rollInterval draws a fresh interval from the range owned by the score's
// difficulty band and converts it to ticks. Bands are a step function of
// score; the highest matching band wins.
func (s *Spawner) rollInterval(score int) int {
	minMs, maxMs := s.cfg.BaseMinMs, s.cfg.BaseMaxMs

	best := -1
	for _, band := range s.cfg.Bands {
		if score > band.Score && band.Score > best {
			best = band.Score
			minMs, maxMs = band.MinMs, band.MaxMs
		}
	}

	ms := minMs
	if maxMs > minMs {
		ms = minMs + s.rng.Intn(maxMs-minMs+1)
	}

	ticks := ms * s.tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
