// Package config provides YAML-based game configuration with embedded
// defaults. The simulation runs in continuous world units; everything that
// tunes the feel of the game lives here.
package config

// GameConfig contains all tunable parameters for a play session.
type GameConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Stages    StagesConfig    `yaml:"stages"`
}

// WorldConfig defines the size of the simulated playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick motion constants. The loop runs at a
// fixed tick rate, so these are displacements per tick, not per second.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Velocity gain per tick (downward)
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set on flap (negative = up)
}

// ActorConfig defines the player entity.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"`
}

// ObstacleConfig defines barrier geometry and scroll speed.
type ObstacleConfig struct {
	Width       float64 `yaml:"width"`
	GapSize     float64 `yaml:"gap_size"`
	Speed       float64 `yaml:"speed"`         // Leftward displacement per tick
	MinGapStart float64 `yaml:"min_gap_start"` // Lowest allowed top of the gap
}

// SpawnerConfig defines the randomized spawn timing in milliseconds.
// Intervals are converted to ticks at session start so the simulation
// never reads the wall clock. Bands narrow the interval as score grows.
type SpawnerConfig struct {
	BaseMinMs int            `yaml:"base_min_ms"`
	BaseMaxMs int            `yaml:"base_max_ms"`
	Bands     []IntervalBand `yaml:"bands"`
}

// IntervalBand replaces the base interval range once the score exceeds
// Score. When several bands match, the highest Score wins.
type IntervalBand struct {
	Score int `yaml:"score"`
	MinMs int `yaml:"min_ms"`
	MaxMs int `yaml:"max_ms"`
}

// StagesConfig defines the score-band theme rotation.
type StagesConfig struct {
	Threshold int          `yaml:"threshold"` // Score band size per stage
	Themes    []StageTheme `yaml:"themes"`    // Rotation; index 0 is the base stage
}

// StageTheme is a cosmetic variant: background palette, scenery asset and
// actor skin identifiers consumed by the renderer.
type StageTheme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Scenery    string `yaml:"scenery"`
	Skin       string `yaml:"skin"`
}
