package config

import (
	_ "embed"
)

//go:embed defaults/skyflap.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Used as the final fallback
// and by tests that need a known-good config without touching disk.
func Default() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  1940,
			Height: 1200,
		},
		Physics: PhysicsConfig{
			Gravity:     0.9,
			FlapImpulse: -9,
		},
		Actor: ActorConfig{
			Width:  60,
			Height: 60,
			Lives:  3,
		},
		Obstacles: ObstacleConfig{
			Width:       100,
			GapSize:     220,
			Speed:       7,
			MinGapStart: 100,
		},
		Spawner: SpawnerConfig{
			BaseMinMs: 2500,
			BaseMaxMs: 4500,
			Bands: []IntervalBand{
				{Score: 4000, MinMs: 2000, MaxMs: 3000},
				{Score: 10000, MinMs: 1500, MaxMs: 2500},
			},
		},
		Stages: StagesConfig{
			Threshold: 300,
			Themes: []StageTheme{
				{Name: "meadow", Background: "sky", Scenery: "grass", Skin: "blue"},
				{Name: "orchard", Background: "cream", Scenery: "flowers", Skin: "green"},
				{Name: "dusk", Background: "pink", Scenery: "butterflies", Skin: "beige"},
			},
		},
	}
}
