package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := Default()
	if cfg.Physics.Gravity != def.Physics.Gravity {
		t.Errorf("gravity = %g, expected %g", cfg.Physics.Gravity, def.Physics.Gravity)
	}
	if cfg.Spawner.BaseMinMs != 2500 || cfg.Spawner.BaseMaxMs != 4500 {
		t.Errorf("base spawn interval = [%d, %d], expected [2500, 4500]", cfg.Spawner.BaseMinMs, cfg.Spawner.BaseMaxMs)
	}
	if len(cfg.Stages.Themes) != 3 {
		t.Errorf("expected 3 stage themes, got %d", len(cfg.Stages.Themes))
	}
	if cfg.Stages.Threshold != 300 {
		t.Errorf("stage threshold = %d, expected 300", cfg.Stages.Threshold)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := `
world: {width: 1000, height: 800}
physics: {gravity: 0.5, flap_impulse: -7}
actor: {width: 40, height: 40, lives: 5}
obstacles: {width: 80, gap_size: 200, speed: 5, min_gap_start: 50}
spawner: {base_min_ms: 1000, base_max_ms: 2000}
stages:
  threshold: 100
  themes:
    - {name: solo, background: sky, scenery: grass, skin: blue}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Actor.Lives != 5 {
		t.Errorf("lives = %d, expected 5", cfg.Actor.Lives)
	}
	if cfg.World.Width != 1000 {
		t.Errorf("world width = %g, expected 1000", cfg.World.Width)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{
			name: "zero world",
			content: `
world: {width: 0, height: 0}
physics: {gravity: 0.9, flap_impulse: -9}
actor: {width: 60, height: 60, lives: 3}
obstacles: {width: 100, gap_size: 220, speed: 7, min_gap_start: 100}
spawner: {base_min_ms: 2500, base_max_ms: 4500}
stages: {threshold: 300, themes: [{name: a}]}
`,
		},
		{
			name: "gap smaller than actor",
			content: `
world: {width: 1940, height: 1200}
physics: {gravity: 0.9, flap_impulse: -9}
actor: {width: 60, height: 60, lives: 3}
obstacles: {width: 100, gap_size: 40, speed: 7, min_gap_start: 100}
spawner: {base_min_ms: 2500, base_max_ms: 4500}
stages: {threshold: 300, themes: [{name: a}]}
`,
		},
		{
			name: "inverted spawn range",
			content: `
world: {width: 1940, height: 1200}
physics: {gravity: 0.9, flap_impulse: -9}
actor: {width: 60, height: 60, lives: 3}
obstacles: {width: 100, gap_size: 220, speed: 7, min_gap_start: 100}
spawner: {base_min_ms: 4500, base_max_ms: 2500}
stages: {threshold: 300, themes: [{name: a}]}
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should reject invalid config")
			}
		})
	}
}
