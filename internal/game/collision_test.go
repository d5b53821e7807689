package game

import (
	"testing"

	"github.com/skyflap/skyflap/internal/core"
)

const testWorldH = 1200.0

func TestDetectCollisionClearAir(t *testing.T) {
	// Strictly inside the bounds with no overlapping barrier: never collides
	positions := []float64{0.5, 100, 570, testWorldH - 60.5}
	for _, y := range positions {
		actor := core.NewBox(900, y, 60, 60)
		if DetectCollision(actor, nil, testWorldH) {
			t.Errorf("actor at y=%g with no obstacles should not collide", y)
		}
	}
}

func TestDetectCollisionBoundsInclusive(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"exactly at ceiling", 0, true},
		{"above ceiling", -10, true},
		{"exactly at floor", testWorldH - 60, true},
		{"below floor", testWorldH, true},
		{"just under ceiling", 0.1, false},
		{"just above floor", testWorldH - 60.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actor := core.NewBox(900, tc.y, 60, 60)
			if got := DetectCollision(actor, nil, testWorldH); got != tc.want {
				t.Errorf("DetectCollision at y=%g = %v, expected %v", tc.y, got, tc.want)
			}
		})
	}
}

func TestDetectCollisionWithBars(t *testing.T) {
	ob := Obstacle{X: 900, GapStart: 400, GapSize: 220, Width: 100}
	obstacles := []Obstacle{ob}

	tests := []struct {
		name string
		box  core.Box
		want bool
	}{
		{"inside the gap", core.NewBox(920, 480, 60, 60), false},
		{"hits top bar", core.NewBox(920, 350, 60, 60), true},
		{"hits bottom bar", core.NewBox(920, 600, 60, 60), true},
		{"grazes gap ceiling", core.NewBox(920, 399, 60, 60), true},
		{"left of obstacle", core.NewBox(700, 350, 60, 60), false},
		{"right of obstacle", core.NewBox(1100, 350, 60, 60), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectCollision(tc.box, obstacles, testWorldH); got != tc.want {
				t.Errorf("DetectCollision = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDetectCollisionAnyObstacleCounts(t *testing.T) {
	obstacles := []Obstacle{
		{X: 300, GapStart: 400, GapSize: 220, Width: 100}, // Actor is in this gap
		{X: 900, GapStart: 100, GapSize: 220, Width: 100}, // Actor overlaps this bottom bar
	}

	actor := core.NewBox(920, 500, 60, 60)
	if !DetectCollision(actor, obstacles, testWorldH) {
		t.Error("collision with any obstacle in the set must be detected")
	}
}

func TestDetectCollisionIsPure(t *testing.T) {
	ob := Obstacle{X: 900, GapStart: 400, GapSize: 220, Width: 100}
	obstacles := []Obstacle{ob}
	actor := core.NewBox(920, 350, 60, 60)

	DetectCollision(actor, obstacles, testWorldH)

	if obstacles[0] != ob {
		t.Error("detection must not mutate the obstacle set")
	}
}
