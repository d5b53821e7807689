package game

import "github.com/skyflap/skyflap/internal/config"

// LevelStager rotates the session through themed stages as the score
// crosses fixed bands: stage index = (score / threshold) mod N, where the
// themes list supplies N variants and index 0 is the base stage.
//
// Each stage owns a pre-existing actor instance carrying that stage's
// skin. A transition hands the run over to the incoming stage's actor -
// copying position, velocity and lives - instead of constructing a fresh
// one, so a theme change is purely cosmetic. The session keeps a single
// active-actor slot that the collision step reads, which makes the
// hand-off atomic: there is no second reference to go stale.
type LevelStager struct {
	threshold int
	themes    []config.StageTheme
	actors    []*Actor
	index     int
}

// NewLevelStager creates a stager with one actor per theme. The base
// stage's actor (index 0) is the session's starting actor.
func NewLevelStager(cfg config.StagesConfig, makeActor func(skin string) *Actor) *LevelStager {
	actors := make([]*Actor, len(cfg.Themes))
	for i, theme := range cfg.Themes {
		actors[i] = makeActor(theme.Skin)
	}
	return &LevelStager{
		threshold: cfg.Threshold,
		themes:    cfg.Themes,
		actors:    actors,
	}
}

// BaseActor returns the base stage's actor instance.
func (ls *LevelStager) BaseActor() *Actor {
	return ls.actors[0]
}

// Theme returns the active stage's theme.
func (ls *LevelStager) Theme() config.StageTheme {
	return ls.themes[ls.index]
}

// Index returns the active stage index.
func (ls *LevelStager) Index() int {
	return ls.index
}

// Check evaluates the stage band for the given score. When the band index
// differs from the active stage it performs the hand-off and returns the
// incoming actor and true; the transition fires exactly once per boundary
// crossing, never again while the score stays inside the same band.
// Otherwise the current actor is returned unchanged.
func (ls *LevelStager) Check(score int, active *Actor) (*Actor, bool) {
	idx := (score / ls.threshold) % len(ls.themes)
	if idx == ls.index {
		return active, false
	}

	ls.index = idx
	next := ls.actors[idx]
	next.AdoptState(active)
	return next, true
}

// Reset returns the stager to the base stage for a new game and restores
// every stage actor to the given spawn point with full lives.
func (ls *LevelStager) Reset(cx, cy float64, lives int) {
	ls.index = 0
	for _, a := range ls.actors {
		a.MoveTo(cx, cy)
		a.Lives = lives
	}
}
