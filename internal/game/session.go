package game

import (
	"github.com/skyflap/skyflap/internal/config"
	"github.com/skyflap/skyflap/internal/core"
)

// Phase is the simulation loop's lifecycle state.
type Phase int

const (
	PhaseIdle   Phase = iota // Armed but not in motion; first flap starts the run
	PhaseActive              // Simulating
	PhasePaused              // Suspended; resume, new game or quit from here
	PhaseOver                // Terminal; the session reports its final score and ends
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseActive:
		return "Active"
	case PhasePaused:
		return "Paused"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Session is the fixed-tick simulation loop for one play session. Each
// Step consumes one input frame and advances the world by exactly one
// tick: spawn check, obstacle scroll, pruning, collision, score or life
// handling, stage check, high-score persistence. The session is strictly
// sequential; nothing in it blocks or touches the clock.
type Session struct {
	cfg config.GameConfig

	phase   Phase
	started bool

	actor     *Actor
	stager    *LevelStager
	spawner   *Spawner
	obstacles []Obstacle
	score     *ScoreTracker

	username   string
	recorder   HighScoreRecorder
	persistErr error

	tick int
}

// NewSession builds a session from the game config and runtime settings.
// highScore seeds the tracker with the user's persisted best; recorder may
// be nil (guest play, scores stay in memory).
func NewSession(cfg config.GameConfig, rt core.RuntimeConfig, username string, highScore int, recorder HighScoreRecorder) *Session {
	cx, cy := cfg.World.Width/2, cfg.World.Height/2

	stager := NewLevelStager(cfg.Stages, func(skin string) *Actor {
		return NewActor(cx, cy, cfg.Actor.Width, cfg.Actor.Height, cfg.Actor.Lives, skin)
	})

	return &Session{
		cfg:    cfg,
		phase:  PhaseIdle,
		actor:  stager.BaseActor(),
		stager: stager,
		spawner: NewSpawner(rt.Seed, cfg.Spawner, cfg.Obstacles,
			cfg.World.Width, cfg.World.Height, rt.TickRate),
		score:    NewScoreTracker(highScore),
		username: username,
		recorder: recorder,
	}
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Step advances the simulation by one tick under the given input frame.
// A quit request ends the session immediately, before any per-tick work.
func (s *Session) Step(in core.InputFrame) {
	if s.phase == PhaseOver {
		return
	}

	if in.Has(core.ActionQuit) {
		s.phase = PhaseOver
		return
	}

	switch s.phase {
	case PhasePaused:
		s.stepPaused(in)
	case PhaseIdle:
		if in.Has(core.ActionFlap) {
			s.phase = PhaseActive
			s.stepActive(in)
		}
	case PhaseActive:
		s.stepActive(in)
	}
}

func (s *Session) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionResume):
		s.phase = PhaseActive
	case in.Has(core.ActionNewGame):
		s.resetRun()
	}
}

func (s *Session) stepActive(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		s.phase = PhasePaused
		return
	}

	if in.Has(core.ActionFlap) {
		s.started = true
		s.actor.Flap(s.cfg.Physics.FlapImpulse)
	}

	// Pre-flap hover: after a soft reset (and before the first flap) the
	// world holds still until the player re-arms the run.
	if !s.started {
		return
	}

	s.tick++

	s.actor.ApplyGravity(s.cfg.Physics.Gravity)

	if ob := s.spawner.Update(s.tick, s.score.Current()); ob != nil {
		s.obstacles = append(s.obstacles, *ob)
	}

	for i := range s.obstacles {
		s.obstacles[i].Advance(s.cfg.Obstacles.Speed)
	}
	s.pruneObstacles()

	if DetectCollision(s.actor.Box(), s.obstacles, s.cfg.World.Height) {
		s.actor.ReduceLife()
		if s.actor.Lives == 0 {
			s.phase = PhaseOver
			return
		}
		s.softReset()
	} else {
		s.score.Increment()
	}

	// Stage hand-off swaps the single active-actor slot; next tick's
	// collision test already sees the incoming actor.
	s.actor, _ = s.stager.Check(s.score.Current(), s.actor)

	if s.score.UpdateHigh() && s.recorder != nil && s.username != "" {
		if err := s.recorder.SetHighScore(s.username, s.score.Current()); err != nil {
			s.persistErr = err
		}
	}
}

// pruneObstacles drops obstacles that have fully scrolled off the left
// edge, preserving spawn order for the rest.
func (s *Session) pruneObstacles() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.Offscreen() {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// softReset recovers from a non-fatal collision: the actor returns to the
// center with zero velocity, the obstacle set clears, and the run waits
// for the next flap. The current score survives.
func (s *Session) softReset() {
	s.actor.MoveTo(s.cfg.World.Width/2, s.cfg.World.Height/2)
	s.obstacles = s.obstacles[:0]
	s.spawner.Reset(s.tick, s.score.Current())
	s.started = false
}

// resetRun starts a fresh game: score back to zero, lives restored,
// obstacles cleared, base stage, waiting for the first flap. The high
// score is untouched.
func (s *Session) resetRun() {
	s.phase = PhaseIdle
	s.started = false
	s.tick = 0
	s.obstacles = nil
	s.score.Reset()
	s.stager.Reset(s.cfg.World.Width/2, s.cfg.World.Height/2, s.cfg.Actor.Lives)
	s.actor = s.stager.BaseActor()
	s.spawner.Reset(0, 0)
}

// TakePersistError returns and clears the last high-score write failure.
// The platform logs it; the loop itself never stops for one.
func (s *Session) TakePersistError() error {
	err := s.persistErr
	s.persistErr = nil
	return err
}

// Snapshot returns the render-ready view of the current frame.
func (s *Session) Snapshot() Snapshot {
	views := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		views[i] = ObstacleView{
			Top:    o.TopBox(),
			Bottom: o.BottomBox(s.cfg.World.Height),
		}
	}

	return Snapshot{
		Phase:        s.phase,
		Started:      s.started,
		Actor:        s.actor.Box(),
		Skin:         s.actor.Skin,
		Lives:        s.actor.Lives,
		Obstacles:    views,
		Score:        s.score.Current(),
		HighScore:    s.score.High(),
		ElapsedTicks: s.tick,
		Theme:        s.stager.Theme(),
		WorldW:       s.cfg.World.Width,
		WorldH:       s.cfg.World.Height,
	}
}
