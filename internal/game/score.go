package game

// HighScoreRecorder persists a new high score for a user. Implemented by
// the accounts store; writes are fire-and-forget from the loop's point of
// view, a failed write must never stop the simulation.
type HighScoreRecorder interface {
	SetHighScore(username string, score int) error
}

// ScoreTracker holds the current and high score counters for a run.
// Current counts surviving ticks - one point per Active tick without a
// collision, not per gate passed. High is monotonically non-decreasing for
// the tracker's lifetime; it is seeded once from the persisted value at
// session start and never lowered by a current-score reset.
type ScoreTracker struct {
	current int
	high    int
}

// NewScoreTracker creates a tracker seeded with a previously persisted
// high score.
func NewScoreTracker(high int) *ScoreTracker {
	if high < 0 {
		high = 0
	}
	return &ScoreTracker{high: high}
}

// Current returns the current run's score.
func (s *ScoreTracker) Current() int { return s.current }

// High returns the best score seen by this tracker.
func (s *ScoreTracker) High() int { return s.high }

// Increment adds one point for a surviving tick.
func (s *ScoreTracker) Increment() {
	s.current++
}

// UpdateHigh raises the high score to the current score if it was
// exceeded. Calling it again with an unchanged current score is a no-op.
// Returns true when the high score changed.
func (s *ScoreTracker) UpdateHigh() bool {
	if s.current > s.high {
		s.high = s.current
		return true
	}
	return false
}

// Reset zeroes the current score only. Used when a fresh run starts; the
// high score is untouched.
func (s *ScoreTracker) Reset() {
	s.current = 0
}
