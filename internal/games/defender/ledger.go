package defender

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/config"
)

// BestScoreSaver persists a new best score.
// Implemented by storage.Store.
type BestScoreSaver interface {
	SaveBestScore(score int) error
}

// Progress is a read-only copy of the ledger state.
type Progress struct {
	Score     int
	HighScore int
	Lives     int
	Level     int
	Paused    bool
	GameOver  bool
}

// Ledger owns score, level, lives and the pause/game-over flags.
// All mutations go through its methods, which keep these invariants:
// score and lives never go negative, level == score/PointsPerLevel+1,
// lives == 0 implies GameOver, and HighScore never decreases.
type Ledger struct {
	scoring config.ScoringConfig
	p       Progress
	saver   BestScoreSaver
	logger  *log.Logger
}

// NewLedger creates a ledger in the reset state with the given stored best
// score. saver and logger may be nil.
func NewLedger(scoring config.ScoringConfig, best int, saver BestScoreSaver, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Ledger{
		scoring: scoring,
		saver:   saver,
		logger:  logger,
	}
	l.p.HighScore = max(best, 0)
	l.Reset()
	return l
}

// Progress returns a copy of the current state.
func (l *Ledger) Progress() Progress {
	return l.p
}

// Score returns the current score.
func (l *Ledger) Score() int { return l.p.Score }

// Level returns the current level.
func (l *Ledger) Level() int { return l.p.Level }

// Lives returns the remaining lives.
func (l *Ledger) Lives() int { return l.p.Lives }

// GameOver reports whether the run has ended.
func (l *Ledger) GameOver() bool { return l.p.GameOver }

// Paused reports whether the pause flag is set.
func (l *Ledger) Paused() bool { return l.p.Paused }

// AddScore adds points, recomputes the level and records a new high score.
// Negative points are ignored.
func (l *Ledger) AddScore(points int) {
	if points <= 0 {
		return
	}

	l.p.Score += points

	level := l.scoring.LevelFor(l.p.Score)
	if level != l.p.Level {
		l.logger.Debug("level up", "level", level, "score", l.p.Score)
	}
	l.p.Level = level

	if l.p.Score > l.p.HighScore {
		l.p.HighScore = l.p.Score
		l.persistHighScore()
	}
}

// persistHighScore hands the high score to the saver. Failures are logged
// and never reach the simulation.
func (l *Ledger) persistHighScore() {
	if l.saver == nil {
		return
	}
	if err := l.saver.SaveBestScore(l.p.HighScore); err != nil {
		l.logger.Warn("could not save best score", "score", l.p.HighScore, "error", err)
	}
}

// LoseLife removes one life, ending the run when none remain.
// Extra calls after game over are harmless.
func (l *Ledger) LoseLife() {
	l.p.Lives = max(l.p.Lives-1, 0)
	if l.p.Lives == 0 && !l.p.GameOver {
		l.p.GameOver = true
		l.logger.Info("game over", "score", l.p.Score, "level", l.p.Level)
	}
}

// TogglePause flips the pause flag. Guarding against pausing a finished
// run is the orchestrator's job.
func (l *Ledger) TogglePause() {
	l.p.Paused = !l.p.Paused
}

// Reset starts a fresh run. The high score is kept.
func (l *Ledger) Reset() {
	l.p = Progress{
		HighScore: l.p.HighScore,
		Lives:     l.scoring.Lives,
		Level:     1,
	}
}
