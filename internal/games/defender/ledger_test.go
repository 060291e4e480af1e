package defender

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLedgerReset(t *testing.T) {
	l := NewLedger(testConfig().Scoring, 2500, nil, nil)
	p := l.Progress()

	if p.Score != 0 || p.Level != 1 || p.Lives != 5 {
		t.Errorf("fresh ledger = %+v, expected score 0, level 1, lives 5", p)
	}
	if p.HighScore != 2500 {
		t.Errorf("HighScore = %d, expected 2500", p.HighScore)
	}
	if p.Paused || p.GameOver {
		t.Error("fresh ledger should be neither paused nor over")
	}
}

func TestLedgerAddScoreLevels(t *testing.T) {
	tests := []struct {
		name      string
		adds      int
		wantScore int
		wantLevel int
	}{
		{"no hits", 0, 0, 1},
		{"nine hits", 9, 900, 1},
		{"ten hits", 10, 1000, 2},
		{"twenty five hits", 25, 2500, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger(testConfig().Scoring, 0, nil, nil)
			for i := 0; i < tc.adds; i++ {
				l.AddScore(100)
			}
			if l.Score() != tc.wantScore {
				t.Errorf("Score() = %d, expected %d", l.Score(), tc.wantScore)
			}
			if l.Level() != tc.wantLevel {
				t.Errorf("Level() = %d, expected %d", l.Level(), tc.wantLevel)
			}
		})
	}
}

func TestLedgerIgnoresNonPositivePoints(t *testing.T) {
	l := NewLedger(testConfig().Scoring, 0, nil, nil)
	l.AddScore(-100)
	l.AddScore(0)
	if l.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", l.Score())
	}
}

func TestLedgerHighScorePersistence(t *testing.T) {
	saver := &recordingSaver{}
	l := NewLedger(testConfig().Scoring, 200, saver, nil)

	l.AddScore(100) // 100, below best
	l.AddScore(100) // 200, equal to best
	if len(saver.saved) != 0 {
		t.Fatalf("saved %v before beating the best score", saver.saved)
	}

	l.AddScore(100) // 300
	if got := l.Progress().HighScore; got != 300 {
		t.Errorf("HighScore = %d, expected 300", got)
	}
	if len(saver.saved) != 1 || saver.saved[0] != 300 {
		t.Errorf("saved = %v, expected [300]", saver.saved)
	}

	// High score survives a reset
	l.Reset()
	if got := l.Progress().HighScore; got != 300 {
		t.Errorf("HighScore after Reset = %d, expected 300", got)
	}
}

func TestLedgerSaveFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	saver := &recordingSaver{err: errDiskFull}
	l := NewLedger(testConfig().Scoring, 0, saver, logger)

	l.AddScore(100)

	if l.Score() != 100 || l.Progress().HighScore != 100 {
		t.Errorf("progress = %+v, expected score and high score 100", l.Progress())
	}
	if !strings.Contains(buf.String(), "could not save best score") {
		t.Errorf("expected warning in log, got %q", buf.String())
	}
}

func TestLedgerLoseLife(t *testing.T) {
	l := NewLedger(testConfig().Scoring, 0, nil, nil)

	for i := 0; i < 4; i++ {
		l.LoseLife()
	}
	if l.Lives() != 1 || l.GameOver() {
		t.Fatalf("after 4 losses: lives=%d gameOver=%v, expected 1 false", l.Lives(), l.GameOver())
	}

	l.LoseLife()
	if l.Lives() != 0 || !l.GameOver() {
		t.Errorf("after 5 losses: lives=%d gameOver=%v, expected 0 true", l.Lives(), l.GameOver())
	}

	// Lives never go negative
	l.LoseLife()
	if l.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", l.Lives())
	}
}

func TestLedgerTogglePause(t *testing.T) {
	l := NewLedger(testConfig().Scoring, 0, nil, nil)
	l.TogglePause()
	if !l.Paused() {
		t.Error("expected paused after first toggle")
	}
	l.TogglePause()
	if l.Paused() {
		t.Error("expected unpaused after second toggle")
	}
}
