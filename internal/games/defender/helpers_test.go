package defender

import (
	"errors"
	"math"
	"time"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// recordingSaver records saved scores and can be told to fail.
type recordingSaver struct {
	saved []int
	err   error
}

func (r *recordingSaver) SaveBestScore(score int) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, score)
	return nil
}

var errDiskFull = errors.New("disk full")

func testConfig() config.DefenderConfig {
	return config.DefaultDefenderConfig()
}

// newPlaying returns a game already playing with ship 1 and a fixed seed.
func newPlaying(cfg config.DefenderConfig) *Game {
	g := New(cfg, Options{Runtime: core.RuntimeConfig{Seed: 42}})
	if err := g.Start(1); err != nil {
		panic(err)
	}
	return g
}

// emptyFrame returns a frame with no input.
func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}

// ms is a shorthand for building durations in tests.
func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
