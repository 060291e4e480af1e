package config

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestSpawnIntervalCurve(t *testing.T) {
	o := DefaultDefenderConfig().Obstacle

	tests := []struct {
		level    int
		expected time.Duration
	}{
		{1, 950 * time.Millisecond},
		{0, 1000 * time.Millisecond},
		{10, 500 * time.Millisecond},
		{14, 300 * time.Millisecond}, // floor reached exactly
		{15, 300 * time.Millisecond},
		{100, 300 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := o.SpawnInterval(tc.level); got != tc.expected {
			t.Errorf("SpawnInterval(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestDescentRate(t *testing.T) {
	o := DefaultDefenderConfig().Obstacle

	if got := o.DescentRate(1); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("DescentRate(1) = %f, expected 2.0", got)
	}
	if got := o.DescentRate(6); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("DescentRate(6) = %f, expected 3.0", got)
	}
	if o.DescentRate(3) <= o.DescentRate(2) {
		t.Error("Descent rate should increase with level")
	}
}

func TestLevelFor(t *testing.T) {
	s := DefaultDefenderConfig().Scoring

	tests := []struct {
		score, expected int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1900, 2},
		{13000, 14},
	}

	for _, tc := range tests {
		if got := s.LevelFor(tc.score); got != tc.expected {
			t.Errorf("LevelFor(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML DefenderConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultDefenderConfig() {
		t.Errorf("embedded YAML = %+v\nhardcoded = %+v", fromYAML, DefaultDefenderConfig())
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defender.yaml")
	data := []byte("ship:\n  speed: 14\nprojectile:\n  fire_interval: 250ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Ship.Speed != 14 {
		t.Errorf("Ship.Speed = %f, expected 14", cfg.Ship.Speed)
	}
	if cfg.Projectile.FireInterval != 250*time.Millisecond {
		t.Errorf("FireInterval = %v, expected 250ms", cfg.Projectile.FireInterval)
	}
	// Untouched keys keep defaults
	if cfg.Scoring.Lives != 5 {
		t.Errorf("Scoring.Lives = %d, expected default 5", cfg.Scoring.Lives)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("scoring:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DefenderConfig)
	}{
		{"inverted field", func(c *DefenderConfig) { c.Field.MaxX = c.Field.MinX }},
		{"zero ship speed", func(c *DefenderConfig) { c.Ship.Speed = 0 }},
		{"zero fire interval", func(c *DefenderConfig) { c.Projectile.FireInterval = 0 }},
		{"min above base interval", func(c *DefenderConfig) { c.Obstacle.MinInterval = 2 * time.Second }},
		{"negative step", func(c *DefenderConfig) { c.Obstacle.IntervalStep = -time.Millisecond }},
		{"zero hit radius", func(c *DefenderConfig) { c.Obstacle.HitRadius = 0 }},
		{"zero points per level", func(c *DefenderConfig) { c.Scoring.PointsPerLevel = 0 }},
	}

	if err := DefaultDefenderConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDefenderConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultDefenderConfig()

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Obstacle.DescentRate(1) >= base.Obstacle.DescentRate(1) {
		t.Error("easy preset should slow descent")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Obstacle.SpawnInterval(20) >= base.Obstacle.SpawnInterval(20) {
		t.Error("hard preset should lower the spawn interval floor")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should validate: %v", err)
	}

	fixed := base
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Obstacle.SpawnInterval(1) != fixed.Obstacle.SpawnInterval(12) {
		t.Error("fixed preset should not shorten spawn interval with level")
	}
	if fixed.Obstacle.DescentRate(12) != base.Obstacle.DescentRate(1) {
		t.Error("fixed preset should keep level-one descent speed")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if p, _ := ParsePreset(""); p != DifficultyNormal {
		t.Errorf("empty preset should be normal, got %q", p)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestDefaultYAMLHasComments(t *testing.T) {
	if !bytes.HasPrefix(DefaultYAML(), []byte("#")) {
		t.Error("embedded default config should start with a header comment")
	}
}
