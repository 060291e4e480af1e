package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// nopCloser is the closer for loggers that do not own a file.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the program logger. The terminal belongs to the game, so
// logs go to a file unless path is "-". The returned closer releases the file.
func newLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if path != "-" {
		expanded, err := expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "defender",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.DefenderConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.DefenderConfig{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.DefenderConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig builds the platform settings shared by all commands.
func runtimeConfig(width, height int, fixedStep time.Duration) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      seed,
		FixedStep: fixedStep,
	}
}

// openStoreOrWarn opens the best score store. A failure is reported and the
// game runs without persistence.
func openStoreOrWarn(logger *log.Logger) (*storage.Store, int) {
	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open best score database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		return nil, 0
	}

	best, err := store.BestScore()
	if err != nil {
		logger.Warn("could not read best score", "error", err)
		best = 0
	}
	return store, best
}

// mustSetup prepares the logger and config or exits with an error.
func mustSetup() (*log.Logger, io.Closer, config.DefenderConfig) {
	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("config loaded", "difficulty", flagDifficulty, "path", flagConfig)
	return logger, closer, cfg
}
