// Package storage provides SQLite-based persistence for the best score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// bestScoreKey is the settings row holding the best score.
const bestScoreKey = "best_score"

// Store manages the SQLite database connection for best-score persistence.
// The value is kept as text so that a hand-edited or corrupted row can be
// detected and read as zero instead of failing the game.
type Store struct {
	db     *sql.DB
	path   string
	logger *log.Logger
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A nil logger discards log output.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, path: dbPath, logger: logger}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	logger.Debug("score store opened", "path", dbPath)
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the resolved database file path.
func (s *Store) Path() string {
	return s.path
}

// BestScore returns the stored best score.
// Returns 0 if nothing was stored yet or the stored value is malformed.
// Only database failures are reported as errors.
func (s *Store) BestScore() (int, error) {
	return bestScore(s.db, s.logger)
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func bestScore(q queryRower, logger *log.Logger) (int, error) {
	var raw string
	err := q.QueryRow("SELECT value FROM settings WHERE key = ?", bestScoreKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 {
		logger.Warn("ignoring malformed best score", "value", raw)
		return 0, nil
	}
	return score, nil
}

// SaveBestScore records score if it beats the stored best score.
// The stored value never decreases. Malformed stored data counts as zero
// and is overwritten by any save.
func (s *Store) SaveBestScore(score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	current, err := bestScore(tx, s.logger)
	if err != nil {
		return err
	}
	if score <= current {
		return nil
	}

	_, err = tx.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		bestScoreKey, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit best score: %w", err)
	}

	s.logger.Debug("best score saved", "score", score)
	return nil
}

// ClearBestScore deletes the stored best score.
func (s *Store) ClearBestScore() error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", bestScoreKey)
	if err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}
