package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created, including parent directories
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Path() != dbPath {
		t.Errorf("Path() = %q, expected %q", store.Path(), dbPath)
	}
}

func TestStoreEmptyBestScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected best score 0 on empty store, got %d", score)
	}
}

func TestStoreSaveBestScoreOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{300, 1200, 500} {
		if err := store.SaveBestScore(s); err != nil {
			t.Fatalf("SaveBestScore(%d) failed: %v", s, err)
		}
	}

	score, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if score != 1200 {
		t.Errorf("Expected best score 1200, got %d", score)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBestScore(4200); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	score, err := reopened.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if score != 4200 {
		t.Errorf("Expected 4200 after reopen, got %d", score)
	}
}

func TestStoreMalformedBestScoreReadsAsZero(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not a number", "lots"},
		{"empty", ""},
		{"negative", "-40"},
		{"float", "12.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			store, err := Open(filepath.Join(t.TempDir(), "test.db"), log.New(&buf))
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer store.Close()

			if _, err := store.db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", bestScoreKey, tc.raw); err != nil {
				t.Fatalf("seeding malformed value failed: %v", err)
			}

			score, err := store.BestScore()
			if err != nil {
				t.Fatalf("BestScore() should not fail on malformed data: %v", err)
			}
			if score != 0 {
				t.Errorf("Expected 0 for malformed value %q, got %d", tc.raw, score)
			}
			if !strings.Contains(buf.String(), "malformed best score") {
				t.Errorf("Expected a warning log, got %q", buf.String())
			}

			// Any positive save replaces the malformed row
			if err := store.SaveBestScore(100); err != nil {
				t.Fatalf("SaveBestScore() failed: %v", err)
			}
			if score, _ := store.BestScore(); score != 100 {
				t.Errorf("Expected 100 after save, got %d", score)
			}
		})
	}
}

func TestStoreWhitespaceTolerated(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", bestScoreKey, " 700\n"); err != nil {
		t.Fatal(err)
	}
	if score, _ := store.BestScore(); score != 700 {
		t.Errorf("Expected 700, got %d", score)
	}
}

func TestStoreClearBestScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBestScore(900); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearBestScore(); err != nil {
		t.Fatalf("ClearBestScore() failed: %v", err)
	}
	if score, _ := store.BestScore(); score != 0 {
		t.Errorf("Expected 0 after clear, got %d", score)
	}
}
