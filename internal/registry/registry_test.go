package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-defender/internal/core"
)

// withCatalog swaps in an empty catalog for the duration of a test.
func withCatalog(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := ships
	ships = make(map[int]Ship)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		ships = saved
		mu.Unlock()
	})
}

func TestRegisterAndList(t *testing.T) {
	withCatalog(t)

	Register(Ship{ID: 3, Name: "Comet", Glyph: 'V', Color: core.ColorOrange})
	Register(Ship{ID: 1, Name: "Arrow", Glyph: 'A', Color: core.ColorCyan})

	list := List()
	if len(list) != 2 {
		t.Fatalf("Expected 2 ships, got %d", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 3 {
		t.Errorf("List should be sorted by ID, got %d, %d", list[0].ID, list[1].ID)
	}

	if !Exists(3) || Exists(2) {
		t.Error("Exists() returned wrong result")
	}
}

func TestGetUnknown(t *testing.T) {
	withCatalog(t)

	_, err := Get(7)
	if !errors.Is(err, ErrUnknownShip) {
		t.Errorf("Get(7) error = %v, expected ErrUnknownShip", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withCatalog(t)
	Register(Ship{ID: 1, Name: "Arrow"})

	defer func() {
		if recover() == nil {
			t.Error("Duplicate Register should panic")
		}
	}()
	Register(Ship{ID: 1, Name: "Again"})
}
