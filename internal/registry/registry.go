// Package registry provides a global catalog of selectable ships.
// Ships register themselves in init() functions, allowing the menu and the
// CLI to list them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Ship is a cosmetic ship choice. It never affects simulation rules.
type Ship struct {
	ID    int        // Menu identifier, 1-based
	Name  string     // Display name
	Glyph rune       // Hull character drawn on the field
	Color core.Color // Hull color
}

// ErrUnknownShip is returned when a ship ID is not registered.
var ErrUnknownShip = errors.New("registry: unknown ship")

var (
	ships = make(map[int]Ship)
	mu    sync.RWMutex
)

// Register adds a ship to the catalog.
// Typically called from an init() function.
// Panics if a ship with the same ID is already registered or the ID is not positive.
func Register(s Ship) {
	mu.Lock()
	defer mu.Unlock()

	if s.ID <= 0 {
		panic(fmt.Sprintf("registry: ship %q has non-positive id %d", s.Name, s.ID))
	}
	if _, exists := ships[s.ID]; exists {
		panic(fmt.Sprintf("registry: ship %d already registered", s.ID))
	}

	ships[s.ID] = s
}

// List returns all registered ships, sorted by ID.
func List() []Ship {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Ship, 0, len(ships))
	for _, s := range ships {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a ship by its ID.
// Returns ErrUnknownShip if the ID is not registered.
func Get(id int) (Ship, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := ships[id]
	if !ok {
		return Ship{}, fmt.Errorf("%w: %d", ErrUnknownShip, id)
	}
	return s, nil
}

// Exists checks if a ship with the given ID is registered.
func Exists(id int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := ships[id]
	return ok
}
