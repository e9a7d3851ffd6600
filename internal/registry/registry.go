// Package registry maps game IDs to factories. Games register themselves
// in init(), so the CLI and the SSH server create them by ID without
// importing a concrete type.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/powerpong/internal/core"
)

// Game is what the platform drives: one fixed step per tick, rendering into
// a cell buffer. Implementations must not depend on the terminal library.
type Game interface {
	// ID returns the registry identifier.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new game. The runtime config carries the screen size,
	// tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]Factory)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = f
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
