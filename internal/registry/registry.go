// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Game is the contract between a game core and its presenters.
// Games contain pure logic with no presentation dependencies (no Bubble Tea,
// no Ebitengine). The presenter owns the loop cadence, maps devices to
// logical input and draws the emitted frames.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "brickbreaker").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Init loads configuration and resets the game to its initial phase.
	// The RuntimeConfig describes the presenter the game runs under.
	Init(cfg core.RuntimeConfig) error

	// Step advances the simulation by one frame of dt seconds.
	// Input is abstracted to logical commands (confirm, backspace, pointer, typed rune).
	Step(in core.InputFrame, dt float64) core.StepResult

	// Frame returns the draw-list and HUD text for the current state.
	Frame() core.Frame

	// State returns the current game state summary.
	State() core.GameState

	// Shutdown releases the game. Steps after Shutdown are ignored.
	Shutdown()
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}
