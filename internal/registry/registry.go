// Package registry keeps the table of playable games.
// Game packages add themselves from init(), so commands and menus can list and
// build games by ID without importing them directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/sdl-shooter/internal/config"
	"github.com/vovakirdan/sdl-shooter/internal/core"
)

// Game is what every frontend drives.
// Implementations hold pure simulation state; input mapping, timing and
// presentation belong to the frontend.
type Game interface {
	// ID returns the registry key, e.g. "shooter".
	ID() string

	// Title returns the display name, e.g. "Space Shooter".
	Title() string

	// Reset discards the current session and starts a new one seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's key edges and advances by the frame's Dt.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a character screen.
	Render(dst *core.Screen)

	// State reports score, game-over and pause.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory builds a game from the shooter configuration.
type Factory func(cfg config.ShooterConfig) Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	if info.ID == "" {
		panic("registry: empty game ID")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create validates cfg and builds the game registered under id.
func Create(id string, cfg config.ShooterConfig) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return e.factory(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
