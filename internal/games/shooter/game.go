// Package shooter implements a vertical space shooter.
// The player flies a ship, shoots down descending enemies and loses when an
// enemy reaches the ship. The flight variant only flies the ship around.
package shooter

import (
	"github.com/vovakirdan/sdl-shooter/internal/config"
	"github.com/vovakirdan/sdl-shooter/internal/core"
	"github.com/vovakirdan/sdl-shooter/internal/registry"
)

// Game adapts a World to the platform's game interface.
type Game struct {
	id     string
	title  string
	mode   Mode
	cfg    config.ShooterConfig
	world  *World
	paused bool
}

// New creates a shooter game instance.
func New(cfg config.ShooterConfig) *Game {
	return &Game{id: "shooter", title: "Space Shooter", mode: ModeShooter, cfg: cfg}
}

// NewFlight creates the ship-only flight game instance.
func NewFlight(cfg config.ShooterConfig) *Game {
	return &Game{id: "flight", title: "Flight Test", mode: ModeFlight, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a fresh world. The previous world, game-over flag included,
// is discarded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.world = NewWorld(g.cfg, cfg.Seed, g.mode)
	g.paused = false
}

// Step applies the frame's key edges and advances the world by in.Dt.
// Key edges reach the ship even while paused so held keys stay balanced.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultRuntimeConfig())
	}

	for _, ev := range in.Events {
		g.world.HandleKey(ev)
	}

	if in.Has(core.ActionPause) && !g.world.GameOver() {
		g.paused = !g.paused
	}

	if !g.paused {
		g.world.Update(in.Dt)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}

// World exposes the simulation for frontends and tests.
func (g *Game) World() *World {
	return g.world
}

// DrawCalls appends the current frame's draw calls to dst.
func (g *Game) DrawCalls(dst []core.DrawCall) []core.DrawCall {
	if g.world == nil {
		return dst
	}
	return g.world.DrawCalls(dst)
}

// Bounds returns the playfield size in pixels.
func (g *Game) Bounds() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

func init() {
	registry.Register(registry.GameInfo{
		ID:      "shooter",
		Title:   "Space Shooter",
		Summary: "Shoot down the descending enemies",
	}, func(cfg config.ShooterConfig) registry.Game {
		return New(cfg)
	})
	registry.Register(registry.GameInfo{
		ID:      "flight",
		Title:   "Flight Test",
		Summary: "Fly the ship over the starfield",
	}, func(cfg config.ShooterConfig) registry.Game {
		return NewFlight(cfg)
	})
}
