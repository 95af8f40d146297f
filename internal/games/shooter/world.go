package shooter

import (
	"math/rand"

	"github.com/vovakirdan/sdl-shooter/internal/config"
	"github.com/vovakirdan/sdl-shooter/internal/core"
)

// Mode selects which subsystems a World runs.
type Mode int

const (
	// ModeShooter runs the full game: background, spawning, collisions.
	ModeShooter Mode = iota
	// ModeFlight only flies the ship around an empty screen.
	ModeFlight
)

// World is the complete simulation state of one game. It is owned by a single
// frontend loop and is not safe for concurrent use.
type World struct {
	cfg  config.ShooterConfig
	mode Mode
	rng  *rand.Rand

	ship        Ship
	projectiles *Pool
	enemies     *Pool
	explosions  *Pool

	gameOver          bool // Never goes back to false
	scroll            int  // Background scroll offset in texture pixels
	scrollSteps       int  // Steps counted toward the next scroll
	timeTillNextEnemy float64
	score             int

	held map[core.Action]bool // Keys pressed in this world and not yet released
}

// NewWorld creates a world with the ship centered on screen and empty pools.
func NewWorld(cfg config.ShooterConfig, seed int64, mode Mode) *World {
	w := &World{
		cfg:         cfg,
		mode:        mode,
		rng:         rand.New(rand.NewSource(seed)),
		projectiles: NewPool(cfg.Projectile.Capacity),
		enemies:     NewPool(cfg.Enemy.Capacity),
		explosions:  NewPool(cfg.Explosion.Capacity),
		scroll:      cfg.Background.ScrollMax,
		held:        make(map[core.Action]bool),
	}

	w.ship = Ship{
		Entity: Entity{
			Position:                core.V(cfg.Screen.Width/2, cfg.Screen.Height/2),
			Scale:                   cfg.Ship.Scale,
			NumAnimationFrames:      shipFrames,
			FramesPerAnimationFrame: shipHold,
		},
	}
	w.ship.SetSprite(SpriteShipStationary1)
	return w
}

// Update runs one simulation step of dt seconds.
// Animation always runs; everything else stops once the game is over.
func (w *World) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	w.animate()
	if w.gameOver {
		return
	}

	if w.mode == ModeShooter {
		w.scrollBackground()
	}
	w.move(dt)
	if w.mode == ModeShooter {
		w.spawn(dt)
		w.collide()
	}
}

// HandleKey applies one input edge to the ship. Arrow keys add the ship speed
// on press and take it away on release, so opposite keys cancel out.
// Repeats are ignored, as are presses of a key already down and releases of
// a key this world never saw pressed, such as one held across a restart.
func (w *World) HandleKey(ev core.KeyEvent) {
	switch ev.Action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
	default:
		return
	}
	if ev.Repeat || w.held[ev.Action] == ev.Down {
		return
	}
	if ev.Down {
		w.held[ev.Action] = true
	} else {
		delete(w.held, ev.Action)
	}

	speed := w.cfg.Ship.Speed
	if !ev.Down {
		speed = -speed
	}

	switch ev.Action {
	case core.ActionUp:
		w.ship.Velocity.Y -= speed
	case core.ActionDown:
		w.ship.Velocity.Y += speed
	case core.ActionLeft:
		w.ship.Velocity.X -= speed
	case core.ActionRight:
		w.ship.Velocity.X += speed
	case core.ActionFire:
		w.ship.IsFiring = ev.Down
		if !ev.Down {
			w.ship.TimeTillNextShot = 0
		}
	}
}

// Ship returns a copy of the player ship.
func (w *World) Ship() Ship {
	return w.ship
}

// Projectiles returns the projectile pool.
func (w *World) Projectiles() *Pool {
	return w.projectiles
}

// Enemies returns the enemy pool.
func (w *World) Enemies() *Pool {
	return w.enemies
}

// Explosions returns the explosion pool.
func (w *World) Explosions() *Pool {
	return w.explosions
}

// GameOver reports whether the ship has been destroyed.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Score returns the number of enemies destroyed.
func (w *World) Score() int {
	return w.score
}

// Scroll returns the background scroll offset.
func (w *World) Scroll() int {
	return w.scroll
}

// Mode returns which subsystems the world runs.
func (w *World) Mode() Mode {
	return w.mode
}

// Bounds returns the playfield size in pixels.
func (w *World) Bounds() (int, int) {
	return w.cfg.Screen.Width, w.cfg.Screen.Height
}
