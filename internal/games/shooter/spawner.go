package shooter

import "github.com/vovakirdan/sdl-shooter/internal/core"

// spawn runs the fire and enemy timers for one step.
func (w *World) spawn(dt float64) {
	w.fire(dt)
	w.spawnEnemies(dt)
}

// fire shoots once per 1/FireRate seconds while the fire key is held.
// The countdown is frozen while not firing.
func (w *World) fire(dt float64) {
	s := &w.ship
	if !s.IsFiring {
		return
	}
	if s.TimeTillNextShot <= 0 {
		w.SpawnProjectile()
		s.TimeTillNextShot = 1 / w.cfg.Ship.FireRate
		return
	}
	s.TimeTillNextShot -= dt
}

// spawnEnemies releases one enemy per 1/SpawnRate seconds.
func (w *World) spawnEnemies(dt float64) {
	if w.timeTillNextEnemy <= 0 {
		w.SpawnEnemy()
		w.timeTillNextEnemy = 1 / w.cfg.Enemy.SpawnRate
		return
	}
	w.timeTillNextEnemy -= dt
}

// SpawnProjectile launches a projectile from the ship's leading edge,
// travelling toward the top of the screen. It reports false when the pool is
// full.
func (w *World) SpawnProjectile() bool {
	p := Entity{
		Position:                core.V(w.ship.Position.X, w.ship.Render.Y),
		// Negative y is up the screen; projectiles are culled once y < 0.
		Velocity:                core.V(0, -w.cfg.Projectile.Speed),
		Scale:                   w.cfg.Projectile.Scale,
		NumAnimationFrames:      projectileFrames,
		FramesPerAnimationFrame: projectileHold,
	}
	p.SetSprite(SpriteProjectile1)
	return w.projectiles.Spawn(p)
}

// SpawnEnemy places an enemy at the top edge at a random x that keeps its
// render rectangle on screen. It reports false when the pool is full.
func (w *World) SpawnEnemy() bool {
	if w.enemies.Full() {
		return false
	}

	e := Entity{
		Velocity:                core.V(0, w.cfg.Enemy.Speed),
		Scale:                   w.cfg.Enemy.Scale,
		NumAnimationFrames:      enemyFrames,
		FramesPerAnimationFrame: enemyHold,
	}
	e.SetSprite(SpriteEnemy1)

	half := e.Render.W / 2
	span := w.cfg.Screen.Width - 2*half
	x := w.cfg.Screen.Width / 2
	if span >= 0 {
		x = half + w.rng.Intn(span+1)
	}
	e.Position = core.V(x, 0)
	e.SyncRender()

	return w.enemies.Spawn(e)
}

// SpawnExplosion places a stationary one-shot explosion at pos. It reports
// false when the pool is full.
func (w *World) SpawnExplosion(pos core.Vec) bool {
	e := Entity{
		Position:                pos,
		Scale:                   w.cfg.Explosion.Scale,
		NumAnimationFrames:      explosionFrames,
		FramesPerAnimationFrame: explosionHold,
	}
	e.SetSprite(SpriteExplosion1)
	return w.explosions.Spawn(e)
}
