package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sdl-shooter/internal/config"
	"github.com/vovakirdan/sdl-shooter/internal/core"
)

func press(a core.Action) core.KeyEvent { return core.KeyEvent{Action: a, Down: true} }
func release(a core.Action) core.KeyEvent { return core.KeyEvent{Action: a} }

// assertRenderDerived checks that the render rectangle is the sprite quad
// scaled and centered on the position.
func assertRenderDerived(t *testing.T, e Entity) {
	t.Helper()
	quad := LookupSprite(e.Sprite).Quad
	w, h := quad.W*e.Scale, quad.H*e.Scale
	assert.Equal(t, core.NewRect(e.Position.X-w/2, e.Position.Y-h/2, w, h), e.Render)
}

func TestNewWorld(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w := NewWorld(cfg, 1, ModeShooter)

	ship := w.Ship()
	assert.Equal(t, core.V(400, 300), ship.Position)
	assert.Equal(t, SpriteShipStationary1, ship.Sprite)
	assert.Equal(t, core.NewRect(384, 276, 32, 48), ship.Render)
	assert.False(t, ship.IsFiring)

	assert.Equal(t, 0, w.Projectiles().Len())
	assert.Equal(t, cfg.Enemy.Capacity, w.Enemies().Cap())
	assert.Equal(t, cfg.Background.ScrollMax, w.Scroll())
	assert.False(t, w.GameOver())
}

func TestRenderRectStaysDerived(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 7, ModeShooter)
	w.HandleKey(press(core.ActionLeft))
	w.HandleKey(press(core.ActionFire))

	for range 40 {
		w.Update(0.05)
		assertRenderDerived(t, w.Ship().Entity)
		for _, pool := range []*Pool{w.Projectiles(), w.Enemies(), w.Explosions()} {
			for _, e := range pool.Items() {
				assertRenderDerived(t, e)
			}
		}
	}
	assert.Positive(t, w.Projectiles().Len()+w.Enemies().Len())
}

func TestHandleKeyVelocity(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeFlight)
	speed := w.cfg.Ship.Speed

	w.HandleKey(press(core.ActionLeft))
	assert.Equal(t, core.V(-speed, 0), w.Ship().Velocity)

	w.HandleKey(press(core.ActionRight))
	assert.Equal(t, core.V(0, 0), w.Ship().Velocity, "opposite keys cancel")

	w.HandleKey(release(core.ActionLeft))
	w.HandleKey(press(core.ActionUp))
	assert.Equal(t, core.V(speed, -speed), w.Ship().Velocity)

	// Repeats are ignored
	w.HandleKey(core.KeyEvent{Action: core.ActionUp, Down: true, Repeat: true})
	assert.Equal(t, core.V(speed, -speed), w.Ship().Velocity)

	w.HandleKey(release(core.ActionRight))
	w.HandleKey(release(core.ActionUp))
	assert.Equal(t, core.V(0, 0), w.Ship().Velocity)

	// Unmatched edges leave the velocity alone
	w.HandleKey(release(core.ActionDown))
	w.HandleKey(press(core.ActionLeft))
	w.HandleKey(press(core.ActionLeft))
	assert.Equal(t, core.V(-speed, 0), w.Ship().Velocity)
}

func TestShipSpriteFollowsVelocity(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeFlight)

	w.HandleKey(press(core.ActionLeft))
	w.Update(0)
	assert.Equal(t, SpriteShipBankHardLeft1, w.Ship().Sprite)

	w.HandleKey(release(core.ActionLeft))
	w.HandleKey(press(core.ActionRight))
	w.Update(0)
	assert.Equal(t, SpriteShipBankHardRight1, w.Ship().Sprite)

	w.HandleKey(release(core.ActionRight))
	for range shipHold - 2 {
		w.Update(0)
	}
	assert.Equal(t, SpriteShipStationary1, w.Ship().Sprite)

	// The first frame has been held for shipHold steps
	w.Update(0)
	assert.Equal(t, SpriteShipStationary2, w.Ship().Sprite)
}

func TestShipClampedToScreen(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	velocities := []core.Vec{
		core.V(-100000, 0), core.V(100000, 0), core.V(0, -100000), core.V(0, 100000),
		core.V(-5000, 7000), core.V(333, -999), core.V(1, 1), core.V(-1, -1),
	}
	dts := []float64{0, 0.001, 0.016, 0.1, 0.5, 2, 30}

	for _, v := range velocities {
		for _, dt := range dts {
			w := NewWorld(cfg, 1, ModeFlight)
			w.ship.Velocity = v
			for range 5 {
				w.Update(dt)
				s := w.Ship()
				halfW, halfH := s.Render.W/2, s.Render.H/2
				require.GreaterOrEqual(t, s.Position.X, halfW, "v=%v dt=%v", v, dt)
				require.LessOrEqual(t, s.Position.X, cfg.Screen.Width-halfW-1, "v=%v dt=%v", v, dt)
				require.GreaterOrEqual(t, s.Position.Y, halfH, "v=%v dt=%v", v, dt)
				require.LessOrEqual(t, s.Position.Y, cfg.Screen.Height-halfH-1, "v=%v dt=%v", v, dt)
			}
		}
	}
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, 16, clampAxis(-50, 16, 800))
	assert.Equal(t, 16, clampAxis(16, 16, 800))
	assert.Equal(t, 783, clampAxis(783, 16, 800))
	assert.Equal(t, 783, clampAxis(784, 16, 800))
	assert.Equal(t, 783, clampAxis(5000, 16, 800))
}

func TestDisplacementTruncates(t *testing.T) {
	assert.Equal(t, 9, displacement(99, 0.1))
	assert.Equal(t, -9, displacement(-99, 0.1))
	assert.Equal(t, 0, displacement(-1, 0.25))
}

func TestProjectileRemovedBelowZero(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Projectile.Speed = 40
	w := NewWorld(cfg, 1, ModeFlight)

	require.True(t, w.SpawnProjectile())
	w.Projectiles().At(0).Position.Y = 10

	w.Update(0.25) // 10 pixels
	require.Equal(t, 1, w.Projectiles().Len(), "y == 0 stays")
	assert.Equal(t, 0, w.Projectiles().At(0).Position.Y)

	w.Update(0.25)
	assert.Equal(t, 0, w.Projectiles().Len(), "y < 0 is removed")
}

func TestEnemyRemovedBelowScreen(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.Speed = 40
	w := NewWorld(cfg, 1, ModeFlight)

	require.True(t, w.SpawnEnemy())
	w.Enemies().At(0).Position.Y = cfg.Screen.Height - 10

	w.Update(0.25)
	require.Equal(t, 1, w.Enemies().Len(), "y == screen height stays")

	w.Update(0.25)
	assert.Equal(t, 0, w.Enemies().Len())
}

func TestProjectileSpawnsAtShipNose(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w := NewWorld(cfg, 1, ModeFlight)

	require.True(t, w.SpawnProjectile())
	p := w.Projectiles().At(0)
	assert.Equal(t, core.V(400, 276), p.Position)
	assert.Equal(t, core.V(0, -cfg.Projectile.Speed), p.Velocity)
	assertRenderDerived(t, *p)
}

// quietConfig keeps projectiles and enemies in place so that only the
// timers decide what exists.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Ship.FireRate = 2
	cfg.Projectile.Speed = 1
	cfg.Enemy.Speed = 1
	return cfg
}

func TestFireCadence(t *testing.T) {
	w := NewWorld(quietConfig(), 1, ModeShooter)
	w.HandleKey(press(core.ActionFire))

	// Interval 0.5s at 0.25s steps: shoot, count down twice, shoot again.
	expected := []int{1, 1, 1, 2, 2, 2, 3}
	for step, want := range expected {
		w.Update(0.25)
		assert.Equal(t, want, w.Projectiles().Len(), "step %d", step+1)
	}
}

func TestFireReleaseResetsCountdown(t *testing.T) {
	w := NewWorld(quietConfig(), 1, ModeShooter)

	w.HandleKey(press(core.ActionFire))
	w.Update(0.25)
	require.Equal(t, 1, w.Projectiles().Len())
	assert.InDelta(t, 0.5, w.Ship().TimeTillNextShot, 1e-9)

	w.HandleKey(release(core.ActionFire))
	assert.False(t, w.Ship().IsFiring)
	assert.Zero(t, w.Ship().TimeTillNextShot)

	// Countdown is frozen while not firing
	w.Update(0.25)
	assert.Equal(t, 1, w.Projectiles().Len())

	w.HandleKey(press(core.ActionFire))
	w.Update(0.25)
	assert.Equal(t, 2, w.Projectiles().Len(), "fires immediately after re-press")
}

func TestFireWithFullPool(t *testing.T) {
	cfg := quietConfig()
	cfg.Projectile.Capacity = 1
	w := NewWorld(cfg, 1, ModeShooter)
	w.HandleKey(press(core.ActionFire))

	w.Update(0.25)
	w.Update(0.25)
	w.Update(0.25)
	w.Update(0.25)
	assert.Equal(t, 1, w.Projectiles().Len())
	assert.InDelta(t, 0.5, w.Ship().TimeTillNextShot, 1e-9, "countdown restarts even when the shot is dropped")
}

func TestEnemyPoolCapacity(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	require.Equal(t, 1024, cfg.Enemy.Capacity)
	w := NewWorld(cfg, 42, ModeShooter)

	spawned := 0
	for range 2000 {
		if w.SpawnEnemy() {
			spawned++
		}
	}
	assert.Equal(t, 1024, spawned)
	assert.Equal(t, 1024, w.Enemies().Len())
}

func TestEnemySpawnPosition(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w := NewWorld(cfg, 3, ModeShooter)

	for range 200 {
		require.True(t, w.SpawnEnemy())
	}
	for _, e := range w.Enemies().Items() {
		half := e.Render.W / 2
		assert.Equal(t, 0, e.Position.Y)
		assert.GreaterOrEqual(t, e.Position.X, half)
		assert.LessOrEqual(t, e.Position.X, cfg.Screen.Width-half)
		assert.Equal(t, core.V(0, cfg.Enemy.Speed), e.Velocity)
		assertRenderDerived(t, e)
	}
}

func TestEnemyTimer(t *testing.T) {
	cfg := quietConfig()
	cfg.Enemy.SpawnRate = 2
	w := NewWorld(cfg, 1, ModeShooter)

	expected := []int{1, 1, 1, 2, 2, 2, 3}
	for step, want := range expected {
		w.Update(0.25)
		assert.Equal(t, want, w.Enemies().Len(), "step %d", step+1)
	}
}

// placeEnemy puts an enemy with its render origin at (x, y).
func placeEnemy(t *testing.T, w *World, x, y int) *Entity {
	t.Helper()
	require.True(t, w.SpawnEnemy())
	e := w.Enemies().At(w.Enemies().Len() - 1)
	e.Position = core.V(x+e.Render.W/2, y+e.Render.H/2)
	e.SyncRender()
	return e
}

func TestProjectileHitsEnemyInclusive(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeShooter)
	enemy := placeEnemy(t, w, 100, 100)
	require.Equal(t, core.NewRect(100, 100, 32, 32), enemy.Render)
	enemyPos := enemy.Position

	require.True(t, w.SpawnProjectile())
	w.Projectiles().At(0).Position = core.V(100, 100)

	w.collide()
	assert.Equal(t, 0, w.Enemies().Len())
	assert.Equal(t, 0, w.Projectiles().Len())
	require.Equal(t, 1, w.Explosions().Len())
	assert.Equal(t, enemyPos, w.Explosions().At(0).Position)
	assert.Equal(t, 1, w.Score())
	assert.False(t, w.GameOver())
}

func TestProjectileOnFarEdgeHits(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeShooter)
	placeEnemy(t, w, 100, 100)

	require.True(t, w.SpawnProjectile())
	w.Projectiles().At(0).Position = core.V(132, 132)

	w.collide()
	assert.Equal(t, 1, w.Score())
}

func TestProjectileMissLeavesBoth(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeShooter)
	placeEnemy(t, w, 100, 100)

	require.True(t, w.SpawnProjectile())
	w.Projectiles().At(0).Position = core.V(133, 100)

	w.collide()
	assert.Equal(t, 1, w.Enemies().Len())
	assert.Equal(t, 1, w.Projectiles().Len())
	assert.Equal(t, 0, w.Score())
}

func TestProjectileDestroysOnlyOneEnemy(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeShooter)
	placeEnemy(t, w, 100, 100)
	placeEnemy(t, w, 110, 110)

	require.True(t, w.SpawnProjectile())
	w.Projectiles().At(0).Position = core.V(120, 120)

	w.collide()
	assert.Equal(t, 1, w.Enemies().Len())
	assert.Equal(t, 0, w.Projectiles().Len())
	assert.Equal(t, 1, w.Score())
}

func TestEnemyCornerInShipEndsGame(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeShooter)
	ship := w.Ship()
	// Bottom-right corner of the enemy lands on the ship's top-left corner.
	placeEnemy(t, w, ship.Render.X-32, ship.Render.Y-32)

	w.collide()
	assert.True(t, w.GameOver())
	require.Equal(t, 1, w.Explosions().Len())
	assert.Equal(t, ship.Position, w.Explosions().At(0).Position)
}

func TestShipInsideLargeEnemyIsMissed(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.Scale = 4 // 64x64 enemy around a 32x48 ship
	w := NewWorld(cfg, 1, ModeShooter)
	ship := w.Ship()
	placeEnemy(t, w, ship.Position.X-32, ship.Position.Y-32)

	w.collide()
	assert.False(t, w.GameOver(), "only enemy corners are tested against the ship")
}

func TestGameOverFreezesWorld(t *testing.T) {
	w := NewWorld(quietConfig(), 1, ModeShooter)
	ship := w.Ship()
	placeEnemy(t, w, ship.Render.X, ship.Render.Y)

	w.Update(0.25)
	require.True(t, w.GameOver())

	w.HandleKey(press(core.ActionFire))
	w.HandleKey(press(core.ActionLeft))

	enemies := append([]Entity(nil), w.Enemies().Items()...)
	projectiles := w.Projectiles().Len()
	scroll := w.Scroll()
	shipPos := w.Ship().Position

	for range 30 {
		w.Update(0.25)
	}
	assert.True(t, w.GameOver())
	assert.Equal(t, scroll, w.Scroll())
	assert.Equal(t, shipPos, w.Ship().Position)
	assert.Equal(t, projectiles, w.Projectiles().Len())
	require.Equal(t, len(enemies), w.Enemies().Len())
	for i, e := range w.Enemies().Items() {
		assert.Equal(t, enemies[i].Position, e.Position)
	}
	assert.Equal(t, 0, w.Explosions().Len(), "explosions keep animating and finish")
}

func TestExplosionPlaysOnce(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeFlight)
	require.True(t, w.SpawnExplosion(core.V(50, 50)))
	w.Explosions().At(0).NumAnimationFrames = 2

	for step := 1; step < 2*explosionHold; step++ {
		w.Update(0.016)
		require.Equal(t, 1, w.Explosions().Len(), "step %d", step)
	}
	assert.Equal(t, SpriteExplosion2, w.Explosions().At(0).Sprite)

	w.Update(0.016)
	assert.Equal(t, 0, w.Explosions().Len())
}

func TestExplosionFullSequence(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeFlight)
	require.True(t, w.SpawnExplosion(core.V(50, 50)))

	var seen []SpriteID
	for w.Explosions().Len() > 0 {
		w.Update(0)
		if w.Explosions().Len() > 0 {
			seen = append(seen, w.Explosions().At(0).Sprite)
		}
		require.Less(t, len(seen), 100)
	}
	assert.Len(t, seen, explosionFrames*explosionHold-1)
	assert.Equal(t, SpriteExplosion1, seen[0])
	assert.Equal(t, SpriteExplosion5, seen[len(seen)-1])
}

func TestBackgroundScroll(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w := NewWorld(cfg, 1, ModeShooter)

	for range cfg.Background.ScrollEvery - 1 {
		w.Update(0)
	}
	assert.Equal(t, cfg.Background.ScrollMax, w.Scroll())
	w.Update(0)
	assert.Equal(t, cfg.Background.ScrollMax-1, w.Scroll())

	w.scroll = 1
	for range cfg.Background.ScrollEvery {
		w.Update(0)
	}
	assert.Equal(t, cfg.Background.ScrollMax, w.Scroll(), "wraps when reaching zero")
}

func TestFlightModeRunsShipOnly(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w := NewWorld(cfg, 1, ModeFlight)
	w.HandleKey(press(core.ActionFire))
	w.HandleKey(press(core.ActionRight))

	for range 20 {
		w.Update(0.1)
	}
	assert.Equal(t, 0, w.Projectiles().Len())
	assert.Equal(t, 0, w.Enemies().Len())
	assert.Equal(t, cfg.Background.ScrollMax, w.Scroll())
	assert.Greater(t, w.Ship().Position.X, 400)

	calls := w.DrawCalls(nil)
	require.Len(t, calls, 1)
	assert.Equal(t, SheetShip, calls[0].Sheet)
}

func TestDrawOrder(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeShooter)
	require.True(t, w.SpawnProjectile())
	placeEnemy(t, w, 0, 0)
	require.True(t, w.SpawnExplosion(core.V(700, 500)))

	var sheets []core.Sheet
	for _, c := range w.DrawCalls(nil) {
		sheets = append(sheets, c.Sheet)
	}
	assert.Equal(t, []core.Sheet{
		SheetBackground, SheetShip, SheetProjectile, SheetEnemy, SheetExplosion,
	}, sheets)

	w.gameOver = true
	sheets = sheets[:0]
	for _, c := range w.DrawCalls(nil) {
		sheets = append(sheets, c.Sheet)
	}
	assert.NotContains(t, sheets, SheetShip, "destroyed ship is not drawn")
}

func TestBackgroundCall(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w := NewWorld(cfg, 1, ModeShooter)

	call := w.backgroundCall()
	assert.Equal(t, core.NewRect(0, 0, 800, 600), call.Dst)
	// 800x600 shows a 256x192 slice of the 256x608 texture.
	assert.Equal(t, core.NewRect(0, 416, 256, 192), call.Src)

	w.scroll = 10
	assert.Equal(t, 10, w.backgroundCall().Src.Y)
}

func TestEntityCallUsesSpriteTable(t *testing.T) {
	w := NewWorld(config.DefaultShooterConfig(), 1, ModeShooter)
	call := entityCall(w.Ship().Entity)
	assert.Equal(t, SheetShip, call.Sheet)
	assert.Equal(t, core.NewRect(32, 0, 16, 24), call.Src)
	assert.Equal(t, w.Ship().Render, call.Dst)
}

func TestWorldDeterministic(t *testing.T) {
	run := func() []core.Vec {
		w := NewWorld(config.DefaultShooterConfig(), 99, ModeShooter)
		w.HandleKey(press(core.ActionFire))
		for range 120 {
			w.Update(0.05)
		}
		var out []core.Vec
		for _, e := range w.Enemies().Items() {
			out = append(out, e.Position)
		}
		return out
	}

	first := run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, run())
}
