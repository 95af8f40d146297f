package shooter

// move integrates positions over dt seconds, keeps the ship on screen and
// drops projectiles and enemies that have left it.
func (w *World) move(dt float64) {
	w.moveShip(dt)

	for i := 0; i < w.projectiles.Len(); {
		p := w.projectiles.At(i)
		p.Position.Y += displacement(p.Velocity.Y, dt)
		p.SyncRender()
		if p.Position.Y < 0 {
			w.projectiles.Remove(i)
			continue
		}
		i++
	}

	screenH := w.cfg.Screen.Height
	for i := 0; i < w.enemies.Len(); {
		e := w.enemies.At(i)
		e.Position.Y += displacement(e.Velocity.Y, dt)
		e.SyncRender()
		if e.Position.Y > screenH {
			w.enemies.Remove(i)
			continue
		}
		i++
	}
}

// moveShip applies the ship velocity and clamps the result to
// [half size, screen - half size - 1] on each axis.
func (w *World) moveShip(dt float64) {
	s := &w.ship.Entity
	s.Position.X += displacement(s.Velocity.X, dt)
	s.Position.Y += displacement(s.Velocity.Y, dt)

	s.Position.X = clampAxis(s.Position.X, s.Render.W/2, w.cfg.Screen.Width)
	s.Position.Y = clampAxis(s.Position.Y, s.Render.H/2, w.cfg.Screen.Height)
	s.SyncRender()
}

// clampAxis keeps pos within [half, screen-half-1]. The upper bound sits one
// pixel inside the mirror image of the lower one.
func clampAxis(pos, half, screen int) int {
	upper := screen - half
	if pos < half {
		pos = half
	}
	if pos >= upper {
		pos = upper - 1
	}
	return pos
}

// displacement is velocity*dt truncated toward zero.
func displacement(velocity int, dt float64) int {
	return int(float64(velocity) * dt)
}
