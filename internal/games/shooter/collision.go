package shooter

// collide resolves projectile hits on enemies, then enemy hits on the ship.
func (w *World) collide() {
	w.collideProjectiles()
	w.collideShip()
}

// collideProjectiles removes each projectile together with the first enemy,
// in pool order, whose render rectangle contains the projectile position.
func (w *World) collideProjectiles() {
	for i := 0; i < w.projectiles.Len(); {
		pos := w.projectiles.At(i).Position
		hit := false

		for j := range w.enemies.Len() {
			enemy := w.enemies.At(j)
			if !enemy.Render.ContainsInclusive(pos) {
				continue
			}
			w.SpawnExplosion(enemy.Position)
			w.enemies.Remove(j)
			w.projectiles.Remove(i)
			w.score++
			hit = true
			break
		}

		if !hit {
			i++
		}
	}
}

// collideShip ends the game on the first enemy with a corner inside the
// ship's render rectangle.
func (w *World) collideShip() {
	for _, enemy := range w.enemies.Items() {
		if enemy.Render.CornerOverlaps(w.ship.Render) {
			w.SpawnExplosion(w.ship.Position)
			w.gameOver = true
			return
		}
	}
}
