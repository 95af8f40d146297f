package shooter

// animate selects each entity's sprite for its current animation frame and
// advances the frame counters. Explosions play once and are removed when
// their last frame has been shown for its full hold time.
func (w *World) animate() {
	ship := &w.ship.Entity
	ship.SetSprite(shipSprite(ship.Velocity.X, ship.AnimationIdx))
	ship.advanceAnimation()

	animateLooping(w.projectiles, SpriteProjectile1, projectileFrames)
	animateLooping(w.enemies, SpriteEnemy1, enemyFrames)

	for i := 0; i < w.explosions.Len(); {
		e := w.explosions.At(i)
		e.SetSprite(frameSprite(SpriteExplosion1, explosionFrames, e.AnimationIdx))
		if e.advanceAnimation() {
			w.explosions.Remove(i)
			continue
		}
		i++
	}
}

// animateLooping cycles every entity of a pool through its frames forever.
func animateLooping(p *Pool, base SpriteID, sheetFrames int) {
	for i := range p.Len() {
		e := p.At(i)
		e.SetSprite(frameSprite(base, sheetFrames, e.AnimationIdx))
		e.advanceAnimation()
	}
}

// frameSprite maps an animation index onto the frames a sheet actually has.
func frameSprite(base SpriteID, sheetFrames, animationIdx int) SpriteID {
	return base + SpriteID(animationIdx%sheetFrames)
}

// scrollBackground moves the background one pixel every ScrollEvery steps,
// wrapping back to ScrollMax when the offset reaches zero.
func (w *World) scrollBackground() {
	w.scrollSteps++
	if w.scrollSteps < w.cfg.Background.ScrollEvery {
		return
	}
	w.scrollSteps = 0

	w.scroll--
	if w.scroll <= 0 {
		w.scroll = w.cfg.Background.ScrollMax
	}
}
