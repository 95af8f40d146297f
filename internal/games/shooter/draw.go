package shooter

import "github.com/vovakirdan/sdl-shooter/internal/core"

// DrawCalls appends one draw call per visible entity, back to front:
// background, ship (until it is destroyed), projectiles, enemies, explosions.
func (w *World) DrawCalls(dst []core.DrawCall) []core.DrawCall {
	if w.mode == ModeShooter {
		dst = append(dst, w.backgroundCall())
	}
	if !w.gameOver {
		dst = append(dst, entityCall(w.ship.Entity))
	}
	for _, pool := range []*Pool{w.projectiles, w.enemies, w.explosions} {
		for _, e := range pool.Items() {
			dst = append(dst, entityCall(e))
		}
	}
	return dst
}

func entityCall(e Entity) core.DrawCall {
	s := LookupSprite(e.Sprite)
	return core.DrawCall{
		Sheet: s.Sheet,
		Frame: s.Frame,
		Src:   s.Quad,
		Dst:   e.Render,
	}
}

// backgroundCall stretches a screen-shaped slice of the background texture,
// starting at the scroll offset, over the whole playfield.
func (w *World) backgroundCall() core.DrawCall {
	bg := LookupSprite(SpriteBackground)
	screenW, screenH := w.Bounds()

	viewH := bg.Quad.H
	if screenW > 0 {
		viewH = min(bg.Quad.W*screenH/screenW, bg.Quad.H)
	}
	y := min(w.scroll, bg.Quad.H-viewH)

	return core.DrawCall{
		Sheet: bg.Sheet,
		Src:   core.NewRect(bg.Quad.X, bg.Quad.Y+y, bg.Quad.W, viewH),
		Dst:   core.NewRect(0, 0, screenW, screenH),
	}
}
