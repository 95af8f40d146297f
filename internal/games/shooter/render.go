package shooter

import (
	"fmt"

	"github.com/vovakirdan/sdl-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipChar          = '▲'
	ShipLeftChar      = '◀'
	ShipRightChar     = '▶'
	ProjectileChar    = '│'
	EnemyChar         = '▼'
	StarChar          = '·'
	starGrid          = 8 // Background texture pixels between star candidates
	starDensity       = 5 // One candidate in starDensity is a star
	shipStationaryCol = 32
)

var explosionChars = [explosionFrames]rune{'✶', '✹', '*', '+', '·'}

var explosionColors = [explosionFrames]core.Color{
	core.ColorBrightYellow,
	core.ColorOrange,
	core.ColorOrange,
	core.ColorRed,
	core.ColorGray,
}

// Render rasterises the frame's draw calls onto the character screen,
// scaling the pixel playfield to the screen size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	r := rasterizer{dst: dst}
	r.w, r.h = g.Bounds()
	for _, call := range g.DrawCalls(nil) {
		if call.Sheet == SheetBackground {
			r.starfield(call.Src)
			continue
		}
		ch, color := glyph(call)
		r.fill(call.Dst, ch, color)
	}

	// Draw HUD
	if g.mode == ModeShooter {
		dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.world.Score()))
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.world.GameOver() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score()))
	}
}

// glyph picks the character and color standing in for a sprite.
func glyph(call core.DrawCall) (rune, core.Color) {
	switch call.Sheet {
	case SheetShip:
		color := core.ColorBrightCyan
		if call.Frame == 1 {
			color = core.ColorCyan
		}
		switch {
		case call.Src.X < shipStationaryCol:
			return ShipLeftChar, color
		case call.Src.X > shipStationaryCol:
			return ShipRightChar, color
		default:
			return ShipChar, color
		}
	case SheetProjectile:
		if call.Frame == 1 {
			return ProjectileChar, core.ColorYellow
		}
		return ProjectileChar, core.ColorBrightYellow
	case SheetEnemy:
		if call.Frame == 1 {
			return EnemyChar, core.ColorRed
		}
		return EnemyChar, core.ColorBrightRed
	case SheetExplosion:
		f := core.Clamp(call.Frame, 0, explosionFrames-1)
		return explosionChars[f], explosionColors[f]
	default:
		return '?', core.ColorDefault
	}
}

// rasterizer maps playfield pixels onto screen cells.
type rasterizer struct {
	dst  *core.Screen
	w, h int // Playfield size in pixels
}

// fill covers every cell the pixel rectangle touches.
func (r rasterizer) fill(px core.Rect, ch rune, color core.Color) {
	if r.w <= 0 || r.h <= 0 || px.W <= 0 || px.H <= 0 {
		return
	}
	cols, rows := r.dst.Width(), r.dst.Height()
	x0 := floorDiv(px.X*cols, r.w)
	x1 := floorDiv((px.Right()-1)*cols, r.w)
	y0 := floorDiv(px.Y*rows, r.h)
	y1 := floorDiv((px.Bottom()-1)*rows, r.h)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.dst.SetColored(x, y, ch, color)
		}
	}
}

// starfield scatters stars over the visible slice of the background texture.
// Stars are fixed in texture space, so they drift as the slice scrolls.
func (r rasterizer) starfield(src core.Rect) {
	if src.W <= 0 || src.H <= 0 {
		return
	}
	cols, rows := r.dst.Width(), r.dst.Height()

	first := floorDiv(src.Y, starGrid) * starGrid
	for ty := first; ty < src.Bottom(); ty += starGrid {
		if ty < src.Y {
			continue
		}
		for tx := src.X; tx < src.Right(); tx += starGrid {
			if starHash(tx, ty)%starDensity != 0 {
				continue
			}
			x := (tx - src.X) * cols / src.W
			y := (ty - src.Y) * rows / src.H
			r.dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}
}

// starHash is a small integer mix giving a stable pseudo-random value per
// texture coordinate.
func starHash(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
