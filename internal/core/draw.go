package core

// Sheet names a sprite sheet texture.
type Sheet string

// DrawCall is one textured-rectangle copy: the Src sub-rectangle of Sheet is
// drawn into Dst. Frame is the animation frame Src belongs to, which
// text frontends use to pick a glyph instead of sampling a texture.
type DrawCall struct {
	Sheet Sheet
	Frame int
	Src   Rect
	Dst   Rect
}

// Drawer is implemented by games that expose their frame as textured
// rectangles in back-to-front order.
type Drawer interface {
	// DrawCalls appends this frame's draw calls to dst and returns it.
	DrawCalls(dst []DrawCall) []DrawCall

	// Bounds returns the playfield size in pixels.
	Bounds() (w, h int)
}
