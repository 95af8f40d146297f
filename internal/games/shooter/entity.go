package shooter

import "github.com/vovakirdan/sdl-shooter/internal/core"

// Entity is the record shared by every kind of game object.
//
// Render is derived: it is always Position - (sprite size * Scale)/2, sized
// sprite size * Scale. Only SetSprite and SyncRender write it.
type Entity struct {
	Position core.Vec
	Velocity core.Vec // Pixels per second

	Sprite SpriteID
	Scale  int
	Render core.Rect

	NumAnimationFrames      int
	AnimationIdx            int
	FramesPerAnimationFrame int // Simulation steps each animation frame is shown for
	RenderedFrameIdx        int
}

// SetSprite switches the current sprite and resizes the render rectangle.
func (e *Entity) SetSprite(id SpriteID) {
	e.Sprite = id
	quad := LookupSprite(id).Quad
	e.Render.W = quad.W * e.Scale
	e.Render.H = quad.H * e.Scale
	e.SyncRender()
}

// SyncRender recomputes the render origin from the position.
func (e *Entity) SyncRender() {
	e.Render = core.CenteredRect(e.Position, e.Render.W, e.Render.H)
}

// advanceAnimation counts one rendered step. It reports true when the step
// completed the last animation frame; the index has wrapped to 0 by then.
func (e *Entity) advanceAnimation() bool {
	e.RenderedFrameIdx++
	if e.RenderedFrameIdx < e.FramesPerAnimationFrame {
		return false
	}
	e.RenderedFrameIdx = 0
	last := e.AnimationIdx == e.NumAnimationFrames-1
	e.AnimationIdx = (e.AnimationIdx + 1) % e.NumAnimationFrames
	return last
}

// Ship is the player's entity plus its firing state.
type Ship struct {
	Entity

	IsFiring         bool
	TimeTillNextShot float64 // Seconds; <= 0 means the next shot is ready
}
