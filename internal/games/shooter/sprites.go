package shooter

import (
	"path/filepath"

	"github.com/vovakirdan/sdl-shooter/internal/config"
	"github.com/vovakirdan/sdl-shooter/internal/core"
)

// Sprite sheets. The window frontend loads one texture per sheet.
const (
	SheetShip       core.Sheet = "ship"
	SheetProjectile core.Sheet = "projectile"
	SheetEnemy      core.Sheet = "enemy"
	SheetExplosion  core.Sheet = "explosion"
	SheetBackground core.Sheet = "background"
)

// SpriteID indexes the fixed sprite table. Entities store a SpriteID instead
// of a reference to the quad so the table is resolved only when drawing.
type SpriteID int

const (
	SpriteShipStationary1 SpriteID = iota
	SpriteShipStationary2
	SpriteShipBankLeft1
	SpriteShipBankLeft2
	SpriteShipBankHardLeft1
	SpriteShipBankHardLeft2
	SpriteShipBankRight1
	SpriteShipBankRight2
	SpriteShipBankHardRight1
	SpriteShipBankHardRight2
	SpriteProjectile1
	SpriteProjectile2
	SpriteEnemy1
	SpriteEnemy2
	SpriteExplosion1
	SpriteExplosion2
	SpriteExplosion3
	SpriteExplosion4
	SpriteExplosion5
	SpriteBackground
	spriteCount
)

// Sprite is a sub-rectangle of a sheet. Frame is its animation frame within
// the visual state it belongs to.
type Sprite struct {
	Sheet core.Sheet
	Quad  core.Rect
	Frame int
}

// Animation cadences per entity kind: frame count and simulation steps each
// frame is held for.
const (
	shipFrames          = 2
	shipHold            = 4
	projectileFrames    = 2
	projectileHold      = 4
	enemyFrames         = 2
	enemyHold           = 8
	explosionFrames     = 5
	explosionHold       = 4
	shipStateFrameCount = 2 // Frames per visual state in the ship sheet
)

// sprites is read-only after package initialization.
var sprites = [spriteCount]Sprite{
	// ship.png: five columns (hard left, left, stationary, right, hard right)
	// of 16x24 quads, two rows of animation frames.
	SpriteShipBankHardLeft1:  {SheetShip, core.NewRect(0, 0, 16, 24), 0},
	SpriteShipBankLeft1:      {SheetShip, core.NewRect(16, 0, 16, 24), 0},
	SpriteShipStationary1:    {SheetShip, core.NewRect(32, 0, 16, 24), 0},
	SpriteShipBankRight1:     {SheetShip, core.NewRect(48, 0, 16, 24), 0},
	SpriteShipBankHardRight1: {SheetShip, core.NewRect(64, 0, 16, 24), 0},
	SpriteShipBankHardLeft2:  {SheetShip, core.NewRect(0, 24, 16, 24), 1},
	SpriteShipBankLeft2:      {SheetShip, core.NewRect(16, 24, 16, 24), 1},
	SpriteShipStationary2:    {SheetShip, core.NewRect(32, 24, 16, 24), 1},
	SpriteShipBankRight2:     {SheetShip, core.NewRect(48, 24, 16, 24), 1},
	SpriteShipBankHardRight2: {SheetShip, core.NewRect(64, 24, 16, 24), 1},

	SpriteProjectile1: {SheetProjectile, core.NewRect(6, 3, 5, 10), 0},
	SpriteProjectile2: {SheetProjectile, core.NewRect(22, 3, 5, 10), 1},

	SpriteEnemy1: {SheetEnemy, core.NewRect(0, 0, 16, 16), 0},
	SpriteEnemy2: {SheetEnemy, core.NewRect(16, 0, 16, 16), 1},

	SpriteExplosion1: {SheetExplosion, core.NewRect(0, 0, 16, 16), 0},
	SpriteExplosion2: {SheetExplosion, core.NewRect(16, 0, 16, 16), 1},
	SpriteExplosion3: {SheetExplosion, core.NewRect(32, 0, 16, 16), 2},
	SpriteExplosion4: {SheetExplosion, core.NewRect(48, 0, 16, 16), 3},
	SpriteExplosion5: {SheetExplosion, core.NewRect(64, 0, 16, 16), 4},

	SpriteBackground: {SheetBackground, core.NewRect(0, 0, 256, 608), 0},
}

// LookupSprite resolves a sprite ID against the sprite table.
func LookupSprite(id SpriteID) Sprite {
	if id < 0 || id >= spriteCount {
		return Sprite{}
	}
	return sprites[id]
}

// shipSprite selects the ship quad from its horizontal velocity:
// banking hard left, banking hard right, or stationary.
func shipSprite(vx, animationIdx int) SpriteID {
	idx := SpriteID(animationIdx % shipStateFrameCount)
	switch {
	case vx < 0:
		return SpriteShipBankHardLeft1 + idx
	case vx > 0:
		return SpriteShipBankHardRight1 + idx
	default:
		return SpriteShipStationary1 + idx
	}
}

// SheetFiles maps every sprite sheet to its image path under the assets dir.
func SheetFiles(a config.AssetsConfig) map[core.Sheet]string {
	return map[core.Sheet]string{
		SheetShip:       filepath.Join(a.Dir, a.Ship),
		SheetProjectile: filepath.Join(a.Dir, a.Projectile),
		SheetEnemy:      filepath.Join(a.Dir, a.Enemy),
		SheetExplosion:  filepath.Join(a.Dir, a.Explosion),
		SheetBackground: filepath.Join(a.Dir, a.Background),
	}
}
