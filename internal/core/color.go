package core

// Color is the foreground color of a screen cell.
// Frontends map it to whatever their surface supports.
type Color uint8

// Palette used by the character renderer.
const (
	ColorDefault      Color = iota
	ColorRed                // Enemy, second frame
	ColorYellow             // Projectile, second frame
	ColorCyan               // Ship, second frame
	ColorGray               // Stars and fading explosions
	ColorOrange             // Explosion core
	ColorBrightRed          // Enemy
	ColorBrightYellow       // Projectile, explosion flash
	ColorBrightCyan         // Ship
)

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorYellow:
		return "3"
	case ColorCyan:
		return "6"
	case ColorGray:
		return "245"
	case ColorOrange:
		return "208"
	case ColorBrightRed:
		return "9"
	case ColorBrightYellow:
		return "11"
	case ColorBrightCyan:
		return "14"
	default:
		return ""
	}
}
