package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// SpriteColor returns the palette entry for a sprite kind.
func SpriteColor(kind SpriteKind) Color {
	switch kind {
	case SpritePlayer:
		return ColorBlue
	case SpriteTarget:
		return ColorRed
	case SpriteBoss:
		return ColorBrightRed
	case SpriteFriendlyShot:
		return ColorGreen
	case SpriteHostileShot:
		return ColorMagenta
	case SpriteHealthBar:
		return ColorRed
	default:
		return ColorDefault
	}
}
