package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the terminal presenter.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// BrickPalette colors brick rows from the top of the grid downward.
var BrickPalette = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan}

// SpriteColor returns the display color for a sprite.
// Bricks cycle through BrickPalette by their row index.
func SpriteColor(s Sprite) Color {
	switch s.Kind {
	case SpritePaddle:
		return ColorWhite
	case SpriteBall:
		return ColorMagenta
	case SpriteBrick:
		return BrickPalette[s.Row%len(BrickPalette)]
	default:
		return ColorDefault
	}
}
