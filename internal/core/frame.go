package core

// SpriteKind identifies what a sprite in the draw-list depicts.
type SpriteKind int

const (
	SpritePaddle SpriteKind = iota
	SpriteBall
	SpriteBrick
)

// String returns a human-readable name for the sprite kind.
func (k SpriteKind) String() string {
	switch k {
	case SpritePaddle:
		return "Paddle"
	case SpriteBall:
		return "Ball"
	case SpriteBrick:
		return "Brick"
	default:
		return "Unknown"
	}
}

// Sprite is one entry of the draw-list.
type Sprite struct {
	Kind SpriteKind
	Rect Rect
	Row  int // Grid row for bricks (0 = top row); zero otherwise
}

// Anchor positions a HUD text relative to the playfield.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenter
)

// Text is one line of HUD text. Line offsets the text downward from its
// anchor, in text rows.
type Text struct {
	Anchor Anchor
	Line   int
	Value  string
}

// Frame is everything a presenter needs to draw one frame.
// Coordinates are playfield units with a bottom-left origin; mapping to
// pixels or cells is the presenter's job.
type Frame struct {
	Phase      Phase
	PlayfieldW float64
	PlayfieldH float64

	// Sprites is the ordered draw-list: paddle, ball, then bricks in
	// insertion order. Empty outside the Playing phase.
	Sprites []Sprite

	// HUD holds the text lines for the active phase.
	HUD []Text

	Score  int
	Lives  int
	Level  int // Announced level during PhaseLevelMessage
	Player string
}

// SpritesOf returns the sprites of the given kind, in draw order.
func (f Frame) SpritesOf(kind SpriteKind) []Sprite {
	var out []Sprite
	for _, s := range f.Sprites {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
