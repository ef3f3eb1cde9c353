package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// InputSource abstracts device polling so the window loop can be
// driven without a display.
type InputSource interface {
	// PointerX returns the x coordinate, in window pixels, of a pressed
	// mouse button or the first active touch.
	PointerX() (int, bool)

	// JustPressed reports whether the key bound to the action went down
	// this tick. Holding a key reports true once.
	JustPressed(a core.Action) bool

	// AppendChars appends the characters typed this tick to buf.
	AppendChars(buf []rune) []rune
}

// EbitenInput reads the keyboard, mouse and touch screen through Ebitengine.
type EbitenInput struct {
	touchIDs []ebiten.TouchID
}

// PointerX reads the pressed mouse cursor, then the first touch.
func (e *EbitenInput) PointerX() (int, bool) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		return x, true
	}

	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	if len(e.touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(e.touchIDs[0])
		return x, true
	}
	return 0, false
}

// JustPressed maps logical actions to their keys.
func (e *EbitenInput) JustPressed(a core.Action) bool {
	switch a {
	case core.ActionConfirm:
		return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	case core.ActionBackspace:
		return inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	case core.ActionQuit:
		return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	}
	return false
}

// AppendChars returns the characters typed this tick.
func (e *EbitenInput) AppendChars(buf []rune) []rune {
	return ebiten.AppendInputChars(buf)
}
