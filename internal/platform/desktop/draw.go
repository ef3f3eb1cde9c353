package desktop

import (
	"image/color"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Debug font metrics of ebitenutil.DebugPrintAt.
const (
	glyphW     = 6
	hudMargin  = 10
	hudLineGap = 20
)

var background = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorRed:     {R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	core.ColorGreen:   {R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
	core.ColorYellow:  {R: 0xfd, G: 0xd8, B: 0x35, A: 0xff},
	core.ColorBlue:    {R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
	core.ColorMagenta: {R: 0xd8, G: 0x1b, B: 0x60, A: 0xff},
	core.ColorCyan:    {R: 0x00, G: 0xac, B: 0xc1, A: 0xff},
	core.ColorWhite:   {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	core.ColorOrange:  {R: 0xfb, G: 0x8c, B: 0x00, A: 0xff},
	core.ColorGray:    {R: 0x75, G: 0x75, B: 0x75, A: 0xff},
}

// rectOp is one filled rectangle in window pixels (top-left origin).
type rectOp struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// textOp is one line of debug-font text at a pixel position.
type textOp struct {
	X, Y int
	Text string
}

// layoutFrame converts a frame to draw operations for a window of the
// given size. The playfield is scaled to fill the window and its y axis
// flipped.
func layoutFrame(f core.Frame, width, height int) ([]rectOp, []textOp) {
	sx, sy := 1.0, 1.0
	if f.PlayfieldW > 0 && f.PlayfieldH > 0 {
		sx = float64(width) / f.PlayfieldW
		sy = float64(height) / f.PlayfieldH
	}

	rects := make([]rectOp, 0, len(f.Sprites))
	for _, s := range f.Sprites {
		r := s.Rect
		rects = append(rects, rectOp{
			X:     r.X * sx,
			Y:     (f.PlayfieldH - r.Top()) * sy,
			W:     r.W * sx,
			H:     r.H * sy,
			Color: palette[core.SpriteColor(s)],
		})
	}

	texts := make([]textOp, 0, len(f.HUD))
	centerLines := 0
	for _, t := range f.HUD {
		if t.Anchor == core.AnchorCenter {
			centerLines = max(centerLines, t.Line+1)
		}
	}
	centerTop := height/2 - centerLines*hudLineGap/2

	for _, t := range f.HUD {
		tw := len([]rune(t.Value)) * glyphW
		var x, y int
		switch t.Anchor {
		case core.AnchorTopLeft:
			x, y = hudMargin, hudMargin+t.Line*hudLineGap
		case core.AnchorTopCenter:
			x, y = (width-tw)/2, hudMargin+t.Line*hudLineGap
		case core.AnchorTopRight:
			x, y = width-tw-hudMargin, hudMargin+t.Line*hudLineGap
		case core.AnchorCenter:
			x, y = (width-tw)/2, centerTop+t.Line*hudLineGap
		}
		texts = append(texts, textOp{X: x, Y: y, Text: t.Value})
	}

	return rects, texts
}
