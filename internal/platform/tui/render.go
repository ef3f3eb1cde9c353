package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// cellMapper converts playfield units (bottom-left origin) to screen
// cells (top-left origin).
type cellMapper struct {
	sx, sy float64
	fieldH float64
	w, h   int
}

func newCellMapper(f core.Frame, w, h int) cellMapper {
	m := cellMapper{fieldH: f.PlayfieldH, w: w, h: h}
	if f.PlayfieldW > 0 {
		m.sx = float64(w) / f.PlayfieldW
	}
	if f.PlayfieldH > 0 {
		m.sy = float64(h) / f.PlayfieldH
	}
	return m
}

// cells returns the half-open cell span [x0,x1) x [y0,y1) covered by r.
// Every non-empty rectangle covers at least one cell.
func (m cellMapper) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.Left() * m.sx))
	x1 = max(int(math.Round(r.Right()*m.sx)), x0+1)
	y0 = int(math.Round((m.fieldH - r.Top()) * m.sy))
	y1 = max(int(math.Round((m.fieldH-r.Bottom())*m.sy)), y0+1)
	return x0, y0, x1, y1
}

// center returns the cell containing the center of r.
func (m cellMapper) center(r core.Rect) (int, int) {
	cx := int(math.Floor(r.CenterX() * m.sx))
	cy := int(math.Floor((m.fieldH - (r.Bottom() + r.H/2)) * m.sy))
	return core.Clamp(cx, 0, m.w-1), core.Clamp(cy, 0, m.h-1)
}

// RasterizeFrame draws a frame into the screen buffer: bricks, paddle,
// ball, then the HUD text on top.
func RasterizeFrame(f core.Frame, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	m := newCellMapper(f, dst.Width(), dst.Height())

	for _, s := range f.SpritesOf(core.SpriteBrick) {
		x0, y0, x1, y1 := m.cells(s.Rect)
		dst.FillCells(x0, y0, x1-x0, y1-y0, BrickChar, core.SpriteColor(s))
	}
	for _, s := range f.SpritesOf(core.SpritePaddle) {
		x0, y0, x1, _ := m.cells(s.Rect)
		dst.FillCells(x0, y0, x1-x0, 1, PaddleChar, core.SpriteColor(s))
	}
	for _, s := range f.SpritesOf(core.SpriteBall) {
		x, y := m.center(s.Rect)
		dst.SetColored(x, y, BallChar, core.SpriteColor(s))
	}

	drawHUD(f.HUD, dst)
}

// drawHUD places text lines by anchor. Center-anchored lines are framed
// in a box.
func drawHUD(texts []core.Text, dst *core.Screen) {
	lines, widest := centerBlock(texts)
	centerTop := dst.Height()/2 - lines/2
	if lines > 0 {
		boxW := widest + 4
		dst.FillCells((dst.Width()-boxW)/2, centerTop-1, boxW, lines+2, ' ', core.ColorDefault)
		dst.DrawBox((dst.Width()-boxW)/2, centerTop-1, boxW, lines+2)
	}
	for _, t := range texts {
		width := len([]rune(t.Value))
		switch t.Anchor {
		case core.AnchorTopLeft:
			dst.DrawText(1, t.Line, t.Value)
		case core.AnchorTopCenter:
			dst.DrawText((dst.Width()-width)/2, t.Line, t.Value)
		case core.AnchorTopRight:
			dst.DrawText(dst.Width()-width-1, t.Line, t.Value)
		case core.AnchorCenter:
			dst.DrawTextCentered(centerTop+t.Line, t.Value)
		}
	}
}

// centerBlock returns the line count and widest line of the center block.
func centerBlock(texts []core.Text) (lines, widest int) {
	for _, t := range texts {
		if t.Anchor != core.AnchorCenter {
			continue
		}
		lines = max(lines, t.Line+1)
		widest = max(widest, len([]rune(t.Value)))
	}
	return lines, widest
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
