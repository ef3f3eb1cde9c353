// Package breakout implements a single-screen brick breaker: a paddle
// deflects a ball to clear a grid of bricks across escalating levels.
package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Brick is one destructible brick. Row and Col locate it in the grid
// it was generated from; Row 0 is the top row.
type Brick struct {
	Rect core.Rect
	Row  int
	Col  int
}

// GenerateBricks returns a fresh brick set for the given level.
// The layout is a fixed grid anchored below the playfield header, in
// row-major insertion order. Only scoring and speed scale with the level,
// so the result does not depend on it.
func GenerateBricks(level int, field config.BreakoutPlayfield, grid config.BreakoutBricks) []Brick {
	bricks := make([]Brick, 0, grid.Rows*grid.Cols)
	for row := range grid.Rows {
		y := field.Height - grid.TopOffset - float64(row)*(grid.Height+grid.Padding)
		for col := range grid.Cols {
			x := float64(col) * (grid.Width + grid.Padding)
			bricks = append(bricks, Brick{
				Rect: core.NewRect(x, y, grid.Width, grid.Height),
				Row:  row,
				Col:  col,
			})
		}
	}
	return bricks
}

// cloneBricks copies a brick set so removals never alias the previous state.
func cloneBricks(bricks []Brick) []Brick {
	if bricks == nil {
		return nil
	}
	out := make([]Brick, len(bricks))
	copy(out, bricks)
	return out
}
