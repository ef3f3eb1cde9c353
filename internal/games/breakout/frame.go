package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// HUD strings.
const (
	TextEnterName  = "Enter your name"
	TextStart      = "Press Enter to start the game"
	TextGameOver   = "Game Over!"
	TextPlayAgain  = "Press Enter to Play Again"
	finalScoreText = "%s's Final Score: %d"
)

// BuildFrame describes the state for a presenter. Sprites are only
// emitted while playing: paddle, ball, then bricks in insertion order.
func BuildFrame(s State, field config.BreakoutPlayfield) core.Frame {
	f := core.Frame{
		Phase:      s.Phase,
		PlayfieldW: field.Width,
		PlayfieldH: field.Height,
		Score:      s.Score,
		Lives:      s.Lives,
		Level:      s.Level,
		Player:     s.Name,
	}

	switch s.Phase {
	case core.PhaseNameEntry:
		f.HUD = []core.Text{
			{Anchor: core.AnchorCenter, Line: 0, Value: TextEnterName},
			{Anchor: core.AnchorCenter, Line: 1, Value: s.Name},
		}

	case core.PhaseStartPrompt:
		f.HUD = []core.Text{
			{Anchor: core.AnchorCenter, Line: 0, Value: TextStart},
		}

	case core.PhasePlaying:
		f.Sprites = make([]core.Sprite, 0, len(s.Bricks)+2)
		f.Sprites = append(f.Sprites,
			core.Sprite{Kind: core.SpritePaddle, Rect: s.Paddle},
			core.Sprite{Kind: core.SpriteBall, Rect: s.Ball},
		)
		for _, b := range s.Bricks {
			f.Sprites = append(f.Sprites, core.Sprite{Kind: core.SpriteBrick, Rect: b.Rect, Row: b.Row})
		}
		f.HUD = []core.Text{
			{Anchor: core.AnchorTopLeft, Line: 0, Value: fmt.Sprintf("Score: %d", s.Score)},
			{Anchor: core.AnchorTopCenter, Line: 0, Value: fmt.Sprintf("Level: %d", s.Level)},
			{Anchor: core.AnchorTopRight, Line: 0, Value: fmt.Sprintf("Lives: %d", s.Lives)},
			{Anchor: core.AnchorTopLeft, Line: 1, Value: "Player: " + s.Name},
		}

	case core.PhaseLevelMessage:
		f.Level = s.NextLevel
		f.HUD = []core.Text{
			{Anchor: core.AnchorCenter, Line: 0, Value: fmt.Sprintf("Level %d", s.NextLevel)},
		}

	case core.PhaseGameOver:
		f.HUD = []core.Text{
			{Anchor: core.AnchorCenter, Line: 0, Value: TextGameOver},
			{Anchor: core.AnchorCenter, Line: 1, Value: fmt.Sprintf(finalScoreText, s.Name, s.Score)},
			{Anchor: core.AnchorCenter, Line: 2, Value: TextPlayAgain},
		}
	}

	return f
}
