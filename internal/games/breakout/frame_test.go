package breakout

import (
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func hudValues(f core.Frame) []string {
	out := make([]string, len(f.HUD))
	for i, t := range f.HUD {
		out[i] = t.Value
	}
	return out
}

func TestBuildFramePerPhase(t *testing.T) {
	r := testRules()
	field := r.Config().Playfield

	s := r.NewState()
	s.Name = "ann"
	f := BuildFrame(s, field)
	if got := hudValues(f); len(got) != 2 || got[0] != TextEnterName || got[1] != "ann" {
		t.Errorf("name entry HUD = %q", got)
	}
	if len(f.Sprites) != 0 {
		t.Errorf("name entry drew %d sprites", len(f.Sprites))
	}

	s.Phase = core.PhaseStartPrompt
	f = BuildFrame(s, field)
	if got := hudValues(f); len(got) != 1 || got[0] != TextStart {
		t.Errorf("start HUD = %q", got)
	}

	s = playingState(t, r)
	f = BuildFrame(s, field)
	if len(f.Sprites) != 42 {
		t.Fatalf("sprites = %d, want 42", len(f.Sprites))
	}
	if f.Sprites[0].Kind != core.SpritePaddle || f.Sprites[1].Kind != core.SpriteBall {
		t.Errorf("draw order = %v, %v", f.Sprites[0].Kind, f.Sprites[1].Kind)
	}
	if got := len(f.SpritesOf(core.SpriteBrick)); got != 40 {
		t.Errorf("brick sprites = %d, want 40", got)
	}
	want := []string{"Score: 0", "Level: 1", "Lives: 3", "Player: ann"}
	got := hudValues(f)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("HUD[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if f.PlayfieldW != 720 || f.PlayfieldH != 650 {
		t.Errorf("playfield = %vx%v", f.PlayfieldW, f.PlayfieldH)
	}

	s.Phase = core.PhaseLevelMessage
	s.NextLevel = 2
	f = BuildFrame(s, field)
	if got := hudValues(f); len(got) != 1 || got[0] != "Level 2" || f.Level != 2 {
		t.Errorf("level message HUD = %q level %d", got, f.Level)
	}

	s.Phase = core.PhaseGameOver
	s.Score = 130
	f = BuildFrame(s, field)
	want = []string{"Game Over!", "ann's Final Score: 130", "Press Enter to Play Again"}
	got = hudValues(f)
	if len(got) != 3 {
		t.Fatalf("game over HUD = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("HUD[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateBricksLayout(t *testing.T) {
	cfg := testConfig()
	bricks := GenerateBricks(1, cfg.Playfield, cfg.Bricks)

	if len(bricks) != 40 {
		t.Fatalf("bricks = %d, want 40", len(bricks))
	}

	first := bricks[0].Rect
	if first != core.NewRect(0, 550, 80, 30) {
		t.Errorf("first brick = %+v", first)
	}
	last := bricks[39]
	if last.Rect != core.NewRect(630, 390, 80, 30) || last.Row != 4 || last.Col != 7 {
		t.Errorf("last brick = %+v", last)
	}

	for i := range bricks {
		for j := i + 1; j < len(bricks); j++ {
			if bricks[i].Rect.Overlaps(bricks[j].Rect) {
				t.Fatalf("bricks %d and %d overlap", i, j)
			}
		}
		if bricks[i].Rect.Right() > cfg.Playfield.Width || bricks[i].Rect.Top() > cfg.Playfield.Height {
			t.Errorf("brick %d outside playfield: %+v", i, bricks[i].Rect)
		}
	}

	// The layout does not depend on the level
	again := GenerateBricks(7, cfg.Playfield, cfg.Bricks)
	for i := range bricks {
		if bricks[i] != again[i] {
			t.Fatalf("level 7 layout differs at %d", i)
		}
	}
}

func TestHashDetectsChanges(t *testing.T) {
	r := testRules()
	s := playingState(t, r)

	base := s.Hash()
	if s.Clone().Hash() != base {
		t.Error("clone hash differs")
	}

	moved := s.Clone()
	moved.Ball.X += 0.001
	if moved.Hash() == base {
		t.Error("ball move not reflected in hash")
	}

	fewer := s.Clone()
	fewer.Bricks = fewer.Bricks[1:]
	if fewer.Hash() == base {
		t.Error("brick removal not reflected in hash")
	}
}
