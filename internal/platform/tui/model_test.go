package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	logger := log.New(io.Discard)

	cfg := config.DefaultBreakoutConfig()
	cfg.Debug.StrictInvariants = true
	game := breakout.NewWithConfig(cfg).WithLogger(logger)

	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}
	if err := game.Init(rc); err != nil {
		t.Fatalf("Init: %v", err)
	}
	m := NewModel(game, store, rc, logger)

	// Each Enter in these tests is a separate press
	presses := time.Unix(0, 0)
	m.keys.now = func() time.Time {
		presses = presses.Add(time.Hour)
		return presses
	}
	return m
}

// send feeds a message and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// tick advances the model by n ticks of 1/60 s.
func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		now := m.lastTick.Add(time.Second / 60)
		if m.lastTick.IsZero() {
			now = time.Unix(0, 0)
		}
		m = send(t, m, TickMsg(now))
	}
	return m
}

func TestModelNameEntryToPlaying(t *testing.T) {
	m := newTestModel(t, nil)

	// Typed faster than the tick rate: everything arrives in order
	for _, r := range "zed" {
		m = send(t, m, runeKey(r))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 5)

	if m.State().Player != "zed" {
		t.Errorf("player = %q, want %q", m.State().Player, "zed")
	}
	if m.State().Phase != core.PhaseStartPrompt {
		t.Fatalf("phase = %v, want StartPrompt", m.State().Phase)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)
	if m.State().Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want Playing", m.State().Phase)
	}

	view := m.View()
	if !strings.Contains(view, "Score: 0") || !strings.Contains(view, "Player: zed") {
		t.Errorf("playing view misses HUD:\n%s", view)
	}
}

func TestModelHeldEnterConfirmsOnce(t *testing.T) {
	m := newTestModel(t, nil)
	clock := time.Unix(0, 0)
	m.keys.now = func() time.Time { return clock }

	m = send(t, m, runeKey('z'))
	m = tick(t, m, 1)

	// Holding Enter for about a second
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	clock = clock.Add(500 * time.Millisecond)
	for range 20 {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = tick(t, m, 2)
		clock = clock.Add(33 * time.Millisecond)
	}
	m = tick(t, m, 2)
	if m.State().Phase != core.PhaseStartPrompt {
		t.Fatalf("phase = %v after holding enter, want StartPrompt", m.State().Phase)
	}

	clock = clock.Add(time.Second)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)
	if m.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want Playing", m.State().Phase)
	}
}

func TestModelArrowKeysMovePaddle(t *testing.T) {
	m := newTestModel(t, nil)
	for _, r := range "a" {
		m = send(t, m, runeKey(r))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	start, ok := m.paddleCenter()
	if !ok {
		t.Fatal("no paddle in frame")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, 1)

	got, _ := m.paddleCenter()
	if got != start-2*nudgeStep {
		t.Errorf("paddle center = %v, want %v", got, start-2*nudgeStep)
	}

	// Without input the paddle stays put
	m = tick(t, m, 3)
	if again, _ := m.paddleCenter(); again != got {
		t.Errorf("paddle drifted from %v to %v", got, again)
	}
}

func TestModelMouseMovesPaddle(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('a'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	// Far right column: paddle clamps to the right wall
	m = send(t, m, tea.MouseMsg{X: 79, Y: 10, Action: tea.MouseActionMotion})
	m = tick(t, m, 1)

	paddles := m.frame.SpritesOf(core.SpritePaddle)
	if len(paddles) != 1 || paddles[0].Rect.Right() != 720 {
		t.Errorf("paddle = %+v, want right edge at 720", paddles)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("view after quit = %q", view)
	}
}

func TestModelRecordsGameOver(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	logger := log.New(io.Discard)
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1
	game := breakout.NewWithConfig(cfg).WithLogger(logger)
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}
	if err := game.Init(rc); err != nil {
		t.Fatalf("Init: %v", err)
	}
	m := NewModel(game, store, rc, logger)

	m = send(t, m, runeKey('a'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	// Park the paddle in a corner and let the ball fall past it
	for i := 0; i < 2000 && !m.State().GameOver; i++ {
		m = send(t, m, tea.MouseMsg{X: 0, Y: 10, Action: tea.MouseActionMotion})
		m = tick(t, m, 1)
	}
	if !m.State().GameOver {
		t.Fatal("game never ended")
	}

	// Idle ticks on the game over screen do not record again
	m = tick(t, m, 10)

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("recorded %d results, want 1", n)
	}

	view := m.View()
	if !strings.Contains(view, "SESSION BEST") || !strings.Contains(view, "Game Over!") {
		t.Errorf("game over view:\n%s", view)
	}
}
