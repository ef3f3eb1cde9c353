package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyResult
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyResult{Action: core.ActionConfirm}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, KeyResult{Action: core.ActionBackspace}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyResult{Action: core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyResult{Action: core.ActionQuit}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, KeyResult{Nudge: -1}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, KeyResult{Nudge: 1}},
		{"help", runeKey('?'), KeyResult{Help: true}},
		{"letter", runeKey('q'), KeyResult{Rune: 'q'}},
		{"digit", runeKey('7'), KeyResult{Rune: '7'}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, KeyResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyMapperApplyQueues(t *testing.T) {
	km := NewKeyMapper()
	var q core.InputQueue

	km.Apply(runeKey('a'), &q)
	km.Apply(tea.KeyMsg{Type: tea.KeyEnter}, &q)
	km.Apply(tea.KeyMsg{Type: tea.KeyLeft}, &q) // pointer only, not queued

	if q.Len() != 2 {
		t.Fatalf("queue length = %d, want 2", q.Len())
	}

	if _, quit := km.Apply(tea.KeyMsg{Type: tea.KeyEsc}, &q); !quit {
		t.Error("esc should quit")
	}
	if q.Len() != 2 {
		t.Errorf("quit was queued")
	}

	// Pasted text is not typed into the name
	km.Apply(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true}, &q)
	if q.Len() != 2 {
		t.Errorf("paste was queued")
	}
}

func TestKeyMapperMergesHeldConfirm(t *testing.T) {
	clock := time.Unix(100, 0)
	km := NewKeyMapper()
	km.now = func() time.Time { return clock }
	var q core.InputQueue
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	km.Apply(enter, &q)

	// Held: first repeat after the terminal delay, then every 33ms
	clock = clock.Add(500 * time.Millisecond)
	for range 30 {
		res, _ := km.Apply(enter, &q)
		if res.Action != core.ActionNone {
			t.Fatalf("repeat reported as %v", res.Action)
		}
		clock = clock.Add(33 * time.Millisecond)
	}
	if q.Len() != 1 {
		t.Fatalf("queue length = %d after holding enter, want 1", q.Len())
	}

	// Released and pressed again
	clock = clock.Add(time.Second)
	km.Apply(enter, &q)
	if q.Len() != 2 {
		t.Errorf("queue length = %d after second press, want 2", q.Len())
	}

	// Other keys are never merged
	km.Apply(runeKey('a'), &q)
	km.Apply(runeKey('a'), &q)
	if q.Len() != 4 {
		t.Errorf("queue length = %d, want 4", q.Len())
	}
}

func TestKeyMapperRepeatWindowDisabled(t *testing.T) {
	km := NewKeyMapper()
	km.RepeatWindow = 0
	var q core.InputQueue

	km.Apply(tea.KeyMsg{Type: tea.KeyEnter}, &q)
	km.Apply(tea.KeyMsg{Type: tea.KeyEnter}, &q)
	if q.Len() != 2 {
		t.Errorf("queue length = %d, want 2", q.Len())
	}
}
