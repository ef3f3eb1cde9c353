package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Letters are reserved for name entry, so no binding uses one.
type KeyMap struct {
	Confirm   key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Backspace},
		{k.Left, k.Right},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "paddle left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "paddle right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ConfirmRepeatWindow is the default gap under which Enter presses are
// merged. Terminals report a held key as repeated presses, the first one
// after the repeat delay (usually 250-600 ms).
const ConfirmRepeatWindow = 650 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to logical game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys KeyMap

	// RepeatWindow merges Confirm presses that follow the previous one
	// within the window, so holding Enter confirms once. Zero disables it.
	RepeatWindow time.Duration

	now         func() time.Time
	lastConfirm time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Keys:         DefaultKeyMap(),
		RepeatWindow: ConfirmRepeatWindow,
		now:          time.Now,
	}
}

// KeyResult is the logical meaning of one key press.
type KeyResult struct {
	Action core.Action // ActionNone if the key is not an action
	Rune   rune        // Typed letter, or 0
	Nudge  int         // -1 paddle left, +1 paddle right, 0 none
	Help   bool        // Toggle the full help view
}

// MapKey translates a key message to its logical meaning.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyResult {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return KeyResult{Action: core.ActionQuit}
	case key.Matches(msg, km.Keys.Confirm):
		return KeyResult{Action: core.ActionConfirm}
	case key.Matches(msg, km.Keys.Backspace):
		return KeyResult{Action: core.ActionBackspace}
	case key.Matches(msg, km.Keys.Left):
		return KeyResult{Nudge: -1}
	case key.Matches(msg, km.Keys.Right):
		return KeyResult{Nudge: 1}
	case key.Matches(msg, km.Keys.Help):
		return KeyResult{Help: true}
	}

	// Single typed runes go to name entry; the game filters non-letters.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Paste {
		return KeyResult{Rune: msg.Runes[0]}
	}

	return KeyResult{}
}

// Apply queues the key's action or rune. Returns true if the key was a
// quit request. A repeated Confirm is dropped and reported as ActionNone.
func (km *KeyMapper) Apply(msg tea.KeyMsg, q *core.InputQueue) (res KeyResult, isQuit bool) {
	res = km.MapKey(msg)
	if res.Action == core.ActionConfirm && km.repeatedConfirm() {
		res.Action = core.ActionNone
		return res, false
	}

	switch {
	case res.Action == core.ActionQuit:
		return res, true
	case res.Action != core.ActionNone:
		q.PushAction(res.Action)
	case res.Rune != 0:
		q.PushRune(res.Rune)
	}
	return res, false
}

// repeatedConfirm records a Confirm and reports whether it continues the
// previous one. Every repeat extends the window, so a long hold stays one
// press.
func (km *KeyMapper) repeatedConfirm() bool {
	if km.RepeatWindow <= 0 {
		return false
	}
	now := time.Now()
	if km.now != nil {
		now = km.now()
	}

	last := km.lastConfirm
	km.lastConfirm = now
	return !last.IsZero() && now.Sub(last) < km.RepeatWindow
}
