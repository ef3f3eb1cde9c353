package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// nudgeStep is how far one arrow key press moves the paddle, in playfield units.
const nudgeStep = 40.0

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	logger *log.Logger

	keys   *KeyMapper
	help   help.Model
	board  Leaderboard
	queue  core.InputQueue
	frame  core.Frame
	state  core.GameState
	width  int
	height int

	pointerX   float64 // Pending pointer for the next frame
	hasPointer bool
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for an initialized game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	board := NewLeaderboard(store)
	if err := board.Refresh(); err != nil {
		logger.Warn("leaderboard unavailable", "err", err)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		logger: logger,
		keys:   NewKeyMapper(),
		help:   h,
		board:  board,
		frame:  game.Frame(),
		state:  game.State(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions and runes are queued for
// the next tick; arrow keys move the pending pointer.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res, quit := m.keys.Apply(msg, &m.queue)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	if res.Help {
		m.help.ShowAll = !m.help.ShowAll
	}

	if res.Nudge != 0 {
		base, ok := m.paddleCenter()
		if m.hasPointer {
			base, ok = m.pointerX, true
		}
		if ok {
			m.pointerX = core.ClampF(base+float64(res.Nudge)*nudgeStep, 0, m.frame.PlayfieldW)
			m.hasPointer = true
		}
	}

	return m, nil
}

// handleMouse tracks mouse motion as the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen.Width() == 0 || m.frame.PlayfieldW <= 0 {
		return m, nil
	}
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}

	m.pointerX = (float64(msg.X) + 0.5) / float64(m.screen.Width()) * m.frame.PlayfieldW
	m.hasPointer = true
	return m, nil
}

// handleResize processes window resize events. The game is resolution
// independent, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick builds the frame's input and steps the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	in := core.NewInputFrame()
	m.queue.Drain(&in)
	if m.hasPointer {
		in.SetPointer(m.pointerX)
		m.hasPointer = false
	}

	result := m.game.Step(in, dt)
	m.state = result.State
	m.frame = m.game.Frame()

	// Record each finished game once, on the transition into game over
	if result.Transition && result.State.GameOver {
		if err := m.board.Record(result.State.Player, result.State.Score, result.State.Level); err != nil {
			m.logger.Warn("cannot record result", "err", err)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// paddleCenter returns the paddle center of the last frame.
func (m Model) paddleCenter() (float64, bool) {
	paddles := m.frame.SpritesOf(core.SpritePaddle)
	if len(paddles) == 0 {
		return 0, false
	}
	return paddles[0].Rect.CenterX(), true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keys.Keys))

	if m.state.GameOver && len(m.board.Results()) > 0 {
		return m.gameOverView(helpView)
	}

	RasterizeFrame(m.frame, m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// gameOverView shows the final score above the session leaderboard.
func (m Model) gameOverView(helpView string) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	lines := make([]string, 0, len(m.frame.HUD)+2)
	for i, t := range m.frame.HUD {
		if i == 0 {
			lines = append(lines, titleStyle.Render(t.Value))
			continue
		}
		lines = append(lines, t.Value)
	}
	lines = append(lines, "", m.board.View())

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	placed := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + helpView
}

// State returns the last game state summary.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for an initialized game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer tracking for the paddle
	)

	_, err := p.Run()
	game.Shutdown()
	return err
}
