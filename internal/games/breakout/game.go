package breakout

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "brickbreaker"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game wraps the pure step function with owned state, logging and the
// registry contract.
type Game struct {
	rules   Rules
	state   State
	runtime core.RuntimeConfig
	logger  *log.Logger

	cfg     *config.BreakoutConfig // Fixed config; nil loads from file on Init
	stopped bool
}

// New creates a game that loads its configuration on Init.
func New() *Game {
	return &Game{logger: log.Default()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: &cfg, logger: log.Default()}
}

// WithLogger replaces the logger used for transitions and invariant reports.
func (g *Game) WithLogger(l *log.Logger) *Game {
	if l != nil {
		g.logger = l
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// Init loads the configuration and enters name entry.
func (g *Game) Init(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	var cfg config.BreakoutConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, err := config.LoadBreakout(configPath)
		if err != nil {
			return fmt.Errorf("breakout: %w", err)
		}
		cfg = loaded
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" && g.cfg == nil {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("breakout: %w", err)
	}

	g.rules = NewRules(cfg, g.logger)
	g.state = g.rules.NewState()
	g.stopped = false

	g.logger.Debug("game initialized",
		"playfield", fmt.Sprintf("%vx%v", cfg.Playfield.Width, cfg.Playfield.Height),
		"lives", cfg.Gameplay.Lives,
		"preset", string(difficultyPreset))
	return nil
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.stopped {
		return core.StepResult{State: g.State()}
	}

	prev := g.state
	g.state = g.rules.Step(prev, in, dt)
	g.logTransition(prev, g.state)

	return core.StepResult{
		State:      g.State(),
		Transition: prev.Phase != g.state.Phase,
	}
}

func (g *Game) logTransition(prev, next State) {
	if prev.Phase == core.PhasePlaying && next.Lives < prev.Lives {
		g.logger.Debug("life lost", "lives", next.Lives, "score", next.Score)
	}
	if prev.Phase == next.Phase {
		return
	}

	g.logger.Debug("phase change", "from", prev.Phase, "to", next.Phase)
	switch {
	case next.Phase == core.PhaseLevelMessage:
		g.logger.Debug("level cleared", "level", next.Level, "score", next.Score)
	case prev.Phase == core.PhaseLevelMessage && next.Phase == core.PhasePlaying:
		g.logger.Debug("level started", "level", next.Level, "speed", next.SpeedMultiplier)
	case next.Phase == core.PhaseGameOver:
		g.logger.Info("game over", "player", next.Name, "score", next.Score, "level", next.Level)
	}
}

// Frame returns the render description of the current state.
func (g *Game) Frame() core.Frame {
	return BuildFrame(g.state, g.rules.cfg.Playfield)
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state.Phase,
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		Level:    g.state.Level,
		Player:   g.state.Name,
		GameOver: g.state.Phase == core.PhaseGameOver,
	}
}

// Shutdown stops the game. Later steps are ignored until the next Init.
func (g *Game) Shutdown() {
	if g.stopped {
		return
	}
	g.stopped = true
	g.logger.Debug("game shut down", "tick", g.state.Tick)
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
