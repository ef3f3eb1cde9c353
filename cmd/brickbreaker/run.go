package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/desktop"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// applyGameFlags validates the game flags and hands them to the game
// package before any instance is created.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger builds the process logger. fallback receives the logs when
// no --log-file is given. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}

// session holds what both presenters need to run a game.
type session struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	close  func()
}

// openSession creates and initializes the game and the session leaderboard.
func openSession(cfg core.RuntimeConfig, logOut io.Writer) (*session, error) {
	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}

	game, err := registry.Create(breakout.ID)
	if err != nil {
		closeLog()
		return nil, err
	}
	if g, ok := game.(*breakout.Game); ok {
		g.WithLogger(logger)
	}
	if err := game.Init(cfg); err != nil {
		closeLog()
		return nil, err
	}

	// The leaderboard lives for this process only
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("session leaderboard unavailable", "err", err)
		store = nil
	}

	return &session{
		game:   game,
		store:  store,
		logger: logger,
		close: func() {
			if store != nil {
				_ = store.Close()
			}
			closeLog()
		},
	}, nil
}

func runDesktop(cmd *cobra.Command, args []string) error {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS

	s, err := openSession(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	s.logger.Info("starting", "presenter", "desktop", "fps", cfg.TickRate)
	return desktop.Run(s.game, s.store, cfg, s.logger)
}
