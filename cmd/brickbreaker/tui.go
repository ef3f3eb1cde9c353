package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play Brick Breaker in the terminal. The playfield is scaled to the
terminal size.

Controls:
  Mouse         - Move the paddle
  Left/Right    - Nudge the paddle
  Enter         - Confirm name, start, play again
  Backspace     - Delete the last letter of the name
  ?             - Toggle help
  Esc/Ctrl+C    - Quit

Terminals report a held key as repeated presses. Enter presses less than
0.65s apart count as one, so press Enter again after a short pause.

Logs are discarded unless --log-file is given.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Anything written to stderr would tear the alt screen
	s, err := openSession(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer s.close()

	s.logger.Info("starting", "presenter", "tui", "width", width, "height", height)
	return tui.Run(s.game, s.store, cfg, s.logger)
}
