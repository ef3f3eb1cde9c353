// brickbreaker is a single-screen brick-breaking game.
//
// Usage:
//
//	brickbreaker             - Play in a desktop window
//	brickbreaker tui         - Play in the terminal
//	brickbreaker config      - Print the default configuration
//
// Global flags:
//
//	--config <path>       - Custom config file (YAML or TOML)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>          - Tick rate (default: 60)
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - clear the wall, keep the ball in play",
	Long: `Brick Breaker opens a 720x650 window. Type your name, press Enter,
then press Enter again to start. No flags are needed; the ones below
only override defaults.

Controls:
  Mouse drag / touch  - Move the paddle
  Enter               - Confirm name, start, play again
  Backspace           - Delete the last letter of the name
  Esc                 - Quit

Examples:
  brickbreaker
  brickbreaker --difficulty hard
  brickbreaker --config ./my-brickbreaker.yaml
  brickbreaker tui`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyGameFlags()
	},
	RunE: runDesktop,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
