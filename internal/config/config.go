// Package config provides YAML/TOML-based game configuration loading and
// difficulty scaling for the brick breaker.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the brick breaker.
// Distances are playfield units, velocities are units per second.
type BreakoutConfig struct {
	Playfield BreakoutPlayfield `yaml:"playfield" toml:"playfield"`
	Paddle    BreakoutPaddle    `yaml:"paddle" toml:"paddle"`
	Ball      BreakoutBall      `yaml:"ball" toml:"ball"`
	Bricks    BreakoutBricks    `yaml:"bricks" toml:"bricks"`
	Gameplay  BreakoutGameplay  `yaml:"gameplay" toml:"gameplay"`
	Scaling   LevelScaling      `yaml:"scaling" toml:"scaling"`
	Debug     BreakoutDebug     `yaml:"debug" toml:"debug"`
}

// BreakoutPlayfield defines the logical bounds the ball and paddle move in.
type BreakoutPlayfield struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BreakoutPaddle defines the paddle size and its fixed bottom edge.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Y      float64 `yaml:"y" toml:"y"`
}

// BreakoutBall defines the ball size and the velocity it is served with.
type BreakoutBall struct {
	Size      float64 `yaml:"size" toml:"size"`
	VelocityX float64 `yaml:"velocity_x" toml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y" toml:"velocity_y"`
}

// BreakoutBricks defines the fixed brick grid.
type BreakoutBricks struct {
	Rows      int     `yaml:"rows" toml:"rows"`
	Cols      int     `yaml:"cols" toml:"cols"`
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Padding   float64 `yaml:"padding" toml:"padding"`
	TopOffset float64 `yaml:"top_offset" toml:"top_offset"` // Distance from playfield top to the first row's bottom edge
}

// BreakoutGameplay defines lives, timers and name entry limits.
type BreakoutGameplay struct {
	Lives            int     `yaml:"lives" toml:"lives"`
	MaxNameLength    int     `yaml:"max_name_length" toml:"max_name_length"`
	LevelMessageSecs float64 `yaml:"level_message_secs" toml:"level_message_secs"`
	MaxFrameDelta    float64 `yaml:"max_frame_delta" toml:"max_frame_delta"` // Larger deltas are clamped
}

// BreakoutDebug holds switches for development builds.
type BreakoutDebug struct {
	// StrictInvariants panics on impossible states instead of logging them.
	StrictInvariants bool `yaml:"strict_invariants" toml:"strict_invariants"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.Paddle.Width > c.Playfield.Width:
		return fmt.Errorf("%w: paddle wider than playfield", ErrInvalidConfig)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidConfig)
	case c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0:
		return fmt.Errorf("%w: brick grid must have rows and columns", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Padding < 0:
		return fmt.Errorf("%w: brick size must be positive", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Gameplay.MaxNameLength <= 0:
		return fmt.Errorf("%w: max_name_length must be positive", ErrInvalidConfig)
	case c.Gameplay.LevelMessageSecs < 0 || c.Gameplay.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: timers must be non-negative and max_frame_delta positive", ErrInvalidConfig)
	case c.Scaling.PointsPerLevel <= 0 || c.Scaling.SpeedStep < 0:
		return fmt.Errorf("%w: scaling must award points and not slow down", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
