package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration: a 720x650
// playfield, a 5x8 grid of 80x30 bricks and three lives.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: BreakoutPlayfield{
			Width:  720,
			Height: 650,
		},
		Paddle: BreakoutPaddle{
			Width:  100,
			Height: 20,
			Y:      50,
		},
		Ball: BreakoutBall{
			Size:      20,
			VelocityX: 300,
			VelocityY: 300,
		},
		Bricks: BreakoutBricks{
			Rows:      5,
			Cols:      8,
			Width:     80,
			Height:    30,
			Padding:   10,
			TopOffset: 100,
		},
		Gameplay: BreakoutGameplay{
			Lives:            3,
			MaxNameLength:    20,
			LevelMessageSecs: 2.0,
			MaxFrameDelta:    0.05,
		},
		Scaling: LevelScaling{
			PointsPerLevel: 10,
			SpeedStep:      1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used as a template for custom files.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
