package config

// LevelScaling defines how scoring and ball speed grow with the level number.
type LevelScaling struct {
	PointsPerLevel     int     `yaml:"points_per_level" toml:"points_per_level"`
	SpeedStep          float64 `yaml:"speed_step" toml:"speed_step"`
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier" toml:"max_speed_multiplier"` // 0 = uncapped
}

// PointsPerBrick returns the score for destroying one brick on the given level.
func (s LevelScaling) PointsPerBrick(level int) int {
	return max(level, 1) * s.PointsPerLevel
}

// SpeedMultiplier returns the ball speed multiplier for the given level.
// With the default step of 1.0 the multiplier equals the level number.
func (s LevelScaling) SpeedMultiplier(level int) float64 {
	m := 1 + float64(max(level, 1)-1)*s.SpeedStep
	if s.MaxSpeedMultiplier > 0 && m > s.MaxSpeedMultiplier {
		m = s.MaxSpeedMultiplier
	}
	return m
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal and the empty preset keep the configured values.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.VelocityX, cfg.Ball.VelocityY = 240, 240
		cfg.Scaling.MaxSpeedMultiplier = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.VelocityX, cfg.Ball.VelocityY = 360, 360
	case DifficultyFixed:
		cfg.Scaling.SpeedStep = 0
	}
}
