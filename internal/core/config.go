package core

// RuntimeConfig contains configuration passed to games at initialization.
// Presenters fill it from the platform (window or terminal) they run on.
type RuntimeConfig struct {
	ScreenW  int   // Presenter width (pixels or terminal cells)
	ScreenH  int   // Presenter height (pixels or terminal cells)
	TickRate int   // Frames per second the presenter aims for (default 60)
	Seed     int64 // Reserved for deterministic replays; the core draws no random numbers
}

// DefaultConfig returns a RuntimeConfig sized for the desktop window.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  720,
		ScreenH:  650,
		TickRate: 60,
	}
}

// GameState is a compact summary of the game returned after each step.
// Presenters use it to react to transitions without inspecting the frame.
type GameState struct {
	Phase    Phase
	Score    int
	Lives    int
	Level    int
	Player   string
	GameOver bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Transition is true when Phase changed during this step.
	Transition bool
}
