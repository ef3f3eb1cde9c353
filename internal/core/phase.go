package core

// Phase is the top-level mode of the game state machine.
// Exactly one phase is active at a time.
type Phase int

const (
	PhaseNameEntry    Phase = iota // Typing the player name
	PhaseStartPrompt               // Waiting for confirm to start
	PhasePlaying                   // Ball in play
	PhaseLevelMessage              // "Level N" banner between levels
	PhaseGameOver                  // Out of lives, waiting for confirm to restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNameEntry:
		return "NameEntry"
	case PhaseStartPrompt:
		return "StartPrompt"
	case PhasePlaying:
		return "Playing"
	case PhaseLevelMessage:
		return "LevelMessage"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the defined phases.
func (p Phase) Valid() bool {
	return p >= PhaseNameEntry && p <= PhaseGameOver
}
