package breakout

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// State is the complete game state. It is a value: Step returns a new
// State and never mutates the one it was given.
type State struct {
	Phase core.Phase
	Name  string

	Paddle   core.Rect
	Ball     core.Rect
	Velocity core.Vec2
	Bricks   []Brick

	Score           int
	Lives           int
	Level           int
	PointsPerBrick  int
	SpeedMultiplier float64

	// NextLevel is the level announced during PhaseLevelMessage.
	// It is committed when the message timer expires.
	NextLevel    int
	MessageTimer float64 // Seconds spent in PhaseLevelMessage

	Tick uint64
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	s.Bricks = cloneBricks(s.Bricks)
	return s
}

// Rules holds the configuration the step function reads.
type Rules struct {
	cfg    config.BreakoutConfig
	logger *log.Logger
}

// NewRules creates rules for the given configuration. A nil logger uses
// the default logger.
func NewRules(cfg config.BreakoutConfig, logger *log.Logger) Rules {
	if logger == nil {
		logger = log.Default()
	}
	return Rules{cfg: cfg, logger: logger}
}

// Config returns the configuration the rules were built from.
func (r Rules) Config() config.BreakoutConfig {
	return r.cfg
}

// NewState returns the initial state: name entry with an empty name.
func (r Rules) NewState() State {
	return State{
		Phase: core.PhaseNameEntry,
		Level: 1,
	}
}

// Step advances the state by one frame. dt is clamped to
// [0, gameplay.max_frame_delta]. Commands that the active phase does not
// consume are ignored.
func (r Rules) Step(s State, in core.InputFrame, dt float64) State {
	next := s.Clone()
	next.Tick++
	dt = r.clampDelta(dt)

	if !next.Phase.Valid() {
		r.violation("invalid phase", "phase", int(next.Phase))
		next.Phase = core.PhaseNameEntry
		if next.Name != "" {
			next.Phase = core.PhaseStartPrompt
		}
		return r.checkInvariants(next)
	}

	switch next.Phase {
	case core.PhaseNameEntry:
		r.stepNameEntry(&next, in)
	case core.PhaseStartPrompt:
		if in.Has(core.ActionConfirm) {
			r.initializeGame(&next)
		}
	case core.PhasePlaying:
		r.stepPlaying(&next, in, dt)
	case core.PhaseLevelMessage:
		r.stepLevelMessage(&next, dt)
	case core.PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			r.initializeGame(&next)
		}
	}

	return r.checkInvariants(next)
}

func (r Rules) clampDelta(dt float64) float64 {
	if math.IsNaN(dt) {
		return 0
	}
	return core.ClampF(dt, 0, r.cfg.Gameplay.MaxFrameDelta)
}

// stepNameEntry applies backspace, then the typed character, then confirm.
func (r Rules) stepNameEntry(s *State, in core.InputFrame) {
	if in.Has(core.ActionBackspace) && s.Name != "" {
		s.Name = s.Name[:len(s.Name)-1]
	}

	if ch, ok := in.Typed(); ok && isNameRune(ch) && len(s.Name) < r.cfg.Gameplay.MaxNameLength {
		s.Name += string(ch)
	}

	if in.Has(core.ActionConfirm) && strings.TrimSpace(s.Name) != "" {
		s.Phase = core.PhaseStartPrompt
	}
}

// isNameRune accepts ASCII letters only.
func isNameRune(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}

// initializeGame fully resets paddle, ball, bricks and counters and
// enters PhasePlaying. The player name is kept.
func (r Rules) initializeGame(s *State) {
	field := r.cfg.Playfield
	pad := r.cfg.Paddle

	s.Paddle = core.NewRect(field.Width/2-pad.Width/2, pad.Y, pad.Width, pad.Height)
	s.Bricks = GenerateBricks(1, field, r.cfg.Bricks)
	s.Score = 0
	s.Lives = r.cfg.Gameplay.Lives
	s.applyLevel(1, r.cfg.Scaling)
	s.NextLevel = 0
	s.MessageTimer = 0
	r.resetBall(s)
	s.Phase = core.PhasePlaying
}

func (s *State) applyLevel(level int, scaling config.LevelScaling) {
	s.Level = level
	s.PointsPerBrick = scaling.PointsPerBrick(level)
	s.SpeedMultiplier = scaling.SpeedMultiplier(level)
}

// resetBall seats the ball on the paddle center with the serve velocity.
func (r Rules) resetBall(s *State) {
	size := r.cfg.Ball.Size
	s.Ball = core.NewRect(s.Paddle.CenterX()-size/2, s.Paddle.Top(), size, size)
	s.Velocity = core.Vec2{X: r.cfg.Ball.VelocityX, Y: r.cfg.Ball.VelocityY}
}

// stepPlaying runs one physics frame: paddle, then per substep
// integration, walls, bottom exit and paddle contact. At most one brick
// is destroyed per frame, whatever the substep count.
func (r Rules) stepPlaying(s *State, in core.InputFrame, dt float64) {
	field := r.cfg.Playfield

	if x, ok := in.Pointer(); ok && !math.IsNaN(x) {
		s.Paddle = ClampPaddle(s.Paddle, x, field.Width)
	}

	n := Substeps(s.Ball, s.Velocity, dt, s.SpeedMultiplier)
	sub := dt / float64(n)
	brickHit := false

	for range n {
		s.Ball = Integrate(s.Ball, s.Velocity, sub, s.SpeedMultiplier)
		s.Ball, s.Velocity, _ = ReflectWalls(s.Ball, s.Velocity, field.Width, field.Height)

		if ExitedBottom(s.Ball) {
			r.loseLife(s)
			return
		}

		s.Ball, s.Velocity, _ = BouncePaddle(s.Ball, s.Velocity, s.Paddle)

		if brickHit {
			continue
		}
		if i := FirstBrickHit(s.Ball, s.Bricks); i >= 0 {
			brickHit = true
			s.Velocity.Y = -s.Velocity.Y
			s.Bricks = append(s.Bricks[:i], s.Bricks[i+1:]...)
			s.Score += s.PointsPerBrick

			if len(s.Bricks) == 0 {
				r.beginLevelMessage(s)
				return
			}
		}
	}
}

func (r Rules) loseLife(s *State) {
	s.Lives--
	r.resetBall(s)
	if s.Lives <= 0 {
		s.Phase = core.PhaseGameOver
	}
}

// beginLevelMessage announces the next level. The level itself, lives and
// scaling are committed when the message ends.
func (r Rules) beginLevelMessage(s *State) {
	if len(s.Bricks) != 0 {
		r.violation("level advance with bricks left", "bricks", len(s.Bricks))
	}
	s.Phase = core.PhaseLevelMessage
	s.NextLevel = s.Level + 1
	s.MessageTimer = 0
}

func (r Rules) stepLevelMessage(s *State, dt float64) {
	s.MessageTimer += dt
	if s.MessageTimer <= r.cfg.Gameplay.LevelMessageSecs {
		return
	}

	if len(s.Bricks) != 0 {
		r.violation("level advance with bricks left", "bricks", len(s.Bricks))
	}
	s.applyLevel(s.NextLevel, r.cfg.Scaling)
	s.Lives = r.cfg.Gameplay.Lives
	s.Bricks = GenerateBricks(s.Level, r.cfg.Playfield, r.cfg.Bricks)
	r.resetBall(s)
	s.NextLevel = 0
	s.MessageTimer = 0
	s.Phase = core.PhasePlaying
}

// checkInvariants reports impossible states and repairs them.
func (r Rules) checkInvariants(s State) State {
	if s.Lives < 0 {
		r.violation("negative lives", "lives", s.Lives)
		s.Lives = 0
		if s.Phase == core.PhasePlaying {
			s.Phase = core.PhaseGameOver
		}
	}
	if s.Score < 0 {
		r.violation("negative score", "score", s.Score)
		s.Score = 0
	}
	return s
}

// violation panics in strict mode and logs otherwise.
func (r Rules) violation(msg string, keyvals ...any) {
	if r.cfg.Debug.StrictInvariants {
		panic(fmt.Sprintf("breakout: invariant violated: %s %v", msg, keyvals))
	}
	r.logger.Error("invariant violated: "+msg, keyvals...)
}
