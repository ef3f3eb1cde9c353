package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// CollisionSide represents which side of a boundary the ball hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

// Integrate moves the ball by velocity * dt * speedMultiplier, per axis.
func Integrate(ball core.Rect, v core.Vec2, dt, speedMultiplier float64) core.Rect {
	step := v.Scale(dt * speedMultiplier)
	return ball.Translate(step.X, step.Y)
}

// maxSubsteps bounds the work of a single frame.
const maxSubsteps = 64

// Substeps returns how many equal slices a frame of dt must be cut into so
// the ball never travels farther than its own size in one slice.
func Substeps(ball core.Rect, v core.Vec2, dt, speedMultiplier float64) int {
	limit := min(ball.W, ball.H)
	travel := max(math.Abs(v.X), math.Abs(v.Y)) * dt * speedMultiplier
	if limit <= 0 || travel <= limit || math.IsNaN(travel) || math.IsInf(travel, 0) {
		return 1
	}
	return min(int(math.Ceil(travel/limit)), maxSubsteps)
}

// ReflectWalls bounces the ball off the side and top walls.
// The ball is clamped back inside the playfield and its velocity is
// pointed away from the wall, so one crossing reflects exactly once.
// It returns the last wall hit, or CollisionNone.
func ReflectWalls(ball core.Rect, v core.Vec2, width, height float64) (core.Rect, core.Vec2, CollisionSide) {
	side := CollisionNone

	if ball.Left() < 0 {
		ball.X = 0
		v.X = math.Abs(v.X)
		side = CollisionLeft
	} else if ball.Right() > width {
		ball.X = width - ball.W
		v.X = -math.Abs(v.X)
		side = CollisionRight
	}

	if ball.Top() > height {
		ball.Y = height - ball.H
		v.Y = -math.Abs(v.Y)
		side = CollisionTop
	}

	return ball, v, side
}

// ExitedBottom reports whether the ball fell below the playfield.
func ExitedBottom(ball core.Rect) bool {
	return ball.Bottom() < 0
}

// BouncePaddle resolves ball/paddle contact. On overlap the ball is seated
// on the paddle top; vy is negated only while the ball moves downward, so
// a ball already leaving the paddle is never turned back into it.
func BouncePaddle(ball core.Rect, v core.Vec2, paddle core.Rect) (core.Rect, core.Vec2, bool) {
	if !ball.Overlaps(paddle) {
		return ball, v, false
	}
	ball.Y = paddle.Top()
	if v.Y < 0 {
		v.Y = -v.Y
	}
	return ball, v, true
}

// FirstBrickHit returns the index of the first brick, in insertion order,
// that overlaps the ball, or -1.
func FirstBrickHit(ball core.Rect, bricks []Brick) int {
	for i, b := range bricks {
		if ball.Overlaps(b.Rect) {
			return i
		}
	}
	return -1
}

// ClampPaddle centers the paddle on pointer x, kept inside [0, width-paddle.W].
func ClampPaddle(paddle core.Rect, x, width float64) core.Rect {
	paddle.X = core.ClampF(x-paddle.W/2, 0, width-paddle.W)
	return paddle
}
