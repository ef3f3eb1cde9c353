package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Hash returns a hash of the full state for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean
// bit-identical simulations.
func (s State) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.NextLevel)      //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PointsPerBrick) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.SpeedMultiplier)
	h = h*31 + math.Float64bits(s.MessageTimer)

	for _, r := range s.Name {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	h = hashRect(h, s.Paddle)
	h = hashRect(h, s.Ball)
	h = h*31 + math.Float64bits(s.Velocity.X)
	h = h*31 + math.Float64bits(s.Velocity.Y)

	h = h*31 + uint64(len(s.Bricks))
	for _, b := range s.Bricks {
		h = hashRect(h, b.Rect)
	}

	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	h = h*31 + math.Float64bits(r.H)
	return h
}
