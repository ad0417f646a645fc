package flock

import (
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// bounds is the axis-aligned area a boid's top-left corner may occupy.
// The sprite extents are subtracted so the drawn arrow stays fully on
// screen.
type bounds struct {
	maxX, maxY float64
}

func boundsFor(cfg *Config) bounds {
	return bounds{
		maxX: cfg.WorldWidth - cfg.SpriteWidth,
		maxY: cfg.WorldHeight - cfg.SpriteHeight,
	}
}

// reflect returns the velocity with each axis component inverted when
// applying it would carry the position outside the world on that axis.
// This is a bounce, not a clamp: a boid heading into a wall turns around
// instead of stopping. The two axes are handled independently; a boid
// diving into a corner flips both.
func (b bounds) reflect(pos, vel geometry.Vector2D) geometry.Vector2D {
	next := pos.Add(vel)
	if next.X < 0 || next.X > b.maxX {
		vel.X = -vel.X
	}
	if next.Y < 0 || next.Y > b.maxY {
		vel.Y = -vel.Y
	}
	return vel
}

// clamp pins a position into the playable area. A single reflection can
// still land out of bounds when the boid starts deep in a corner moving
// faster than its distance to both walls; rather than special-casing
// corners, the position is pinned after the move so the in-bounds
// invariant holds regardless.
func (b bounds) clamp(pos geometry.Vector2D) geometry.Vector2D {
	if pos.X < 0 {
		pos.X = 0
	} else if pos.X > b.maxX {
		pos.X = b.maxX
	}
	if pos.Y < 0 {
		pos.Y = 0
	} else if pos.Y > b.maxY {
		pos.Y = b.maxY
	}
	return pos
}
