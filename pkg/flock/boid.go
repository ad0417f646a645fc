package flock

import (
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// Boid is a single flocking agent. Boids is an artificial life program,
// developed by Craig Reynolds in 1986, which simulates the flocking
// behaviour of birds; the name is a shortened "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// Boids are created once at world construction and never destroyed; the
// Index is the stable identity into the world's agent slice.
type Boid struct {
	Index int
	Pos   geometry.Vector2D
	// Vel is the current velocity; after every completed update its
	// magnitude equals Config.MaxSpeed.
	Vel geometry.Vector2D
	// PrevVel is the velocity committed the frame before, kept for the
	// exponential smoothing step (and handy for renderers interpolating
	// turns).
	PrevVel geometry.Vector2D
}

// Heading returns the sprite heading in degrees, [0, 360), 0 = up,
// clockwise positive. This is the only orientation value the rendering
// layer needs.
func (b *Boid) Heading() float64 {
	return b.Vel.HeadingDegrees()
}
