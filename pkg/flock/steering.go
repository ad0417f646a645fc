package flock

import (
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// params is the immutable per-frame copy of the tunable rule parameters.
// Step snapshots the Config once so a mid-frame Tune cannot tear a frame.
type params struct {
	viewRadiusSq     float64
	maxSpeed         float64
	alignWeight      float64
	cohesionWeight   float64
	separationWeight float64
	smoothingAlpha   float64
	jitterBound      float64
}

// steer computes the committed velocity for boids[self] from frame t−1
// state. The jitter vector is pre-sampled by the caller so the result is a
// pure function of the snapshot, which keeps parallel and sequential
// execution bit-identical.
//
// With neighbors: steer = align*Wa + coh*Wc + sep*Ws + jitter.
// Without: steer = current heading + jitter, so isolated boids wander
// instead of freezing.
// The combined vector is rescaled to max speed, exponentially smoothed
// against the previous velocity, and rescaled again.
func steer(boids []Boid, self int, neighbors []int, jitter geometry.Vector2D, p params) geometry.Vector2D {
	prev := boids[self].Vel

	var desired geometry.Vector2D
	if len(neighbors) > 0 {
		desired = Alignment(boids, neighbors).Mul(p.alignWeight).
			Add(Cohesion(boids, self, neighbors).Mul(p.cohesionWeight)).
			Add(Separation(boids, self, neighbors).Mul(p.separationWeight))
	} else {
		desired = prev.Normalize()
	}
	desired = desired.Add(jitter).ScaledTo(p.maxSpeed)

	smoothed := desired.Mul(p.smoothingAlpha).Add(prev.Mul(1 - p.smoothingAlpha))
	vel := smoothed.ScaledTo(p.maxSpeed)

	// Exact cancellation between the steering vector and the previous
	// velocity would otherwise commit a zero velocity and freeze the boid
	// for the rest of the run (a zero never recovers under smoothing).
	if vel.IsZero() {
		return prev
	}
	return vel
}
