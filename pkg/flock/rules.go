package flock

import (
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// The three classic steering rules. Each consumes the frame-consistent
// snapshot plus the subject's neighbor indices and produces a unit vector
// (or the zero vector on empty/degenerate input — never an error, never
// NaN). All three aggregate via commutative sums, so neighbor order does
// not matter.

// Alignment returns a unit vector pointing in the neighborhood's average
// heading. Opposing headings that cancel exactly yield the zero vector.
func Alignment(boids []Boid, neighbors []int) geometry.Vector2D {
	var sum geometry.Vector2D
	for _, j := range neighbors {
		sum = sum.Add(boids[j].Vel)
	}
	return sum.Normalize()
}

// Cohesion returns a unit vector from the subject toward the centroid of
// its neighbors. Empty neighbor sets, or a subject sitting exactly on the
// centroid, yield the zero vector.
func Cohesion(boids []Boid, self int, neighbors []int) geometry.Vector2D {
	if len(neighbors) == 0 {
		return geometry.Vector2D{}
	}
	var sum geometry.Vector2D
	for _, j := range neighbors {
		sum = sum.Add(boids[j].Pos)
	}
	centroid := sum.Mul(1 / float64(len(neighbors)))
	return centroid.Sub(boids[self].Pos).Normalize()
}

// Separation returns a unit vector pointing away from nearby neighbors.
// Each neighbor contributes the displacement toward the subject divided by
// the squared distance, so close neighbors dominate heavily. A neighbor at
// the exact same position contributes the raw displacement instead (the
// zero vector in the fully coincident case) — a deliberate approximation
// that keeps the sum finite rather than a collision-resolution policy.
func Separation(boids []Boid, self int, neighbors []int) geometry.Vector2D {
	var sum geometry.Vector2D
	me := boids[self].Pos
	for _, j := range neighbors {
		away := me.Sub(boids[j].Pos)
		distSq := away.LenSqr()
		if distSq > 0 {
			away = away.Mul(1 / distSq)
		}
		sum = sum.Add(away)
	}
	return sum.Normalize()
}
