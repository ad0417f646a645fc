package flock

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

func testBounds() bounds {
	return boundsFor(DefaultConfig()) // 1024x576 minus the 10x15 sprite
}

func TestReflect_RightWall(t *testing.T) {
	// One unit from the right wall, moving straight at it at max speed:
	// X flips sign, Y is untouched.
	bd := testBounds()
	pos := geometry.Vector2D{X: bd.maxX - 1, Y: 300}
	vel := geometry.Vector2D{X: 10, Y: 0}

	got := bd.reflect(pos, vel)
	if got.X != -10 {
		t.Errorf("reflected Vx = %v; want -10", got.X)
	}
	if got.Y != 0 {
		t.Errorf("reflected Vy = %v; want unchanged 0", got.Y)
	}
}

func TestReflect_PerAxis(t *testing.T) {
	bd := testBounds()
	tests := []struct {
		name string
		pos  geometry.Vector2D
		vel  geometry.Vector2D
		want geometry.Vector2D
	}{
		{
			"Left wall flips X only",
			geometry.Vector2D{X: 2, Y: 100}, geometry.Vector2D{X: -6, Y: 3},
			geometry.Vector2D{X: 6, Y: 3},
		},
		{
			"Top wall flips Y only",
			geometry.Vector2D{X: 100, Y: 1}, geometry.Vector2D{X: 4, Y: -8},
			geometry.Vector2D{X: 4, Y: 8},
		},
		{
			"Bottom wall flips Y only",
			geometry.Vector2D{X: 100, Y: bd.maxY - 2}, geometry.Vector2D{X: -4, Y: 9},
			geometry.Vector2D{X: -4, Y: -9},
		},
		{
			"Corner flips both axes independently",
			geometry.Vector2D{X: 1, Y: 1}, geometry.Vector2D{X: -5, Y: -5},
			geometry.Vector2D{X: 5, Y: 5},
		},
		{
			"Interior velocity untouched",
			geometry.Vector2D{X: 500, Y: 300}, geometry.Vector2D{X: 7, Y: -7},
			geometry.Vector2D{X: 7, Y: -7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bd.reflect(tt.pos, tt.vel); !got.Eq(tt.want) {
				t.Errorf("reflect(%v, %v) = %v; want %v", tt.pos, tt.vel, got, tt.want)
			}
		})
	}
}

func TestReflect_IsBounceNotClamp(t *testing.T) {
	// The corrected velocity carries the boid away from the wall; it does
	// not stop at it.
	bd := testBounds()
	pos := geometry.Vector2D{X: bd.maxX - 1, Y: 300}
	vel := bd.reflect(pos, geometry.Vector2D{X: 10, Y: 0})
	next := pos.Add(vel)
	if next.X >= pos.X {
		t.Errorf("boid did not move away from the wall: %v -> %v", pos.X, next.X)
	}
}

func TestClamp(t *testing.T) {
	bd := testBounds()
	tests := []struct {
		name string
		pos  geometry.Vector2D
		want geometry.Vector2D
	}{
		{"Interior untouched", geometry.Vector2D{X: 100, Y: 100}, geometry.Vector2D{X: 100, Y: 100}},
		{"Negative X pinned", geometry.Vector2D{X: -3, Y: 100}, geometry.Vector2D{X: 0, Y: 100}},
		{"Overshot corner pinned", geometry.Vector2D{X: bd.maxX + 9, Y: bd.maxY + 9}, geometry.Vector2D{X: bd.maxX, Y: bd.maxY}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bd.clamp(tt.pos); !got.Eq(tt.want) {
				t.Errorf("clamp(%v) = %v; want %v", tt.pos, got, tt.want)
			}
		})
	}
}
