package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})
}

func TestVector_Len(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want float64
	}{
		{"Zero", Vector2D{0, 0}, 0},
		{"Unit X", Vector2D{1, 0}, 1},
		{"3-4-5", Vector2D{3, 4}, 5},
		{"Negative", Vector2D{-3, -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Len(); !floatEquals(got, tt.want) {
				t.Errorf("%v.Len() = %v; want %v", tt.v, got, tt.want)
			}
			if got := tt.v.LenSqr(); !floatEquals(got, tt.want*tt.want) {
				t.Errorf("%v.LenSqr() = %v; want %v", tt.v, got, tt.want*tt.want)
			}
		})
	}
}

func TestVector_Normalize(t *testing.T) {
	t.Run("Zero vector stays zero", func(t *testing.T) {
		got := Vector2D{}.Normalize()
		if !got.Eq(Vector2D{}) {
			t.Errorf("Normalize(zero) = %v; want zero vector", got)
		}
		if math.IsNaN(got.X) || math.IsNaN(got.Y) {
			t.Errorf("Normalize(zero) produced NaN: %v", got)
		}
	})

	t.Run("Nonzero becomes unit length", func(t *testing.T) {
		for _, v := range []Vector2D{{3, 4}, {-7, 0.5}, {1e-3, 1e-3}, {1e6, -1e6}} {
			got := v.Normalize()
			if !floatEquals(got.Len(), 1) {
				t.Errorf("%v.Normalize().Len() = %v; want 1", v, got.Len())
			}
		}
	})

	t.Run("Sub-epsilon magnitude treated as zero", func(t *testing.T) {
		got := Vector2D{1e-12, -1e-12}.Normalize()
		if !got.IsZero() {
			t.Errorf("Normalize(tiny) = %v; want zero vector", got)
		}
	})
}

func TestVector_ScaledTo(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2D
		length float64
		want   Vector2D
	}{
		{"Zero input stays zero", Vector2D{}, 4, Vector2D{}},
		{"Stretch", Vector2D{3, 4}, 10, Vector2D{6, 8}},
		{"Shrink", Vector2D{0, -8}, 2, Vector2D{0, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.ScaledTo(tt.length); !got.Eq(tt.want) {
				t.Errorf("%v.ScaledTo(%v) = %v; want %v", tt.v, tt.length, got, tt.want)
			}
		})
	}
}

func TestVector_HeadingDegrees(t *testing.T) {
	// Screen coordinates: Y grows downward, heading 0 is "up", clockwise
	// positive.
	tests := []struct {
		name string
		v    Vector2D
		want float64
	}{
		{"Up", Vector2D{0, -1}, 0},
		{"Right", Vector2D{1, 0}, 90},
		{"Down", Vector2D{0, 1}, 180},
		{"Left", Vector2D{-1, 0}, 270},
		{"Up-right diagonal", Vector2D{1, -1}, 45},
		{"Zero maps to 0", Vector2D{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.HeadingDegrees(); !floatEquals(got, tt.want) {
				t.Errorf("%v.HeadingDegrees() = %v; want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFromHeadingDegrees_RoundTrip(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		v := FromHeadingDegrees(deg)
		if !floatEquals(v.Len(), 1) {
			t.Fatalf("FromHeadingDegrees(%v).Len() = %v; want 1", deg, v.Len())
		}
		if got := v.HeadingDegrees(); !floatEquals(got, deg) {
			t.Errorf("round trip of %v° gave %v°", deg, got)
		}
	}
}

func TestAngleBetweenDegrees(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2D
		want float64
	}{
		{"Same direction", Vector2D{1, 0}, Vector2D{5, 0}, 0},
		{"Perpendicular", Vector2D{1, 0}, Vector2D{0, 1}, 90},
		{"Opposite", Vector2D{1, 0}, Vector2D{-2, 0}, 180},
		{"Zero input", Vector2D{}, Vector2D{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleBetweenDegrees(tt.a, tt.b); !floatEquals(got, tt.want) {
				t.Errorf("AngleBetweenDegrees(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVector_Distance(t *testing.T) {
	a := Vector2D{1, 1}
	b := Vector2D{4, 5}
	if got := a.DistanceTo(b); !floatEquals(got, 5) {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := a.DistanceSquaredTo(b); !floatEquals(got, 25) {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}
