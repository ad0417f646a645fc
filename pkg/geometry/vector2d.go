package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the magnitude below which a vector is treated as zero.
const Epsilon = 1e-9

// Vector2D represents a 2D vector or point in cartesian screen space
// (X grows rightward, Y grows downward).
// Public fields are idiomatic here: they are fundamental data, not internal
// state, and allow clean literal initialization: v := Vector2D{1, 2}.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// String implements fmt.Stringer for clean log output.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic
// Value receivers returning new values keep vectors immutable and are
// cheap for a 16-byte struct.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// ---------------------------------------------------------------------
// Magnitude and normalization
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude. Faster than Len, use for
// comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// A zero-length input returns the zero vector, never NaN. Every steering
// rule relies on this sentinel when headings cancel exactly.
func (v Vector2D) Normalize() Vector2D {
	l := v.Len()
	if l < Epsilon {
		return Vector2D{}
	}
	return v.Mul(1 / l)
}

// ScaledTo returns a vector in the same direction with the given length.
// A zero-length input returns the zero vector.
func (v Vector2D) ScaledTo(length float64) Vector2D {
	return v.Normalize().Mul(length)
}

// IsZero reports whether the vector is (approximately) the zero vector.
func (v Vector2D) IsZero() bool {
	return v.LenSqr() < Epsilon*Epsilon
}

// ---------------------------------------------------------------------
// Geometric utilities
// ---------------------------------------------------------------------

// DistanceSquaredTo calculates the squared Euclidean distance to another
// vector.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// HeadingDegrees maps a velocity vector to the sprite heading angle in
// [0, 360): 0 is straight up the screen, positive rotates clockwise.
// A zero vector maps to 0.
func (v Vector2D) HeadingDegrees() float64 {
	if v.IsZero() {
		return 0
	}
	deg := math.Atan2(v.X, -v.Y) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// FromHeadingDegrees is the inverse of HeadingDegrees: it returns the unit
// vector pointing along the given screen heading.
func FromHeadingDegrees(deg float64) Vector2D {
	rad := deg * math.Pi / 180
	return Vector2D{X: math.Sin(rad), Y: -math.Cos(rad)}
}

// AngleBetweenDegrees returns the unsigned angle in degrees between two
// nonzero vectors, in [0, 180]. Zero input yields 0.
func AngleBetweenDegrees(a, b Vector2D) float64 {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return 0
	}
	cos := (a.X*b.X + a.Y*b.Y) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// Eq checks approximate equality using Epsilon, absorbing floating point
// noise in tests.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
