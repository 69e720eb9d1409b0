// Package geometry provides the 3D vector type used throughout
// spatial3d. Coordinates are left-handed: positive x points right,
// positive y up and positive z forward (away from the viewer).
package geometry

import (
	"math"
)

// Number is the set of element types a Vector3 can carry.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Vector3 is a three-component vector with value semantics. The zero
// value is the zero vector.
type Vector3[T Number] struct {
	X T
	Y T
	Z T
}

// Vec3 is the float64 vector the rest of the codebase works with.
type Vec3 = Vector3[float64]

// New creates a vector from its components.
func New[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Copy returns an independent vector with the same components.
func (v Vector3[T]) Copy() Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// At returns the component at index 0, 1 or 2 (x, y or z). Any other
// index returns the zero value of T rather than panicking.
func (v Vector3[T]) At(index int) T {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	var zero T
	return zero
}

// Add returns the componentwise sum of two vectors.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the componentwise difference of two vectors.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Neg returns the componentwise negation.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns the vector scaled by factor.
func (v Vector3[T]) Scale(factor T) Vector3[T] {
	return Vector3[T]{v.X * factor, v.Y * factor, v.Z * factor}
}

// Div returns the vector divided componentwise by divisor. Division by
// zero follows the element type: integer T faults at runtime, floating
// T yields infinities or NaN.
func (v Vector3[T]) Div(divisor T) Vector3[T] {
	return Vector3[T]{v.X / divisor, v.Y / divisor, v.Z / divisor}
}

// Set overwrites v with other and returns v.
func (v *Vector3[T]) Set(other Vector3[T]) *Vector3[T] {
	v.X, v.Y, v.Z = other.X, other.Y, other.Z
	return v
}

// AddAssign adds other to v in place and returns v.
func (v *Vector3[T]) AddAssign(other Vector3[T]) *Vector3[T] {
	return v.Set(v.Add(other))
}

// SubAssign subtracts other from v in place and returns v.
func (v *Vector3[T]) SubAssign(other Vector3[T]) *Vector3[T] {
	return v.Set(v.Sub(other))
}

// ScaleAssign scales v in place and returns v.
func (v *Vector3[T]) ScaleAssign(factor T) *Vector3[T] {
	return v.Set(v.Scale(factor))
}

// DivAssign divides v in place and returns v.
func (v *Vector3[T]) DivAssign(divisor T) *Vector3[T] {
	return v.Set(v.Div(divisor))
}

// Dot returns the inner product of two vectors.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Square returns the squared magnitude (the dot product with itself),
// avoiding the square root when only relative comparison is needed.
func (v Vector3[T]) Square() T {
	return v.Dot(v)
}

// Cross returns the cross product of two vectors, a vector orthogonal
// to both inputs under the left-handed convention.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector3[T]) Magnitude() float64 {
	return math.Sqrt(float64(v.Square()))
}

// Normalize scales v in place to unit length. A zero-length vector is
// left unchanged.
func (v *Vector3[T]) Normalize() {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return
	}
	v.X = T(float64(v.X) / magnitude)
	v.Y = T(float64(v.Y) / magnitude)
	v.Z = T(float64(v.Z) / magnitude)
}

// Distance returns the Euclidean distance between two points.
func (v Vector3[T]) Distance(other Vector3[T]) float64 {
	return v.Sub(other).Magnitude()
}

// Forward returns the world forward axis (0, 0, 1).
func Forward() Vec3 {
	return Vec3{Z: 1}
}

// Up returns the world up axis (0, 1, 0).
func Up() Vec3 {
	return Vec3{Y: 1}
}

// Right returns the world right axis (1, 0, 0).
func Right() Vec3 {
	return Vec3{X: 1}
}
