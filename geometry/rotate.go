package geometry

import (
	"math"
)

// Axis-aligned rotations. Angles are in radians and the receiver is
// left unmodified. All three use the row-vector convention, so a
// positive rotation about Y carries +x toward +z: Right().RotateY(pi/2)
// is (0, 0, 1).

// RotateX returns the vector rotated by angle about the X axis.
func (v Vector3[T]) RotateX(angle float64) Vector3[T] {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	y, z := float64(v.Y), float64(v.Z)
	return Vector3[T]{
		X: v.X,
		Y: T(y*cos + z*sin),
		Z: T(z*cos - y*sin),
	}
}

// RotateY returns the vector rotated by angle about the Y axis.
func (v Vector3[T]) RotateY(angle float64) Vector3[T] {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	x, z := float64(v.X), float64(v.Z)
	return Vector3[T]{
		X: T(x*cos - z*sin),
		Y: v.Y,
		Z: T(x*sin + z*cos),
	}
}

// RotateZ returns the vector rotated by angle about the Z axis.
func (v Vector3[T]) RotateZ(angle float64) Vector3[T] {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	x, y := float64(v.X), float64(v.Y)
	return Vector3[T]{
		X: T(x*cos + y*sin),
		Y: T(y*cos - x*sin),
		Z: v.Z,
	}
}
