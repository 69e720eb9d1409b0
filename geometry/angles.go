package geometry

import (
	"math"
)

// Elevation returns the angle of the vector above the horizontal XZ
// plane, in radians. The vector is assumed to be unit length; a y
// component outside [-1, 1] yields NaN per asin.
func (v Vector3[T]) Elevation() float64 {
	return math.Asin(float64(v.Y))
}

// Azimuth returns the angle of the vector's horizontal projection
// relative to the forward (+z) axis, in radians, positive toward +x.
// Quadrants are resolved with the two-argument arctangent, so the
// result covers (-pi, pi]. A vector with no horizontal component
// (x = 0 and z = 0) has azimuth 0.
func (v Vector3[T]) Azimuth() float64 {
	x, z := float64(v.X), float64(v.Z)
	if x == 0 && z == 0 {
		return 0
	}
	return math.Atan2(x, z)
}
