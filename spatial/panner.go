package spatial

import (
	"math"

	"github.com/lukasmw/spatial3d/geometry"
)

const (
	referenceDistance   = 1.0  // distance at which a source plays at full level
	elevationDampFactor = 0.3  // how much energy sources lose off the horizontal plane
	minTotalGain        = 0.01 // floor so distant sources never vanish from the HUD entirely
)

// Spatialization is the per-tick result of placing one source in the
// listener's frame.
type Spatialization struct {
	Azimuth   float64 // radians, 0 dead ahead, positive to the right
	Elevation float64 // radians above the horizontal plane
	Distance  float64
	LeftGain  float64
	RightGain float64
}

// Spatialize maps a position relative to the listener (already in the
// listener's frame) to azimuth, elevation, distance and stereo gains.
func Spatialize(relative geometry.Vec3) Spatialization {
	distance := relative.Magnitude()

	direction := relative
	direction.Normalize()

	azimuth := direction.Azimuth()
	elevation := direction.Elevation()

	left, right := PanGains(azimuth)
	gain := DistanceGain(distance) * ElevationDamp(elevation)
	if gain < minTotalGain {
		gain = minTotalGain
	}

	return Spatialization{
		Azimuth:   azimuth,
		Elevation: elevation,
		Distance:  distance,
		LeftGain:  left * gain,
		RightGain: right * gain,
	}
}

// PanGains returns constant-power left/right gains for an azimuth in
// radians. Rear azimuths fold onto the front arc so a source behind
// the listener keeps its side.
func PanGains(azimuth float64) (left, right float64) {
	pan := azimuth
	if pan > math.Pi/2 {
		pan = math.Pi - pan
	} else if pan < -math.Pi/2 {
		pan = -math.Pi - pan
	}

	theta := (pan + math.Pi/2) / 2
	return math.Cos(theta), math.Sin(theta)
}

// DistanceGain applies the inverse-distance law, clamped to unity
// inside the reference distance.
func DistanceGain(distance float64) float64 {
	if distance <= referenceDistance {
		return 1
	}
	return referenceDistance / distance
}

// ElevationDamp attenuates sources far off the horizontal plane.
func ElevationDamp(elevation float64) float64 {
	return 1 - elevationDampFactor*math.Abs(math.Sin(elevation))
}
