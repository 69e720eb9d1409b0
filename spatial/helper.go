package spatial

import (
	"cmp"
	"image/color"
	"math"

	"github.com/lukasmw/spatial3d/geometry"
)

const (
	screenWidth  = 1200
	screenHeight = 800
	tickRate     = 60.0 // ebiten ticks per second
	worldScale   = 70.0 // pixels per meter in the top-down view
)

var (
	backgroundColor  = color.RGBA{0, 0, 0, 255}
	hudTextColor     = color.RGBA{220, 220, 220, 255}
	listenerRayColor = color.RGBA{80, 180, 255, 160}
	pausedTextColor  = color.RGBA{255, 50, 50, 255}
)

// worldToScreen projects a world position onto the top-down view:
// +x right, +z up the screen, y ignored.
func worldToScreen(p geometry.Vec3) (float64, float64) {
	return screenWidth/2 + p.X*worldScale, screenHeight/2 - p.Z*worldScale
}

func degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
