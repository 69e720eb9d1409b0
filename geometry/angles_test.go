package geometry_test

import (
	"math"
	"testing"

	"github.com/lukasmw/spatial3d/geometry"
)

func TestElevation(t *testing.T) {
	cases := []struct {
		v    geometry.Vec3
		want float64
	}{
		{geometry.Forward(), 0},
		{geometry.Up(), math.Pi / 2},
		{geometry.Up().Neg(), -math.Pi / 2},
		{geometry.Vec3{Y: 0.5}, math.Asin(0.5)},
	}
	for _, c := range cases {
		if got := c.v.Elevation(); !almostEqual(got, c.want) {
			t.Errorf("Elevation(%v) = %v, want %v", c.v, got, c.want)
		}
	}

	// Out-of-domain y degrades to NaN, it does not panic.
	if !math.IsNaN((geometry.Vec3{Y: 2}).Elevation()) {
		t.Error("elevation of out-of-range y is not NaN")
	}
}

func TestAzimuthQuadrants(t *testing.T) {
	cases := []struct {
		v    geometry.Vec3
		want float64
	}{
		{geometry.Forward(), 0},
		{geometry.Right(), math.Pi / 2},
		{geometry.Right().Neg(), -math.Pi / 2},
		{geometry.Vec3{Z: -1}, math.Pi},
		{geometry.Vec3{X: 1, Z: 1}, math.Pi / 4},
		{geometry.Vec3{X: -1, Z: 1}, -math.Pi / 4},
		{geometry.Vec3{X: 1, Z: -1}, 3 * math.Pi / 4},
		{geometry.Vec3{X: -1, Z: -1}, -3 * math.Pi / 4},
	}
	for _, c := range cases {
		if got := c.v.Azimuth(); !almostEqual(got, c.want) {
			t.Errorf("Azimuth(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestAzimuthNoHorizontalComponent(t *testing.T) {
	for _, v := range []geometry.Vec3{{}, {Y: 1}, {Y: -3}} {
		if v.Azimuth() != 0 {
			t.Errorf("Azimuth(%v) = %v, want 0", v, v.Azimuth())
		}
	}
}

func TestAzimuthIgnoresY(t *testing.T) {
	a := geometry.Vec3{X: 1, Y: 0, Z: 2}
	b := geometry.Vec3{X: 1, Y: 5, Z: 2}
	if a.Azimuth() != b.Azimuth() {
		t.Error("azimuth depends on the y component")
	}
}
