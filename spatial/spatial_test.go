package spatial

import (
	"math"
	"testing"
	"time"

	"github.com/lukasmw/spatial3d/geometry"
)

func TestTimer(t *testing.T) {
	timer := NewTimer(time.Second)
	for i := 0; i < int(tickRate)-1; i++ {
		timer.Update()
		if timer.IsReady() {
			t.Fatalf("timer ready after %d ticks", i+1)
		}
	}
	timer.Update()
	if !timer.IsReady() {
		t.Error("timer not ready after a full second of ticks")
	}

	timer.Reset()
	if timer.IsReady() {
		t.Error("timer still ready after reset")
	}
}

func TestListenerFrame(t *testing.T) {
	listener := &Listener{}

	// With no yaw the listener frame is the world frame
	world := geometry.New(1.0, 2.0, 3.0)
	if listener.ToListenerFrame(world) != world {
		t.Error("identity listener changed the position")
	}

	// A listener turned toward +x sees a source at +x dead ahead
	listener.yaw = math.Pi / 2
	rel := listener.ToListenerFrame(geometry.New(4.0, 0.0, 0.0))
	if math.Abs(rel.Azimuth()) > 1e-9 {
		t.Errorf("source on the facing axis has azimuth %v, want 0", rel.Azimuth())
	}
	if math.Abs(rel.Magnitude()-4) > 1e-9 {
		t.Errorf("frame change altered the distance: %v", rel.Magnitude())
	}
}

func TestListenerForward(t *testing.T) {
	listener := &Listener{}
	if listener.Forward() != geometry.Forward() {
		t.Error("zero yaw forward is not +z")
	}

	listener.yaw = math.Pi / 2
	forward := listener.Forward()
	if math.Abs(forward.Magnitude()-1) > 1e-9 {
		t.Error("forward vector is not unit length")
	}
	if math.Abs(forward.Azimuth()-listener.yaw) > 1e-9 {
		t.Errorf("forward azimuth = %v, want %v", forward.Azimuth(), listener.yaw)
	}
}

func TestSourceOrbitKeepsRadiusAndHeight(t *testing.T) {
	listener := &Listener{}
	source := &Source{name: "test", position: geometry.New(0.0, 1.0, 3.0), orbitSpeed: 1.2}

	radius := source.position.Magnitude()
	for i := 0; i < 500; i++ {
		source.Update(listener)
	}

	if math.Abs(source.position.Magnitude()-radius) > 1e-6 {
		t.Errorf("orbit drifted: radius %v -> %v", radius, source.position.Magnitude())
	}
	if source.position.Y != 1 {
		t.Errorf("orbit changed the height: %v", source.position.Y)
	}
}

func TestDefaultSources(t *testing.T) {
	sources := defaultSources(0.6)
	if len(sources) == 0 {
		t.Fatal("no default sources")
	}
	names := map[string]bool{}
	for _, s := range sources {
		if names[s.Name()] {
			t.Errorf("duplicate source name %q", s.Name())
		}
		names[s.Name()] = true
	}
}
