package spatial

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lukasmw/spatial3d/assets"
	"github.com/lukasmw/spatial3d/geometry"
	"github.com/lukasmw/spatial3d/logger"
)

const (
	yawSpeed         = math.Pi // radians per second of key held
	forwardRayLength = 1.5     // meters, drawn to show facing
)

type Listener struct {
	position geometry.Vec3
	yaw      float64 // radians, 0 = facing +z, positive turns toward +x
	sprite   *ebiten.Image
	logger   logger.Logger
}

func NewListener() *Listener {
	l := &Listener{
		position: geometry.Vec3{},
		yaw:      0,
		sprite:   assets.ListenerSprite,
		logger:   logger.New(),
	}

	l.logger.Debug("listener created", "position", l.position, "yaw", l.yaw)
	return l
}

func (l *Listener) Update() {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		l.yaw -= yawSpeed / tickRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		l.yaw += yawSpeed / tickRate
	}

	// Keep yaw in (-pi, pi] so the HUD reads sensibly
	if l.yaw > math.Pi {
		l.yaw -= 2 * math.Pi
	} else if l.yaw <= -math.Pi {
		l.yaw += 2 * math.Pi
	}
}

// Forward returns the unit vector the listener is facing. Positive
// yaw turns toward +x, so the world forward axis is rotated by -yaw
// under the row-vector convention.
func (l *Listener) Forward() geometry.Vec3 {
	return geometry.Forward().RotateY(-l.yaw)
}

// ToListenerFrame maps a world-space position into the listener's
// frame, so azimuth 0 lines up with the facing direction.
func (l *Listener) ToListenerFrame(worldPos geometry.Vec3) geometry.Vec3 {
	return worldPos.Sub(l.position).RotateY(l.yaw)
}

func (l *Listener) Yaw() float64 {
	return l.yaw
}

func (l *Listener) Reset() {
	l.yaw = 0
}

func (l *Listener) Draw(screen *ebiten.Image) {
	screenX, screenY := worldToScreen(l.position)

	// Forward ray first so the marker sits on top of it
	rayEnd := l.position.Add(l.Forward().Scale(forwardRayLength))
	rayX, rayY := worldToScreen(rayEnd)
	vector.StrokeLine(screen, float32(screenX), float32(screenY), float32(rayX), float32(rayY), 2, listenerRayColor, true)

	bounds := l.sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(screenX-float64(bounds.Dx())/2, screenY-float64(bounds.Dy())/2)
	screen.DrawImage(l.sprite, op)
}
