package spatial

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/lukasmw/spatial3d/assets"
	"github.com/lukasmw/spatial3d/geometry"
)

// Source is a sound emitter orbiting the listener on the horizontal
// plane. Its height stays fixed, so elevated sources keep a non-zero
// elevation angle for the whole orbit.
type Source struct {
	name       string
	position   geometry.Vec3
	orbitSpeed float64 // radians per second about the world Y axis
	sprite     *ebiten.Image
	current    Spatialization
}

func NewSource(name string, position geometry.Vec3, orbitSpeed float64) *Source {
	return &Source{
		name:       name,
		position:   position,
		orbitSpeed: orbitSpeed,
		sprite:     assets.SourceSprite,
	}
}

func (s *Source) Update(listener *Listener) {
	// Advance the orbit by one tick
	s.position = s.position.RotateY(s.orbitSpeed / tickRate)

	s.current = Spatialize(listener.ToListenerFrame(s.position))
}

// Current returns the spatialization computed on the last Update.
func (s *Source) Current() Spatialization {
	return s.current
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Position() geometry.Vec3 {
	return s.position
}

func (s *Source) Draw(screen *ebiten.Image) {
	screenX, screenY := worldToScreen(s.position)

	bounds := s.sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(screenX-float64(bounds.Dx())/2, screenY-float64(bounds.Dy())/2)

	// Louder sources draw brighter
	level := float32(clampValue(s.current.LeftGain+s.current.RightGain, 0.25, 1.0))
	op.ColorScale.Scale(level, level, level, 1)

	screen.DrawImage(s.sprite, op)

	label := fmt.Sprintf("%s  az %+.0f°  el %+.0f°  %.1fm  L %.2f R %.2f",
		s.name,
		degrees(s.current.Azimuth),
		degrees(s.current.Elevation),
		s.current.Distance,
		s.current.LeftGain,
		s.current.RightGain,
	)
	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(screenX+10, screenY-8)
	textOp.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, label, assets.LabelFont, textOp)
}
