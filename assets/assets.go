package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	SourceSprite   *ebiten.Image
	ListenerSprite *ebiten.Image
	HUDFont        *text.GoTextFace
	LabelFont      *text.GoTextFace
)

func init() {
	SourceSprite = circleSprite(7, color.RGBA{240, 200, 60, 255})
	ListenerSprite = circleSprite(10, color.RGBA{80, 180, 255, 255})

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	LabelFont = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

// circleSprite builds a filled disc, since the repo ships no image
// files.
func circleSprite(radius int, col color.RGBA) *ebiten.Image {
	size := radius*2 + 1
	img := ebiten.NewImage(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - radius
			dy := y - radius
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, col)
			}
		}
	}
	return img
}
