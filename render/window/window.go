// Package window draws the simulation with ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/yock/render"
	"github.com/plus3/yock/sim"
)

// Background is the clear color of every frame.
var Background = color.RGBA{0, 0, 0, 255}

// Renderer draws sprites stretched over their bounds using registry textures.
type Renderer struct {
	Textures *render.Registry[*ebiten.Image]
}

// NewRenderer creates a renderer for the given registry.
func NewRenderer(textures *render.Registry[*ebiten.Image]) *Renderer {
	return &Renderer{Textures: textures}
}

// Draw clears screen and draws every sprite in collection order.
func (r *Renderer) Draw(screen *ebiten.Image, sprites []sim.Sprite) {
	screen.Fill(Background)

	for i := range sprites {
		s := &sprites[i]
		texture := r.Textures.Resolve(s.Texture)
		if texture == nil {
			continue
		}

		size := texture.Bounds().Size()
		if size.X == 0 || size.Y == 0 {
			continue
		}

		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(float64(s.Bounds.W)/float64(size.X), float64(s.Bounds.H)/float64(size.Y))
		opts.GeoM.Translate(float64(s.Bounds.X), float64(s.Bounds.Y))
		screen.DrawImage(texture, opts)
	}
}
