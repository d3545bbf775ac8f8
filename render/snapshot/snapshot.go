// Package snapshot rasterizes a single frame of the simulation with gg, for
// headless runs that want to look at the scene afterwards.
package snapshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/plus3/yock/render"
	"github.com/plus3/yock/sim"
)

// DefaultColors matches the window backend's placeholder palette.
var DefaultColors = []color.Color{
	color.RGBA{255, 179, 186, 255},
	color.RGBA{179, 229, 252, 255},
	color.RGBA{186, 255, 201, 255},
	color.RGBA{255, 223, 186, 255},
	color.RGBA{217, 186, 255, 255},
	color.RGBA{255, 255, 186, 255},
}

// Renderer draws sprites as filled, outlined rectangles.
type Renderer struct {
	Colors *render.Registry[color.Color]
	Width  int
	Height int
}

// NewRenderer creates a renderer producing width x height images.
func NewRenderer(colors *render.Registry[color.Color], width, height int) *Renderer {
	return &Renderer{
		Colors: colors,
		Width:  width,
		Height: height,
	}
}

// Render draws sprites in collection order over a black background.
func (r *Renderer) Render(sprites []sim.Sprite) image.Image {
	return r.draw(sprites).Image()
}

// Save renders sprites and writes the result to path as PNG.
func (r *Renderer) Save(path string, sprites []sim.Sprite) error {
	if err := r.draw(sprites).SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(sprites []sim.Sprite) *gg.Context {
	dc := gg.NewContext(r.Width, r.Height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	dc.SetLineWidth(1)
	for i := range sprites {
		b := sprites[i].Bounds
		dc.DrawRectangle(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
		dc.SetColor(r.Colors.Resolve(sprites[i].Texture))
		dc.FillPreserve()
		dc.SetRGB(0.15, 0.15, 0.15)
		dc.Stroke()
	}
	return dc
}
