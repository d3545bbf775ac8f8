package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/yock/render"
)

// Palette colors the generated placeholder textures.
var Palette = []color.RGBA{
	{255, 179, 186, 255},
	{179, 229, 252, 255},
	{186, 255, 201, 255},
	{255, 223, 186, 255},
	{217, 186, 255, 255},
	{255, 255, 186, 255},
}

// FileLoaders returns one loader per image file.
func FileLoaders(paths ...string) []render.Loader[*ebiten.Image] {
	loaders := make([]render.Loader[*ebiten.Image], len(paths))
	for i, path := range paths {
		loaders[i] = func() (*ebiten.Image, error) {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", path, err)
			}
			return img, nil
		}
	}
	return loaders
}

// PlaceholderLoaders returns n loaders that generate outlined squares of
// size x size pixels, cycling through Palette.
func PlaceholderLoaders(n, size int) []render.Loader[*ebiten.Image] {
	loaders := make([]render.Loader[*ebiten.Image], n)
	for i := range loaders {
		fill := Palette[i%len(Palette)]
		loaders[i] = func() (*ebiten.Image, error) {
			img := ebiten.NewImage(size, size)
			img.Fill(fill)
			vector.StrokeRect(img, 1, 1, float32(size-2), float32(size-2), 2, color.RGBA{40, 40, 40, 255}, false)
			return img, nil
		}
	}
	return loaders
}
