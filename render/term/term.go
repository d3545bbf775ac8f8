// Package term draws the simulation into a terminal with tcell. Screen space
// is scaled down to the terminal's cell grid.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/yock/geom"
	"github.com/plus3/yock/render"
	"github.com/plus3/yock/sim"
)

// Glyph fills the cells covered by a sprite.
const Glyph = '█'

// DefaultStyles color textures the way the window backend's palette does.
var DefaultStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 179, 186)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(179, 229, 252)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(186, 255, 201)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 223, 186)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(217, 186, 255)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 186)),
}

// Renderer maps a WorldWidth x WorldHeight screen onto the terminal, leaving
// the last StatusRows rows free for the driver.
type Renderer struct {
	Styles      *render.Registry[tcell.Style]
	WorldWidth  int
	WorldHeight int
	StatusRows  int
}

// NewRenderer creates a renderer for a world of the given size.
func NewRenderer(styles *render.Registry[tcell.Style], worldWidth, worldHeight int) *Renderer {
	return &Renderer{
		Styles:      styles,
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
		StatusRows:  1,
	}
}

// Draw clears screen and fills the cells covered by each sprite. Later
// sprites overwrite earlier ones. The caller calls Show.
func (r *Renderer) Draw(screen tcell.Screen, sprites []sim.Sprite) {
	screen.Clear()

	cols, rows := screen.Size()
	rows -= r.StatusRows
	if cols <= 0 || rows <= 0 {
		return
	}

	for i := range sprites {
		s := &sprites[i]
		style := r.Styles.Resolve(s.Texture)
		cells := r.Cells(s.Bounds, cols, rows)
		for y := cells.Y; y < cells.Bottom(); y++ {
			for x := cells.X; x < cells.Right(); x++ {
				screen.SetContent(x, y, Glyph, nil, style)
			}
		}
	}
}

// Cells converts a screen-space rectangle to the cell rectangle it covers on a
// cols x rows grid, clipped to the grid. Every on-screen sprite covers at
// least one cell.
func (r *Renderer) Cells(bounds geom.Rect, cols, rows int) geom.Rect {
	x0 := scale(bounds.X, cols, r.WorldWidth)
	y0 := scale(bounds.Y, rows, r.WorldHeight)
	x1 := max(scale(bounds.Right(), cols, r.WorldWidth), x0+1)
	y1 := max(scale(bounds.Bottom(), rows, r.WorldHeight), y0+1)

	x0, x1 = clip(x0, 0, cols), clip(x1, 0, cols)
	y0, y1 = clip(y0, 0, rows), clip(y1, 0, rows)

	return geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func scale(v, cells, world int) int {
	if world <= 0 {
		return 0
	}
	return v * cells / world
}

func clip(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
