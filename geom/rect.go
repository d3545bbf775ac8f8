// Package geom provides integer screen-space rectangles and the overlap test
// used by the simulation.
package geom

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x coordinate of the trailing edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate of the trailing edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Collides reports whether the open interiors of a and b overlap on both axes.
// Rectangles that only share an edge do not collide.
func Collides(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}
