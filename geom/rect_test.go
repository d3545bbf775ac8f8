package geom_test

import (
	"fmt"
	"testing"

	"github.com/plus3/yock/geom"
	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Rect
		want bool
	}{
		{"shared vertical edge", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"shared horizontal edge", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"shared corner", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 10, Y: 10, W: 10, H: 10}, false},
		{"overlap by one unit", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 9, Y: 0, W: 10, H: 10}, true},
		{"identical", geom.Rect{X: 100, Y: 100, W: 50, H: 50}, geom.Rect{X: 100, Y: 100, W: 50, H: 50}, true},
		{"contained", geom.Rect{X: 0, Y: 0, W: 100, H: 100}, geom.Rect{X: 10, Y: 10, W: 5, H: 5}, true},
		{"overlap on x only", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 5, Y: 20, W: 10, H: 10}, false},
		{"overlap on y only", geom.Rect{X: 0, Y: 0, W: 10, H: 10}, geom.Rect{X: 20, Y: 5, W: 10, H: 10}, false},
		{"negative coordinates", geom.Rect{X: -5, Y: -5, W: 10, H: 10}, geom.Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"zero size", geom.Rect{X: 5, Y: 5, W: 0, H: 0}, geom.Rect{X: 0, Y: 0, W: 10, H: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geom.Collides(tt.a, tt.b))
		})
	}
}

func TestCollidesSymmetric(t *testing.T) {
	rects := []geom.Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 10, Y: 0, W: 10, H: 10},
		{X: 9, Y: 0, W: 10, H: 10},
		{X: 5, Y: 5, W: 1, H: 1},
		{X: -3, Y: 7, W: 4, H: 20},
		{X: 0, Y: 9, W: 10, H: 10},
		{X: 100, Y: 100, W: 50, H: 50},
	}

	for _, a := range rects {
		for _, b := range rects {
			t.Run(fmt.Sprintf("%v/%v", a, b), func(t *testing.T) {
				assert.Equal(t, geom.Collides(a, b), geom.Collides(b, a))
			})
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := geom.Rect{X: 795, Y: 300, W: 50, H: 50}

	assert.Equal(t, 845, r.Right())
	assert.Equal(t, 350, r.Bottom())
	assert.Equal(t, geom.Rect{X: 790, Y: 302, W: 50, H: 50}, r.Translate(-5, 2))
	assert.Equal(t, 795, r.X, "Translate must not mutate the receiver")
}
