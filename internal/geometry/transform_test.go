package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToControl(t *testing.T) {
	// A window at screen y=0 (bottom) with height 1080 on a 1080 screen
	// sits at control y=0 (top) only when it fills the screen.
	p := ToControl(Point{X: 0, Y: 0}, Size{Width: 960, Height: 1080}, 1080)
	assert.Equal(t, Point{X: 0, Y: 0}, p)

	// A short window at the bottom of the screen is far from the control
	// origin.
	p = ToControl(Point{X: 100, Y: 0}, Size{Width: 400, Height: 300}, 1080)
	assert.Equal(t, Point{X: 100, Y: 780}, p)

	// A window at the top of the screen is at control y=0.
	p = ToControl(Point{X: 0, Y: 780}, Size{Width: 400, Height: 300}, 1080)
	assert.Equal(t, Point{X: 0, Y: 0}, p)
}

func TestTransformRoundTrip(t *testing.T) {
	heights := []float64{600, 900, 1080, 1440, 2160}
	points := []Point{
		{X: 0, Y: 0},
		{X: 13, Y: 37},
		{X: -200, Y: 450},
		{X: 1920, Y: 1079},
		{X: 0.5, Y: 0.25},
	}
	sizes := []Size{
		{Width: 0, Height: 0},
		{Width: 960, Height: 1080},
		{Width: 333, Height: 777.5},
	}

	for _, h := range heights {
		for _, p := range points {
			for _, s := range sizes {
				forward := ToControl(p, s, h)
				back := ToScreen(forward, s, h)
				assert.Equal(t, p, back, "height=%g point=%+v size=%+v", h, p, s)

				// The transform is its own inverse in both directions.
				assert.Equal(t, forward, ToControl(back, s, h))
			}
		}
	}
}

func TestRectRoundTrip(t *testing.T) {
	r := Rect{X: 120, Y: 80, Width: 1100, Height: 800}
	control := RectToControl(r, 1080)
	assert.Equal(t, Rect{X: 120, Y: 200, Width: 1100, Height: 800}, control)
	assert.Equal(t, r, RectToScreen(control, 1080))
}
