package geometry

import "fmt"

// Point is a location in screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is a rectangle in screen coordinates (bottom-left origin, y-up).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Origin returns the rectangle's bottom-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Dimensions returns the rectangle's size.
func (r Rect) Dimensions() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the rectangle's right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the rectangle's top edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Validate rejects malformed rectangles. Negative dimensions are a
// programmer error, never a window condition.
func (r Rect) Validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("invalid rect: negative dimensions %gx%g", r.Width, r.Height)
	}
	return nil
}

// State is an immutable snapshot of a window's observed geometry at one
// instant. A new snapshot replaces it; it is never mutated in place.
type State struct {
	Position Point `json:"position"`
	Size     Size  `json:"size"`
}

// Rect returns the state as a rectangle.
func (s State) Rect() Rect {
	return Rect{X: s.Position.X, Y: s.Position.Y, Width: s.Size.Width, Height: s.Size.Height}
}
