package geometry

// ToControl converts a screen-coordinate origin (bottom-left, y-up) to the
// control surface's coordinate system (top-left, y-down) for a window of the
// given size on a screen of the given height.
func ToControl(p Point, size Size, screenHeight float64) Point {
	return Point{X: p.X, Y: screenHeight - p.Y - size.Height}
}

// ToScreen is the inverse of ToControl. For any point, size, and height,
// ToScreen(ToControl(p, s, h), s, h) == p exactly.
func ToScreen(p Point, size Size, screenHeight float64) Point {
	return Point{X: p.X, Y: screenHeight - p.Y - size.Height}
}

// RectToControl converts a full screen-space rectangle to control space.
func RectToControl(r Rect, screenHeight float64) Rect {
	origin := ToControl(r.Origin(), r.Dimensions(), screenHeight)
	return Rect{X: origin.X, Y: origin.Y, Width: r.Width, Height: r.Height}
}

// RectToScreen converts a control-space rectangle back to screen space.
func RectToScreen(r Rect, screenHeight float64) Rect {
	origin := ToScreen(r.Origin(), r.Dimensions(), screenHeight)
	return Rect{X: origin.X, Y: origin.Y, Width: r.Width, Height: r.Height}
}
