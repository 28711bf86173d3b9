package sim

import (
	"github.com/gridplane/gridplane/internal/geometry"
	"github.com/gridplane/gridplane/internal/winsys"
)

// NewDemoDesktop builds a desktop with one main screen and a handful of
// windows exercising the behaviors the engine has to cope with: a
// cooperative editor, a terminal with a minimum width, and a sluggish
// browser that drops its first size write.
func NewDemoDesktop(screenWidth, screenHeight float64) *Desktop {
	d := New()

	d.AddScreen(winsys.Screen{
		ID:           "main",
		Frame:        geometry.Rect{X: 0, Y: 0, Width: screenWidth, Height: screenHeight},
		VisibleFrame: geometry.Rect{X: 0, Y: 0, Width: screenWidth, Height: screenHeight - 25},
		Main:         true,
	})

	d.AddWindow(WindowConfig{
		ID:    "editor",
		PID:   301,
		Title: "Editor",
		Frame: geometry.Rect{X: 120, Y: 80, Width: 1100, Height: 800},
	})
	d.AddWindow(WindowConfig{
		ID:       "terminal",
		PID:      302,
		Title:    "Terminal",
		Frame:    geometry.Rect{X: 640, Y: 200, Width: 600, Height: 420},
		MinWidth: 480,
	})
	d.AddWindow(WindowConfig{
		ID:             "browser",
		PID:            303,
		Title:          "Browser",
		Frame:          geometry.Rect{X: 300, Y: 60, Width: 1280, Height: 900},
		DropSizeWrites: 1,
		ResizeShift:    geometry.Point{X: 4, Y: 2},
	})

	return d
}
