// Package sim provides an in-memory desktop implementing every winsys
// capability. It backs the test suite and the daemon's demo mode: windows can
// carry app-enforced minimum sizes, drop a number of writes, freeze entirely,
// or shift position as a side effect of resizing, mirroring the behaviors
// real control surfaces exhibit.
package sim

import (
	"sync"

	"github.com/gridplane/gridplane/internal/geometry"
	"github.com/gridplane/gridplane/internal/winsys"
)

// WriteKind labels an entry in the desktop's write log.
type WriteKind string

const (
	WritePosition WriteKind = "position"
	WriteSize     WriteKind = "size"
	WriteActivate WriteKind = "activate"
)

// WriteOp records one write observed by the control surface, in order.
type WriteOp struct {
	Kind     WriteKind
	WindowID string
	Position geometry.Point
	Size     geometry.Size
}

// WindowConfig describes a simulated window's behavior. Frame and
// ResizeShift are in control coordinates, matching the surface the desktop
// implements.
type WindowConfig struct {
	ID        string
	PID       int32
	Title     string
	Minimized bool
	Frame     geometry.Rect

	// MinWidth/MinHeight model an app-enforced constraint floor; size
	// writes below the floor are clamped to it.
	MinWidth  float64
	MinHeight float64

	// Frozen windows ignore every write, mimicking an unresponsive app.
	Frozen bool

	// DropPositionWrites/DropSizeWrites discard the first N writes of each
	// kind before the window starts cooperating.
	DropPositionWrites int
	DropSizeWrites     int

	// ResizeShift is added to the window's position on every applied size
	// write, modeling apps that reposition themselves while resizing.
	ResizeShift geometry.Point

	// SizeDeficit is subtracted from every applied size write, modeling a
	// window that persistently comes up short of the requested size.
	SizeDeficit float64
}

type window struct {
	cfg   WindowConfig
	state geometry.State
}

// Desktop is an in-memory window server.
type Desktop struct {
	mu      sync.Mutex
	windows map[string]*window
	order   []string
	screens []winsys.Screen
	trusted bool
	writes  []WriteOp
	focused string
}

// New creates an empty, trusted desktop.
func New() *Desktop {
	return &Desktop{
		windows: make(map[string]*window),
		trusted: true,
	}
}

// SetTrusted flips the accessibility trust precondition.
func (d *Desktop) SetTrusted(trusted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.trusted = trusted
}

// Trusted implements winsys.Trust.
func (d *Desktop) Trusted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.trusted
}

// AddScreen registers a display.
func (d *Desktop) AddScreen(s winsys.Screen) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.screens = append(d.screens, s)
}

// AddWindow registers a window and returns its handle.
func (d *Desktop) AddWindow(cfg WindowConfig) winsys.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.windows[cfg.ID] = &window{
		cfg: cfg,
		state: geometry.State{
			Position: cfg.Frame.Origin(),
			Size:     cfg.Frame.Dimensions(),
		},
	}
	d.order = append(d.order, cfg.ID)

	return d.handleLocked(cfg)
}

// RemoveWindow drops a window, staling any outstanding handles.
func (d *Desktop) RemoveWindow(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.windows, id)
	for i, wid := range d.order {
		if wid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

func (d *Desktop) handleLocked(cfg WindowConfig) winsys.Handle {
	return winsys.Handle{ID: cfg.ID, PID: cfg.PID, Title: cfg.Title, Minimized: cfg.Minimized}
}

// List implements winsys.Windows.
func (d *Desktop) List() []winsys.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	handles := make([]winsys.Handle, 0, len(d.order))
	for _, id := range d.order {
		if w, ok := d.windows[id]; ok {
			handles = append(handles, d.handleLocked(w.cfg))
		}
	}
	return handles
}

// Find implements winsys.Windows.
func (d *Desktop) Find(id string) (winsys.Handle, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.windows[id]
	if !ok {
		return winsys.Handle{}, false
	}
	return d.handleLocked(w.cfg), true
}

// ListScreens implements winsys.Screens via the Screens view.
func (d *Desktop) ListScreens() []winsys.Screen {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]winsys.Screen(nil), d.screens...)
}

// MainScreen returns the main display if one is registered.
func (d *Desktop) MainScreen() (winsys.Screen, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, s := range d.screens {
		if s.Main {
			return s, true
		}
	}
	if len(d.screens) > 0 {
		return d.screens[0], true
	}
	return winsys.Screen{}, false
}

// Read implements winsys.ControlSurface.
func (d *Desktop) Read(h winsys.Handle) (geometry.State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.windows[h.ID]
	if !ok {
		return geometry.State{}, winsys.ErrHandleInvalid
	}
	return w.state, nil
}

// WritePosition implements winsys.ControlSurface.
func (d *Desktop) WritePosition(h winsys.Handle, p geometry.Point) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.windows[h.ID]
	if !ok {
		return false
	}
	d.writes = append(d.writes, WriteOp{Kind: WritePosition, WindowID: h.ID, Position: p})

	if w.cfg.Frozen {
		return true
	}
	if w.cfg.DropPositionWrites > 0 {
		w.cfg.DropPositionWrites--
		return true
	}
	w.state = geometry.State{Position: p, Size: w.state.Size}
	return true
}

// WriteSize implements winsys.ControlSurface.
func (d *Desktop) WriteSize(h winsys.Handle, s geometry.Size) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.windows[h.ID]
	if !ok {
		return false
	}
	d.writes = append(d.writes, WriteOp{Kind: WriteSize, WindowID: h.ID, Size: s})

	if w.cfg.Frozen {
		return true
	}
	if w.cfg.DropSizeWrites > 0 {
		w.cfg.DropSizeWrites--
		return true
	}

	applied := geometry.Size{
		Width:  s.Width - w.cfg.SizeDeficit,
		Height: s.Height - w.cfg.SizeDeficit,
	}
	if w.cfg.MinWidth > 0 && applied.Width < w.cfg.MinWidth {
		applied.Width = w.cfg.MinWidth
	}
	if w.cfg.MinHeight > 0 && applied.Height < w.cfg.MinHeight {
		applied.Height = w.cfg.MinHeight
	}

	position := geometry.Point{
		X: w.state.Position.X + w.cfg.ResizeShift.X,
		Y: w.state.Position.Y + w.cfg.ResizeShift.Y,
	}
	w.state = geometry.State{Position: position, Size: applied}
	return true
}

// Activate implements winsys.ControlSurface.
func (d *Desktop) Activate(h winsys.Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.windows[h.ID]; !ok {
		return false
	}
	d.writes = append(d.writes, WriteOp{Kind: WriteActivate, WindowID: h.ID})
	d.focused = h.ID
	return true
}

// Focused returns the id of the last activated window.
func (d *Desktop) Focused() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focused
}

// Writes returns the ordered write log.
func (d *Desktop) Writes() []WriteOp {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]WriteOp(nil), d.writes...)
}

// WritesFor filters the write log to one window.
func (d *Desktop) WritesFor(id string) []WriteOp {
	d.mu.Lock()
	defer d.mu.Unlock()

	var ops []WriteOp
	for _, op := range d.writes {
		if op.WindowID == id {
			ops = append(ops, op)
		}
	}
	return ops
}

// screensView adapts Desktop to winsys.Screens.
type screensView struct{ d *Desktop }

// ScreensView returns the desktop's winsys.Screens capability.
func (d *Desktop) ScreensView() winsys.Screens { return screensView{d} }

func (v screensView) List() []winsys.Screen       { return v.d.ListScreens() }
func (v screensView) Main() (winsys.Screen, bool) { return v.d.MainScreen() }
