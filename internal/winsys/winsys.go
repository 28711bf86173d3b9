package winsys

import (
	"errors"

	"github.com/gridplane/gridplane/internal/geometry"
)

// Sentinel errors for capability failures.
var (
	// ErrPermissionDenied reports the accessibility trust precondition is
	// false. Fatal to the whole operation; never retried.
	ErrPermissionDenied = errors.New("winsys: accessibility permission denied")

	// ErrHandleInvalid reports a window handle that no longer resolves.
	// Transient within a call; the current reconciliation degrades instead
	// of crashing.
	ErrHandleInvalid = errors.New("winsys: window handle no longer valid")

	// ErrWindowNotFound reports an enumeration miss for a requested id.
	ErrWindowNotFound = errors.New("winsys: window not found")
)

// Handle is an opaque reference to one on-screen window owned by another
// process. The engine holds only a capability to read and write its geometry
// plus the owning process id for activation. A handle may go stale between
// calls; reads and writes on a stale handle are transient failures.
type Handle struct {
	ID        string `json:"id"`
	PID       int32  `json:"pid"`
	Title     string `json:"title"`
	Minimized bool   `json:"minimized"`
}

// ControlSurface is the OS-level interface used to read and write another
// process's window geometry. It speaks the OS coordinate system (top-left
// origin, y-down); callers convert through the geometry transform on every
// read and write. Writes are fire-and-forget: the boolean acknowledges only
// that the underlying call was issued, not that the window actually moved or
// resized. Effects must be re-verified by reading.
type ControlSurface interface {
	// Read returns a best-effort snapshot of the window's geometry in
	// control coordinates. If one component cannot be read it comes back
	// zero-valued rather than failing the whole read; a stale handle
	// returns ErrHandleInvalid.
	Read(h Handle) (geometry.State, error)

	// WritePosition issues a position write in control coordinates.
	WritePosition(h Handle, p geometry.Point) bool

	// WriteSize issues a size write.
	WriteSize(h Handle, s geometry.Size) bool

	// Activate raises the window and its owning process to the foreground.
	// Single write, best effort, no geometry effect.
	Activate(h Handle) bool
}

// Screen describes one display: its full frame and the usable (visible)
// frame net of menu bars and docks, both in screen coordinates.
type Screen struct {
	ID           string        `json:"id"`
	Frame        geometry.Rect `json:"frame"`
	VisibleFrame geometry.Rect `json:"visible_frame"`
	Main         bool          `json:"main"`
}

// Screens enumerates displays.
type Screens interface {
	List() []Screen
	Main() (Screen, bool)
}

// Windows enumerates on-screen windows.
type Windows interface {
	List() []Handle
	Find(id string) (Handle, bool)
}

// Trust answers the capability-trust precondition. When untrusted, the
// engine must not be invoked at all.
type Trust interface {
	Trusted() bool
}

// TrustFunc adapts a function to the Trust interface.
type TrustFunc func() bool

// Trusted implements Trust.
func (f TrustFunc) Trusted() bool { return f() }
