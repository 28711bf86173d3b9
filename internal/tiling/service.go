package tiling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gridplane/gridplane/internal/geometry"
	"github.com/gridplane/gridplane/internal/infrastructure/monitoring"
	"github.com/gridplane/gridplane/internal/logging"
	"github.com/gridplane/gridplane/internal/reconcile"
	"github.com/gridplane/gridplane/internal/winsys"
)

// WindowInfo is an enumerated window plus its current geometry in screen
// coordinates. Minimized windows are reported but ineligible for tiling.
type WindowInfo struct {
	winsys.Handle
	Frame    geometry.Rect `json:"frame"`
	Eligible bool          `json:"eligible"`
}

// Options carries the service's optional collaborators.
type Options struct {
	Logger  *logging.Logger
	Metrics *monitoring.Metrics
	Events  Publisher
}

// Service orchestrates window tiling over injected capabilities.
type Service struct {
	surface    winsys.ControlSurface
	windows    winsys.Windows
	screens    winsys.Screens
	trust      winsys.Trust
	controller *reconcile.Controller
	locks      *windowLocks
	logger     *logging.Logger
	metrics    *monitoring.Metrics
	events     Publisher
}

// NewService creates a tiling service.
func NewService(
	surface winsys.ControlSurface,
	windows winsys.Windows,
	screens winsys.Screens,
	trust winsys.Trust,
	controller *reconcile.Controller,
	opts Options,
) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		surface:    surface,
		windows:    windows,
		screens:    screens,
		trust:      trust,
		controller: controller,
		locks:      newWindowLocks(),
		logger:     logger.Named("tiling"),
		metrics:    opts.Metrics,
		events:     opts.Events,
	}
}

// Reconcile drives the window with the given id to the target rectangle.
// Only the trust precondition, an unknown window, or a malformed target
// produce errors; every geometry condition resolves into the outcome.
func (s *Service) Reconcile(windowID string, target geometry.Rect) (reconcile.Outcome, error) {
	if !s.trust.Trusted() {
		return reconcile.Outcome{}, winsys.ErrPermissionDenied
	}

	handle, ok := s.windows.Find(windowID)
	if !ok {
		return reconcile.Outcome{}, fmt.Errorf("%w: %s", winsys.ErrWindowNotFound, windowID)
	}

	screen, err := s.screenFor(target)
	if err != nil {
		return reconcile.Outcome{}, err
	}

	release := s.locks.acquire(handle.ID)
	defer release()

	start := time.Now()
	outcome, err := s.controller.Reconcile(handle, target, screen)
	duration := time.Since(start)
	if err != nil {
		return reconcile.Outcome{}, err
	}

	s.logger.Info("reconciled window",
		zap.String("window", handle.ID),
		zap.String("title", handle.Title),
		zap.Int("attempts", outcome.Attempts),
		zap.Bool("converged", outcome.Converged()),
		zap.Bool("constraint", outcome.ConstraintDetected),
		zap.Duration("duration", duration))

	if s.metrics != nil {
		s.metrics.RecordReconciliation(outcome.Converged(), outcome.ConstraintDetected, outcome.Attempts, duration)
	}
	if s.events != nil {
		s.events.Publish(Event{
			ID:        uuid.NewString(),
			WindowID:  handle.ID,
			Target:    target,
			Outcome:   outcome,
			Duration:  duration,
			Timestamp: time.Now().UTC(),
		})
	}

	return outcome, nil
}

// Activate raises the window with the given id. Best effort, no retries.
func (s *Service) Activate(windowID string) (bool, error) {
	if !s.trust.Trusted() {
		return false, winsys.ErrPermissionDenied
	}

	handle, ok := s.windows.Find(windowID)
	if !ok {
		return false, fmt.Errorf("%w: %s", winsys.ErrWindowNotFound, windowID)
	}

	ok = s.controller.Activate(handle)
	if s.metrics != nil {
		s.metrics.RecordActivation(ok)
	}
	return ok, nil
}

// Windows enumerates on-screen windows with their current geometry.
func (s *Service) Windows() ([]WindowInfo, error) {
	if !s.trust.Trusted() {
		return nil, winsys.ErrPermissionDenied
	}

	main, ok := s.screens.Main()
	if !ok {
		return nil, fmt.Errorf("no screens available")
	}

	handles := s.windows.List()
	infos := make([]WindowInfo, 0, len(handles))
	for _, h := range handles {
		info := WindowInfo{Handle: h, Eligible: !h.Minimized}
		if state, err := s.surface.Read(h); err == nil {
			// Flip with the owning display's height, matching the
			// conversion the reconciler applies for that window.
			scr := s.screenForX(state.Position.X+state.Size.Width/2, main)
			origin := geometry.ToScreen(state.Position, state.Size, scr.Frame.Height)
			info.Frame = geometry.Rect{
				X: origin.X, Y: origin.Y,
				Width: state.Size.Width, Height: state.Size.Height,
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// screenForX picks the display whose frame spans the given x coordinate.
// X is shared between the screen and control coordinate systems, so this
// works on a raw control-space snapshot.
func (s *Service) screenForX(x float64, fallback winsys.Screen) winsys.Screen {
	for _, scr := range s.screens.List() {
		if x >= scr.Frame.X && x < scr.Frame.MaxX() {
			return scr
		}
	}
	return fallback
}

// Screens enumerates displays.
func (s *Service) Screens() []winsys.Screen {
	return s.screens.List()
}

// screenFor picks the display owning the target rectangle: the one whose
// frame contains the target's center, falling back to the main screen.
func (s *Service) screenFor(target geometry.Rect) (winsys.Screen, error) {
	center := geometry.Point{X: target.X + target.Width/2, Y: target.Y + target.Height/2}
	for _, scr := range s.screens.List() {
		f := scr.Frame
		if center.X >= f.X && center.X < f.MaxX() && center.Y >= f.Y && center.Y < f.MaxY() {
			return scr, nil
		}
	}
	if main, ok := s.screens.Main(); ok {
		return main, nil
	}
	return winsys.Screen{}, fmt.Errorf("no screens available")
}
