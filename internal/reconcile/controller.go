package reconcile

import (
	"errors"

	"go.uber.org/zap"

	"github.com/gridplane/gridplane/internal/geometry"
	"github.com/gridplane/gridplane/internal/winsys"
)

const (
	// DefaultBudget bounds the correction loop.
	DefaultBudget = 6

	// DefaultEdgeThreshold is the distance from a screen edge inside which
	// a resize is at risk of being silently clamped, triggering the
	// safe-relocate step.
	DefaultEdgeThreshold = 100.0
)

// Config tunes a Controller. Zero fields fall back to defaults.
type Config struct {
	Evaluator geometry.Evaluator
	Settle    Settle
	Budget    int
	Edge      float64
	Logger    *zap.Logger
}

// Controller drives one window's geometry to a target rectangle through a
// winsys.ControlSurface. It holds no per-window state between calls; every
// call starts from a fresh read. A single handle must not be reconciled from
// two call sites at once; the calling layer serializes per window.
type Controller struct {
	surface winsys.ControlSurface
	eval    geometry.Evaluator
	settle  Settle
	budget  int
	edge    float64
	logger  *zap.Logger
}

// New creates a controller over the given control surface.
func New(surface winsys.ControlSurface, cfg Config) *Controller {
	if cfg.Evaluator.Tolerance == 0 {
		cfg.Evaluator.Tolerance = geometry.DefaultTolerance
	}
	if cfg.Evaluator.Slack == 0 {
		cfg.Evaluator.Slack = geometry.DefaultSlack
	}
	if cfg.Budget <= 0 {
		cfg.Budget = DefaultBudget
	}
	if cfg.Edge <= 0 {
		cfg.Edge = DefaultEdgeThreshold
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Controller{
		surface: surface,
		eval:    cfg.Evaluator,
		settle:  cfg.Settle,
		budget:  cfg.Budget,
		edge:    cfg.Edge,
		logger:  cfg.Logger,
	}
}

// Reconcile drives the window behind h to the target rectangle. Target and
// screen are in screen coordinates; screen is the owning display's full
// frame. The returned error is non-nil only for a malformed target; every
// window condition, including a vanished handle, resolves into the Outcome.
func (c *Controller) Reconcile(h winsys.Handle, target geometry.Rect, screen winsys.Screen) (Outcome, error) {
	if err := target.Validate(); err != nil {
		return Outcome{}, err
	}

	screenHeight := screen.Frame.Height

	current, err := c.read(h, screenHeight)
	if err != nil {
		c.logger.Debug("initial read failed", zap.String("window", h.ID), zap.Error(err))
		return Outcome{Achieved: current}, nil
	}

	// Some apps anchor an edge during a resize; resizing near a screen
	// boundary can be silently clamped or ignored. Parking the window at
	// the left edge first trades one extra write for a clean size write.
	if c.needsRelocate(current, screen) {
		safe := geometry.Point{X: screen.Frame.X, Y: current.Position.Y}
		c.surface.WritePosition(h, geometry.ToControl(safe, current.Size, screenHeight))
		c.settle.wait(c.settle.Relocate)
	}

	// Size first: resizing can move the window, so position is written
	// after, then re-asserted on every size rewrite in the loop.
	c.surface.WriteSize(h, target.Dimensions())
	c.settle.wait(c.settle.InitialSize)

	c.writeTargetPosition(h, target, screenHeight)
	c.settle.wait(c.settle.InitialPosition)

	var (
		outcome  Outcome
		previous geometry.State
	)
	for attempt := 1; attempt <= c.budget; attempt++ {
		state, err := c.read(h, screenHeight)
		outcome.Attempts = attempt
		outcome.Achieved = state
		if err != nil {
			outcome.PositionMatched = false
			outcome.SizeMatched = false
			outcome.ConstraintDetected = false
			c.logger.Debug("read failed mid-loop",
				zap.String("window", h.ID), zap.Int("attempt", attempt), zap.Error(err))
			break
		}

		cls := c.eval.Classify(target, state)
		outcome.PositionMatched = cls.PositionMatched
		outcome.SizeMatched = cls.SizeMatched
		outcome.ConstraintDetected = cls.ConstraintDetected

		if cls.Matched() {
			break
		}

		// Two identical consecutive reads mean the window no longer
		// responds to writes; further retries only waste time.
		if attempt >= 2 && state == previous {
			c.logger.Debug("no progress, stopping",
				zap.String("window", h.ID), zap.Int("attempt", attempt))
			break
		}
		previous = state

		if !cls.PositionMatched {
			c.writeTargetPosition(h, target, screenHeight)
			c.settle.wait(c.settle.Correction)
		}
		// Retrying a size write against a detected floor is pointless.
		if !cls.SizeMatched && !cls.ConstraintDetected {
			c.surface.WriteSize(h, target.Dimensions())
			c.settle.wait(c.settle.Correction)
			c.writeTargetPosition(h, target, screenHeight)
			c.settle.wait(c.settle.Correction)
		}
	}

	c.logger.Debug("reconciliation finished",
		zap.String("window", h.ID),
		zap.Int("attempts", outcome.Attempts),
		zap.Bool("converged", outcome.Converged()),
		zap.Bool("constraint", outcome.ConstraintDetected))

	return outcome, nil
}

// Activate raises the window and its owning process to the foreground.
// Single write, best effort, no retry semantics.
func (c *Controller) Activate(h winsys.Handle) bool {
	return c.surface.Activate(h)
}

// read probes the window and converts the snapshot to screen coordinates.
func (c *Controller) read(h winsys.Handle, screenHeight float64) (geometry.State, error) {
	raw, err := c.surface.Read(h)
	if err != nil {
		if errors.Is(err, winsys.ErrHandleInvalid) {
			return geometry.State{}, err
		}
		// Partial failure: downstream comparison treats the zero-valued
		// snapshot as unmatched and the loop keeps probing.
		return geometry.State{}, nil
	}
	return geometry.State{
		Position: geometry.ToScreen(raw.Position, raw.Size, screenHeight),
		Size:     raw.Size,
	}, nil
}

func (c *Controller) writeTargetPosition(h winsys.Handle, target geometry.Rect, screenHeight float64) {
	c.surface.WritePosition(h, geometry.ToControl(target.Origin(), target.Dimensions(), screenHeight))
}

// needsRelocate reports whether the window sits far enough from the screen's
// left edge, or close enough to its right edge, that a direct resize risks
// being clamped.
func (c *Controller) needsRelocate(current geometry.State, screen winsys.Screen) bool {
	if current.Position.X-screen.Frame.X > c.edge {
		return true
	}
	return screen.Frame.MaxX()-current.Rect().MaxX() < c.edge
}
