package tiling

import (
	"time"

	"github.com/gridplane/gridplane/internal/geometry"
	"github.com/gridplane/gridplane/internal/reconcile"
)

// Event describes one completed reconciliation, published to subscribers
// after the call returns. Events are diagnostics only; nothing replays them.
type Event struct {
	ID        string            `json:"id"`
	WindowID  string            `json:"window_id"`
	Target    geometry.Rect     `json:"target"`
	Outcome   reconcile.Outcome `json:"outcome"`
	Duration  time.Duration     `json:"duration_ns"`
	Timestamp time.Time         `json:"timestamp"`
}

// Publisher receives reconciliation events. Implementations must not block;
// the tiling service calls Publish synchronously after each call.
type Publisher interface {
	Publish(Event)
}
