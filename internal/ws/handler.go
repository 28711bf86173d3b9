// Package ws streams reconciliation events to WebSocket subscribers.
package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gridplane/gridplane/internal/infrastructure/monitoring"
	"github.com/gridplane/gridplane/internal/logging"
	"github.com/gridplane/gridplane/internal/tiling"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Loopback-bound control daemon; local tooling connects from
		// arbitrary origins.
		return true
	},
}

const subscriberBuffer = 16

// Handler manages WebSocket subscribers and implements tiling.Publisher.
type Handler struct {
	logger  *logging.Logger
	metrics *monitoring.Metrics

	mu   sync.Mutex
	subs map[string]chan tiling.Event
}

// NewHandler creates a WebSocket handler.
func NewHandler(logger *logging.Logger, metrics *monitoring.Metrics) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		logger:  logger.Named("ws"),
		metrics: metrics,
		subs:    make(map[string]chan tiling.Event),
	}
}

// Publish implements tiling.Publisher. Slow subscribers drop events rather
// than blocking the reconciliation path.
func (h *Handler) Publish(ev tiling.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
			if h.metrics != nil {
				h.metrics.WSEvents.Inc()
			}
		default:
			h.logger.Warn("dropping event for slow subscriber", zap.String("subscriber", id))
		}
	}
}

func (h *Handler) subscribe() (string, chan tiling.Event) {
	id := uuid.NewString()
	ch := make(chan tiling.Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSSubscribers.Inc()
	}
	return id, ch
}

func (h *Handler) unsubscribe(id string) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSSubscribers.Dec()
	}
}

// HandleConnection upgrades the request and streams events until the client
// disconnects.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	id, events := h.subscribe()
	defer h.unsubscribe(id)

	h.logger.Debug("subscriber connected", zap.String("subscriber", id))

	welcome := map[string]interface{}{
		"type":       "system",
		"subscriber": id,
		"message":    "connected to gridplane event stream",
	}
	if err := conn.WriteJSON(welcome); err != nil {
		return
	}

	// Reader pump: the client sends nothing meaningful, but reading is
	// required to process control frames and observe the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			msg := map[string]interface{}{
				"type":  "reconciliation",
				"event": ev,
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-done:
			h.logger.Debug("subscriber disconnected", zap.String("subscriber", id))
			return
		}
	}
}
