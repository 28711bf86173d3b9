package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridplane/gridplane/internal/geometry"
	"github.com/gridplane/gridplane/internal/tiling"
	"github.com/gridplane/gridplane/internal/winsys"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	service *tiling.Service
	trust   winsys.Trust
}

// NewHandlers creates a new handler set.
func NewHandlers(service *tiling.Service, trust winsys.Trust) *Handlers {
	return &Handlers{service: service, trust: trust}
}

// ReconcileRequest is the body of POST /windows/:id/reconcile. Target is in
// screen coordinates, already net of any spacing the caller applies.
type ReconcileRequest struct {
	Target geometry.Rect `json:"target" binding:"required"`
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "gridplane",
		"version": "0.3.0",
	})
}

// Health handles the health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"trusted": h.trust.Trusted(),
		"screens": len(h.service.Screens()),
	})
}

// ListWindows enumerates on-screen windows.
func (h *Handlers) ListWindows(c *gin.Context) {
	windows, err := h.service.Windows()
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"windows": windows,
		"count":   len(windows),
	})
}

// ListScreens enumerates displays.
func (h *Handlers) ListScreens(c *gin.Context) {
	screens := h.service.Screens()
	c.JSON(http.StatusOK, gin.H{
		"screens": screens,
		"count":   len(screens),
	})
}

// ReconcileWindow drives a window to a target rectangle.
func (h *Handlers) ReconcileWindow(c *gin.Context) {
	windowID := c.Param("id")

	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Target.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.service.Reconcile(windowID, req.Target)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window_id": windowID,
		"success":   outcome.Converged(),
		"outcome":   outcome,
	})
}

// ActivateWindow raises a window to the foreground.
func (h *Handlers) ActivateWindow(c *gin.Context) {
	windowID := c.Param("id")

	ok, err := h.service.Activate(windowID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window_id": windowID,
		"success":   ok,
	})
}

func (h *Handlers) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, winsys.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, winsys.ErrWindowNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
