package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridplane/gridplane/internal/geometry"
	"github.com/gridplane/gridplane/internal/reconcile"
	"github.com/gridplane/gridplane/internal/tiling"
	"github.com/gridplane/gridplane/internal/winsys"
	"github.com/gridplane/gridplane/internal/winsys/sim"
)

func newTestRouter(desktop *sim.Desktop) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := reconcile.New(desktop, reconcile.Config{})
	service := tiling.NewService(desktop, desktop, desktop.ScreensView(), desktop, controller, tiling.Options{})
	handlers := NewHandlers(service, desktop)

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/windows", handlers.ListWindows)
	router.GET("/screens", handlers.ListScreens)
	router.POST("/windows/:id/reconcile", handlers.ReconcileWindow)
	router.POST("/windows/:id/activate", handlers.ActivateWindow)
	return router
}

func newHandlerDesktop() *sim.Desktop {
	d := sim.New()
	d.AddScreen(winsys.Screen{
		ID:    "main",
		Frame: geometry.Rect{Width: 1920, Height: 1080},
		Main:  true,
	})
	d.AddWindow(sim.WindowConfig{
		ID:    "editor",
		Title: "Editor",
		Frame: geometry.Rect{X: 500, Y: 100, Width: 800, Height: 600},
	})
	return d
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRootAndHealth(t *testing.T) {
	router := newTestRouter(newHandlerDesktop())

	rec := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gridplane")

	rec = doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, true, health["trusted"])
	assert.Equal(t, 1.0, health["screens"])
}

func TestListWindows(t *testing.T) {
	router := newTestRouter(newHandlerDesktop())

	rec := doJSON(t, router, http.MethodGet, "/windows", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Windows []tiling.WindowInfo `json:"windows"`
		Count   int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "editor", resp.Windows[0].ID)
	assert.True(t, resp.Windows[0].Eligible)
}

func TestListScreens(t *testing.T) {
	router := newTestRouter(newHandlerDesktop())

	rec := doJSON(t, router, http.MethodGet, "/screens", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "main")
}

func TestReconcileWindow(t *testing.T) {
	router := newTestRouter(newHandlerDesktop())

	body := ReconcileRequest{Target: geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}}
	rec := doJSON(t, router, http.MethodPost, "/windows/editor/reconcile", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		WindowID string            `json:"window_id"`
		Success  bool              `json:"success"`
		Outcome  reconcile.Outcome `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "editor", resp.WindowID)
	assert.True(t, resp.Success)
	assert.True(t, resp.Outcome.Converged())
	assert.Equal(t, 960.0, resp.Outcome.Achieved.Size.Width)
}

func TestReconcileWindowNotFound(t *testing.T) {
	router := newTestRouter(newHandlerDesktop())

	body := ReconcileRequest{Target: geometry.Rect{Width: 100, Height: 100}}
	rec := doJSON(t, router, http.MethodPost, "/windows/ghost/reconcile", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReconcileWindowBadRequest(t *testing.T) {
	router := newTestRouter(newHandlerDesktop())

	rec := doJSON(t, router, http.MethodPost, "/windows/editor/reconcile", gin.H{"bogus": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/windows/editor/reconcile",
		ReconcileRequest{Target: geometry.Rect{Width: -5, Height: 100}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReconcileWindowUntrusted(t *testing.T) {
	desktop := newHandlerDesktop()
	desktop.SetTrusted(false)
	router := newTestRouter(desktop)

	body := ReconcileRequest{Target: geometry.Rect{Width: 100, Height: 100}}
	rec := doJSON(t, router, http.MethodPost, "/windows/editor/reconcile", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/windows", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestActivateWindow(t *testing.T) {
	desktop := newHandlerDesktop()
	router := newTestRouter(desktop)

	rec := doJSON(t, router, http.MethodPost, "/windows/editor/activate", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "editor", desktop.Focused())

	rec = doJSON(t, router, http.MethodPost, "/windows/ghost/activate", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
