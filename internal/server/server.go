package server

import (
	"context"
	"net"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gridplane/gridplane/internal/api/middleware"
	"github.com/gridplane/gridplane/internal/geometry"
	apihttp "github.com/gridplane/gridplane/internal/http"
	"github.com/gridplane/gridplane/internal/infrastructure/config"
	"github.com/gridplane/gridplane/internal/infrastructure/monitoring"
	"github.com/gridplane/gridplane/internal/logging"
	"github.com/gridplane/gridplane/internal/reconcile"
	"github.com/gridplane/gridplane/internal/tiling"
	"github.com/gridplane/gridplane/internal/winsys"
	"github.com/gridplane/gridplane/internal/ws"
)

// Backend bundles the window-system capabilities the daemon runs against:
// the OS binding in production, the simulated desktop in demo mode, doubles
// in tests.
type Backend struct {
	Surface winsys.ControlSurface
	Windows winsys.Windows
	Screens winsys.Screens
	Trust   winsys.Trust
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg     *config.Config
	logger  *logging.Logger
	router  *gin.Engine
	httpSrv *nethttp.Server
	service *tiling.Service
}

// New creates a server from configuration and a window-system backend.
func New(cfg *config.Config, logger *logging.Logger, backend Backend) *Server {
	if logger == nil {
		logger = logging.NewDefault()
	}

	// Per-server registry so nothing leaks into process-global state.
	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)
	wsHandler := ws.NewHandler(logger, metrics)

	controller := reconcile.New(backend.Surface, reconcile.Config{
		Evaluator: geometry.Evaluator{
			Tolerance: cfg.Reconcile.Tolerance,
			Slack:     cfg.Reconcile.Slack,
		},
		Settle: reconcile.Settle{
			Relocate:        cfg.Reconcile.SettleRelocate,
			InitialSize:     cfg.Reconcile.SettleInitialSize,
			InitialPosition: cfg.Reconcile.SettleInitialPosition,
			Correction:      cfg.Reconcile.SettleCorrection,
		},
		Budget: cfg.Reconcile.AttemptBudget,
		Edge:   cfg.Reconcile.EdgeThreshold,
		Logger: logger.Logger,
	})

	service := tiling.NewService(
		backend.Surface, backend.Windows, backend.Screens, backend.Trust,
		controller,
		tiling.Options{Logger: logger, Metrics: metrics, Events: wsHandler},
	)

	handlers := apihttp.NewHandlers(service, backend.Trust)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	router.GET("/windows", handlers.ListWindows)
	router.GET("/screens", handlers.ListScreens)
	router.POST("/windows/:id/reconcile", handlers.ReconcileWindow)
	router.POST("/windows/:id/activate", handlers.ActivateWindow)

	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		cfg:     cfg,
		logger:  logger.Named("server"),
		router:  router,
		service: service,
	}
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpSrv = &nethttp.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("starting gridplane daemon", zap.String("addr", addr))
	err := s.httpSrv.ListenAndServe()
	if err == nethttp.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
