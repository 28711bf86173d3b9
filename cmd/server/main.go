package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gridplane/gridplane/internal/infrastructure/config"
	"github.com/gridplane/gridplane/internal/logging"
	"github.com/gridplane/gridplane/internal/server"
	"github.com/gridplane/gridplane/internal/winsys/sim"
)

var errNoBackend = errors.New("simulated backend disabled and no OS binding compiled in")

func main() {
	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	backend, err := buildBackend(cfg, logger)
	if err != nil {
		logger.Fatal("no window-system backend available", zap.Error(err))
	}

	srv := server.New(cfg, logger, backend)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	case err := <-errChan:
		logger.Fatal("server error", zap.Error(err))
	}
}

// buildBackend selects the window-system binding. Only the simulated desktop
// ships in this tree; an OS binding plugs in through the same server.Backend
// seams.
func buildBackend(cfg *config.Config, logger *logging.Logger) (server.Backend, error) {
	if !cfg.Sim.Enabled {
		return server.Backend{}, errNoBackend
	}

	desktop := sim.NewDemoDesktop(cfg.Sim.ScreenWidth, cfg.Sim.ScreenHeight)
	logger.Info("using simulated desktop backend",
		zap.Float64("width", cfg.Sim.ScreenWidth),
		zap.Float64("height", cfg.Sim.ScreenHeight))

	return server.Backend{
		Surface: desktop,
		Windows: desktop,
		Screens: desktop.ScreensView(),
		Trust:   desktop,
	}, nil
}
