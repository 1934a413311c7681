package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Korak-997/BossOfBlinks/internal/config"
	"github.com/Korak-997/BossOfBlinks/internal/display"
	"github.com/Korak-997/BossOfBlinks/internal/logging"
	"github.com/Korak-997/BossOfBlinks/internal/presence"
	"github.com/Korak-997/BossOfBlinks/internal/server"
)

const shutdownTimeout = 10 * time.Second

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// slog is not configured yet at this point
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	clock := clockwork.NewRealClock()

	messages := display.NewMessageStore(cfg.DefaultMessage)
	templates := display.NewTemplateStore(display.DefaultTemplates)
	settings := display.NewSettingsStore(display.DefaultSettings())

	tracker := presence.NewTracker(clock, cfg.ConnectionTimeout)
	classifier := presence.NewClassifier(cfg.DeviceUserAgentMarker, cfg.DeviceQueryFlag)

	srv := server.New(cfg, clock, messages, templates, settings, tracker, classifier)
	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Shutdown complete")
}
