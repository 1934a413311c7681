package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Korak-997/BossOfBlinks/internal/config"
	"github.com/Korak-997/BossOfBlinks/internal/display"
	apperrors "github.com/Korak-997/BossOfBlinks/internal/errors"
	"github.com/Korak-997/BossOfBlinks/internal/presence"
)

type Server struct {
	echo       *echo.Echo
	config     *config.Config
	clock      clockwork.Clock
	messages   *display.MessageStore
	templates  *display.TemplateStore
	settings   *display.SettingsStore
	tracker    *presence.Tracker
	classifier *presence.Classifier
	startTime  time.Time
}

func New(
	cfg *config.Config,
	clock clockwork.Clock,
	messages *display.MessageStore,
	templates *display.TemplateStore,
	settings *display.SettingsStore,
	tracker *presence.Tracker,
	classifier *presence.Classifier,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:       e,
		config:     cfg,
		clock:      clock,
		messages:   messages,
		templates:  templates,
		settings:   settings,
		tracker:    tracker,
		classifier: classifier,
		startTime:  clock.Now(),
	}

	// Middleware. Presence tracking runs for every request before any
	// handler, matching on request metadata only.
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(correlationMiddleware)
	e.Use(apperrors.Middleware())
	e.Use(srv.devicePresenceMiddleware)

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
