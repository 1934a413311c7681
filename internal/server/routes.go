package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Device- and UI-facing API
	s.echo.GET("/api/current-message", s.handleCurrentMessage)
	s.echo.GET("/api/status", s.handleStatus)
	s.echo.GET("/api/templates", s.handleListTemplates)
	s.echo.GET("/api/test", s.handleTest)
	s.echo.POST("/api/device-status", s.handleDeviceStatus)

	// Operator mutations are rate limited per source IP
	limiter := newRateLimiter(s.config.RateLimitPerSecond, s.config.RateLimitBurst)
	s.echo.POST("/api/set-message", s.handleSetMessage, limiter)
	s.echo.POST("/api/templates", s.handleAddTemplate, limiter)
	s.echo.POST("/api/display-settings", s.handleUpdateSettings, limiter)

	// Static web UI
	s.echo.Static("/", s.config.StaticDir)
}
