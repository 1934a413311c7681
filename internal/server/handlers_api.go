package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Korak-997/BossOfBlinks/internal/display"
	apperrors "github.com/Korak-997/BossOfBlinks/internal/errors"
	"github.com/Korak-997/BossOfBlinks/internal/metrics"
	"github.com/Korak-997/BossOfBlinks/internal/presence"
)

// statusResponse is the payload the operator UI polls.
type statusResponse struct {
	Connected       bool             `json:"connected"`
	WifiName        string           `json:"wifiName"`
	IPAddress       string           `json:"ipAddress"`
	CurrentMessage  string           `json:"currentMessage"`
	SignalStrength  int              `json:"signalStrength"`
	DisplaySettings display.Settings `json:"displaySettings"`
	LastSeen        *string          `json:"lastSeen"`
}

// handleCurrentMessage serves the device poll: the message to scroll plus
// the rendering parameters, in one round trip.
func (s *Server) handleCurrentMessage(c echo.Context) error {
	settings := s.settings.Get()
	return c.JSON(http.StatusOK, map[string]any{
		"message":    s.messages.Get(),
		"brightness": settings.Brightness,
		"speed":      settings.Speed,
		"fontStyle":  settings.FontStyle,
	})
}

// handleStatus composes a fresh snapshot on every call. The connected flag
// is time-dependent, so nothing here may be cached.
func (s *Server) handleStatus(c echo.Context) error {
	snap := s.tracker.Snapshot()

	if snap.Connected {
		metrics.DeviceConnected.Set(1)
	} else {
		metrics.DeviceConnected.Set(0)
	}

	var lastSeen *string
	if !snap.LastSeen.IsZero() {
		formatted := snap.LastSeen.UTC().Format(time.RFC3339)
		lastSeen = &formatted
	}

	return c.JSON(http.StatusOK, statusResponse{
		Connected:       snap.Connected,
		WifiName:        snap.WifiName,
		IPAddress:       snap.DeviceIP,
		CurrentMessage:  s.messages.Get(),
		SignalStrength:  snap.SignalStrength,
		DisplaySettings: s.settings.Get(),
		LastSeen:        lastSeen,
	})
}

func (s *Server) handleSetMessage(c echo.Context) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return apperrors.ValidationError("Message is required")
	}

	if err := s.messages.Set(body.Message); err != nil {
		return err
	}

	metrics.MessageUpdatesTotal.Inc()
	slog.Info("Message updated", "message", body.Message)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": body.Message,
	})
}

// handleDeviceStatus ingests a telemetry report. All fields are optional
// and an unreadable body is treated as an empty report: the device keeps
// working even when its payload is mangled.
func (s *Server) handleDeviceStatus(c echo.Context) error {
	var report presence.TelemetryReport
	if err := c.Bind(&report); err != nil {
		slog.Debug("Unreadable telemetry payload, recording contact only", "error", err)
		report = presence.TelemetryReport{}
	}

	s.tracker.RecordTelemetry(report, c.RealIP())
	metrics.DeviceTelemetryTotal.Inc()

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleUpdateSettings(c echo.Context) error {
	var patch display.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		slog.Debug("Unreadable settings payload, applying empty patch", "error", err)
		patch = display.SettingsPatch{}
	}

	settings := s.settings.Update(patch)
	metrics.SettingsUpdatesTotal.Inc()
	slog.Info("Display settings updated",
		"brightness", settings.Brightness,
		"speed", settings.Speed,
		"font_style", settings.FontStyle,
	)

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"settings": settings,
	})
}

func (s *Server) handleListTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, s.templates.List())
}

func (s *Server) handleAddTemplate(c echo.Context) error {
	var body struct {
		Template string `json:"template"`
	}
	if err := c.Bind(&body); err != nil {
		return apperrors.ValidationError("Invalid or duplicate template")
	}

	templates, err := s.templates.Add(body.Template)
	if err != nil {
		return err
	}

	metrics.TemplateCount.Set(float64(len(templates)))
	slog.Info("Template added", "template", body.Template, "count", len(templates))

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"templates": templates,
	})
}

// handleTest is the connectivity probe the firmware hits during setup.
func (s *Server) handleTest(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "API is working",
	})
}
