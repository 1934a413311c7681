package server

import (
	"github.com/labstack/echo/v4"

	"github.com/Korak-997/BossOfBlinks/internal/correlation"
	"github.com/Korak-997/BossOfBlinks/internal/metrics"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// devicePresenceMiddleware classifies every inbound request and, when it is
// device-originated, records the contact before route dispatch. For all
// other requests it is a no-op.
func (s *Server) devicePresenceMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if s.classifier.IsDeviceRequest(req.URL.Path, req.UserAgent(), c.QueryParam("device")) {
			s.tracker.RecordSeen(c.RealIP())
			metrics.DeviceRequestsTotal.WithLabelValues(req.URL.Path).Inc()
		}
		return next(c)
	}
}
