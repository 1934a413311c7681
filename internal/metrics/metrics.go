package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Device traffic metrics
var (
	// DeviceRequestsTotal tracks classified device requests by path
	DeviceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_requests_total",
			Help: "Total requests classified as device-originated, by path",
		},
		[]string{"path"},
	)

	// DeviceTelemetryTotal tracks explicit telemetry reports
	DeviceTelemetryTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "device_telemetry_reports_total",
			Help: "Total telemetry reports posted by the device",
		},
	)

	// DeviceConnected reflects the derived presence flag as observed by the
	// most recent status read (1=connected, 0=disconnected)
	DeviceConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "device_connected",
			Help: "Whether the device counts as connected (derived, as of last status read)",
		},
	)
)

// Display state metrics
var (
	// MessageUpdatesTotal tracks operator message changes
	MessageUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "message_updates_total",
			Help: "Total successful message updates",
		},
	)

	// TemplateCount tracks the current number of saved templates
	TemplateCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "template_count",
			Help: "Current number of saved message templates",
		},
	)

	// SettingsUpdatesTotal tracks display settings changes
	SettingsUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settings_updates_total",
			Help: "Total display settings updates",
		},
	)
)
