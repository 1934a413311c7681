package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 60*time.Second, cfg.ConnectionTimeout)
	assert.Equal(t, "ESP8266", cfg.DeviceUserAgentMarker)
	assert.Equal(t, "esp8266", cfg.DeviceQueryFlag)
	assert.Equal(t, "Hello World", cfg.DefaultMessage)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CONNECTION_TIMEOUT", "30s")
	t.Setenv("DEVICE_UA_MARKER", "ESP32")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ConnectionTimeout)
	assert.Equal(t, "ESP32", cfg.DeviceUserAgentMarker)
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("CONNECTION_TIMEOUT", "0s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONNECTION_TIMEOUT")
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_SECOND")
}
