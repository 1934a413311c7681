package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_IsDeviceRequest(t *testing.T) {
	classifier := NewClassifier("ESP8266", "esp8266")

	tests := []struct {
		name        string
		path        string
		userAgent   string
		deviceParam string
		want        bool
	}{
		{"api path with marker UA", "/api/current-message", "ESP8266HTTPClient", "", true},
		{"api path with marker embedded in UA", "/api/status", "Mozilla/5.0 (ESP8266)", "", true},
		{"api path with query flag", "/api/current-message", "curl/8.0", "esp8266", true},
		{"api path plain browser", "/api/status", "Mozilla/5.0", "", false},
		{"api path wrong query flag value", "/api/status", "curl/8.0", "esp32", false},
		{"non-api path with marker UA", "/", "ESP8266HTTPClient", "", false},
		{"non-api path with query flag", "/health/live", "curl/8.0", "esp8266", false},
		{"api prefix without trailing segment", "/api", "ESP8266HTTPClient", "", false},
		{"empty everything", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.IsDeviceRequest(tt.path, tt.userAgent, tt.deviceParam)
			assert.Equal(t, tt.want, got)
		})
	}
}
