package presence

import "strings"

const apiPrefix = "/api/"

// Classifier decides whether a request originated from the device rather
// than the operator UI. This is advisory self-identification, not
// authentication: any caller can claim to be the device.
type Classifier struct {
	userAgentMarker string
	queryFlag       string
}

func NewClassifier(userAgentMarker, queryFlag string) *Classifier {
	return &Classifier{userAgentMarker: userAgentMarker, queryFlag: queryFlag}
}

// IsDeviceRequest reports whether a request with the given path, User-Agent
// header, and "device" query parameter is device-originated. True only for
// paths under the device-facing API prefix where the caller identifies
// itself via either channel. Pure function of request metadata.
func (c *Classifier) IsDeviceRequest(path, userAgent, deviceParam string) bool {
	if !strings.HasPrefix(path, apiPrefix) {
		return false
	}
	return strings.Contains(userAgent, c.userAgentMarker) || deviceParam == c.queryFlag
}
