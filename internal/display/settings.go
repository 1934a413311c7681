package display

import "sync"

// Display parameter ranges, matching what the matrix hardware accepts.
// Lower speed means faster scrolling.
const (
	MinBrightness = 0
	MaxBrightness = 15
	MinSpeed      = 10
	MaxSpeed      = 100
)

// Settings are the rendering parameters the device applies to the matrix.
type Settings struct {
	Brightness int    `json:"brightness"`
	Speed      int    `json:"speed"`
	FontStyle  string `json:"fontStyle"`
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	Brightness *int    `json:"brightness"`
	Speed      *int    `json:"speed"`
	FontStyle  *string `json:"fontStyle"`
}

// DefaultSettings mirror the UI's initial slider positions.
func DefaultSettings() Settings {
	return Settings{Brightness: 5, Speed: 40, FontStyle: "default"}
}

// SettingsStore holds the current display settings.
type SettingsStore struct {
	mu       sync.Mutex
	settings Settings
}

func NewSettingsStore(initial Settings) *SettingsStore {
	return &SettingsStore{settings: initial}
}

func (s *SettingsStore) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Update applies a partial update and returns the resulting settings.
// Out-of-range brightness and speed are clamped rather than rejected, so a
// device or UI sending a slightly off value still gets a usable display.
func (s *SettingsStore) Update(patch SettingsPatch) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Brightness != nil {
		s.settings.Brightness = clamp(*patch.Brightness, MinBrightness, MaxBrightness)
	}
	if patch.Speed != nil {
		s.settings.Speed = clamp(*patch.Speed, MinSpeed, MaxSpeed)
	}
	if patch.FontStyle != nil {
		s.settings.FontStyle = *patch.FontStyle
	}

	return s.settings
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
