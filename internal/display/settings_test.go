package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestSettingsStore_Defaults(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())
	assert.Equal(t, Settings{Brightness: 5, Speed: 40, FontStyle: "default"}, store.Get())
}

func TestSettingsStore_ClampsBrightness(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"below range", -3, 0},
		{"lower bound", 0, 0},
		{"in range", 7, 7},
		{"upper bound", 15, 15},
		{"above range", 99, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewSettingsStore(DefaultSettings())
			got := store.Update(SettingsPatch{Brightness: intPtr(tt.input)})
			assert.Equal(t, tt.want, got.Brightness)

			// applying the same update twice yields the same result
			again := store.Update(SettingsPatch{Brightness: intPtr(tt.input)})
			assert.Equal(t, got, again)
		})
	}
}

func TestSettingsStore_ClampsSpeed(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"below range", 0, 10},
		{"lower bound", 10, 10},
		{"in range", 55, 55},
		{"upper bound", 100, 100},
		{"above range", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewSettingsStore(DefaultSettings())
			got := store.Update(SettingsPatch{Speed: intPtr(tt.input)})
			assert.Equal(t, tt.want, got.Speed)
		})
	}
}

func TestSettingsStore_PartialUpdatePreservesOtherFields(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())
	store.Update(SettingsPatch{Brightness: intPtr(12), FontStyle: strPtr("bold")})

	got := store.Update(SettingsPatch{Speed: intPtr(50)})

	assert.Equal(t, 12, got.Brightness)
	assert.Equal(t, 50, got.Speed)
	assert.Equal(t, "bold", got.FontStyle)

	assert.Equal(t, got, store.Get())
}

func TestSettingsStore_EmptyPatchIsNoOp(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())
	before := store.Get()

	got := store.Update(SettingsPatch{})

	assert.Equal(t, before, got)
	assert.Equal(t, before, store.Get())
}

func TestSettingsStore_FontStyleStoredVerbatim(t *testing.T) {
	store := NewSettingsStore(DefaultSettings())
	got := store.Update(SettingsPatch{FontStyle: strPtr("some-unknown-font")})
	assert.Equal(t, "some-unknown-font", got.FontStyle)
}
