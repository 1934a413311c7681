package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Korak-997/BossOfBlinks/internal/errors"
)

func TestMessageStore_Default(t *testing.T) {
	store := NewMessageStore("Hello World")
	assert.Equal(t, "Hello World", store.Get())
}

func TestMessageStore_SetOverwrites(t *testing.T) {
	store := NewMessageStore("Hello World")

	require.NoError(t, store.Set("Back in 5"))
	assert.Equal(t, "Back in 5", store.Get())

	require.NoError(t, store.Set("Open"))
	assert.Equal(t, "Open", store.Get())
}

func TestMessageStore_RejectsEmpty(t *testing.T) {
	store := NewMessageStore("Hello World")

	err := store.Set("")
	require.Error(t, err)

	structured := apperrors.AsStructuredError(err)
	assert.Equal(t, apperrors.TypeValidation, structured.Type)
	assert.Equal(t, "Message is required", structured.Message)

	// failed set must not clobber the current message
	assert.Equal(t, "Hello World", store.Get())
}
