// Package display holds the in-memory stores for the current message, the
// saved message templates, and the display settings. All state lives for the
// lifetime of the process; there is no persistence by design.
package display

import (
	"sync"

	apperrors "github.com/Korak-997/BossOfBlinks/internal/errors"
)

// MessageStore holds the single message currently shown on the matrix.
type MessageStore struct {
	mu      sync.Mutex
	current string
}

func NewMessageStore(initial string) *MessageStore {
	return &MessageStore{current: initial}
}

func (s *MessageStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set overwrites the current message. Empty messages are rejected; the
// device would otherwise scroll nothing.
func (s *MessageStore) Set(message string) error {
	if message == "" {
		return apperrors.ValidationError("Message is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = message
	return nil
}
