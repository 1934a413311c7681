package display

import (
	"slices"
	"sync"

	apperrors "github.com/Korak-997/BossOfBlinks/internal/errors"
)

// DefaultTemplates seeds the store with the messages the UI offered before
// templates became user-editable.
var DefaultTemplates = []string{
	"Hello World",
	"Welcome!",
	"Back in 5 minutes",
	"Do not disturb",
}

// TemplateStore holds the saved message templates in insertion order,
// unique by exact value. The UI renders its template grid in this order.
type TemplateStore struct {
	mu        sync.Mutex
	templates []string
}

func NewTemplateStore(seed []string) *TemplateStore {
	return &TemplateStore{templates: slices.Clone(seed)}
}

// List returns a snapshot copy; callers cannot mutate internal state.
func (s *TemplateStore) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.templates)
}

// Add appends a template and returns the full updated list. Empty and
// duplicate templates are rejected with the same validation error.
func (s *TemplateStore) Add(template string) ([]string, error) {
	if template == "" {
		return nil, apperrors.ValidationError("Invalid or duplicate template")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.templates, template) {
		return nil, apperrors.ValidationError("Invalid or duplicate template").
			WithField("template", template)
	}

	s.templates = append(s.templates, template)
	return slices.Clone(s.templates), nil
}
