package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateStore_SeededInOrder(t *testing.T) {
	store := NewTemplateStore([]string{"A", "B", "C"})
	assert.Equal(t, []string{"A", "B", "C"}, store.List())
}

func TestTemplateStore_AddAppends(t *testing.T) {
	store := NewTemplateStore([]string{"A"})

	updated, err := store.Add("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, updated)

	updated, err = store.Add("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, updated)
}

func TestTemplateStore_RejectsDuplicate(t *testing.T) {
	store := NewTemplateStore(nil)

	_, err := store.Add("X")
	require.NoError(t, err)

	_, err = store.Add("X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid or duplicate template")

	// X appears exactly once
	count := 0
	for _, tpl := range store.List() {
		if tpl == "X" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTemplateStore_RejectsEmpty(t *testing.T) {
	store := NewTemplateStore(nil)
	_, err := store.Add("")
	require.Error(t, err)
	assert.Empty(t, store.List())
}

func TestTemplateStore_ListReturnsCopy(t *testing.T) {
	store := NewTemplateStore([]string{"A", "B"})

	snapshot := store.List()
	snapshot[0] = "mutated"

	assert.Equal(t, []string{"A", "B"}, store.List())
}
