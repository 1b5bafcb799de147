package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRepositoryLifecycle(t *testing.T) {
	repo := NewStatusRepository()

	_, found := repo.Get("session-1")
	assert.False(t, found)

	repo.Set("session-1", StatusGenerating)
	status, found := repo.Get("session-1")
	assert.True(t, found)
	assert.Equal(t, StatusGenerating, status)

	repo.Set("session-1", StatusCompleted)
	status, _ = repo.Get("session-1")
	assert.Equal(t, StatusCompleted, status)

	repo.Delete("session-1")
	_, found = repo.Get("session-1")
	assert.False(t, found)
}
