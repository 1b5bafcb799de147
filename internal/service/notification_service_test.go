package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionIdFromPayload(t *testing.T) {
	id := uuid.New()

	t.Run("uuid value", func(t *testing.T) {
		got, ok := sessionIdFromPayload(map[string]interface{}{"session_id": id})
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("string value", func(t *testing.T) {
		got, ok := sessionIdFromPayload(map[string]interface{}{"session_id": id.String()})
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := sessionIdFromPayload(map[string]interface{}{"other": "x"})
		assert.False(t, ok)
	})

	t.Run("malformed string", func(t *testing.T) {
		_, ok := sessionIdFromPayload(map[string]interface{}{"session_id": "not-a-uuid"})
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, ok := sessionIdFromPayload(map[string]interface{}{"session_id": 42})
		assert.False(t, ok)
	})
}
