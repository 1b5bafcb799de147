package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Note generation states tracked per session.
const (
	StatusGenerating = "generating"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// StatusRepository tracks in-flight note generation per session. Entries
// expire on their own so a crashed worker never wedges a session.
type StatusRepository struct {
	cache *cache.Cache
}

func NewStatusRepository() *StatusRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StatusRepository{
		cache: c,
	}
}

func (r *StatusRepository) Set(sessionID string, status string) {
	r.cache.Set(sessionID, status, cache.DefaultExpiration)
}

func (r *StatusRepository) Get(sessionID string) (string, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(string), true
	}
	return "", false
}

func (r *StatusRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
