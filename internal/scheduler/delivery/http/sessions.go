package http

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"deepwork-scheduler/internal/scheduler"
)

// sessionStore holds live scheduling sessions. Sessions are ephemeral by
// contract: the TTL bounds abandoned sessions and eviction is equivalent to
// the user closing the scheduling dialog — no external effect.
type sessionStore struct {
	cache *expirable.LRU[string, *scheduler.Session]
}

func newSessionStore(capacity int, ttl time.Duration) *sessionStore {
	if capacity <= 0 {
		capacity = 128
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &sessionStore{
		cache: expirable.NewLRU[string, *scheduler.Session](capacity, nil, ttl),
	}
}

func (s *sessionStore) Open() *scheduler.Session {
	sess := scheduler.NewSession()
	s.cache.Add(sess.ID, sess)
	return sess
}

func (s *sessionStore) Get(id string) (*scheduler.Session, bool) {
	return s.cache.Get(id)
}

func (s *sessionStore) Close(id string) {
	s.cache.Remove(id)
}
