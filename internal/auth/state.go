package auth

import (
	"sync"
	"time"
)

// stateStore tracks outstanding OAuth state tokens. States are single use
// and expire after the configured TTL; expired entries are swept on write
// so the map cannot grow without bound under abandoned logins.
type stateStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]time.Time
}

func newStateStore(ttl time.Duration) *stateStore {
	return &stateStore{
		ttl:   ttl,
		items: make(map[string]time.Time),
	}
}

func (s *stateStore) put(state string) {
	now := time.Now()
	s.mu.Lock()
	for key, exp := range s.items {
		if now.After(exp) {
			delete(s.items, key)
		}
	}
	s.items[state] = now.Add(s.ttl)
	s.mu.Unlock()
}

func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	return ok && time.Now().Before(exp)
}
