package preferences

import (
	"context"
	"sync"
)

// MemoryStore keeps the preference in process memory, for running without
// any writable path.
type MemoryStore struct {
	mu     sync.Mutex
	locale string
	set    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale, s.set
}

func (s *MemoryStore) Put(_ context.Context, locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale, s.set = locale, true
}
