package store

import "sync"

// ScoreStore persists named integer scores
type ScoreStore interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}

// MemoryStore keeps scores in process memory
type MemoryStore struct {
	scores map[string]int
	mu     sync.RWMutex
}

// NewMemoryStore creates a new in-memory score store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scores: make(map[string]int),
	}
}

// Get retrieves a score, returning 0 for unknown keys
func (s *MemoryStore) Get(key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scores[key], nil
}

// Set stores a score
func (s *MemoryStore) Set(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[key] = value
	return nil
}
