package credentials

import "sync"

// MemStore is an in-memory [Store] used in tests and anywhere durable
// persistence is undesirable.
type MemStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load implements [Store].
func (s *MemStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return "", ErrNoCredential
	}
	return s.token, nil
}

// Save implements [Store].
func (s *MemStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

// Clear implements [Store].
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
