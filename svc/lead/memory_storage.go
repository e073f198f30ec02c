package lead

import (
	"context"
	"slices"
	"sync"
)

// MemoryStorage keeps leads in process memory. Used in development and tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	byEmail map[string]Lead
	order   []string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{byEmail: make(map[string]Lead)}
}

func (s *MemoryStorage) CreateLead(_ context.Context, l Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[l.Email]; ok {
		return ErrDuplicateLead
	}
	s.byEmail[l.Email] = l
	s.order = append(s.order, l.Email)
	return nil
}

func (s *MemoryStorage) GetLeadByEmail(_ context.Context, email string) (*Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.byEmail[email]
	if !ok {
		return nil, ErrLeadNotFound
	}
	return &l, nil
}

func (s *MemoryStorage) ListLeads(_ context.Context, limit int) ([]Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.order)
	if limit > 0 && limit < n {
		n = limit
	}
	leads := make([]Lead, 0, n)
	for _, email := range slices.Backward(s.order) {
		if len(leads) == n {
			break
		}
		leads = append(leads, s.byEmail[email])
	}
	return leads, nil
}
