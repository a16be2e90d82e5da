package models

import (
	"context"
	"sync"
)

// memorySubscriberRepo keeps subscribers in process memory. It backs local
// runs without Postgres and the handler tests.
type memorySubscriberRepo struct {
	mu    sync.RWMutex
	items map[string]Subscriber // key is email
}

func NewMemorySubscriberRepository() SubscriberRepository {
	return &memorySubscriberRepo{items: map[string]Subscriber{}}
}

func (m *memorySubscriberRepo) Create(_ context.Context, s *Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[s.Email]; ok {
		return ErrAlreadySubscribed
	}
	m.items[s.Email] = *s
	return nil
}

func (m *memorySubscriberRepo) GetByEmail(_ context.Context, email string) (Subscriber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.items[email]
	if !ok {
		return Subscriber{}, ErrNotFound
	}
	return s, nil
}

func (m *memorySubscriberRepo) Delete(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[email]; !ok {
		return ErrNotFound
	}
	delete(m.items, email)
	return nil
}

func (m *memorySubscriberRepo) Count(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}
