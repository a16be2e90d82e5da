// Package mocks holds in-memory stand-ins for the handler and service tests.
package mocks

import (
	"context"
	"errors"
	"sync"

	"branchsite/models"
	"branchsite/theme"
)

var ErrDown = errors.New("backend down")

// SubscriberRepo fails every call with Err.
type SubscriberRepo struct{ Err error }

func (m *SubscriberRepo) Create(context.Context, *models.Subscriber) error { return m.Err }

func (m *SubscriberRepo) GetByEmail(context.Context, string) (models.Subscriber, error) {
	return models.Subscriber{}, m.Err
}

func (m *SubscriberRepo) Delete(context.Context, string) error { return m.Err }

func (m *SubscriberRepo) Count(context.Context) (int, error) { return 0, m.Err }

// Forwarder records forwarded emails and returns Err.
type Forwarder struct {
	mu     sync.Mutex
	Emails []string
	Err    error
}

func (f *Forwarder) Forward(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Emails = append(f.Emails, email)
	return f.Err
}

func (f *Forwarder) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Emails...)
}

// ThemeStore is a map-backed theme.Store. Err, when set, fails every call.
type ThemeStore struct {
	mu    sync.Mutex
	Saved map[string]theme.Theme
	Err   error
}

func NewThemeStore() *ThemeStore { return &ThemeStore{Saved: map[string]theme.Theme{}} }

func (s *ThemeStore) Get(_ context.Context, client string) (theme.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	t, ok := s.Saved[client]
	if !ok {
		return "", theme.ErrNoPreference
	}
	return t, nil
}

func (s *ThemeStore) Set(_ context.Context, client string, t theme.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Saved[client] = t
	return nil
}
