package models

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

// ===== Catalog =====

// EventSource supplies the catalog once at startup.
type EventSource interface {
	LoadEvents(ctx context.Context) ([]Event, error)
}

// EventSourceFunc adapts a plain function to EventSource.
type EventSourceFunc func(ctx context.Context) ([]Event, error)

func (f EventSourceFunc) LoadEvents(ctx context.Context) ([]Event, error) { return f(ctx) }

// StaticEventSource serves a fixed slice, e.g. the built-in seed.
func StaticEventSource(events []Event) EventSource {
	return EventSourceFunc(func(context.Context) ([]Event, error) {
		out := make([]Event, len(events))
		copy(out, events)
		return out, nil
	})
}

// ===== Newsletter =====
type SubscriberRepository interface {
	Create(ctx context.Context, s *Subscriber) error
	GetByEmail(ctx context.Context, email string) (Subscriber, error)
	Delete(ctx context.Context, email string) error
	Count(ctx context.Context) (int, error)
}
