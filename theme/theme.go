// Package theme remembers each visitor's light/dark choice.
package theme

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// StorageKey is the key the browser keeps the choice under; server-side
// entries use it as their prefix.
const StorageKey = "pace-ieee-theme"

// HintHeader is the client hint carrying the OS color scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrNoPreference means the visitor never picked a theme.
var ErrNoPreference = errors.New("no saved theme")

// Parse accepts "dark" or "light", case-insensitively.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	}
	return "", false
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// PrefersDark reads the Sec-CH-Prefers-Color-Scheme hint value.
func PrefersDark(hint string) bool {
	return strings.EqualFold(strings.Trim(strings.TrimSpace(hint), `"`), "dark")
}

type Store interface {
	Get(ctx context.Context, client string) (Theme, error)
	Set(ctx context.Context, client string, t Theme) error
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore keeps choices for ttl after the last save; zero keeps
// them forever.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func key(client string) string { return StorageKey + ":" + client }

func (s *redisStore) Get(ctx context.Context, client string) (Theme, error) {
	v, err := s.rdb.Get(ctx, key(client)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoPreference
	}
	if err != nil {
		return "", err
	}
	// anything but "dark" reads as light
	if Theme(v) == Dark {
		return Dark, nil
	}
	return Light, nil
}

func (s *redisStore) Set(ctx context.Context, client string, t Theme) error {
	return s.rdb.Set(ctx, key(client), string(t), s.ttl).Err()
}

// Resolve picks the theme for a visitor: the saved choice, else the OS
// preference. A store that cannot be read means light.
func Resolve(ctx context.Context, store Store, client string, prefersDark bool, log logrus.FieldLogger) Theme {
	fallback := Light
	if prefersDark {
		fallback = Dark
	}
	if store == nil || client == "" {
		return fallback
	}

	t, err := store.Get(ctx, client)
	switch {
	case err == nil:
		return t
	case errors.Is(err, ErrNoPreference):
		return fallback
	default:
		if log != nil {
			log.WithError(err).Warn("theme lookup failed, defaulting to light")
		}
		return Light
	}
}

// Save persists an explicit choice. Failures are logged and reported as
// false; the caller still applies the theme.
func Save(ctx context.Context, store Store, client string, t Theme, log logrus.FieldLogger) bool {
	if store == nil || client == "" {
		return false
	}
	if err := store.Set(ctx, client, t); err != nil {
		if log != nil {
			log.WithError(err).Warn("could not save theme preference")
		}
		return false
	}
	return true
}
