package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const testSecret = "test-secret"

func TestUnsubscribeToken_RoundTrip(t *testing.T) {
	tok, err := GenerateUnsubscribeToken(testSecret, "a@b.co", time.Hour)
	if err != nil {
		t.Fatalf("gen token err: %v", err)
	}
	email, err := VerifyUnsubscribeToken(testSecret, tok)
	if err != nil {
		t.Fatalf("verify err: %v", err)
	}
	if email != "a@b.co" {
		t.Fatalf("want a@b.co got %q", email)
	}
}

func TestUnsubscribeToken_NoExpiry(t *testing.T) {
	tok, err := GenerateUnsubscribeToken(testSecret, "a@b.co", 0)
	if err != nil {
		t.Fatalf("gen token err: %v", err)
	}
	if _, err := VerifyUnsubscribeToken(testSecret, tok); err != nil {
		t.Fatalf("verify err: %v", err)
	}
}

// tampered, wrong secret, expired and foreign tokens must all fail
func TestUnsubscribeToken_Rejected(t *testing.T) {
	good, _ := GenerateUnsubscribeToken(testSecret, "a@b.co", time.Hour)
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.co",
		"sub":   "unsubscribe",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	foreign, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.co",
		"sub":   "login",
	}).SignedString([]byte(testSecret))
	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "unsubscribe",
	}).SignedString([]byte(testSecret))

	cases := map[string]struct{ secret, token string }{
		"tampered":     {testSecret, good + "x"},
		"wrong secret": {"other", good},
		"garbage":      {testSecret, "not-a-token"},
		"expired":      {testSecret, expired},
		"foreign sub":  {testSecret, foreign},
		"no email":     {testSecret, noEmail},
	}
	for name, tc := range cases {
		if _, err := VerifyUnsubscribeToken(tc.secret, tc.token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: want ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestCacheInvalidator_PurgeEvents(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	inv := NewCacheInvalidator(rdb)

	ctx := context.Background()
	_ = rdb.Set(ctx, CacheEventsList+"a", "x", 0).Err()
	_ = rdb.Set(ctx, CacheEventsList+"b", "x", 0).Err()
	_ = rdb.Set(ctx, CacheEventsItem+"c", "x", 0).Err()
	_ = rdb.Set(ctx, CacheTestimonials+"d", "x", 0).Err()
	_ = rdb.Set(ctx, "theme:client", "dark", 0).Err()

	n, err := inv.PurgeEvents(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 3 {
		t.Fatalf("want 3 deleted, got %d", n)
	}
	if !mr.Exists(CacheTestimonials+"d") || !mr.Exists("theme:client") {
		t.Fatalf("unrelated keys purged: %v", mr.Keys())
	}

	if _, err := inv.PurgeAll(ctx); err != nil {
		t.Fatalf("purge all: %v", err)
	}
	if len(mr.Keys()) != 1 {
		t.Fatalf("want only theme key left, got %v", mr.Keys())
	}
}
