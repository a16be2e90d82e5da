package utils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Key namespaces written by middlewares.ResponseCache.
const (
	CacheEventsList   = "cache:events:list:"
	CacheEventsItem   = "cache:events:item:"
	CacheTestimonials = "cache:testimonials:"
)

type CacheInvalidator struct{ rdb *redis.Client }

func NewCacheInvalidator(rdb *redis.Client) *CacheInvalidator { return &CacheInvalidator{rdb} }

// PurgeEvents drops every cached events response. Derived statuses change
// when the day rolls over, so cached lists and items go stale at midnight.
func (ci *CacheInvalidator) PurgeEvents(ctx context.Context) (int, error) {
	n, err := ci.purge(ctx, CacheEventsList+"*")
	if err != nil {
		return n, err
	}
	m, err := ci.purge(ctx, CacheEventsItem+"*")
	return n + m, err
}

// PurgeAll drops every cached response.
func (ci *CacheInvalidator) PurgeAll(ctx context.Context) (int, error) {
	return ci.purge(ctx, "cache:*")
}

func (ci *CacheInvalidator) purge(ctx context.Context, pattern string) (int, error) {
	deleted := 0
	iter := ci.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := ci.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, iter.Err()
}
