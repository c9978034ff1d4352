// Package redisquery adapts a Redis list to the paged deferred-source
// capabilities, so pages are sliced inside Redis instead of locally.
package redisquery

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/paged-go/paged/pkg/paged"
)

// ListQuery pages a Redis list. Count maps to LLEN and FetchRange to
// LRANGE against the same key, so both round trips see the list the way
// the caller left it (ordering included).
type ListQuery struct {
	redis *redis.Client
	key   string
}

var _ paged.Query[string] = (*ListQuery)(nil)

// NewListQuery creates a deferred source over the list stored at key.
func NewListQuery(redisClient *redis.Client, key string) *ListQuery {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &ListQuery{
		redis: redisClient,
		key:   key,
	}
}

// Count reports the list length. A missing key counts as an empty list,
// which matches Redis semantics.
func (q *ListQuery) Count(ctx context.Context) (int, error) {
	n, err := q.redis.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis llen %q: %w", q.key, err)
	}
	return int(n), nil
}

// FetchRange returns the [skip, skip+take) window of the list.
func (q *ListQuery) FetchRange(ctx context.Context, skip, take int) ([]string, error) {
	if take <= 0 {
		return []string{}, nil
	}

	// LRANGE bounds are inclusive.
	items, err := q.redis.LRange(ctx, q.key, int64(skip), int64(skip+take-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %q: %w", q.key, err)
	}
	return items, nil
}
