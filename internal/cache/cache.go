// Package cache holds a read-through cache for certificate documents.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values by key. A miss is reported with ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Nop is a Cache that never holds anything. It is used when no cache backend is configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
