// Package redis wraps the go-redis client so stores can depend on an
// interface and tests can swap in miniredis.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

const defaultDialTimeout = 2 * time.Second

// Options configures Redis client behavior
type Options struct {
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	// DB selects the logical database; tests and the CLI use 0
	DB int
}

// NewClient creates a Redis client for a single instance.
// The connection is lazy; call Ping to verify reachability.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	dialTimeout := opts.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = defaultDialTimeout
	}

	return redis.NewClient(&redis.Options{
		Addr:        endpoint,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: dialTimeout,
	}), nil
}

// Ping checks that the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: server unreachable")
	}
	return nil
}
