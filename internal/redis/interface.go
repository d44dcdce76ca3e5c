package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories don't import go-redis
// constructors directly
type Client interface {
	redis.UniversalClient
}
