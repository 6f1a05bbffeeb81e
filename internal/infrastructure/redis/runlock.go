package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"marketdata-service/internal/application"
)

// Lock guards a scrape run across replicas. The TTL caps how long a crashed
// holder can block the next run.
type Lock struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Lock {
	return &Lock{Client: client, TTL: ttl}
}

var _ application.RunLock = (*Lock)(nil)

func (l *Lock) TryAcquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.Client.SetNX(ctx, key, "1", l.TTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}
