package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

// OpenRedis connects and pings; the idempotency store is unusable without it.
func OpenRedis(ctx context.Context, addr string, db int, log logrus.FieldLogger) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	log.WithFields(logrus.Fields{"addr": addr, "db": db}).Info("redis: connected")
	return r, nil
}
