package redisStore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IncrWindow bumps the counter for key and makes sure it expires with the window.
// The caller encodes the window number in the key.
func (s *Store) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
