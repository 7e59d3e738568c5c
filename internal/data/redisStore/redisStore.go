package redisStore

import (
	"context"
	"time"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/redis/go-redis/v9"
)

// Store holds the shared counters behind the rate limiter. Nothing else lives in redis:
// jobs are owned by the knowledge base and answers are never cached.
type Store struct {
	client *redis.Client
	logger *logger_i.Logger
}

// Connect dials redis and pings it. Callers fall back to in-process state on error.
func Connect(ctx context.Context, addr string, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:                  addr,
		Password:              password,
		DB:                    db,
		ContextTimeoutEnabled: true,
		DialTimeout:           config.RedisDialTimeout,
		ReadTimeout:           time.Second,
		WriteTimeout:          time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, config.RedisDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	store := NewTestStore(client)
	store.logger.Info("Redis store connected", "addr", addr, "db", db)
	return store, nil
}

// CloseOnDone closes the client once ctx is cancelled, the same way the server shuts down.
func (s *Store) CloseOnDone(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := s.client.Close(); err != nil {
			s.logger.Error("Error closing redis client", "error", err)
			return
		}
		s.logger.Info("Redis store closed")
	}()
}

// Only in a _test.go file or when the client is built elsewhere
func NewTestStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		logger: logger_i.NewLogger("redis_store"),
	}
}
