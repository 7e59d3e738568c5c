package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request from key fits.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per ip. Buckets idle for longer than
// idleTimeout are dropped so the map stays bounded by recently active clients.
type IPRateLimiter struct {
	ips         map[string]*visitor
	mu          sync.Mutex
	rateLimit   rate.Limit
	burstRate   int
	idleTimeout time.Duration
	lastSweep   time.Time
	now         func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:         make(map[string]*visitor),
		rateLimit:   r,
		burstRate:   b,
		idleTimeout: config.LimiterIdleTimeout,
		lastSweep:   time.Now(),
		now:         time.Now,
	}
}

func NewDefaultIPRateLimiter() *IPRateLimiter {
	return NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.idleTimeout {
		i.evictIdle(now)
	}

	v, exists := i.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.rateLimit, i.burstRate)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// evictIdle must be called with mu held.
func (i *IPRateLimiter) evictIdle(now time.Time) {
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) >= i.idleTimeout {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

func (i *IPRateLimiter) Allow(_ context.Context, ip string) bool {
	return i.GetLimiter(ip).Allow()
}

// WindowCounter is the shared counter the redis limiter needs.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisRateLimiter is a fixed window counter shared by every replica.
// When redis errors it falls back to the in-process limiter instead of failing requests.
type RedisRateLimiter struct {
	counter  WindowCounter
	limit    int64
	window   time.Duration
	fallback Limiter
	now      func() time.Time
	logger   *logger_i.Logger
}

func NewRedisRateLimiter(counter WindowCounter, limit int64, window time.Duration, fallback Limiter) *RedisRateLimiter {
	return &RedisRateLimiter{
		counter:  counter,
		limit:    limit,
		window:   window,
		fallback: fallback,
		now:      time.Now,
		logger:   logger_i.NewLogger("rate_limiter"),
	}
}

func (r *RedisRateLimiter) Allow(ctx context.Context, ip string) bool {
	slot := r.now().UnixNano() / int64(r.window)
	key := fmt.Sprintf("%s%s:%d", config.RedisRateLimitPrefix, ip, slot)

	count, err := r.counter.IncrWindow(ctx, key, r.window)
	if err != nil {
		r.logger.Warn("redis rate limit unavailable, using local limiter", "error", err)
		return r.fallback.Allow(ctx, ip)
	}
	return count <= r.limit
}
