package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/logger"
)

// RateStore counts hits for key inside the current fixed window.
type RateStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// ===============================
// In-memory store
// ===============================

type memoryBucket struct {
	start time.Time
	count int64
}

// MemoryRateStore keeps per-key windows in process. Expired windows are
// swept at most once per window so the map tracks only active clients.
type MemoryRateStore struct {
	mu        sync.Mutex
	buckets   map[string]*memoryBucket
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryRateStore() *MemoryRateStore {
	return &MemoryRateStore{
		buckets: make(map[string]*memoryBucket),
		now:     time.Now,
	}
}

func (s *MemoryRateStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= window {
		s.sweep(now, window)
	}

	b, ok := s.buckets[key]
	if !ok || now.Sub(b.start) >= window {
		b = &memoryBucket{start: now}
		s.buckets[key] = b
	}
	b.count++
	return b.count, nil
}

func (s *MemoryRateStore) sweep(now time.Time, window time.Duration) {
	for k, b := range s.buckets {
		if now.Sub(b.start) >= window {
			delete(s.buckets, k)
		}
	}
	s.lastSweep = now
}

// ===============================
// Redis store
// ===============================

// RedisRateStore shares counters across instances.
type RedisRateStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRateStore(client *redis.Client) *RedisRateStore {
	return &RedisRateStore{client: client, prefix: "ratelimit:"}
}

func (s *RedisRateStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	slot := time.Now().UnixNano() / int64(window)
	k := s.prefix + key + ":" + strconv.FormatInt(slot, 10)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// ===============================
// Middleware
// ===============================

// RateLimiter allows limit requests per client IP per window. A failing store
// lets the request through.
func RateLimiter(store RateStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := store.Incr(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			logger.L().Warn().Err(err).Msg("rate limit store unavailable")
			c.Next()
			return
		}

		if n > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests")
			return
		}

		c.Next()
	}
}
