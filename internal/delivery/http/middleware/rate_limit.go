package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"productpuppy/pkg/cache"
	"productpuppy/pkg/utils"

	"golang.org/x/time/rate"
)

const bucketKeyPrefix = "ratelimit:"

// RateLimiter hands every client IP its own token bucket. Buckets live in a
// cache with a sliding TTL, so idle clients are evicted by the cache janitor.
type RateLimiter struct {
	buckets   cache.CacheService
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	bucketTTL time.Duration
}

func NewRateLimiter(buckets cache.CacheService, limit rate.Limit, burst int, bucketTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:   buckets,
		limit:     limit,
		burst:     burst,
		bucketTTL: bucketTTL,
	}
}

func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucket(getClientIP(r)).Allow() {
				w.Header().Set("Retry-After", rl.retryAfter())
				utils.WriteError(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bucket returns the limiter for ip and pushes its expiry forward.
func (rl *RateLimiter) bucket(ip string) *rate.Limiter {
	key := bucketKeyPrefix + ip

	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.lookup(key)
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
	}
	rl.buckets.Set(key, limiter, rl.bucketTTL)
	return limiter
}

func (rl *RateLimiter) lookup(key string) (*rate.Limiter, bool) {
	val, found := rl.buckets.Get(key)
	if !found {
		return nil, false
	}
	limiter, ok := val.(*rate.Limiter)
	return limiter, ok
}

// retryAfter is the whole seconds until one token refills.
func (rl *RateLimiter) retryAfter() string {
	if rl.limit <= 0 || rl.limit == rate.Inf {
		return "1"
	}
	return strconv.Itoa(int(math.Ceil(1 / float64(rl.limit))))
}

