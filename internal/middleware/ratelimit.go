package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

const defaultVisitorCapacity = 10_000

// RateLimiter hands out one token bucket per client address. Buckets live in a
// bounded LRU so a flood of distinct addresses cannot grow memory without limit.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	visitors *lru.Cache[string, *rate.Limiter]
}

// NewRateLimiter allows a burst of requests per client, refilled evenly at
// requests per window. A client idle for a full window may therefore send up to
// twice the limit across that window boundary, as with a fixed window.
func NewRateLimiter(requests int, window time.Duration, capacity int) *RateLimiter {
	if requests <= 0 {
		requests = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	if capacity <= 0 {
		capacity = defaultVisitorCapacity
	}
	cache, _ := lru.New[string, *rate.Limiter](capacity)
	return &RateLimiter{
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		visitors: cache,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if l, ok := rl.visitors.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors.Add(key, l)
	return l
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			httpx.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
