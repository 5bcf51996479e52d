package httpx

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket per client address.
type RateLimitMiddleware struct {
	limiters map[string]*rateLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiters: make(map[string]*rateLimiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		idle:     5 * time.Minute,
		now:      time.Now,
	}
}

// sweep drops limiters idle for longer than rl.idle. Called with rl.mu held.
func (rl *RateLimitMiddleware) sweep(now time.Time) {
	for key, limiter := range rl.limiters {
		if now.Sub(limiter.lastSeen) > rl.idle {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= 1024 {
			rl.sweep(now)
		}
		limiter = &rateLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = limiter
	}
	limiter.lastSeen = now

	return limiter.limiter
}

func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			key = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}

		if !rl.getLimiter(key).Allow() {
			JSONError(w, http.StatusTooManyRequests, "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
