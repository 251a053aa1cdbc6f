package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter throttles anonymous endpoints per client host. Each route
// scope ("login", "register") has its own budget so a burst of sign-ups
// does not lock a host out of logging in.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[bucketKey]*bucket
	now     func() time.Time
	idleTTL time.Duration
	stop    chan struct{}
	done    chan struct{}
}

type bucketKey struct {
	scope string
	host  string
}

type bucket struct {
	tokens   float64
	capacity float64
	perSec   float64
	seen     time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// sweepInterval. Call Stop on shutdown.
func NewRateLimiter(sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[bucketKey]*bucket),
		now:     time.Now,
		idleTTL: 2 * sweepInterval,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.sweep(sweepInterval)
	return rl
}

// Stop ends the sweeper and waits for it to exit.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

// Limit admits perMinute requests per host within scope, refilled
// continuously. Rejected requests get 429 with Retry-After in seconds.
func (rl *RateLimiter) Limit(scope string, perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(bucketKey{scope: scope, host: clientIP(r)}, perMinute)
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "too many requests, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one token, or reports how long until one is available.
func (rl *RateLimiter) take(key bucketKey, perMinute int) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(perMinute), capacity: float64(perMinute), perSec: float64(perMinute) / 60}
		rl.buckets[key] = b
	} else {
		b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.seen).Seconds()*b.perSec)
	}
	b.seen = now

	if b.tokens >= 1 {
		b.tokens--
		return 0, true
	}
	if b.perSec <= 0 {
		return time.Minute, false
	}
	return time.Duration((1 - b.tokens) / b.perSec * float64(time.Second)), false
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	defer close(rl.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	for k, b := range rl.buckets {
		if b.seen.Before(cutoff) {
			delete(rl.buckets, k)
		}
	}
}

// clientIP drops the port so every connection from one host shares a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
