package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter throttles requests per client IP with a token bucket.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	stop    chan struct{}
}

type client struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter creates a limiter and starts a janitor that evicts
// idle clients every cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}
	go rl.janitor(cleanupInterval)
	return rl
}

// Stop terminates the janitor goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit enforces maxPerMinute requests per client IP. Rejected requests
// get 429 with a Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	burst := float64(maxPerMinute)
	perSecond := burst / 60

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(clientKey(r), burst, perSecond) {
				w.Header().Set("Retry-After", strconv.Itoa(int(60/float64(maxPerMinute))+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take refills the client's bucket for the elapsed time and consumes one
// token if available.
func (rl *RateLimiter) take(key string, burst, perSecond float64) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{tokens: burst, lastSeen: now}
		rl.clients[key] = c
	}

	c.tokens += now.Sub(c.lastSeen).Seconds() * perSecond
	if c.tokens > burst {
		c.tokens = burst
	}
	c.lastSeen = now

	if c.tokens < 1 {
		return false
	}
	c.tokens--
	return true
}

func (rl *RateLimiter) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for key, c := range rl.clients {
				if c.lastSeen.Before(cutoff) {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// clientKey buckets by IP so clients behind the same NAT share a budget
// but different ports of one host do not split it.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
