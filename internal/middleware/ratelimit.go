package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter is a fixed-window counter per client address. Resizing is the
// expensive path, so it guards the image routes.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	clients   map[string]int
	reset     map[string]time.Time
	nextSweep time.Time
}

// NewRateLimiter allows limit requests per client per minute; a negative
// limit disables limiting.
func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  time.Minute,
		now:     time.Now,
		clients: make(map[string]int),
		reset:   make(map[string]time.Time),
	}
}

func (rl *RateLimiter) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.limit < 0 {
			next.ServeHTTP(w, r)
			return
		}

		client := clientAddr(r)

		rl.mu.Lock()
		now := rl.now()
		rl.sweep(now)
		if resetTime, exists := rl.reset[client]; !exists || !now.Before(resetTime) {
			rl.reset[client] = now.Add(rl.window)
			rl.clients[client] = 0
		}
		resetAt := rl.reset[client]

		if rl.clients[client] >= rl.limit {
			rl.mu.Unlock()
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))
			http.Error(w, "Rate limit exceeded. Try again later.", http.StatusTooManyRequests)
			return
		}

		rl.clients[client]++
		remaining := rl.limit - rl.clients[client]
		rl.mu.Unlock()

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		next.ServeHTTP(w, r)
	})
}

// sweep drops clients whose window has expired, at most once per window.
// Must be called with mu held.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Before(rl.nextSweep) {
		return
	}
	for client, resetTime := range rl.reset {
		if !now.Before(resetTime) {
			delete(rl.reset, client)
			delete(rl.clients, client)
		}
	}
	rl.nextSweep = now.Add(rl.window)
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
