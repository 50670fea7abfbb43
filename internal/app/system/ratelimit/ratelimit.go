// internal/app/system/ratelimit/ratelimit.go
// Package ratelimit throttles write requests per client.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// Limiter counts requests per key in fixed windows. Safe for concurrent use.
// Expired windows are swept by a background goroutine until Close.
type Limiter struct {
	limit  int
	window time.Duration

	mu     sync.Mutex
	counts map[string]*bucket

	done      chan struct{}
	closeOnce sync.Once
}

type bucket struct {
	n     int
	reset time.Time
}

// New returns a Limiter admitting limit requests per key every window.
func New(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		limit:  limit,
		window: window,
		counts: make(map[string]*bucket),
		done:   make(chan struct{}),
	}
	go l.sweep(2 * window)
	return l
}

// Allow counts one request for key and reports whether it fits the window.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.counts[key]
	if !ok || !now.Before(b.reset) {
		l.counts[key] = &bucket{n: 1, reset: now.Add(l.window)}
		return true
	}
	if b.n >= l.limit {
		return false
	}
	b.n++
	return true
}

func (l *Limiter) sweep(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-l.done:
			return
		case now := <-t.C:
			l.mu.Lock()
			for k, b := range l.counts {
				if !now.Before(b.reset) {
					delete(l.counts, k)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Close stops the sweeper. Allow keeps working afterwards.
func (l *Limiter) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

// ClientIP is the host part of r.RemoteAddr. Forwarding headers are not
// read here; behind a trusted proxy, run chi's middleware.RealIP first so
// RemoteAddr already holds the client address.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// Writes limits state-changing requests per client IP. Safe methods pass
// through uncounted. A nil limiter disables limiting. onLimited writes the
// rejection.
func Writes(l *Limiter, onLimited http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			if !l.Allow(ClientIP(r)) {
				onLimited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
