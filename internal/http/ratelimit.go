package http

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"
)

// writeLimit caps mutating requests per client per minute. Reads are
// unlimited; the dashboard polls freely.
const writeLimit = 120

// rateLimiter tracks per-client request counts over a one-minute window.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int

	done     chan struct{}
	stopOnce sync.Once
}

type clientWindow struct {
	start time.Time
	count int
}

func newRateLimiter(limit int) *rateLimiter {
	rl := &rateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		done:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

func (rl *rateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	win, ok := rl.clients[client]
	if !ok || now.Sub(win.start) > time.Minute {
		rl.clients[client] = &clientWindow{start: now, count: 1}
		return true
	}
	win.count++
	return win.count <= rl.limit
}

// sweep drops windows idle for ten minutes so the map does not grow with
// every client ever seen.
func (rl *rateLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for client, win := range rl.clients {
				if win.start.Before(cutoff) {
					delete(rl.clients, client)
				}
			}
			rl.mu.Unlock()
		case <-rl.done:
			return
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// limitWrites rejects mutating requests beyond the per-client budget.
func (s *Server) limitWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			if !s.limiter.allow(clientAddr(r)) {
				respondError(w, http.StatusTooManyRequests, errors.New("too many requests, slow down"))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
