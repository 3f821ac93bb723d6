package ratelimiter

import (
	"sync"
	"time"
)

// Config carries the limiter settings read from the environment.
type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// Limiter is a per-client request limiter.
type Limiter interface {
	Allow(clientID string) (bool, time.Duration)
}

// FixedWindowRateLimiter counts requests per client in a fixed window.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	limit   int
	window  time.Duration
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   limit,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	for range ticker.C {
		rl.Lock()
		rl.clients = make(map[string]int)
		rl.Unlock()
	}
}

// Allow reports whether the client may proceed, and how long to wait if not.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	if rl.clients[clientID] < rl.limit {
		rl.clients[clientID]++
		return true, 0
	}
	return false, rl.window
}
