// Package ratelimiter bounds the call rate against the paid price API.
package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface limits how often an operation, such as an external
// API call, may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter allows up to limit calls per interval and blocks the caller
// once the budget is spent.
type RateLimiter struct {
	limit     int           // calls allowed per interval
	interval  time.Duration // window after which the count resets
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded checks whether the limit has been reached and sleeps until
// the window resets if it has.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
