package service

import (
	"sync"

	"golang.org/x/time/rate"
)

// userLimiter keeps one token bucket per user.
type userLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func newUserLimiter(r float64, burst int) *userLimiter {
	if burst < 1 {
		burst = 1
	}

	return &userLimiter{
		limit:    rate.Limit(r),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *userLimiter) allow(userId string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[userId]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userId] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
