package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter rate limits actions per key.
type Limiter interface {
	Allow(key string) bool
	Wait(ctx context.Context, key string) error
}

// sweepInterval is how often idle limiters are dropped.
const sweepInterval = time.Minute

// InMemoryLimiter is an implementation of Limiter stored in memory.
// Limiters whose bucket has refilled are dropped every sweepInterval; a
// fresh limiter behaves the same, so keys stay bounded by recent activity.
type InMemoryLimiter struct {
	keys map[string]*rate.Limiter
	mu   sync.Mutex
	r    rate.Limit
	b    int

	sweepEvery time.Duration
	lastSweep  time.Time
}

var _ Limiter = (*InMemoryLimiter)(nil)

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(20, time.Minute, 20) -> allows 20 messages a minute per chat.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	return &InMemoryLimiter{
		keys:       make(map[string]*rate.Limiter),
		r:          rate.Every(per / time.Duration(requests)),
		b:          burst,
		sweepEvery: sweepInterval,
		lastSweep:  time.Now(),
	}
}

func (l *InMemoryLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now := time.Now(); now.Sub(l.lastSweep) >= l.sweepEvery {
		l.sweep(now)
	}

	limiter, exists := l.keys[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.keys[key] = limiter
	}
	return limiter
}

// Allow checks if key may act now.
func (l *InMemoryLimiter) Allow(key string) bool {
	return l.get(key).Allow()
}

// Wait blocks until key may act or ctx is done.
func (l *InMemoryLimiter) Wait(ctx context.Context, key string) error {
	return l.get(key).Wait(ctx)
}

// sweep drops limiters with a full bucket. Callers hold l.mu.
func (l *InMemoryLimiter) sweep(now time.Time) {
	for key, limiter := range l.keys {
		if limiter.TokensAt(now) >= float64(l.b) {
			delete(l.keys, key)
		}
	}
	l.lastSweep = now
}

// Len returns the number of keys with a live limiter.
func (l *InMemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}
