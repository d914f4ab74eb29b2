package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // refill, tokens per second
	Burst      int           // bucket size
	TTL        time.Duration // idle buckets are dropped after it, 0 keeps them
	MaxBuckets int           // tracked clients, the idlest one is evicted beyond it, 0 is unbounded
}

// TokenBucketLimiter keeps one bucket per operator or client address.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// NewTokenBucketLimiter creates limiter with explicit config and injected clock.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes one token from key's bucket.
func (l *TokenBucketLimiter) Allow(key string) (bool, time.Duration) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		l.makeRoom()
		b = &bucket{tokens: float64(l.cfg.Burst), seen: now}
		l.buckets[key] = b
	}
	b.refill(now, l.cfg.Rate, float64(l.cfg.Burst))

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	wait := time.Duration((1 - b.tokens) / l.cfg.Rate * float64(time.Second))
	return false, wait
}

// Len returns the number of tracked clients.
func (l *TokenBucketLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (b *bucket) refill(now time.Time, rate, burst float64) {
	dt := now.Sub(b.seen)
	if dt <= 0 {
		return
	}
	b.tokens = math.Min(burst, b.tokens+dt.Seconds()*rate)
	b.seen = now
}

// makeRoom evicts the least recently seen bucket when the limit is reached.
// Must be called with l.mu held.
func (l *TokenBucketLimiter) makeRoom() {
	if l.cfg.MaxBuckets == 0 || len(l.buckets) < l.cfg.MaxBuckets {
		return
	}
	var (
		idlest string
		oldest time.Time
	)
	for k, b := range l.buckets {
		if idlest == "" || b.seen.Before(oldest) {
			idlest, oldest = k, b.seen
		}
	}
	delete(l.buckets, idlest)
}

// sweep drops idle buckets at most once per max(TTL/2, 1m).
// Must be called with l.mu held.
func (l *TokenBucketLimiter) sweep(now time.Time) {
	if l.cfg.TTL <= 0 || now.Before(l.nextSweep) {
		return
	}
	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}
	l.nextSweep = now.Add(interval)

	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
