package ratelimit

import "time"

// Limiter decides whether a client may spend one request.
type Limiter interface {
	// Allow reports whether key may proceed. A refused key also gets the time
	// until its next token.
	Allow(key string) (bool, time.Duration)
}

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

// Now returns current time.
func (RealClock) Now() time.Time { return time.Now() }
