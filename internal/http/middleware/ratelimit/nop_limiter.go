package ratelimit

import "time"

// NopLimiter lets every request through. Used when RATE_LIMIT_ENABLED=false.
type NopLimiter struct{}

// Allow always allows.
func (NopLimiter) Allow(string) (bool, time.Duration) { return true, 0 }

// NewNopLimiter returns NopLimiter
func NewNopLimiter() Limiter { return NopLimiter{} }
