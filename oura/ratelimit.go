package oura

import (
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// rateLimiter encapsulates the local token-bucket rate limiting
// to ensure we do not exceed Oura's limits (5000 requests per 5 minutes).
type rateLimiter struct {
	limiter        *rate.Limiter
	isAutoLimiting atomic.Bool
}

// newRateLimiter initializes a rate limiter configured for 5000 requests per
// 5-minute window. The burst matches the full window quota, so interactive
// use is never paced; only sustained hot loops are.
func newRateLimiter() *rateLimiter {
	// 5000 requests per 5 minutes = 5000 / 300 requests per second
	limit := rate.Limit(5000.0 / 300.0)

	rl := &rateLimiter{
		limiter: rate.NewLimiter(limit, 5000),
	}
	rl.isAutoLimiting.Store(true) // Default to honoring local rate limits
	return rl
}

// Wait blocks until a token is available or the context is canceled.
func (rl *rateLimiter) Wait(ctx context.Context) error {
	if !rl.isAutoLimiting.Load() {
		return nil
	}
	return rl.limiter.Wait(ctx)
}

// SetAutoLimiting enables or disables the rate limiter.
func (rl *rateLimiter) SetAutoLimiting(enabled bool) {
	rl.isAutoLimiting.Store(enabled)
}
