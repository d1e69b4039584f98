package summarizer

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter implements token bucket rate limiting for outbound AI API
// calls. It keeps a burst of chunk summarizations from overwhelming the
// provider's request quota.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter with the specified sustained rate and
// burst capacity.
//
// Parameters:
//   - requestsPerSecond: maximum sustained request rate (e.g. 2.0)
//   - burst: number of requests that may be made immediately (e.g. 5)
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Allow blocks until a token is available or the context is canceled.
// It should be called before making a rate-limited request.
func (r *RateLimiter) Allow(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
