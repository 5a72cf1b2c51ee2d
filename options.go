package slidez

import (
	"time"

	"github.com/zoobzio/pipz"
)

// Pipeline identities.
var (
	loadID    = pipz.NewIdentity("slidez:load", "Runs the media loader")
	retryID   = pipz.NewIdentity("slidez:load-retry", "Retries failed media loads")
	backoffID = pipz.NewIdentity("slidez:load-backoff", "Retries failed media loads with exponential backoff")
	timeoutID = pipz.NewIdentity("slidez:load-timeout", "Bounds a media load")
	breakerID = pipz.NewIdentity("slidez:load-breaker", "Stops loading after repeated failures")
	limiterID = pipz.NewIdentity("slidez:load-rate-limit", "Paces media loads")
)

// LoadOption wraps the load pipeline of an ImageCache with middleware.
// Options apply in order, each wrapping the result of the previous one.
type LoadOption func(pipz.Chainable[*LoadRequest]) pipz.Chainable[*LoadRequest]

// buildPipeline wraps a terminal with load options.
func buildPipeline(terminal pipz.Chainable[*LoadRequest], opts []LoadOption) pipz.Chainable[*LoadRequest] {
	pipeline := terminal
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return pipeline
}

// WithRetry retries a failed load immediately, up to maxAttempts runs in total.
// For delays between attempts, use WithBackoff instead.
func WithRetry(maxAttempts int) LoadOption {
	return func(p pipz.Chainable[*LoadRequest]) pipz.Chainable[*LoadRequest] {
		return pipz.NewRetry(retryID, p, maxAttempts)
	}
}

// WithBackoff retries a failed load with increasing delays: baseDelay,
// 2*baseDelay, 4*baseDelay, etc.
func WithBackoff(maxAttempts int, baseDelay time.Duration) LoadOption {
	return func(p pipz.Chainable[*LoadRequest]) pipz.Chainable[*LoadRequest] {
		return pipz.NewBackoff(backoffID, p, maxAttempts, baseDelay)
	}
}

// WithTimeout fails a load that takes longer than d. Applied after a retry
// option it bounds the whole retry sequence; applied before, each attempt.
func WithTimeout(d time.Duration) LoadOption {
	return func(p pipz.Chainable[*LoadRequest]) pipz.Chainable[*LoadRequest] {
		return pipz.NewTimeout(timeoutID, p, d)
	}
}

// WithCircuitBreaker rejects loads without running them once failures
// consecutive loads have failed, until recovery has passed.
func WithCircuitBreaker(failures int, recovery time.Duration) LoadOption {
	return func(p pipz.Chainable[*LoadRequest]) pipz.Chainable[*LoadRequest] {
		return pipz.NewCircuitBreaker(breakerID, p, failures, recovery)
	}
}

// WithRateLimit paces loads to rate per second with the given burst. Loads
// over the limit wait for a token.
func WithRateLimit(rate float64, burst int) LoadOption {
	return func(p pipz.Chainable[*LoadRequest]) pipz.Chainable[*LoadRequest] {
		return pipz.NewRateLimiter[*LoadRequest](limiterID, rate, burst, p)
	}
}
