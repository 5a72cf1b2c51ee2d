package slidez

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key slider and cache events.
type MetricsProvider interface {
	// OnTransition is called when a transition window opens.
	OnTransition(from, to int)

	// OnRejected is called when a navigation request fails a precondition.
	OnRejected(reason RejectReason)

	// OnPlaybackChange is called when autoplay starts or stops for any reason.
	OnPlaybackChange(playing bool)

	// OnMediaLoaded is called when the cache marks a URL loaded.
	OnMediaLoaded(url string, latency time.Duration)

	// OnMediaFailed is called when the load pipeline fails for a URL.
	OnMediaFailed(url string, err error)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnTransition(_, _ int)                   {}
func (NoOpMetricsProvider) OnRejected(_ RejectReason)               {}
func (NoOpMetricsProvider) OnPlaybackChange(_ bool)                 {}
func (NoOpMetricsProvider) OnMediaLoaded(_ string, _ time.Duration) {}
func (NoOpMetricsProvider) OnMediaFailed(_ string, _ error)         {}
