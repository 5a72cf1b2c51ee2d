package slidez

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"
	"golang.org/x/sync/singleflight"
)

// ImageCache records which media URLs have finished loading and deduplicates
// load requests across every slider that shares it.
//
// The loaded set is write-once and monotonic: a URL is added at most once,
// never evicted and never reverted, for the lifetime of the cache. Do not
// replace it with a bounded cache; sliders rely on a loaded URL staying
// loaded. Failed loads are not recorded, so a later request retries.
type ImageCache struct {
	pipeline pipz.Chainable[*LoadRequest]
	clock    clockz.Clock
	metrics  MetricsProvider
	failures *failureRing

	group  singleflight.Group
	mu     sync.RWMutex
	loaded map[string]struct{}
	loads  atomic.Int64
}

// NewImageCache creates a cache that loads media through loader, wrapped by
// the given pipeline options.
//
// Example:
//
//	cache := slidez.NewImageCache(
//	    slidez.DefaultLoader("./assets"),
//	    slidez.WithBackoff(3, 200*time.Millisecond),
//	    slidez.WithTimeout(10*time.Second),
//	)
func NewImageCache(loader Loader, opts ...LoadOption) *ImageCache {
	c := &ImageCache{
		clock:  clockz.RealClock,
		loaded: make(map[string]struct{}),
	}
	terminal := pipz.Apply(loadID, func(ctx context.Context, req *LoadRequest) (*LoadRequest, error) {
		req.Attempts++
		c.loads.Add(1)
		media, err := loader.Load(ctx, req.URL)
		if err != nil {
			return req, err
		}
		req.Media = media
		return req, nil
	})
	c.pipeline = buildPipeline(terminal, opts)
	return c
}

// Clock sets the clock used to measure load latency. Must be called before use.
func (c *ImageCache) Clock(clock clockz.Clock) *ImageCache {
	c.clock = clock
	return c
}

// Metrics sets a metrics provider. Must be called before use.
func (c *ImageCache) Metrics(provider MetricsProvider) *ImageCache {
	c.metrics = provider
	return c
}

// FailureHistory keeps the n most recent load failures for Failures().
// Use 0 (default) to keep none. Must be called before use.
func (c *ImageCache) FailureHistory(n int) *ImageCache {
	c.failures = newFailureRing(n)
	return c
}

var shared = sync.OnceValue(func() *ImageCache {
	return NewImageCache(DefaultLoader("."))
})

// SharedImageCache returns the process-wide cache used by sliders that were
// not given one explicitly. It loads from the network and the working directory.
func SharedImageCache() *ImageCache {
	return shared()
}

// Loaded reports whether url has finished loading.
func (c *ImageCache) Loaded(url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.loaded[url]
	return ok
}

// Len returns the number of loaded URLs.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.loaded)
}

// Loads returns how many times the underlying loader has run.
func (c *ImageCache) Loads() int64 {
	return c.loads.Load()
}

// Failures returns recent load failures, oldest first. Returns nil unless
// FailureHistory was configured.
func (c *ImageCache) Failures() []LoadFailure {
	return c.failures.all()
}

// Ensure reports whether url is already loaded. If it is not, a load starts
// in the background and onLoaded (when non-nil) runs after the URL has been
// marked loaded. onLoaded is not called when the load fails. The empty URL
// has nothing to load and counts as cached.
//
// The background load is detached from ctx cancellation: tearing down the
// caller does not abort loads already in flight.
func (c *ImageCache) Ensure(ctx context.Context, url string, onLoaded func()) bool {
	if url == "" || c.Loaded(url) {
		return true
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := c.Load(ctx, url); err != nil {
			return
		}
		if onLoaded != nil {
			onLoaded()
		}
	}()
	return false
}

// Prefetch warms the cache for url without any completion callback.
func (c *ImageCache) Prefetch(ctx context.Context, url string) {
	c.Ensure(ctx, url, nil)
}

// Load loads url and blocks until it is marked loaded or the load fails.
// Concurrent calls for the same URL share one pipeline run.
func (c *ImageCache) Load(ctx context.Context, url string) error {
	if c.Loaded(url) {
		return nil
	}
	_, err, _ := c.group.Do(url, func() (any, error) {
		// A load that finished between the fast path and here must not rerun.
		if c.Loaded(url) {
			return nil, nil
		}
		return nil, c.run(ctx, url)
	})
	return err
}

// run executes the load pipeline once and records the outcome.
func (c *ImageCache) run(ctx context.Context, url string) error {
	start := c.clock.Now()
	req := &LoadRequest{URL: url}
	if _, err := c.pipeline.Process(ctx, req); err != nil {
		c.failures.push(LoadFailure{URL: url, Err: err, At: c.clock.Now()})
		capitan.Emit(ctx, MediaLoadFailed,
			KeyURL.Field(url),
			KeyError.Field(err.Error()),
		)
		if c.metrics != nil {
			c.metrics.OnMediaFailed(url, err)
		}
		return err
	}

	c.mu.Lock()
	c.loaded[url] = struct{}{}
	c.mu.Unlock()

	latency := c.clock.Since(start)
	capitan.Emit(ctx, MediaLoaded,
		KeyURL.Field(url),
		KeyLatency.Field(latency),
	)
	if c.metrics != nil {
		c.metrics.OnMediaLoaded(url, latency)
	}
	return nil
}
