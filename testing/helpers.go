// Package testing provides test utilities and helpers for slidez sliders.
package testing

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/slidez"
)

// Slides builds n text slides.
func Slides(n int) []slidez.Slide {
	slides := make([]slidez.Slide, n)
	for i := range slides {
		slides[i] = slidez.Slide{Content: fmt.Sprintf("slide %d", i+1)}
	}
	return slides
}

// Recorder captures every event published on a slider's bus.
type Recorder struct {
	mu     sync.Mutex
	events []slidez.Event
}

// Record subscribes a new recorder to every topic of s.
func Record(s *slidez.Slider) *Recorder {
	r := &Recorder{}
	s.Bus().SubscribeAll(func(_ context.Context, e slidez.Event) {
		r.mu.Lock()
		r.events = append(r.events, e)
		r.mu.Unlock()
	})
	return r
}

// Events returns a copy of the captured events.
func (r *Recorder) Events() []slidez.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]slidez.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Topics returns the topics of the captured events in delivery order.
func (r *Recorder) Topics() []slidez.Topic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]slidez.Topic, len(r.events))
	for i, e := range r.events {
		out[i] = e.Topic
	}
	return out
}

// Count returns how many events of topic were captured.
func (r *Recorder) Count(topic slidez.Topic) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Topic == topic {
			n++
		}
	}
	return n
}

// Reset discards the captured events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForIndex waits until the slider settles on the expected index.
func WaitForIndex(t *testing.T, s *slidez.Slider, expected int, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return s.Phase() == slidez.PhaseIdle && s.Index() == expected
	})
}

// RequireIndex fails the test immediately if the slider is not on the expected index.
func RequireIndex(t *testing.T, s *slidez.Slider, expected int) {
	t.Helper()
	if got := s.Index(); got != expected {
		t.Fatalf("expected index %d, got %d", expected, got)
	}
}

// RequirePhase fails the test immediately if the slider is not in the expected phase.
func RequirePhase(t *testing.T, s *slidez.Slider, expected slidez.Phase) {
	t.Helper()
	if got := s.Phase(); got != expected {
		t.Fatalf("expected phase %s, got %s", expected, got)
	}
}

// MemoryLoader is a loader that accepts every URL and counts loads.
type MemoryLoader struct {
	mu    sync.Mutex
	calls map[string]int
}

// NewMemoryLoader creates an empty MemoryLoader.
func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{calls: make(map[string]int)}
}

// Load implements slidez.Loader.
func (l *MemoryLoader) Load(_ context.Context, url string) (slidez.Media, error) {
	l.mu.Lock()
	l.calls[url]++
	l.mu.Unlock()
	return slidez.Media{ContentType: "image/png"}, nil
}

// Calls returns how many times url was loaded.
func (l *MemoryLoader) Calls(url string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[url]
}

// NewTestSlider creates a started slider on a fake clock with its own
// image cache. The slider is closed when the test ends.
func NewTestSlider(t *testing.T, slides []slidez.Slide, cfg slidez.Config) (*slidez.Slider, *clockz.FakeClock, *Recorder) {
	t.Helper()
	clock := clockz.NewFakeClock()
	cache := slidez.NewImageCache(NewMemoryLoader())
	s, err := slidez.New(slides, cfg,
		slidez.WithID(t.Name()),
		slidez.WithClock(clock),
		slidez.WithCache(cache),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := Record(s)
	s.Start(context.Background())
	t.Cleanup(s.Close)
	return s, clock, rec
}
