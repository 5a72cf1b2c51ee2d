package slidez

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// RejectReason says why a navigation request was refused.
type RejectReason string

const (
	// RejectBusy means a transition is already in flight.
	RejectBusy RejectReason = "busy"
	// RejectSingleSlide means there is nothing to navigate to.
	RejectSingleSlide RejectReason = "single_slide"
	// RejectBoundary means a step would wrap while carousel mode is off.
	RejectBoundary RejectReason = "boundary"
	// RejectOutOfRange means an explicit index does not exist.
	RejectOutOfRange RejectReason = "out_of_range"
	// RejectClosed means the slider has been closed.
	RejectClosed RejectReason = "closed"
)

// sliderOptions holds construction options for a Slider.
type sliderOptions struct {
	id      string
	clock   clockz.Clock
	cache   *ImageCache
	metrics MetricsProvider
}

// Option configures a Slider.
type Option func(*sliderOptions)

// WithID sets the slider ID. Without it a random UUID is used.
func WithID(id string) Option {
	return func(o *sliderOptions) {
		o.id = id
	}
}

// WithClock sets a custom clock for the transition window and autoplay.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(clock clockz.Clock) Option {
	return func(o *sliderOptions) {
		o.clock = clock
	}
}

// WithCache sets the media cache. Without it the process-wide
// SharedImageCache is used.
func WithCache(cache *ImageCache) Option {
	return func(o *sliderOptions) {
		o.cache = cache
	}
}

// WithMetrics sets a metrics provider.
func WithMetrics(provider MetricsProvider) Option {
	return func(o *sliderOptions) {
		o.metrics = provider
	}
}

// Slider owns an ordered set of slides and moves between them one timed
// transition at a time.
//
// A Slider is safe for concurrent use. Lifecycle events are delivered on its
// Bus after internal state has been updated and without holding any lock, so
// handlers may call back into the Slider.
type Slider struct {
	id      string
	cfg     Config
	slides  []Slide
	clock   clockz.Clock
	cache   *ImageCache
	metrics MetricsProvider
	bus     *Bus

	mu            sync.Mutex
	ctx           context.Context
	started       bool
	closed        bool
	current       int
	incoming      int
	phase         Phase
	direction     Direction
	autoplay      *task
	generation    uint64
	pausedByHover bool
	gesture       GestureRecognizer
}

// SliderState is a point-in-time view of a Slider.
type SliderState struct {
	ID            string
	Index         int
	Incoming      int
	Phase         Phase
	Direction     Direction
	Playing       bool
	PausedByHover bool
	Closed        bool
}

// Affordances reports which navigation controls currently do something.
type Affordances struct {
	Prev bool
	Next bool
	Play bool
}

// New creates a Slider over slides. The slides are copied and frozen; slides
// without a type take cfg.FixedSlideType.
//
// Example:
//
//	slider, err := slidez.New(slides, slidez.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	slider.Subscribe(slidez.TopicNewActiveSlide, func(ctx context.Context, e slidez.Event) {
//	    view.Show(e.Slide)
//	})
//	slider.Start(ctx)
func New(slides []Slide, cfg Config, opts ...Option) (*Slider, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := sliderOptions{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.cache == nil {
		o.cache = SharedImageCache()
	}
	if o.metrics == nil {
		o.metrics = NoOpMetricsProvider{}
	}

	cfg.ExtraClasses = slices.Clone(cfg.ExtraClasses)
	return &Slider{
		id:      o.id,
		cfg:     cfg,
		slides:  freezeSlides(slides, cfg.FixedSlideType),
		clock:   o.clock,
		cache:   o.cache,
		metrics: o.metrics,
		bus:     NewBus(),
		ctx:     context.Background(),
	}, nil
}

// ID returns the slider ID.
func (s *Slider) ID() string { return s.id }

// Config returns the options the slider was built with.
func (s *Slider) Config() Config {
	cfg := s.cfg
	cfg.ExtraClasses = slices.Clone(s.cfg.ExtraClasses)
	return cfg
}

// Bus returns the slider's event bus.
func (s *Slider) Bus() *Bus { return s.bus }

// Subscribe registers h for topic on the slider's bus.
func (s *Slider) Subscribe(topic Topic, h Handler) *Subscription {
	return s.bus.Subscribe(topic, h)
}

// Len returns the number of slides.
func (s *Slider) Len() int { return len(s.slides) }

// Slides returns a copy of the slides.
func (s *Slider) Slides() []Slide { return slices.Clone(s.slides) }

// Slide returns the slide at i.
func (s *Slider) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(s.slides) {
		return Slide{}, false
	}
	return s.slides[i], true
}

// Index returns the active slide. It changes when a transition window ends.
func (s *Slider) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Incoming returns the slide being transitioned to, or the active slide
// when idle.
func (s *Slider) Incoming() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incoming
}

// Phase returns the transition phase.
func (s *Slider) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Direction returns the direction of the transition in flight.
func (s *Slider) Direction() Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// Snapshot returns the current state.
func (s *Slider) Snapshot() SliderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SliderState{
		ID:            s.id,
		Index:         s.current,
		Incoming:      s.incoming,
		Phase:         s.phase,
		Direction:     s.direction,
		Playing:       s.autoplay != nil,
		PausedByHover: s.pausedByHover,
		Closed:        s.closed,
	}
}

// Affordances reports which controls are live. Outside carousel mode the
// previous control is inert on the first slide and the next and play
// controls are inert on the last. During a transition the incoming slide
// decides.
func (s *Slider) Affordances() Affordances {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.slides)
	if n < 2 || s.closed {
		return Affordances{}
	}
	if s.cfg.Carousel {
		return Affordances{Prev: true, Next: true, Play: true}
	}
	return Affordances{
		Prev: s.incoming > 0,
		Next: s.incoming < n-1,
		Play: s.incoming < n-1,
	}
}

// Start emits ready, populates the first slide, emits first_populated and
// starts autoplay when configured. ctx is passed to event handlers and
// media loads. Starting twice, or after Close, does nothing.
func (s *Slider) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.ctx = ctx

	var out outbox
	s.emit(ctx, &out, Event{Topic: TopicReady})
	out.add(func() {
		capitan.Emit(ctx, SliderReady, KeySlider.Field(s.id))
	})

	s.populate(&out, 0)
	first := s.slides[0]
	s.emit(ctx, &out, Event{Topic: TopicFirstPopulated, Slide: first})
	out.add(func() {
		capitan.Emit(ctx, SliderFirstPopulated,
			KeySlider.Field(s.id),
			KeyIndex.Field(0),
		)
	})

	if s.cfg.Autoplay {
		s.play(&out, false)
	}
	s.mu.Unlock()

	out.flush()
}

// Close cancels autoplay and makes later commands inert. Media loads and a
// transition window already in flight are left to complete. Closing twice
// does nothing.
func (s *Slider) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	ctx := s.ctx

	var out outbox
	if s.autoplay != nil {
		s.halt()
		out.add(func() { s.metrics.OnPlaybackChange(false) })
	}
	s.pausedByHover = false
	s.gesture.Reset()
	s.mu.Unlock()

	out.add(func() {
		capitan.Emit(ctx, SliderClosed, KeySlider.Field(s.id))
	})
	out.flush()
}

// Request asks for a transition to t. It returns false, without any state
// change or event, when a transition is already in flight, when there is
// only one slide, when a step would cross a boundary outside carousel mode,
// or when an explicit index is out of range. Requests are never queued.
func (s *Slider) Request(t Target) bool {
	s.mu.Lock()
	var out outbox
	ok := s.request(&out, t)
	s.mu.Unlock()

	out.flush()
	return ok
}

// Navigate is a user navigation: it stops autoplay, then requests t.
// Autoplay does not resume on its own afterwards.
func (s *Slider) Navigate(t Target) bool {
	s.mu.Lock()
	var out outbox
	s.stop(&out)
	ok := s.request(&out, t)
	s.mu.Unlock()

	out.flush()
	return ok
}

// TouchStart feeds the start of a touch gesture. Ignored unless touch swipe
// is enabled.
func (s *Slider) TouchStart(p Point) {
	if !s.cfg.TouchSwipe {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.gesture.TouchStart(p)
	}
}

// TouchEnd completes a touch gesture. A horizontal swipe past the configured
// threshold navigates like a user command. It returns whether a transition
// started.
func (s *Slider) TouchEnd(p Point) bool {
	if !s.cfg.TouchSwipe {
		return false
	}
	s.mu.Lock()
	swipe, ok := s.gesture.TouchEnd(p)
	s.mu.Unlock()
	if !ok {
		return false
	}

	target, ok := swipe.Intent(float64(s.cfg.SwipeThreshold))
	if !ok {
		return false
	}
	return s.Navigate(target)
}

// request runs the transition protocol. Must hold mu.
func (s *Slider) request(out *outbox, t Target) bool {
	n := len(s.slides)
	switch {
	case s.closed:
		return s.reject(out, t, RejectClosed)
	case s.phase == PhaseTransitioning:
		return s.reject(out, t, RejectBusy)
	case n == 1:
		return s.reject(out, t, RejectSingleSlide)
	}

	var next int
	var dir Direction
	if t.Relative() {
		dir = t.Step()
		if !s.cfg.Carousel &&
			((dir == DirectionPrev && s.current == 0) || (dir == DirectionNext && s.current == n-1)) {
			return s.reject(out, t, RejectBoundary)
		}
		step := 1
		if dir == DirectionPrev {
			step = -1
		}
		next = (s.current + step + n) % n
	} else {
		next = t.Index()
		if next < 0 || next >= n {
			return s.reject(out, t, RejectOutOfRange)
		}
		dir = DirectionPrev
		if next > s.current {
			dir = DirectionNext
		}
	}

	prev := s.current
	s.phase = PhaseTransitioning
	s.direction = dir
	s.incoming = next

	// The window is armed now but new_active_slide waits until
	// changing_slide has been delivered, or its delivery has panicked.
	delivered := make(chan struct{})
	after(s.clock, s.cfg.TransitionDuration(), func() {
		<-delivered
		s.complete()
	})

	ctx := s.ctx
	s.populate(out, next)
	s.emit(ctx, out, Event{
		Topic:     TopicChangingSlide,
		Index:     next,
		PrevIndex: prev,
		Slide:     s.slides[next],
	})
	out.add(func() {
		capitan.Emit(ctx, TransitionStarted,
			KeySlider.Field(s.id),
			KeyIndex.Field(next),
			KeyPrevIndex.Field(prev),
			KeyDirection.Field(dir.String()),
		)
		s.metrics.OnTransition(prev, next)
	})
	out.finally(func() { close(delivered) })
	return true
}

// complete ends the transition window.
func (s *Slider) complete() {
	s.mu.Lock()
	s.current = s.incoming
	s.phase = PhaseIdle
	s.direction = DirectionNone
	index := s.current
	ctx := s.ctx

	var out outbox
	s.emit(ctx, &out, Event{
		Topic: TopicNewActiveSlide,
		Index: index,
		Slide: s.slides[index],
	})
	s.mu.Unlock()

	out.add(func() {
		capitan.Emit(ctx, TransitionCompleted,
			KeySlider.Field(s.id),
			KeyIndex.Field(index),
		)
	})
	out.flush()
}

func (s *Slider) reject(out *outbox, t Target, reason RejectReason) bool {
	ctx := s.ctx
	out.add(func() {
		capitan.Emit(ctx, TransitionRejected,
			KeySlider.Field(s.id),
			KeyDirection.Field(t.String()),
			KeyReason.Field(string(reason)),
		)
		s.metrics.OnRejected(reason)
	})
	return false
}

// populate resolves the media of slide index and warms the cache for its
// neighbours. A cached slide is shown immediately; otherwise slide_shown
// follows the load, even if the slider has moved on by then. Must hold mu.
func (s *Slider) populate(out *outbox, index int) {
	ctx := s.ctx
	slide := s.slides[index]
	if slide.HasMedia() {
		cached := s.cache.Ensure(ctx, slide.MediaURL, func() {
			var late outbox
			s.shown(ctx, &late, slide)
			late.flush()
		})
		if cached {
			s.shown(ctx, out, slide)
		}
	}

	// With two slides the next and previous neighbour are the same slide.
	n := len(s.slides)
	if n > 1 {
		s.cache.Prefetch(ctx, s.slides[(index+1)%n].MediaURL)
	}
	if n > 2 {
		s.cache.Prefetch(ctx, s.slides[(index-1+n)%n].MediaURL)
	}
}

func (s *Slider) shown(ctx context.Context, out *outbox, slide Slide) {
	s.emit(ctx, out, Event{
		Topic: TopicSlideShown,
		Index: slide.Index,
		Slide: slide,
	})
	out.add(func() {
		capitan.Emit(ctx, SlideShown,
			KeySlider.Field(s.id),
			KeyIndex.Field(slide.Index),
			KeyURL.Field(slide.MediaURL),
		)
	})
}

func (s *Slider) emit(ctx context.Context, out *outbox, e Event) {
	e.SliderID = s.id
	out.add(func() { s.bus.Emit(ctx, e) })
}

// outbox collects notifications produced while mu is held so they can be
// delivered, in order, once it is released. Finalizers run after delivery
// even when a handler panics.
type outbox struct {
	fns   []func()
	final []func()
}

func (o *outbox) add(fn func()) {
	o.fns = append(o.fns, fn)
}

func (o *outbox) finally(fn func()) {
	o.final = append(o.final, fn)
}

func (o *outbox) flush() {
	defer func() {
		for _, fn := range o.final {
			fn()
		}
	}()
	for _, fn := range o.fns {
		fn()
	}
}
