package slidez

import (
	"context"
	"sync"
)

// Topic names a lifecycle notification.
type Topic string

// Lifecycle topics and the fields their events carry.
const (
	// TopicReady fires once the slider is constructed, before the first slide is populated.
	TopicReady Topic = "ready"
	// TopicFirstPopulated carries Slide for slide 0.
	TopicFirstPopulated Topic = "first_populated"
	// TopicSlideShown carries Index and Slide once the slide's media is available.
	TopicSlideShown Topic = "slide_shown"
	// TopicChangingSlide carries Index, Slide (incoming) and PrevIndex.
	TopicChangingSlide Topic = "changing_slide"
	// TopicNewActiveSlide carries Index and Slide once the transition window elapses.
	TopicNewActiveSlide Topic = "new_active_slide"
	// TopicPlaySlideshow fires when autoplay starts.
	TopicPlaySlideshow Topic = "play_slideshow"
	// TopicStopSlideshow fires when autoplay is stopped by a user action.
	TopicStopSlideshow Topic = "stop_slideshow"
)

// Topics lists every topic in lifecycle order.
var Topics = []Topic{
	TopicReady,
	TopicFirstPopulated,
	TopicSlideShown,
	TopicChangingSlide,
	TopicNewActiveSlide,
	TopicPlaySlideshow,
	TopicStopSlideshow,
}

// Event is a lifecycle notification. Fields not carried by a topic are zero.
type Event struct {
	Topic     Topic
	SliderID  string
	Index     int
	PrevIndex int
	Slide     Slide
}

// Handler receives events. Handlers run on the goroutine that triggered the
// event and must not assume any particular goroutine.
type Handler func(ctx context.Context, e Event)

// Bus dispatches events synchronously, in subscription order, to every
// handler registered for the event's topic. A handler that panics is not
// recovered.
type Bus struct {
	mu   sync.RWMutex
	seq  uint64
	subs map[Topic][]*Subscription
}

// Subscription is a handler registration. Close removes it.
type Subscription struct {
	bus     *Bus
	topic   Topic
	id      uint64
	handler Handler
	once    sync.Once
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]*Subscription)}
}

// Subscribe registers h for topic.
func (b *Bus) Subscribe(topic Topic, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	sub := &Subscription{bus: b, topic: topic, id: b.seq, handler: h}
	b.subs[topic] = append(b.subs[topic], sub)
	return sub
}

// SubscribeAll registers h for every topic and returns one subscription per topic.
func (b *Bus) SubscribeAll(h Handler) []*Subscription {
	subs := make([]*Subscription, 0, len(Topics))
	for _, topic := range Topics {
		subs = append(subs, b.Subscribe(topic, h))
	}
	return subs
}

// Close unregisters the subscription. Closing twice is a no-op.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.unsubscribe(s)
	})
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.topic]
	for i, candidate := range list {
		if candidate.id == sub.id {
			// Copy so in-flight Emit snapshots are left untouched.
			next := make([]*Subscription, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			b.subs[sub.topic] = next
			return
		}
	}
}

// Subscribers returns the number of handlers registered for topic.
func (b *Bus) Subscribers(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

// Emit delivers e to every current subscriber of e.Topic before returning.
func (b *Bus) Emit(ctx context.Context, e Event) {
	b.mu.RLock()
	list := b.subs[e.Topic]
	b.mu.RUnlock()

	for _, sub := range list {
		sub.handler(ctx, e)
	}
}
