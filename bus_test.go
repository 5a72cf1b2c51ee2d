package slidez

import (
	"context"
	"testing"
)

func TestBus_EmitDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []int

	bus.Subscribe(TopicReady, func(_ context.Context, _ Event) { order = append(order, 1) })
	bus.Subscribe(TopicReady, func(_ context.Context, _ Event) { order = append(order, 2) })
	bus.Subscribe(TopicReady, func(_ context.Context, _ Event) { order = append(order, 3) })

	bus.Emit(context.Background(), Event{Topic: TopicReady})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", order)
	}
}

func TestBus_EmitOnlyMatchingTopic(t *testing.T) {
	bus := NewBus()
	var got []Topic

	bus.Subscribe(TopicPlaySlideshow, func(_ context.Context, e Event) { got = append(got, e.Topic) })

	bus.Emit(context.Background(), Event{Topic: TopicStopSlideshow})
	bus.Emit(context.Background(), Event{Topic: TopicPlaySlideshow})

	if len(got) != 1 || got[0] != TopicPlaySlideshow {
		t.Errorf("expected only play_slideshow, got %v", got)
	}
}

func TestBus_EmitCarriesPayload(t *testing.T) {
	bus := NewBus()
	var got Event

	bus.Subscribe(TopicChangingSlide, func(_ context.Context, e Event) { got = e })
	bus.Emit(context.Background(), Event{
		Topic:     TopicChangingSlide,
		SliderID:  "hero",
		Index:     2,
		PrevIndex: 0,
		Slide:     Slide{Index: 2, Content: "third"},
	})

	if got.SliderID != "hero" || got.Index != 2 || got.PrevIndex != 0 || got.Slide.Content != "third" {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestSubscription_Close(t *testing.T) {
	bus := NewBus()
	calls := 0

	sub := bus.Subscribe(TopicReady, func(_ context.Context, _ Event) { calls++ })
	bus.Emit(context.Background(), Event{Topic: TopicReady})
	sub.Close()
	sub.Close()
	bus.Emit(context.Background(), Event{Topic: TopicReady})

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if n := bus.Subscribers(TopicReady); n != 0 {
		t.Errorf("expected 0 subscribers, got %d", n)
	}
}

func TestBus_UnsubscribeDuringEmit(t *testing.T) {
	bus := NewBus()
	var second int
	var first *Subscription

	first = bus.Subscribe(TopicReady, func(_ context.Context, _ Event) { first.Close() })
	bus.Subscribe(TopicReady, func(_ context.Context, _ Event) { second++ })

	bus.Emit(context.Background(), Event{Topic: TopicReady})

	if second != 1 {
		t.Errorf("expected second handler to run during the same emit, got %d", second)
	}
	if n := bus.Subscribers(TopicReady); n != 1 {
		t.Errorf("expected 1 subscriber left, got %d", n)
	}
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus()
	var got []Topic

	subs := bus.SubscribeAll(func(_ context.Context, e Event) { got = append(got, e.Topic) })
	for _, topic := range Topics {
		bus.Emit(context.Background(), Event{Topic: topic})
	}

	if len(subs) != len(Topics) {
		t.Fatalf("expected %d subscriptions, got %d", len(Topics), len(subs))
	}
	if len(got) != len(Topics) {
		t.Errorf("expected %d events, got %d", len(Topics), len(got))
	}
}
