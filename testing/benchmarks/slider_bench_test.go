package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/slidez"
)

type nopLoader struct{}

func (nopLoader) Load(context.Context, string) (slidez.Media, error) {
	return slidez.Media{ContentType: "image/png"}, nil
}

func benchSlides(n int) []slidez.Slide {
	slides := make([]slidez.Slide, n)
	for i := range slides {
		slides[i] = slidez.Slide{Content: "slide", MediaURL: fmt.Sprintf("img/%d.png", i)}
	}
	return slides
}

func BenchmarkImageCache_EnsureLoaded(b *testing.B) {
	cache := slidez.NewImageCache(nopLoader{})
	ctx := context.Background()
	if err := cache.Load(ctx, "hero.png"); err != nil {
		b.Fatalf("Load() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Ensure(ctx, "hero.png", nil)
	}
}

func BenchmarkImageCache_LoadParallel(b *testing.B) {
	cache := slidez.NewImageCache(nopLoader{})
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = cache.Load(ctx, fmt.Sprintf("img/%d.png", i%64))
			i++
		}
	})
}

func BenchmarkSlider_RequestComplete(b *testing.B) {
	clock := clockz.NewFakeClock()
	cache := slidez.NewImageCache(nopLoader{})
	cfg := slidez.DefaultConfig()

	s, err := slidez.New(benchSlides(8), cfg,
		slidez.WithClock(clock),
		slidez.WithCache(cache),
	)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	done := make(chan struct{}, 1)
	s.Subscribe(slidez.TopicNewActiveSlide, func(context.Context, slidez.Event) {
		done <- struct{}{}
	})
	s.Start(context.Background())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.Request(slidez.Next()) {
			b.Fatal("request rejected")
		}
		clock.Advance(cfg.TransitionDuration())
		<-done
	}
}

func BenchmarkBus_Emit(b *testing.B) {
	bus := slidez.NewBus()
	for i := 0; i < 4; i++ {
		bus.Subscribe(slidez.TopicChangingSlide, func(context.Context, slidez.Event) {})
	}
	ctx := context.Background()
	e := slidez.Event{Topic: slidez.TopicChangingSlide, Index: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Emit(ctx, e)
	}
}
