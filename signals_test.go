package slidez

import "testing"

func TestSignalNames(t *testing.T) {
	cases := []struct {
		name string
		got  string
	}{
		{"slidez.slider.ready", SliderReady.Name()},
		{"slidez.slider.first_populated", SliderFirstPopulated.Name()},
		{"slidez.slider.closed", SliderClosed.Name()},
		{"slidez.transition.started", TransitionStarted.Name()},
		{"slidez.transition.completed", TransitionCompleted.Name()},
		{"slidez.transition.rejected", TransitionRejected.Name()},
		{"slidez.slide.shown", SlideShown.Name()},
		{"slidez.slideshow.played", SlideshowPlayed.Name()},
		{"slidez.slideshow.stopped", SlideshowStopped.Name()},
		{"slidez.slideshow.suspended", SlideshowSuspended.Name()},
		{"slidez.slideshow.resumed", SlideshowResumed.Name()},
		{"slidez.media.loaded", MediaLoaded.Name()},
		{"slidez.media.load.failed", MediaLoadFailed.Name()},
		{"slidez.deck.loaded", DeckLoaded.Name()},
		{"slidez.deck.invalid", DeckInvalid.Name()},
	}
	for _, c := range cases {
		if c.got != c.name {
			t.Errorf("expected name %q, got %q", c.name, c.got)
		}
	}
}
