package slidez

import "github.com/zoobzio/capitan"

// Slider lifecycle signals.
var (
	// SliderReady is emitted when a Slider starts, before the first slide is populated.
	SliderReady = capitan.NewSignal(
		"slidez.slider.ready",
		"Slider structure ready",
	)

	// SliderFirstPopulated is emitted once slide 0 has been populated.
	SliderFirstPopulated = capitan.NewSignal(
		"slidez.slider.first_populated",
		"First slide populated",
	)

	// SliderClosed is emitted when a Slider is torn down.
	SliderClosed = capitan.NewSignal(
		"slidez.slider.closed",
		"Slider closed",
	)
)

// Transition signals.
var (
	// TransitionStarted is emitted when a request enters the transition window.
	TransitionStarted = capitan.NewSignal(
		"slidez.transition.started",
		"Slide transition started",
	)

	// TransitionCompleted is emitted when the incoming slide becomes active.
	TransitionCompleted = capitan.NewSignal(
		"slidez.transition.completed",
		"Slide transition completed",
	)

	// TransitionRejected is emitted when a request fails a precondition.
	TransitionRejected = capitan.NewSignal(
		"slidez.transition.rejected",
		"Slide request rejected",
	)

	// SlideShown is emitted when a slide's media is available.
	SlideShown = capitan.NewSignal(
		"slidez.slide.shown",
		"Slide media shown",
	)
)

// Slideshow signals.
var (
	// SlideshowPlayed is emitted when autoplay starts or resumes.
	SlideshowPlayed = capitan.NewSignal(
		"slidez.slideshow.played",
		"Slideshow playing",
	)

	// SlideshowStopped is emitted when a user action stops autoplay.
	SlideshowStopped = capitan.NewSignal(
		"slidez.slideshow.stopped",
		"Slideshow stopped by user",
	)

	// SlideshowSuspended is emitted when hover pauses autoplay.
	SlideshowSuspended = capitan.NewSignal(
		"slidez.slideshow.suspended",
		"Slideshow suspended on hover",
	)

	// SlideshowResumed is emitted when leaving resumes a hover-suspended slideshow.
	SlideshowResumed = capitan.NewSignal(
		"slidez.slideshow.resumed",
		"Slideshow resumed after hover",
	)
)

// Media signals.
var (
	// MediaLoaded is emitted when a URL is marked loaded in an ImageCache.
	MediaLoaded = capitan.NewSignal(
		"slidez.media.loaded",
		"Media loaded into cache",
	)

	// MediaLoadFailed is emitted when the load pipeline fails for a URL.
	MediaLoadFailed = capitan.NewSignal(
		"slidez.media.load.failed",
		"Media load failed",
	)
)

// Deck signals.
var (
	// DeckLoaded is emitted when a deck file is parsed and validated.
	DeckLoaded = capitan.NewSignal(
		"slidez.deck.loaded",
		"Deck loaded",
	)

	// DeckInvalid is emitted when a deck revision fails to parse or validate.
	DeckInvalid = capitan.NewSignal(
		"slidez.deck.invalid",
		"Deck rejected",
	)
)
