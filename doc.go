/*
Package slidez provides the core of a content slider: a transition state
machine, an autoplay scheduler, swipe recognition, a shared media cache and a
per-slider event bus.

slidez owns no rendering. A front end feeds it commands (arrow clicks, dot
clicks, swipes, pointer hover) and renders whatever the events describe.

# Basic Usage

Create a slider from slides and a configuration, subscribe and start it:

	slider, err := slidez.New(slides, slidez.DefaultConfig(),
	    slidez.WithID("hero"),
	)
	if err != nil {
	    return err
	}
	slider.Subscribe(slidez.TopicChangingSlide, func(ctx context.Context, e slidez.Event) {
	    render(e.PrevIndex, e.Index, e.Slide)
	})
	slider.Start(ctx)

Navigate with relative or absolute targets:

	slider.Request(slidez.Next())      // programmatic
	slider.Navigate(slidez.Index(3))   // user driven, stops autoplay

Only one transition runs at a time. Requests made while a transition is in
flight are rejected, never queued.

# Events

Each slider publishes on its own bus, in this order for a single navigation:

	slide_shown       (only when the incoming media is already cached)
	changing_slide
	slide_shown       (later, once uncached media finishes loading)
	new_active_slide  (after the transition duration)

Start publishes ready then first_populated. Play and Stop publish
play_slideshow and stop_slideshow. A hover pause publishes neither.

# Autoplay

Play advances one slide per Config.Period, the transition duration plus the
slideshow interval. Ticks that land during a transition are skipped. With
PauseOnHover set, PointerEnter suspends autoplay and PointerLeave resumes it.

# Media

Slides reference media by URL. All sliders share SharedImageCache unless
WithCache says otherwise. A URL is fetched at most once per process, however
many sliders or slides reference it. Failed loads are not cached.

Loads run through a pipz pipeline that load options can extend:

	cache := slidez.NewImageCache(slidez.DefaultLoader("assets"),
	    slidez.WithRateLimit(8, 4),
	    slidez.WithBackoff(3, 250*time.Millisecond),
	    slidez.WithTimeout(30*time.Second),
	    slidez.WithCircuitBreaker(5, time.Minute),
	)

# Decks

A Deck bundles an ID, a configuration and slides in a YAML or JSON file.
LoadDeck reads one, WatchDeck follows it for edits and Build turns it into a
slider. A Registry addresses many sliders by ID or glob.

# Observability

Lifecycle, transition, playback and media signals are emitted through
capitan. Hook them for logging:

	capitan.Hook(slidez.TransitionRejected, func(ctx context.Context, e *capitan.Event) {
	    reason, _ := slidez.KeyReason.From(e)
	    log.Printf("rejected: %s", reason)
	})

The package is built on top of:
  - pipz: For the media load pipeline
  - capitan: For signal emission
  - clockz: For testable transition and autoplay timing
*/
package slidez
