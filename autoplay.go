package slidez

import "github.com/zoobzio/capitan"

// Play starts autoplay: every SlideshowInterval + TransitionDuration the
// slider requests the next slide. A tick that lands while the slider is busy
// is skipped. It returns false if autoplay was already running or the
// slider is closed.
func (s *Slider) Play() bool {
	s.mu.Lock()
	var out outbox
	ok := s.play(&out, false)
	s.mu.Unlock()

	out.flush()
	return ok
}

// Stop is a user stop. It cancels autoplay and clears any hover suspension,
// so leaving the slider afterwards does not resume playback. It returns
// false if autoplay was not running.
func (s *Slider) Stop() bool {
	s.mu.Lock()
	var out outbox
	ok := s.stop(&out)
	s.mu.Unlock()

	out.flush()
	return ok
}

// Playing reports whether the autoplay timer is live.
func (s *Slider) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoplay != nil
}

// PausedByHover reports whether autoplay is suspended by pointer presence.
func (s *Slider) PausedByHover() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pausedByHover
}

// PointerEnter suspends autoplay when pause-on-hover is enabled. The
// suspension is not a user stop: no stop_slideshow event is emitted and
// PointerLeave resumes playback. It returns whether playback was suspended.
func (s *Slider) PointerEnter() bool {
	s.mu.Lock()
	if !s.cfg.PauseOnHover || s.autoplay == nil {
		s.mu.Unlock()
		return false
	}
	s.halt()
	s.pausedByHover = true
	ctx := s.ctx
	s.mu.Unlock()

	capitan.Emit(ctx, SlideshowSuspended, KeySlider.Field(s.id))
	s.metrics.OnPlaybackChange(false)
	return true
}

// PointerLeave resumes a hover-suspended slideshow. It returns whether
// playback resumed.
func (s *Slider) PointerLeave() bool {
	s.mu.Lock()
	if !s.pausedByHover {
		s.mu.Unlock()
		return false
	}
	var out outbox
	ok := s.play(&out, true)
	s.mu.Unlock()

	out.flush()
	return ok
}

// MediaStarted reports that native playback of slide index began. With
// pause-on-media-play enabled a video slide stops autoplay as a user stop.
func (s *Slider) MediaStarted(index int) bool {
	if !s.cfg.PauseOnMediaPlay {
		return false
	}
	slide, ok := s.Slide(index)
	if !ok || slide.Type != SlideVideo {
		return false
	}
	return s.Stop()
}

// play arms the autoplay timer. A resumed slideshow is continuing, not
// starting, so it emits no play_slideshow. Must hold mu.
func (s *Slider) play(out *outbox, resumed bool) bool {
	s.pausedByHover = false
	if s.closed || s.autoplay != nil {
		return false
	}

	s.generation++
	gen := s.generation
	period := s.cfg.Period()
	s.autoplay = every(s.clock, period, func() { s.tick(gen) })

	ctx := s.ctx
	signal := SlideshowPlayed
	if resumed {
		signal = SlideshowResumed
	} else {
		s.emit(ctx, out, Event{Topic: TopicPlaySlideshow})
	}
	out.add(func() {
		capitan.Emit(ctx, signal,
			KeySlider.Field(s.id),
			KeyPeriod.Field(period),
		)
		s.metrics.OnPlaybackChange(true)
	})
	return true
}

// stop cancels autoplay as a user action. Must hold mu.
func (s *Slider) stop(out *outbox) bool {
	s.pausedByHover = false
	if s.autoplay == nil {
		return false
	}
	s.halt()

	ctx := s.ctx
	s.emit(ctx, out, Event{Topic: TopicStopSlideshow})
	out.add(func() {
		capitan.Emit(ctx, SlideshowStopped, KeySlider.Field(s.id))
		s.metrics.OnPlaybackChange(false)
	})
	return true
}

// halt cancels the autoplay timer. Bumping the generation turns any tick
// already past its timer into a no-op. Must hold mu.
func (s *Slider) halt() {
	s.autoplay.Cancel()
	s.autoplay = nil
	s.generation++
}

// tick is one autoplay advance. A rejected request is simply dropped.
func (s *Slider) tick(gen uint64) {
	s.mu.Lock()
	if s.autoplay == nil || s.generation != gen {
		s.mu.Unlock()
		return
	}
	var out outbox
	s.request(&out, Next())
	s.mu.Unlock()

	out.flush()
}
