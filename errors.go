package slidez

import "errors"

var (
	// ErrInvalidConfig is returned when options fail validation.
	ErrInvalidConfig = errors.New("invalid slider config")

	// ErrInvalidDeck is returned when a deck document fails to decode or validate.
	ErrInvalidDeck = errors.New("invalid deck")

	// ErrNoSlides is returned when a slider is constructed without slides.
	ErrNoSlides = errors.New("slider has no slides")

	// ErrInvalidTarget is returned for malformed navigation or instance targets.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrNoMatch is returned when a target resolves to no registered slider.
	ErrNoMatch = errors.New("target matches no slider")

	// ErrDuplicateSlider is returned when a slider ID is registered twice.
	ErrDuplicateSlider = errors.New("slider id already registered")

	// ErrNotMedia is returned by loaders when fetched content is not an image or video.
	ErrNotMedia = errors.New("content is not image or video media")

	// ErrBadStatus is returned by HTTPLoader for non-2xx responses.
	ErrBadStatus = errors.New("unexpected http status")
)
