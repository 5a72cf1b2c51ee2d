package slidez

import "github.com/zoobzio/capitan"

// Field keys for slider signals.
var (
	// KeySlider is the ID of the emitting slider.
	KeySlider = capitan.NewStringKey("slider")

	// KeyIndex is the slide index the signal is about.
	KeyIndex = capitan.NewIntKey("index")

	// KeyCount is a number of slides.
	KeyCount = capitan.NewIntKey("count")

	// KeyPrevIndex is the index active before a transition.
	KeyPrevIndex = capitan.NewIntKey("prev_index")

	// KeyDirection is the normalized transition direction.
	KeyDirection = capitan.NewStringKey("direction")

	// KeyReason is why a request was rejected.
	KeyReason = capitan.NewStringKey("reason")

	// KeyPeriod is the autoplay tick period.
	KeyPeriod = capitan.NewDurationKey("period")

	// KeyURL is a media URL.
	KeyURL = capitan.NewStringKey("url")

	// KeyLatency is how long a media load took.
	KeyLatency = capitan.NewDurationKey("latency")

	// KeyPath is a deck file path.
	KeyPath = capitan.NewStringKey("path")

	// KeyFormat is the content type a deck file was decoded as.
	KeyFormat = capitan.NewStringKey("format")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")
)
