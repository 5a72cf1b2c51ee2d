package slidez

// LoadRequest carries one media load through the cache's load pipeline.
type LoadRequest struct {
	// URL is the media being loaded.
	URL string

	// Attempts counts how many times the terminal loader ran, including retries.
	Attempts int

	// Media is filled in by the terminal loader on success.
	Media Media
}
