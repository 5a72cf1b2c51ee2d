package slidez

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const yamlDeck = `
id: hero
config:
  transition_style: slide
  carousel: false
  slideshow_interval_ms: 3000
slides:
  - type: image
    media: assets/one.jpg
    content: <h2>One</h2>
  - content: <p>Two</p>
    tags: [outro, intro, intro]
`

const jsonDeck = `{
  "id": "footer",
  "config": {"autoplay": true},
  "slides": [{"content": "a"}, {"content": "b", "type": "video"}]
}`

func TestParseDeck_YAML(t *testing.T) {
	d, err := ParseDeck([]byte(yamlDeck), YAMLCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != "hero" || len(d.Slides) != 2 {
		t.Fatalf("unexpected deck: %+v", d)
	}
	if d.Config.TransitionStyle != StyleSlide || d.Config.Carousel || d.Config.SlideshowIntervalMs != 3000 {
		t.Errorf("config fields not decoded: %+v", d.Config)
	}
	// Omitted fields keep their defaults.
	if d.Config.TransitionDurationMs != 700 || d.Config.Easing != "ease" || !d.Config.PauseOnHover {
		t.Errorf("defaults lost: %+v", d.Config)
	}
	if d.Slides[0].MediaURL != "assets/one.jpg" || d.Slides[0].Type != SlideImage {
		t.Errorf("unexpected first slide: %+v", d.Slides[0])
	}
}

func TestParseDeck_JSON(t *testing.T) {
	d, err := ParseDeck([]byte(jsonDeck), JSONCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != "footer" || !d.Config.Autoplay || !d.Config.Carousel {
		t.Errorf("unexpected deck: %+v", d)
	}
}

func TestParseDeck_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed":    "slides: [",
		"no slides":    "id: empty\nslides: []",
		"bad type":     "slides:\n  - type: hologram",
		"bad config":   "config:\n  transition_style: spin\nslides:\n  - content: a",
		"glob id":      "id: hero*\nslides:\n  - content: a",
		"empty tag":    "slides:\n  - tags: ['']",
		"bad duration": "config:\n  transition_duration_ms: -5\nslides:\n  - content: a",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDeck([]byte(doc), YAMLCodec{})
			if !errors.Is(err, ErrInvalidDeck) {
				t.Errorf("expected ErrInvalidDeck, got %v", err)
			}
		})
	}
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(path, []byte(jsonDeck), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDeck(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != "footer" {
		t.Errorf("expected footer, got %q", d.ID)
	}

	if _, err := LoadDeck(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDeck_Build(t *testing.T) {
	d, err := ParseDeck([]byte(yamlDeck), YAMLCodec{})
	if err != nil {
		t.Fatal(err)
	}

	s, err := d.Build(WithCache(NewImageCache(newCountingLoader())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	if s.ID() != "hero" {
		t.Errorf("expected deck ID, got %q", s.ID())
	}
	if s.Config().Carousel {
		t.Error("expected deck config")
	}
	second, _ := s.Slide(1)
	if second.Type != SlideMixed {
		t.Errorf("expected untyped slide to fall back to mixed, got %s", second.Type)
	}
	if len(second.Tags) != 2 || !second.HasTag("intro") || !second.HasTag("outro") {
		t.Errorf("expected deduplicated tags, got %v", second.Tags)
	}

	override, err := d.Build(WithID("other"), WithCache(NewImageCache(newCountingLoader())))
	if err != nil {
		t.Fatal(err)
	}
	defer override.Close()
	if override.ID() != "other" {
		t.Errorf("expected option to override the deck ID, got %q", override.ID())
	}
}
