package slidez

import (
	"fmt"
	"slices"
	"strings"
)

// SlideType classifies the content of a slide.
type SlideType string

const (
	SlideImage  SlideType = "image"
	SlideVideo  SlideType = "video"
	SlideIframe SlideType = "iframe"
	SlideMixed  SlideType = "mixed"
)

// ParseSlideType parses a slide type name. The empty string is accepted and
// yields the empty type, which is resolved against Config.FixedSlideType.
func ParseSlideType(s string) (SlideType, error) {
	switch t := SlideType(strings.ToLower(strings.TrimSpace(s))); t {
	case "", SlideImage, SlideVideo, SlideIframe, SlideMixed:
		return t, nil
	default:
		return "", fmt.Errorf("unknown slide type %q", s)
	}
}

// Slide is one content panel. Slides are immutable once the slider owning
// them has been constructed.
type Slide struct {
	Index    int       `json:"index" yaml:"index"`
	Type     SlideType `json:"type" yaml:"type" validate:"omitempty,oneof=image video iframe mixed"`
	Content  string    `json:"content" yaml:"content"`
	MediaURL string    `json:"media,omitempty" yaml:"media,omitempty"`
	Classes  string    `json:"classes,omitempty" yaml:"classes,omitempty"`
	Tags     []string  `json:"tags,omitempty" yaml:"tags,omitempty" validate:"dive,required"`
}

// HasMedia reports whether the slide carries a lazily loaded media URL.
func (s Slide) HasMedia() bool { return s.MediaURL != "" }

// HasTag reports whether the slide carries tag.
func (s Slide) HasTag(tag string) bool { return slices.Contains(s.Tags, tag) }

// freezeSlides copies the input, assigns indexes and resolves empty types.
func freezeSlides(in []Slide, fallback SlideType) []Slide {
	if fallback == "" {
		fallback = SlideMixed
	}
	out := make([]Slide, len(in))
	for i, s := range in {
		s.Index = i
		if s.Type == "" {
			s.Type = fallback
		}
		if len(s.Tags) > 0 {
			tags := slices.Clone(s.Tags)
			slices.Sort(tags)
			s.Tags = slices.Compact(tags)
		}
		out[i] = s
	}
	return out
}
