package slidez

import (
	"fmt"
	"os"
)

// Deck is a slider described by a YAML or JSON document:
//
//	id: hero
//	config:
//	  transition_style: slide
//	  autoplay: true
//	slides:
//	  - type: image
//	    media: assets/one.jpg
//	    content: <h2>One</h2>
//	  - content: <p>Two</p>
//	    tags: [intro]
//
// Omitted config fields keep their defaults.
type Deck struct {
	ID     string  `yaml:"id" json:"id" validate:"omitempty,excludesall=*?[] "`
	Config Config  `yaml:"config" json:"config"`
	Slides []Slide `yaml:"slides" json:"slides" validate:"required,min=1,dive"`
}

// ParseDeck decodes and validates a deck document.
func ParseDeck(data []byte, codec Codec) (*Deck, error) {
	d := &Deck{Config: DefaultConfig()}
	if err := codec.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDeck reads and parses a deck file. The codec is chosen from the file
// extension.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}
	return ParseDeck(data, CodecFor(path))
}

// Validate checks the deck, its config and every slide.
func (d *Deck) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDeck, describeValidation(err))
	}
	return nil
}

// Build creates a Slider from the deck. The deck ID, when set, becomes the
// slider ID unless opts override it.
func (d *Deck) Build(opts ...Option) (*Slider, error) {
	if d.ID != "" {
		opts = append([]Option{WithID(d.ID)}, opts...)
	}
	return New(d.Slides, d.Config, opts...)
}
