package slidez

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TransitionStyle selects the visual transition variant rendered by the view.
type TransitionStyle string

const (
	StyleNone      TransitionStyle = "none"
	StyleSlide     TransitionStyle = "slide"
	StyleFade      TransitionStyle = "fade"
	StyleFadeSlide TransitionStyle = "fadeslide"
	StyleZoomIn    TransitionStyle = "zoom-in"
	StyleZoomOut   TransitionStyle = "zoom-out"
	StyleOverlap   TransitionStyle = "overlap"
	StyleVSlide    TransitionStyle = "v-slide"
	StyleVOverlap  TransitionStyle = "v-overlap"
)

// Defaults applied by DefaultConfig.
const (
	DefaultTransitionDuration = 700 * time.Millisecond
	DefaultSlideshowInterval  = 5000 * time.Millisecond
	DefaultSwipeThreshold     = 30
	DefaultLoaderMarkup       = `<span class="lcms_loader"></span>`
)

// Config holds the recognised slider options. Fields without core behaviour
// are carried for the view layer.
type Config struct {
	TransitionStyle      TransitionStyle `yaml:"transition_style" json:"transition_style" validate:"required,oneof=none slide fade fadeslide zoom-in zoom-out overlap v-slide v-overlap"`
	Easing               string          `yaml:"easing" json:"easing" validate:"required,easing"`
	NavArrows            bool            `yaml:"nav_arrows" json:"nav_arrows"`
	NavDots              bool            `yaml:"nav_dots" json:"nav_dots"`
	SlideshowControls    bool            `yaml:"slideshow_controls" json:"slideshow_controls"`
	Carousel             bool            `yaml:"carousel" json:"carousel"`
	TouchSwipe           bool            `yaml:"touch_swipe" json:"touch_swipe"`
	SwipeThreshold       int             `yaml:"swipe_threshold" json:"swipe_threshold" validate:"min=1"`
	Autoplay             bool            `yaml:"autoplay" json:"autoplay"`
	TransitionDurationMs int             `yaml:"transition_duration_ms" json:"transition_duration_ms" validate:"min=0,max=60000"`
	SlideshowIntervalMs  int             `yaml:"slideshow_interval_ms" json:"slideshow_interval_ms" validate:"min=1"`
	PauseOnHover         bool            `yaml:"pause_on_hover" json:"pause_on_hover"`
	PauseOnMediaPlay     bool            `yaml:"pause_on_media_play" json:"pause_on_media_play"`
	FixedSlideType       SlideType       `yaml:"fixed_slide_type" json:"fixed_slide_type" validate:"omitempty,oneof=image video iframe mixed"`
	ExtraControlMarkup   string          `yaml:"extra_control_markup" json:"extra_control_markup"`
	LoaderMarkup         string          `yaml:"loader_markup" json:"loader_markup"`
	ExtraClasses         []string        `yaml:"extra_classes" json:"extra_classes" validate:"dive,required,excludesall= "`
}

// DefaultConfig returns the stock options.
func DefaultConfig() Config {
	return Config{
		TransitionStyle:      StyleFadeSlide,
		Easing:               "ease",
		NavArrows:            true,
		SlideshowControls:    true,
		Carousel:             true,
		TouchSwipe:           true,
		SwipeThreshold:       DefaultSwipeThreshold,
		TransitionDurationMs: int(DefaultTransitionDuration / time.Millisecond),
		SlideshowIntervalMs:  int(DefaultSlideshowInterval / time.Millisecond),
		PauseOnHover:         true,
		LoaderMarkup:         DefaultLoaderMarkup,
	}
}

// TransitionDuration is the length of the visual transition window.
func (c Config) TransitionDuration() time.Duration {
	return time.Duration(c.TransitionDurationMs) * time.Millisecond
}

// SlideshowInterval is the dwell time of a slide during autoplay.
func (c Config) SlideshowInterval() time.Duration {
	return time.Duration(c.SlideshowIntervalMs) * time.Millisecond
}

// Period is the autoplay tick period. It covers the transition window so
// consecutive automatic advances never land on an in-flight transition.
func (c Config) Period() time.Duration {
	return c.SlideshowInterval() + c.TransitionDuration()
}

// Validate checks every option and reports all failing fields at once.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, describeValidation(err))
	}
	return nil
}

// LoadConfig reads a config file, decoding over DefaultConfig so omitted
// fields keep their defaults. The codec is chosen from the file extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := CodecFor(path).Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate is the shared validator instance.
var validate = newValidator()

var (
	easingKeyword = regexp.MustCompile(`^(ease|linear|ease-in|ease-out|ease-in-out|step-start|step-end)$`)
	easingBezier  = regexp.MustCompile(`^cubic-bezier\(\s*-?[0-9.]+\s*(,\s*-?[0-9.]+\s*){3}\)$`)
	easingSteps   = regexp.MustCompile(`^steps\(\s*[1-9][0-9]*\s*(,\s*(jump-start|jump-end|jump-none|jump-both|start|end)\s*)?\)$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool { //nolint:errcheck // tag name is static
		s := strings.TrimSpace(fl.Field().String())
		return easingKeyword.MatchString(s) || easingBezier.MatchString(s) || easingSteps.MatchString(s)
	})
	return v
}

// describeValidation flattens validator errors into "field: rule" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), rule))
	}
	return strings.Join(parts, "; ")
}
