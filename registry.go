package slidez

import (
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
)

// Registry addresses sliders by ID for the play, stop and slide commands.
// A target is a comma separated list of IDs or path.Match globs.
type Registry struct {
	mu      sync.RWMutex
	sliders map[string]*Slider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sliders: make(map[string]*Slider)}
}

// Add registers s under its ID. Adding the same slider again is a no-op;
// adding a different slider with a taken ID fails.
func (r *Registry) Add(s *Slider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sliders[s.ID()]; ok {
		if existing == s {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateSlider, s.ID())
	}
	r.sliders[s.ID()] = s
	return nil
}

// Remove unregisters and closes the slider with id.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	s, ok := r.sliders[id]
	delete(r.sliders, id)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

// Get returns the slider registered under id.
func (r *Registry) Get(id string) (*Slider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sliders[id]
	return s, ok
}

// IDs returns the registered IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sliders))
	for id := range r.sliders {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Resolve returns the sliders matched by target, sorted by ID.
func (r *Registry) Resolve(target string) ([]*Slider, error) {
	var patterns []string
	for _, p := range strings.Split(target, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: empty slider target", ErrInvalidTarget)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make(map[string]*Slider)
	for _, p := range patterns {
		if s, ok := r.sliders[p]; ok {
			matched[p] = s
			continue
		}
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTarget, p, err)
		}
		for id, s := range r.sliders {
			if ok, _ := path.Match(p, id); ok { //nolint:errcheck // pattern validated above
				matched[id] = s
			}
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, target)
	}

	out := make([]*Slider, 0, len(matched))
	for _, s := range matched {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *Slider) int { return strings.Compare(a.ID(), b.ID()) })
	return out, nil
}

// Play starts autoplay on every matched slider and returns how many started.
func (r *Registry) Play(target string) (int, error) {
	return r.each(target, (*Slider).Play)
}

// Stop stops autoplay on every matched slider and returns how many stopped.
func (r *Registry) Stop(target string) (int, error) {
	return r.each(target, (*Slider).Stop)
}

// Slide navigates every matched slider to direction: "prev", "next" or a
// slide index. Like any user navigation it stops autoplay first. It returns
// how many sliders started a transition.
func (r *Registry) Slide(target, direction string) (int, error) {
	to, err := ParseTarget(direction)
	if err != nil {
		return 0, err
	}
	return r.each(target, func(s *Slider) bool { return s.Navigate(to) })
}

// Close closes and unregisters every slider.
func (r *Registry) Close() {
	r.mu.Lock()
	sliders := r.sliders
	r.sliders = make(map[string]*Slider)
	r.mu.Unlock()

	for _, s := range sliders {
		s.Close()
	}
}

func (r *Registry) each(target string, fn func(*Slider) bool) (int, error) {
	sliders, err := r.Resolve(target)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, s := range sliders {
		if fn(s) {
			n++
		}
	}
	return n, nil
}
