package slidez

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is the travel direction of a transition. It selects the visual
// variant of the transition, never the target index.
type Direction int

const (
	// DirectionNone is reported while no transition is in flight.
	DirectionNone Direction = iota
	// DirectionPrev moves towards lower indexes.
	DirectionPrev
	// DirectionNext moves towards higher indexes.
	DirectionNext
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionPrev:
		return "prev"
	case DirectionNext:
		return "next"
	default:
		return "none"
	}
}

// Target is the argument of a navigation request: a relative step or an
// explicit slide index.
type Target struct {
	step  Direction
	index int
}

// Prev targets the previous slide.
func Prev() Target { return Target{step: DirectionPrev} }

// Next targets the following slide.
func Next() Target { return Target{step: DirectionNext} }

// Index targets the slide at i.
func Index(i int) Target { return Target{index: i} }

// Relative reports whether the target is a prev/next step.
func (t Target) Relative() bool { return t.step != DirectionNone }

// Step returns the relative direction, or DirectionNone for explicit indexes.
func (t Target) Step() Direction { return t.step }

// Index returns the explicit index. It is meaningless for relative targets.
func (t Target) Index() int { return t.index }

// String returns "prev", "next" or the decimal index.
func (t Target) String() string {
	if t.Relative() {
		return t.step.String()
	}
	return strconv.Itoa(t.index)
}

// ParseTarget parses "prev", "next" or a decimal slide index.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prev":
		return Prev(), nil
	case "next":
		return Next(), nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q is neither prev, next nor an index", ErrInvalidTarget, s)
	}
	return Index(i), nil
}
