package slidez

// Phase represents the transition state of a Slider.
type Phase int32

const (
	// PhaseIdle indicates no transition is in flight. Requests are accepted.
	PhaseIdle Phase = iota

	// PhaseTransitioning indicates the outgoing and incoming slides are both
	// present and animating. Every request is rejected until the window elapses.
	PhaseTransitioning
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}
