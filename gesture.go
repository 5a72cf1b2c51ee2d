package slidez

// Point is a touch sample in view coordinates.
type Point struct {
	X, Y float64
}

// Swipe holds the magnitude of a gesture along each axis direction. Only the
// components matching the direction of travel are non-zero.
type Swipe struct {
	Up, Down, Left, Right float64
}

// Intent classifies a swipe as a navigation request. A leftward drag of at
// least threshold moves to the next slide, a rightward one to the previous.
// Vertical motion never navigates so page scrolling is left alone.
func (s Swipe) Intent(threshold float64) (Target, bool) {
	switch {
	case s.Left > 0 && s.Left >= threshold:
		return Next(), true
	case s.Right > 0 && s.Right >= threshold:
		return Prev(), true
	default:
		return Target{}, false
	}
}

// GestureRecognizer turns a touch start/end pair into a Swipe. It is not
// safe for concurrent use; Slider serializes access to its own recognizer.
type GestureRecognizer struct {
	start   Point
	pending bool
}

// TouchStart records the origin of a gesture.
func (g *GestureRecognizer) TouchStart(p Point) {
	g.start = p
	g.pending = true
}

// TouchEnd completes the gesture started by TouchStart. It returns false for
// an end without a matching start and for a tap that did not move. The
// recognizer is reset either way.
func (g *GestureRecognizer) TouchEnd(p Point) (Swipe, bool) {
	if !g.pending {
		return Swipe{}, false
	}
	g.Reset()

	dx := g.start.X - p.X
	dy := g.start.Y - p.Y
	if dx == 0 && dy == 0 {
		return Swipe{}, false
	}

	var s Swipe
	if dy > 0 {
		s.Up = dy
	} else {
		s.Down = -dy
	}
	if dx > 0 {
		s.Left = dx
	} else {
		s.Right = -dx
	}
	return s, true
}

// Reset discards any gesture in progress.
func (g *GestureRecognizer) Reset() {
	g.pending = false
}
