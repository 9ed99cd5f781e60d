package motion

// loopEdgePx is the pixel offset added to both loop bounds so a location
// resting exactly on an edge does not flicker between ends.
const loopEdgePx = 0.1

// ScrollLooper wraps a looping track by shifting positions one content
// length whenever the location passes an end in the direction of travel.
type ScrollLooper struct {
	contentSize float64
	loopLimit   Limit
	location    *Vector1D
}

// NewScrollLooper creates a looper for a track of contentSize percent.
func NewScrollLooper(contentSize float64, pxToPercent PxToPercent, limit Limit, location *Vector1D) *ScrollLooper {
	edge := pxToPercent.Measure(loopEdgePx)
	return &ScrollLooper{
		contentSize: contentSize,
		loopLimit:   NewLimit(limit.Min+edge, limit.Max+edge),
		location:    location,
	}
}

// LoopLimit returns the edge-shifted limit used for loop checks.
func (s *ScrollLooper) LoopLimit() Limit {
	return s.loopLimit
}

func (s *ScrollLooper) shouldLoop(direction float64) bool {
	switch direction {
	case 1:
		return s.loopLimit.ReachedMax(s.location.Get())
	case -1:
		return s.loopLimit.ReachedMin(s.location.Get())
	default:
		return false
	}
}

// Loop shifts every vector by contentSize * -direction when the location
// has passed the loop limit in that direction, and reports whether it did.
// Directions other than 1 and -1 never loop. All vectors move in the same
// call so their relative offsets are preserved.
func (s *ScrollLooper) Loop(vectors []*Vector1D, direction float64) bool {
	if !s.shouldLoop(direction) {
		return false
	}
	loopDistance := s.contentSize * -direction
	for _, v := range vectors {
		v.Add(loopDistance)
	}
	return true
}
