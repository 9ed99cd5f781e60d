package motion

import "math"

const (
	// pullBackThreshold is the distance under which a released target
	// snaps onto the boundary.
	pullBackThreshold = 10

	frictionPointerDown = 0.7
	frictionReleased    = 0.4

	settleSpeed = 10
	settleMass  = 3
)

// ScrollBounds applies elastic resistance when a finite track is pushed past
// its limit and settles a released target back onto the edge.
type ScrollBounds struct {
	limit    Limit
	location *Vector1D
	body     *ScrollBody
	disabled bool
}

// NewScrollBounds creates bounds for limit. location and body are borrowed
// from the engine.
func NewScrollBounds(limit Limit, location *Vector1D, body *ScrollBody) *ScrollBounds {
	return &ScrollBounds{
		limit:    limit,
		location: location,
		body:     body,
	}
}

func (s *ScrollBounds) shouldConstrain(target *Vector1D) bool {
	if s.disabled {
		return false
	}
	if !s.limit.ReachedAny(target.Get()) {
		return false
	}
	// Resistance starts only once the committed location is out of bounds too.
	if !s.limit.ReachedAny(s.location.Get()) {
		return false
	}
	return true
}

// Constrain pulls target back toward the location when both lie beyond the
// limit. A held pointer keeps 30% of the overshoot, a released one 60%.
// Released targets within the pull-back threshold snap onto the edge and the
// body switches to a slow, heavy settle.
func (s *ScrollBounds) Constrain(target *Vector1D, pointerDown bool) {
	if !s.shouldConstrain(target) {
		return
	}
	friction := frictionReleased
	if pointerDown {
		friction = frictionPointerDown
	}
	diffToTarget := target.Get() - s.location.Get()

	target.Subtract(diffToTarget * friction)

	if !pointerDown && math.Abs(diffToTarget) < pullBackThreshold {
		target.Set(s.limit.Constrain(target.Get()))
		s.body.UseSpeed(settleSpeed).UseMass(settleMass)
	}
}

// ToggleActive enables or disables resistance.
func (s *ScrollBounds) ToggleActive(active bool) {
	s.disabled = !active
}

// Active reports whether resistance is enabled.
func (s *ScrollBounds) Active() bool {
	return !s.disabled
}
