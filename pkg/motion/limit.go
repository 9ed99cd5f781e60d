package motion

import "math"

// Limit is an immutable [Min, Max] travel range. Callers guarantee
// Min <= Max and finite bounds; NaN comparisons simply report false.
type Limit struct {
	Min float64
	Max float64
}

// NewLimit returns the limit [min, max].
func NewLimit(min, max float64) Limit {
	return Limit{Min: min, Max: max}
}

// Length returns the distance between the bounds.
func (l Limit) Length() float64 {
	return math.Abs(l.Min - l.Max)
}

// ReachedMin reports whether v lies beyond the lower bound.
func (l Limit) ReachedMin(v float64) bool {
	return v < l.Min
}

// ReachedMax reports whether v lies beyond the upper bound.
func (l Limit) ReachedMax(v float64) bool {
	return v > l.Max
}

// ReachedAny reports whether v lies beyond either bound.
func (l Limit) ReachedAny(v float64) bool {
	return l.ReachedMin(v) || l.ReachedMax(v)
}

// Constrain clamps v into [Min, Max].
func (l Limit) Constrain(v float64) float64 {
	if l.ReachedMin(v) {
		return l.Min
	}
	if l.ReachedMax(v) {
		return l.Max
	}
	return v
}

// RemoveOffset folds v back into the range by whole lengths. Looping
// tracks use it to map a wrapped position onto its canonical value.
func (l Limit) RemoveOffset(v float64) float64 {
	length := l.Length()
	if length == 0 {
		return v
	}
	return v - length*math.Ceil((v-l.Max)/length)
}
