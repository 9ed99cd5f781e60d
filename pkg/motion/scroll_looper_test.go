package motion

import (
	"math"
	"testing"
)

func newTestLooper(location float64) (*ScrollLooper, *Vector1D) {
	loc := NewVector1D(location)
	looper := NewScrollLooper(1000, PxToPercent{ViewSize: 100}, NewLimit(-1000, 0), loc)
	return looper, loc
}

func TestScrollLooperLoopLimit(t *testing.T) {
	looper, _ := newTestLooper(0)
	got := looper.LoopLimit()
	if math.Abs(got.Min+999.9) > tolerance || math.Abs(got.Max-0.1) > tolerance {
		t.Errorf("LoopLimit() = %+v, want [-999.9, 0.1]", got)
	}
}

func TestScrollLooperForward(t *testing.T) {
	looper, location := newTestLooper(0.5)
	target := NewVector1D(2)
	tracker := NewVector1D(-250)
	vectors := []*Vector1D{location, target, tracker}

	if !looper.Loop(vectors, 1) {
		t.Fatal("expected a loop past the max")
	}
	wants := []float64{-999.5, -998, -1250}
	for i, v := range vectors {
		if v.Get() != wants[i] {
			t.Errorf("vector %d = %v, want %v", i, v.Get(), wants[i])
		}
	}

	if looper.Loop(vectors, 1) {
		t.Error("second loop should be a no-op")
	}
	if location.Get() != -999.5 {
		t.Errorf("no-op loop moved location to %v", location.Get())
	}
}

func TestScrollLooperBackward(t *testing.T) {
	looper, location := newTestLooper(-1000.5)
	target := NewVector1D(-1003)
	vectors := []*Vector1D{location, target}

	if !looper.Loop(vectors, -1) {
		t.Fatal("expected a loop past the min")
	}
	if location.Get() != -0.5 || target.Get() != -3 {
		t.Errorf("location/target = %v/%v, want -0.5/-3", location.Get(), target.Get())
	}
}

func TestScrollLooperPreservesRelativeOffsets(t *testing.T) {
	looper, location := newTestLooper(3)
	target := NewVector1D(40)
	before := target.Get() - location.Get()

	looper.Loop([]*Vector1D{location, target}, 1)

	if after := target.Get() - location.Get(); after != before {
		t.Errorf("relative offset changed from %v to %v", before, after)
	}
}

func TestScrollLooperDirectionSymmetry(t *testing.T) {
	forwardLooper, forwardLoc := newTestLooper(0.5)
	backwardLooper, backwardLoc := newTestLooper(-1000.5)

	forwardStart, backwardStart := forwardLoc.Get(), backwardLoc.Get()
	forwardLooper.Loop([]*Vector1D{forwardLoc}, 1)
	backwardLooper.Loop([]*Vector1D{backwardLoc}, -1)

	forwardShift := forwardLoc.Get() - forwardStart
	backwardShift := backwardLoc.Get() - backwardStart
	if forwardShift != -1000 || backwardShift != 1000 {
		t.Errorf("shifts = %v/%v, want -1000/1000", forwardShift, backwardShift)
	}
	if forwardShift+backwardShift != 0 {
		t.Error("forward and backward shifts should cancel")
	}
}

func TestScrollLooperIgnoresOtherDirections(t *testing.T) {
	for _, direction := range []float64{0, 0.5, 2, -3} {
		looper, location := newTestLooper(5)
		if looper.Loop([]*Vector1D{location}, direction) {
			t.Errorf("direction %v should never loop", direction)
		}
		if location.Get() != 5 {
			t.Errorf("direction %v moved location to %v", direction, location.Get())
		}
	}
}

func TestScrollLooperEdgeDoesNotLoop(t *testing.T) {
	looper, location := newTestLooper(0)
	if looper.Loop([]*Vector1D{location}, 1) {
		t.Error("a location resting on the max edge should not loop")
	}
	location.Set(0.1)
	if looper.Loop([]*Vector1D{location}, 1) {
		t.Error("a location on the shifted edge should not loop")
	}
}
