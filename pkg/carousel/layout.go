package carousel

import (
	"fmt"
	"math"

	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/geometry"
	"github.com/go-drift/carousel/pkg/motion"
	"github.com/go-drift/carousel/pkg/resize"
)

// Node is a measurable element: the container or a slide.
type Node = resize.Node

// trackLayout is everything derived from one measurement of the nodes.
// Sizes and positions are percent of the view size.
type trackLayout struct {
	viewSize    float64
	pxToPercent motion.PxToPercent
	slideSizes  []float64
	slideStarts []float64
	contentSize float64
	loop        bool
	limit       motion.Limit
	snaps       []float64
}

const snapEpsilon = 1e-6

func measureTrack(container Node, slides []Node, axis geometry.Axis, loop bool) (trackLayout, *errors.CarouselError) {
	containerRect := container.BoundingRect()
	if !containerRect.IsFinite() {
		return trackLayout{}, layoutError("container rect is not finite")
	}
	viewSize := axis.MeasureSize(containerRect)
	if viewSize <= 0 {
		return trackLayout{}, layoutError("view size %v along %s axis", viewSize, axis)
	}

	l := trackLayout{
		viewSize:    viewSize,
		pxToPercent: motion.PxToPercent{ViewSize: viewSize},
		slideSizes:  make([]float64, len(slides)),
		slideStarts: make([]float64, len(slides)),
	}
	origin := axis.Start(containerRect)
	largest := 0.0
	for i, slide := range slides {
		rect := slide.BoundingRect()
		if !rect.IsFinite() {
			return trackLayout{}, layoutError("slide %d rect is not finite", i)
		}
		l.slideSizes[i] = l.pxToPercent.Measure(axis.MeasureSize(rect))
		l.slideStarts[i] = l.pxToPercent.Measure(axis.Start(rect) - origin)
		largest = math.Max(largest, l.slideSizes[i])
	}

	if n := len(slides); n > 0 {
		first := l.slideStarts[0]
		l.contentSize = l.slideStarts[n-1] + l.slideSizes[n-1] - first
		if n > 1 {
			// The gap between the first two slides also follows the last one.
			gap := l.slideStarts[1] - (first + l.slideSizes[0])
			if gap > 0 {
				l.contentSize += gap
			}
		}
	}

	l.loop = loop && len(slides) > 1 && l.contentSize-largest >= 100
	if l.loop {
		l.limit = motion.NewLimit(-l.contentSize, 0)
	} else {
		l.limit = motion.NewLimit(math.Min(0, 100-l.contentSize), 0)
	}
	l.snaps = l.scrollSnaps()
	return l, nil
}

// scrollSnaps aligns each slide start with the view start. Finite tracks
// clamp snaps into the limit and drop duplicates.
func (l trackLayout) scrollSnaps() []float64 {
	if len(l.slideStarts) == 0 {
		return []float64{0}
	}
	first := l.slideStarts[0]
	snaps := make([]float64, 0, len(l.slideStarts))
	for _, start := range l.slideStarts {
		snap := -(start - first)
		if !l.loop {
			snap = l.limit.Constrain(snap)
			if n := len(snaps); n > 0 && math.Abs(snaps[n-1]-snap) < snapEpsilon {
				continue
			}
		}
		snaps = append(snaps, snap)
	}
	return snaps
}

// nearestSnap returns the snap index closest to v and the distance to
// travel from v to reach it. Looping tracks measure the shortest way round.
func (l trackLayout) nearestSnap(v float64) (int, float64) {
	if l.loop {
		v = l.limit.RemoveOffset(v)
	}
	best, bestDiff := 0, math.Inf(1)
	for i, snap := range l.snaps {
		diff := l.shortest(snap - v)
		if math.Abs(diff) < math.Abs(bestDiff)-snapEpsilon {
			best, bestDiff = i, diff
		}
	}
	return best, bestDiff
}

// distanceTo returns the travel from v to snap index.
func (l trackLayout) distanceTo(v float64, index int) float64 {
	return l.shortest(l.snaps[index] - v)
}

func (l trackLayout) shortest(diff float64) float64 {
	if !l.loop || l.contentSize == 0 {
		return diff
	}
	return diff - l.contentSize*math.Round(diff/l.contentSize)
}

func layoutError(format string, args ...any) *errors.CarouselError {
	return &errors.CarouselError{
		Op:   "carousel.measure",
		Kind: errors.KindLayout,
		Err:  fmt.Errorf(format, args...),
	}
}
