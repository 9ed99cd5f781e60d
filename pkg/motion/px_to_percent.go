package motion

// PxToPercent converts pixel distances into percent of the view size, the
// coordinate space every motion component works in.
type PxToPercent struct {
	ViewSize float64
}

// Measure converts px into percent of the view. A zero view maps every
// distance to zero.
func (p PxToPercent) Measure(px float64) float64 {
	if p.ViewSize == 0 {
		return 0
	}
	return px / p.ViewSize * 100
}

// ToPx converts a percent distance back into pixels.
func (p PxToPercent) ToPx(percent float64) float64 {
	return percent / 100 * p.ViewSize
}
