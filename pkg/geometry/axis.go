package geometry

import "fmt"

// Axis is the direction a carousel track scrolls along.
// AxisHorizontal is the zero value, matching the usual carousel default.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// ParseAxis maps the option values "x" and "y" (or "horizontal" and
// "vertical") to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "x", "horizontal":
		return AxisHorizontal, nil
	case "y", "vertical":
		return AxisVertical, nil
	default:
		return AxisHorizontal, fmt.Errorf("unknown axis %q", s)
	}
}

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MeasureSize returns the extent of rect along the axis: width when
// horizontal, height when vertical.
func (a Axis) MeasureSize(rect Rect) float64 {
	if a == AxisVertical {
		return rect.Height()
	}
	return rect.Width()
}

// Start returns the leading edge of rect along the axis.
func (a Axis) Start(rect Rect) float64 {
	if a == AxisVertical {
		return rect.Top
	}
	return rect.Left
}
