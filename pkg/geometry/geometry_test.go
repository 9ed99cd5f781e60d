package geometry

import (
	"math"
	"testing"
)

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 300, 150)
	if r.Right != 310 || r.Bottom != 170 {
		t.Errorf("RectFromLTWH = %+v", r)
	}
	if r.Width() != 300 || r.Height() != 150 {
		t.Errorf("Width/Height = %v/%v, want 300/150", r.Width(), r.Height())
	}
	if got := r.Size(); got != (Size{Width: 300, Height: 150}) {
		t.Errorf("Size() = %+v", got)
	}
}

func TestRectTranslate(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10).Translate(5, -5)
	want := Rect{Left: 5, Top: -5, Right: 15, Bottom: 5}
	if r != want {
		t.Errorf("Translate = %+v, want %+v", r, want)
	}
}

func TestRectIsFinite(t *testing.T) {
	if !RectFromLTWH(0, 0, 1, 1).IsFinite() {
		t.Error("finite rect reported as non-finite")
	}
	if (Rect{Left: math.NaN()}).IsFinite() {
		t.Error("NaN rect reported as finite")
	}
	if (Rect{Right: math.Inf(1)}).IsFinite() {
		t.Error("Inf rect reported as finite")
	}
}

func TestRectApproxEqual(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 50)
	b := RectFromLTWH(0.00001, 0, 100, 50)
	if !a.ApproxEqual(b) {
		t.Error("rects within epsilon should be equal")
	}
	if a.ApproxEqual(RectFromLTWH(0, 0, 101, 50)) {
		t.Error("rects 1px apart should differ")
	}
}

func TestAxisMeasureSize(t *testing.T) {
	r := RectFromLTWH(0, 0, 640, 360)
	tests := []struct {
		axis Axis
		want float64
	}{
		{AxisHorizontal, 640},
		{AxisVertical, 360},
	}
	for _, tt := range tests {
		if got := tt.axis.MeasureSize(r); got != tt.want {
			t.Errorf("%v.MeasureSize = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestAxisStart(t *testing.T) {
	r := RectFromLTWH(12, 34, 1, 1)
	if got := AxisHorizontal.Start(r); got != 12 {
		t.Errorf("horizontal start = %v, want 12", got)
	}
	if got := AxisVertical.Start(r); got != 34 {
		t.Errorf("vertical start = %v, want 34", got)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"", AxisHorizontal, false},
		{"x", AxisHorizontal, false},
		{"horizontal", AxisHorizontal, false},
		{"y", AxisVertical, false},
		{"vertical", AxisVertical, false},
		{"z", AxisHorizontal, true},
	}
	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAxis(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAxisString(t *testing.T) {
	if AxisHorizontal.String() != "horizontal" || AxisVertical.String() != "vertical" {
		t.Error("unexpected axis names")
	}
	if Axis(7).String() != "Axis(7)" {
		t.Errorf("Axis(7).String() = %q", Axis(7).String())
	}
}
