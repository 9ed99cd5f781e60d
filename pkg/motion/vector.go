package motion

// Vector1D is a mutable scalar shared by reference between the engine and
// the motion components. Always pass *Vector1D; copying the struct detaches
// it from the shared position.
type Vector1D struct {
	value float64
}

// NewVector1D returns a vector holding v.
func NewVector1D(v float64) *Vector1D {
	return &Vector1D{value: v}
}

// Get returns the current value.
func (v *Vector1D) Get() float64 {
	return v.value
}

// Set replaces the value.
func (v *Vector1D) Set(n float64) *Vector1D {
	v.value = n
	return v
}

// Add adds n to the value.
func (v *Vector1D) Add(n float64) *Vector1D {
	v.value += n
	return v
}

// Subtract subtracts n from the value.
func (v *Vector1D) Subtract(n float64) *Vector1D {
	v.value -= n
	return v
}

// Multiply scales the value by n.
func (v *Vector1D) Multiply(n float64) *Vector1D {
	v.value *= n
	return v
}

// Divide divides the value by n. Division by zero leaves the value unchanged.
func (v *Vector1D) Divide(n float64) *Vector1D {
	if n != 0 {
		v.value /= n
	}
	return v
}

// Normalize collapses any non-zero value to 1.
func (v *Vector1D) Normalize() *Vector1D {
	if v.value != 0 {
		v.Divide(v.value)
	}
	return v
}
