package motion

import "math"

// ScrollBody integrates a location toward a target each frame using a
// spring-like attraction scaled by speed and damped by mass.
type ScrollBody struct {
	location     *Vector1D
	velocity     *Vector1D
	acceleration *Vector1D
	attraction   *Vector1D
	direction    float64

	baseSpeed float64
	baseMass  float64
	speed     float64
	mass      float64
}

// NewScrollBody creates an integrator that moves location.
func NewScrollBody(location *Vector1D, baseSpeed, baseMass float64) *ScrollBody {
	return &ScrollBody{
		location:     location,
		velocity:     NewVector1D(0),
		acceleration: NewVector1D(0),
		attraction:   NewVector1D(0),
		baseSpeed:    baseSpeed,
		baseMass:     baseMass,
		speed:        baseSpeed,
		mass:         baseMass,
	}
}

// Seek accumulates the force pulling the location toward target. The pull
// is proportional to the remaining distance, minus the current velocity.
func (b *ScrollBody) Seek(target *Vector1D) *ScrollBody {
	b.attraction.Set(target.Get()).Subtract(b.location.Get())
	magnitude := b.attraction.Get() * b.speed / 100
	b.direction = sign(b.attraction.Get())
	b.attraction.Normalize().Multiply(magnitude).Subtract(b.velocity.Get())
	b.applyForce(b.attraction)
	return b
}

// Update applies the accumulated acceleration and moves the location.
func (b *ScrollBody) Update() *ScrollBody {
	b.velocity.Add(b.acceleration.Get())
	b.location.Add(b.velocity.Get())
	b.acceleration.Set(0)
	return b
}

// Settle snaps the location onto target once they agree to two decimals
// and reports whether that happened.
func (b *ScrollBody) Settle(target *Vector1D) bool {
	diff := target.Get() - b.location.Get()
	settled := roundToTwoDecimals(diff) == 0
	if settled {
		b.location.Set(target.Get())
	}
	return settled
}

func (b *ScrollBody) applyForce(force *Vector1D) {
	force.Divide(b.mass)
	b.acceleration.Add(force.Get())
}

// Direction is the sign of the last seek: 1, -1 or 0.
func (b *ScrollBody) Direction() float64 {
	return b.direction
}

// Velocity returns the per-frame velocity.
func (b *ScrollBody) Velocity() float64 {
	return b.velocity.Get()
}

// Speed returns the current attraction speed.
func (b *ScrollBody) Speed() float64 {
	return b.speed
}

// Mass returns the current mass.
func (b *ScrollBody) Mass() float64 {
	return b.mass
}

// UseSpeed overrides the attraction speed until the next UseBaseSpeed.
func (b *ScrollBody) UseSpeed(speed float64) *ScrollBody {
	b.speed = speed
	return b
}

// UseMass overrides the mass until the next UseBaseMass. Non-positive
// masses are ignored.
func (b *ScrollBody) UseMass(mass float64) *ScrollBody {
	if mass > 0 {
		b.mass = mass
	}
	return b
}

// UseBaseSpeed restores the configured speed.
func (b *ScrollBody) UseBaseSpeed() *ScrollBody {
	return b.UseSpeed(b.baseSpeed)
}

// UseBaseMass restores the configured mass.
func (b *ScrollBody) UseBaseMass() *ScrollBody {
	return b.UseMass(b.baseMass)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func roundToTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
