// Package motion implements the per-frame physics of a draggable carousel
// track: position values, travel limits, the scroll body integrator,
// elastic boundary resistance and loop wrap-around.
//
// All positions live in percent-of-view coordinates. A [PxToPercent]
// converts pixel input into that space. Positions are shared by pointer:
// the engine owns a location and a target [Vector1D], and [ScrollBounds],
// [ScrollBody] and [ScrollLooper] borrow the same instances.
//
// # Frame Order
//
// Within one frame the caller must run, in this order:
//
//	bounds.Constrain(target, pointerDown) // finite tracks only
//	body.Seek(target).Update()
//	looper.Loop(vectors, body.Direction()) // looping tracks only
//
// Resistance has to see the unwrapped target, so it runs before any loop
// translation. Nothing in this package enforces the order.
package motion
