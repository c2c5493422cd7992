// Package filter implements the four-tap boxcar low-pass filter every
// sensor channel runs its samples through. A four-sample moving average
// gives a ~6 dB cut at one quarter of the tick rate for near-zero cost and
// no floating-point accumulation drift, at the price of a ~2-tick output
// delay.
package filter

import "github.com/chrisdick79/altaz-core/internal/vector"

// ringSize is fixed by the spec: four taps, no more, no less.
const ringSize = 4

// SlidingFilter is a ring of the four most-recently pushed samples. The
// zero value is a valid, zero-initialized filter — Average() during the
// first three pushes after construction returns a ramp-up transient
// rather than an error, matching the original firmware's behavior.
type SlidingFilter struct {
	ring   [ringSize]vector.Vector3
	cursor int
}

// Push writes sample into the ring at the current cursor, then advances
// the cursor modulo the ring size.
func (f *SlidingFilter) Push(sample vector.Vector3) {
	f.ring[f.cursor] = sample
	f.cursor = (f.cursor + 1) % ringSize
}

// Average returns the equal-weight arithmetic mean of the four ring
// slots.
func (f *SlidingFilter) Average() vector.Vector3 {
	var sum vector.Vector3
	for _, s := range f.ring {
		sum = sum.Add(s)
	}
	return sum.Scale(1.0 / float64(ringSize))
}

// Cursor returns the current write position, in [0, ringSize).
func (f *SlidingFilter) Cursor() int {
	return f.cursor
}
