// Package axis maps raw device-frame samples onto the telescope's body
// frame (objective-end, telescope-right, up). The original firmware did
// this with a chain of #ifdef'd sign flips selected per mounting
// orientation; this package replaces that with a const binding table
// validated once at construction, the closest Go analogue to the
// original's compile-time #error on an unbound axis.
package axis

import (
	"fmt"

	"github.com/chrisdick79/altaz-core/internal/vector"
)

// Binding ties one body-frame axis to a device-frame source axis and a
// sign. Three Bindings make up one channel's mapping.
type Binding struct {
	Body   vector.Axis
	Source vector.Axis
	Sign   float64
}

// Mapper applies a validated set of three Bindings to a device-frame
// sample, producing a body-frame Vector3.
type Mapper struct {
	bindings [3]Binding
}

// NewMapper validates bindings and builds a Mapper. bindings must cover
// each body axis exactly once, and its three Source axes must be a
// permutation of {X, Y, Z}. A caller that wires an incomplete or
// duplicated table should treat the returned error as fatal at startup —
// there is no runtime fallback, mirroring the original firmware's
// preprocessor #error on an unbound axis.
func NewMapper(bindings [3]Binding) (*Mapper, error) {
	var bodySeen, sourceSeen [3]bool
	for _, b := range bindings {
		if b.Sign != 1 && b.Sign != -1 {
			return nil, fmt.Errorf("axis: binding for body axis %v has invalid sign %v", b.Body, b.Sign)
		}
		if bodySeen[b.Body] {
			return nil, fmt.Errorf("axis: body axis %v bound more than once", b.Body)
		}
		if sourceSeen[b.Source] {
			return nil, fmt.Errorf("axis: source axis %v used more than once", b.Source)
		}
		bodySeen[b.Body] = true
		sourceSeen[b.Source] = true
	}
	for a := vector.AxisX; a <= vector.AxisZ; a++ {
		if !bodySeen[a] {
			return nil, fmt.Errorf("axis: body axis %v is unbound", a)
		}
	}
	return &Mapper{bindings: bindings}, nil
}

// MustNewMapper is NewMapper but panics on an invalid table. Intended for
// package-level var initializers in the composition root, where a bad
// binding table is a build-time configuration error, not a runtime one.
func MustNewMapper(bindings [3]Binding) *Mapper {
	m, err := NewMapper(bindings)
	if err != nil {
		panic(err)
	}
	return m
}

// Map applies the mapper's bindings to one device-frame raw sample plus
// the device's static per-axis offset, producing a body-frame Vector3:
// mapped[body] = sign * (raw[source] + offset[source]).
func (m *Mapper) Map(raw, offset vector.Vector3) vector.Vector3 {
	var out vector.Vector3
	for _, b := range m.bindings {
		v := b.Sign * (raw.Component(b.Source) + offset.Component(b.Source))
		switch b.Body {
		case vector.AxisX:
			out.X = v
		case vector.AxisY:
			out.Y = v
		case vector.AxisZ:
			out.Z = v
		}
	}
	return out
}
