// Package sensor defines the capability the orientation pipeline requires
// of a device driver, and implements the two channels (accelerometer,
// magnetometer) built on top of it. The concrete chip is never named here
// — device polymorphism is a composition-time decision made by whatever
// wires a RawSensor into a channel, not a compile-time #ifdef chain the
// way the original firmware selected its chip.
package sensor

// RawSensor is the capability contract the orientation core requires of
// any accelerometer or magnetometer driver: the three signed raw counts,
// and the device's own static per-axis bias.
// Implementations are synchronous — the core treats a read as
// instantaneous and never cancels or times one out.
type RawSensor interface {
	// Init prepares the device for sampling and reports whether it
	// succeeded.
	Init() bool
	RawX() int16
	RawY() int16
	RawZ() int16
	OffsetX() int16
	OffsetY() int16
	OffsetZ() int16
}

// Sample is one read cycle's raw triple plus the device's static offset
// triple. It is a value type with no lifetime beyond the Run() call that
// produced it.
type Sample struct {
	X, Y, Z             int16
	OffsetX, OffsetY, OffsetZ int16
}

// Read collects one Sample from s by calling its six accessors in turn.
// Whether the three raw counts come from a single bus transaction
// depends on the RawSensor implementation.
func Read(s RawSensor) Sample {
	return Sample{
		X: s.RawX(), Y: s.RawY(), Z: s.RawZ(),
		OffsetX: s.OffsetX(), OffsetY: s.OffsetY(), OffsetZ: s.OffsetZ(),
	}
}
