package main

// altaz-core firmware configuration
// Build-time device selection, axis bindings, and hard-iron/scale constants.

import (
	"machine"

	"github.com/chrisdick79/altaz-core/internal/axis"
	"github.com/chrisdick79/altaz-core/internal/config"
	"github.com/chrisdick79/altaz-core/internal/vector"
)

// --- Device Selection ---
const (
	accelDeviceTag = config.AccelMPU6050
	magDeviceTag   = config.MagHMC5883L
)

// --- Axis Bindings ---
// Three (body, source, sign) triples per channel, mapping device-frame
// axes onto the telescope body frame (objective-end, telescope-right,
// up). A bad table panics here at package init, the Go analogue of the
// original's preprocessor #error on an unbound axis.
var (
	accelBindings = [3]axis.Binding{
		{Body: vector.AxisX, Source: vector.AxisX, Sign: 1},
		{Body: vector.AxisY, Source: vector.AxisY, Sign: 1},
		{Body: vector.AxisZ, Source: vector.AxisZ, Sign: 1},
	}
	magBindings = [3]axis.Binding{
		{Body: vector.AxisX, Source: vector.AxisX, Sign: 1},
		{Body: vector.AxisY, Source: vector.AxisY, Sign: -1},
		{Body: vector.AxisZ, Source: vector.AxisZ, Sign: 1},
	}

	accelMapper = axis.MustNewMapper(accelBindings)
	magMapper   = axis.MustNewMapper(magBindings)
)

// --- Hard-Iron / Scale Constants ---
// Compile-time constants GetOrientation normalizes against, read from
// internal/config.CompiledHardIron rather than duplicated here, so this
// binary and cmd/calprofile's diff subcommand always compare against
// the same numbers. An operator replaces CompiledHardIron by hand after
// reviewing a CalibrationProfile — the engine never writes it back
// itself.
var hardIron = config.CompiledHardIron

// --- I2C Bus Configuration ---
const i2cFrequency = 400 * machine.KHz

// --- Status LED / Watchdog Configuration ---
const (
	watchdogTimeoutMillis = 500
	tickInterval          = 10_000_000 // 10ms, in time.Duration nanoseconds
)
