// Package config holds the build-time configuration the spec calls out in
// §6: device selection and the hard-iron/scale constants the orientation
// engine normalizes against. The per-channel axis binding tables are
// declared by the composition root (firmware/src). In the original
// firmware these were preprocessor macros and #ifdef chains (Config.h);
// here they are plain Go const/var tables assembled once in the
// composition root.
package config

import "github.com/chrisdick79/altaz-core/internal/vector"

// AccelDevice names a supported accelerometer part, mirroring the
// original firmware's HalAccelerometer #ifdef chain
// (MPU6050/ADXL345/BMA150/L3G4200D/MPU9150).
type AccelDevice int

const (
	AccelMPU6050 AccelDevice = iota
	AccelADXL345
	AccelBMA150
	AccelL3G4200D
	AccelMPU9150
)

// MagDevice names a supported magnetometer part.
type MagDevice int

const (
	MagHMC5883L MagDevice = iota
	MagQMC5883L
)

// AccelScaling returns the LSB-per-g and full-scale-range constants for a
// device tag. Only MPU6050 — the spec's literal worked example — has real
// values; the rest are placeholders an operator fills in for their part,
// matching the original's "#error no init code" stubs for any
// accelerometer besides the MPU6050.
func AccelScaling(d AccelDevice) (scaling, gRange float64, ok bool) {
	switch d {
	case AccelMPU6050:
		return 16384.0, 2.0, true
	default:
		return 0, 0, false
	}
}

// MagScale returns the raw-to-field-unit scale constant for a device tag.
func MagScale(d MagDevice) (scale float64, ok bool) {
	switch d {
	case MagHMC5883L:
		return 0.92e-3, true // milligauss-per-LSB datasheet constant, in gauss
	case MagQMC5883L:
		return 1.0 / 12000.0, true
	default:
		return 0, false
	}
}

// HardIronConfig holds the compile-time hard-iron offset and scale-max
// constants §4.F's GetOrientation normalizes against. These are distinct
// from the live CalibrationBounds the engine tracks during calibration
// mode — an operator observes CalibrationBounds, then hand-folds updated
// numbers into a new HardIronConfig and rebuilds; the engine never closes
// that loop itself (calibration remains operator-driven).
type HardIronConfig struct {
	AOffset, AMax vector.Vector3
	MOffset, MMax vector.Vector3
}

// CompiledHardIron is the hard-iron/scale constant set currently baked
// into the firmware build. It is the single source of truth both
// firmware/src (which normalizes against it on every GetOrientation
// call) and cmd/calprofile (whose diff subcommand compares a saved
// CalibrationProfile against it) read, so the two never drift out of
// sync the way two independently hand-copied constant blocks would.
var CompiledHardIron = HardIronConfig{
	AOffset: vector.Vector3{X: 0, Y: 0, Z: 0},
	AMax:    vector.Vector3{X: 9.8, Y: 9.8, Z: 9.8},
	MOffset: vector.Vector3{X: 0.02, Y: -0.05, Z: 0.01},
	MMax:    vector.Vector3{X: 0.32, Y: 0.29, Z: 0.35},
}
