// Package orientation fuses a filtered accelerometer vector and a
// filtered magnetometer vector into tilt-compensated pitch, roll, and
// heading, and hosts the engine's interactive calibration mode.
package orientation

import (
	"math"

	"github.com/chrisdick79/altaz-core/internal/config"
	"github.com/chrisdick79/altaz-core/internal/sensor"
)

// CalibrationBounds holds the per-axis extents an operator observes
// while the engine is in calibration mode. All twelve fields start at
// 0.0 and are updated only while Engine.calibrating is true.
type CalibrationBounds struct {
	AxMin, AxMax float64
	AyMin, AyMax float64
	AzMin, AzMax float64
	MxMin, MxMax float64
	MyMin, MyMax float64
	MzMin, MzMax float64
}

// Engine combines an AccelerometerChannel and a MagnetometerChannel into
// a tilt-compensated pitch/roll/heading, and tracks CalibrationBounds
// while calibrating.
type Engine struct {
	accel *sensor.AccelerometerChannel
	mag   *sensor.MagnetometerChannel

	hardIron config.HardIronConfig

	calibrating bool
	bounds      CalibrationBounds
}

// NewEngine builds an Engine over the given channels, normalizing
// against hardIron's compile-time offset/scale constants.
func NewEngine(accel *sensor.AccelerometerChannel, mag *sensor.MagnetometerChannel, hardIron config.HardIronConfig) *Engine {
	return &Engine{accel: accel, mag: mag, hardIron: hardIron}
}

// Init zeroes the calibration bounds, then initializes the magnetometer
// channel and, if that succeeded, the accelerometer channel. The
// channels' filter rings and cached averages are not reset.
func (e *Engine) Init() bool {
	e.bounds = CalibrationBounds{}
	return e.mag.Init() && e.accel.Init()
}

// Run advances the mag channel then the accel channel by one sample,
// then, if calibrating, folds the latest filtered vectors into bounds.
func (e *Engine) Run() {
	e.mag.Run()
	e.accel.Run()

	if !e.calibrating {
		return
	}
	a := e.accel.GetAll()
	m := e.mag.GetAll()
	e.bounds.AxMin, e.bounds.AxMax = minOf(e.bounds.AxMin, a.X), maxOf(e.bounds.AxMax, a.X)
	e.bounds.AyMin, e.bounds.AyMax = minOf(e.bounds.AyMin, a.Y), maxOf(e.bounds.AyMax, a.Y)
	e.bounds.AzMin, e.bounds.AzMax = minOf(e.bounds.AzMin, a.Z), maxOf(e.bounds.AzMax, a.Z)
	e.bounds.MxMin, e.bounds.MxMax = minOf(e.bounds.MxMin, m.X), maxOf(e.bounds.MxMax, m.X)
	e.bounds.MyMin, e.bounds.MyMax = minOf(e.bounds.MyMin, m.Y), maxOf(e.bounds.MyMax, m.Y)
	e.bounds.MzMin, e.bounds.MzMax = minOf(e.bounds.MzMin, m.Z), maxOf(e.bounds.MzMax, m.Z)
}

// EnableCalibration toggles whether Run() folds samples into bounds.
func (e *Engine) EnableCalibration(on bool) {
	e.calibrating = on
}

// GetOrientation returns tilt-compensated pitch, roll, and heading
// (heading wrapped into [0, 2π)).
//
// Step 6's Y component is transcribed verbatim from the reference
// firmware as Mzo·sin(roll) − Myo·cos(roll), not the canonical
// Mxo·sin(roll) − Myo·cos(roll). This is flagged, not fixed — see the
// design note on the tilt-compensated Y component.
func (e *Engine) GetOrientation() (pitch, roll, heading float64) {
	a := e.accel.GetAll()
	m := e.mag.GetAll()

	mo := m.Sub(e.hardIron.MOffset).DivComponents(e.hardIron.MMax.Sub(e.hardIron.MOffset))
	ao := a.Sub(e.hardIron.AOffset).DivComponents(e.hardIron.AMax.Sub(e.hardIron.AOffset))

	pitch = math.Asin(ao.X / math.Sqrt(ao.X*ao.X+ao.Y*ao.Y+ao.Z*ao.Z))
	roll = math.Atan2(ao.Y, ao.Z)

	sinPitch, cosPitch := math.Sin(pitch), math.Cos(pitch)
	sinRoll, cosRoll := math.Sin(roll), math.Cos(roll)

	x := mo.X*cosPitch + mo.Y*sinRoll*sinPitch + mo.Z*cosRoll*sinPitch
	y := mo.Z*sinRoll - mo.Y*cosRoll

	heading = math.Atan2(y, x)
	if heading < 0 {
		heading += 2 * math.Pi
	}
	return pitch, roll, heading
}

// Bounds returns a copy of the current calibration bounds.
func (e *Engine) Bounds() CalibrationBounds {
	return e.bounds
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// The following accessor pairs expose and reset each of the twelve
// scalar bounds individually, matching §4.F's "six getters and six
// resetters per channel" contract.

func (e *Engine) AxMin() float64 { return e.bounds.AxMin }
func (e *Engine) AxMax() float64 { return e.bounds.AxMax }
func (e *Engine) AyMin() float64 { return e.bounds.AyMin }
func (e *Engine) AyMax() float64 { return e.bounds.AyMax }
func (e *Engine) AzMin() float64 { return e.bounds.AzMin }
func (e *Engine) AzMax() float64 { return e.bounds.AzMax }
func (e *Engine) MxMin() float64 { return e.bounds.MxMin }
func (e *Engine) MxMax() float64 { return e.bounds.MxMax }
func (e *Engine) MyMin() float64 { return e.bounds.MyMin }
func (e *Engine) MyMax() float64 { return e.bounds.MyMax }
func (e *Engine) MzMin() float64 { return e.bounds.MzMin }
func (e *Engine) MzMax() float64 { return e.bounds.MzMax }

func (e *Engine) ResetAxMin() { e.bounds.AxMin = 0 }
func (e *Engine) ResetAxMax() { e.bounds.AxMax = 0 }
func (e *Engine) ResetAyMin() { e.bounds.AyMin = 0 }
func (e *Engine) ResetAyMax() { e.bounds.AyMax = 0 }
func (e *Engine) ResetAzMin() { e.bounds.AzMin = 0 }
func (e *Engine) ResetAzMax() { e.bounds.AzMax = 0 }
func (e *Engine) ResetMxMin() { e.bounds.MxMin = 0 }
func (e *Engine) ResetMxMax() { e.bounds.MxMax = 0 }
func (e *Engine) ResetMyMin() { e.bounds.MyMin = 0 }
func (e *Engine) ResetMyMax() { e.bounds.MyMax = 0 }
func (e *Engine) ResetMzMin() { e.bounds.MzMin = 0 }
func (e *Engine) ResetMzMax() { e.bounds.MzMax = 0 }
