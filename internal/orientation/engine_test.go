package orientation

import (
	"math"
	"testing"

	"github.com/chrisdick79/altaz-core/internal/axis"
	"github.com/chrisdick79/altaz-core/internal/config"
	"github.com/chrisdick79/altaz-core/internal/sensor"
	"github.com/chrisdick79/altaz-core/internal/vector"
)

// fixedDevice always reports the same raw/offset triple, letting a test
// drive the filter to a known steady state after four Run() calls.
type fixedDevice struct {
	x, y, z             int16
	ox, oy, oz          int16
	initOK              bool
}

func (d fixedDevice) Init() bool    { return d.initOK }
func (d fixedDevice) RawX() int16   { return d.x }
func (d fixedDevice) RawY() int16   { return d.y }
func (d fixedDevice) RawZ() int16   { return d.z }
func (d fixedDevice) OffsetX() int16 { return d.ox }
func (d fixedDevice) OffsetY() int16 { return d.oy }
func (d fixedDevice) OffsetZ() int16 { return d.oz }

func identityMapper() *axis.Mapper {
	return axis.MustNewMapper([3]axis.Binding{
		{Body: vector.AxisX, Source: vector.AxisX, Sign: 1},
		{Body: vector.AxisY, Source: vector.AxisY, Sign: 1},
		{Body: vector.AxisZ, Source: vector.AxisZ, Sign: 1},
	})
}

// unitHardIron normalizes with zero offset and a MMax/AMax of 1 on every
// axis, so DivComponents is a no-op and GetOrientation sees the channel
// outputs unchanged.
func unitHardIron() config.HardIronConfig {
	return config.HardIronConfig{
		AOffset: vector.Vector3{},
		AMax:    vector.Vector3{X: 1, Y: 1, Z: 1},
		MOffset: vector.Vector3{},
		MMax:    vector.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func newTestEngine(accelRaw, magRaw vector.Vector3) *Engine {
	accelDev := fixedDevice{
		x: int16(accelRaw.X * 16384.0 / (2.0 * sensor.Gravity)),
		y: int16(accelRaw.Y * 16384.0 / (2.0 * sensor.Gravity)),
		z: int16(accelRaw.Z * 16384.0 / (2.0 * sensor.Gravity)),
		initOK: true,
	}
	magDev := fixedDevice{
		x: int16(magRaw.X), y: int16(magRaw.Y), z: int16(magRaw.Z),
		initOK: true,
	}
	accel := sensor.NewAccelerometerChannel(accelDev, identityMapper(), 16384.0, 2.0)
	mag := sensor.NewMagnetometerChannel(magDev, identityMapper(), 1.0)
	e := NewEngine(accel, mag, unitHardIron())
	e.Init()
	for i := 0; i < 4; i++ {
		e.Run()
	}
	return e
}

func TestGetOrientationLevelAndNorth(t *testing.T) {
	e := newTestEngine(vector.Vector3{X: 0, Y: 0, Z: sensor.Gravity}, vector.Vector3{X: 1, Y: 0, Z: 0})
	pitch, roll, heading := e.GetOrientation()
	if math.Abs(pitch) > 1e-3 {
		t.Errorf("pitch = %v, want ~0", pitch)
	}
	if math.Abs(roll) > 1e-3 {
		t.Errorf("roll = %v, want ~0", roll)
	}
	if math.Abs(heading) > 1e-3 {
		t.Errorf("heading = %v, want ~0", heading)
	}
}

func TestHeadingTiltCompensation(t *testing.T) {
	thetas := []float64{-math.Pi / 4, 0, math.Pi / 4}
	for _, theta := range thetas {
		accelRaw := vector.Vector3{X: math.Sin(theta) * sensor.Gravity, Y: 0, Z: math.Cos(theta) * sensor.Gravity}
		magRaw := vector.Vector3{X: math.Cos(theta), Y: 0, Z: -math.Sin(theta)}
		e := newTestEngine(accelRaw, magRaw)
		_, _, heading := e.GetOrientation()
		if heading < 0 || heading >= 2*math.Pi {
			t.Errorf("theta=%v heading = %v, want [0, 2pi)", theta, heading)
		}
		wrapped := heading
		if wrapped > math.Pi {
			wrapped -= 2 * math.Pi
		}
		if math.Abs(wrapped) > 1e-3 {
			t.Errorf("theta=%v heading = %v, want ~0", theta, heading)
		}
	}
}

func TestCalibrationBoundsTrackMinMax(t *testing.T) {
	accelDev := fixedDevice{initOK: true}
	magDev := fixedDevice{x: int16(0.3 * 1e4), y: int16(-0.2 * 1e4), z: int16(0.5 * 1e4), initOK: true}
	accel := sensor.NewAccelerometerChannel(accelDev, identityMapper(), 16384.0, 2.0)
	mag := sensor.NewMagnetometerChannel(magDev, identityMapper(), 1e-4)
	e := NewEngine(accel, mag, unitHardIron())
	e.Init()
	e.EnableCalibration(true)
	// Four runs fill the zero-initialized filter ring, so the filtered
	// vector the bounds track equals the device's steady field.
	for i := 0; i < 4; i++ {
		e.Run()
	}

	if got := e.MxMax(); math.Abs(got-0.3) > 1e-6 {
		t.Errorf("MxMax = %v, want 0.3", got)
	}
	if got := e.MyMin(); math.Abs(got-(-0.2)) > 1e-6 {
		t.Errorf("MyMin = %v, want -0.2", got)
	}
	if got := e.MzMax(); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("MzMax = %v, want 0.5", got)
	}
}

func TestResetBoundsAccessor(t *testing.T) {
	accelDev := fixedDevice{initOK: true}
	magDev := fixedDevice{x: 1000, initOK: true}
	accel := sensor.NewAccelerometerChannel(accelDev, identityMapper(), 16384.0, 2.0)
	mag := sensor.NewMagnetometerChannel(magDev, identityMapper(), 1e-4)
	e := NewEngine(accel, mag, unitHardIron())
	e.Init()
	e.EnableCalibration(true)
	e.Run()
	if e.MxMax() == 0 {
		t.Fatal("expected MxMax to have moved off zero")
	}
	e.ResetMxMax()
	if e.MxMax() != 0 {
		t.Errorf("MxMax = %v after reset, want 0", e.MxMax())
	}
}

func TestInitFailurePropagates(t *testing.T) {
	accelDev := fixedDevice{initOK: false}
	magDev := fixedDevice{initOK: true}
	accel := sensor.NewAccelerometerChannel(accelDev, identityMapper(), 16384.0, 2.0)
	mag := sensor.NewMagnetometerChannel(magDev, identityMapper(), 1.0)
	e := NewEngine(accel, mag, unitHardIron())
	if e.Init() {
		t.Fatal("expected Init to fail when accel device fails")
	}
}
