package sensor

import (
	"math"

	"github.com/chrisdick79/altaz-core/internal/axis"
	"github.com/chrisdick79/altaz-core/internal/filter"
	"github.com/chrisdick79/altaz-core/internal/vector"
)

// Gravity is the standard-gravity constant the original firmware bakes
// into its raw-to-m/s² conversion.
const Gravity = 9.81

// AccelerometerChannel turns raw accelerometer counts into a filtered
// m/s² vector and a provisional pitch/roll derived from the gravity
// vector alone (distinct from OrientationEngine's tilt-compensated
// pitch/roll, which additionally folds in the magnetometer).
type AccelerometerChannel struct {
	device  RawSensor
	mapper  *axis.Mapper
	filter  filter.SlidingFilter
	scaling float64 // LSB per g, e.g. 16384.0 for a +-2g MPU6050
	gRange  float64 // full-scale range in g, e.g. 2.0

	avg         vector.Vector3
	pitch, roll float64
}

// NewAccelerometerChannel builds a channel over device, mapping its raw
// samples through mapper. scaling and gRange are the device-specific
// constants §4.D calls out (MPU6050 defaults: 16384.0 LSB/g at +-2g).
func NewAccelerometerChannel(device RawSensor, mapper *axis.Mapper, scaling, gRange float64) *AccelerometerChannel {
	return &AccelerometerChannel{device: device, mapper: mapper, scaling: scaling, gRange: gRange}
}

// Init queries the device offsets (implicitly, via the mapper on the next
// Run) and reports whether the device initialized successfully.
func (c *AccelerometerChannel) Init() bool {
	return c.device.Init()
}

// Run reads one raw sample, maps it into body frame, converts to m/s²,
// pushes it into the filter, and recomputes the cached pitch/roll from
// the new filter average. Recomputing here — rather than lazily on the
// next Pitch()/Roll() call — avoids the update-flag dance and reentrancy
// hazard the original firmware's cached-getter had.
func (c *AccelerometerChannel) Run() {
	s := Read(c.device)
	raw := vector.Vector3{X: float64(s.X), Y: float64(s.Y), Z: float64(s.Z)}
	offset := vector.Vector3{X: float64(s.OffsetX), Y: float64(s.OffsetY), Z: float64(s.OffsetZ)}
	mapped := c.mapper.Map(raw, offset)
	ms2 := mapped.Scale(c.gRange * Gravity / c.scaling)
	c.filter.Push(ms2)

	c.avg = c.filter.Average()
	mag := math.Sqrt(c.avg.X*c.avg.X + c.avg.Y*c.avg.Y + c.avg.Z*c.avg.Z)
	c.pitch = math.Asin(c.avg.X / mag)
	c.roll = -math.Asin((c.avg.Y / mag) / math.Cos(c.pitch))
}

// GetAll returns the current filter average, in m/s².
func (c *AccelerometerChannel) GetAll() vector.Vector3 {
	return c.avg
}

// Pitch returns the gravity-derived pitch cached at the last Run(). NaN
// if the gravity vector's magnitude is zero.
func (c *AccelerometerChannel) Pitch() float64 {
	return c.pitch
}

// Roll returns the gravity-derived roll cached at the last Run(). NaN if
// cos(Pitch()) is zero.
func (c *AccelerometerChannel) Roll() float64 {
	return c.roll
}
