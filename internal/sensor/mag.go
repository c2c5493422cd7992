package sensor

import (
	"github.com/chrisdick79/altaz-core/internal/axis"
	"github.com/chrisdick79/altaz-core/internal/filter"
	"github.com/chrisdick79/altaz-core/internal/vector"
)

// MagnetometerChannel turns raw magnetometer counts into a filtered field
// vector. It has the same Run/GetAll shape as AccelerometerChannel but no
// pitch/roll helpers — scaling here is a single device constant, not a
// derived range.
type MagnetometerChannel struct {
	device RawSensor
	mapper *axis.Mapper
	filter filter.SlidingFilter
	scale  float64

	avg vector.Vector3
}

// NewMagnetometerChannel builds a channel over device, mapping its raw
// samples through mapper and scaling each axis by scale.
func NewMagnetometerChannel(device RawSensor, mapper *axis.Mapper, scale float64) *MagnetometerChannel {
	return &MagnetometerChannel{device: device, mapper: mapper, scale: scale}
}

// Init reports whether the device initialized successfully.
func (c *MagnetometerChannel) Init() bool {
	return c.device.Init()
}

// Run reads one raw sample, maps it into body frame, scales it, and
// pushes the result into the filter.
func (c *MagnetometerChannel) Run() {
	s := Read(c.device)
	raw := vector.Vector3{X: float64(s.X), Y: float64(s.Y), Z: float64(s.Z)}
	offset := vector.Vector3{X: float64(s.OffsetX), Y: float64(s.OffsetY), Z: float64(s.OffsetZ)}
	mapped := c.mapper.Map(raw, offset)
	c.filter.Push(mapped.Scale(c.scale))
	c.avg = c.filter.Average()
}

// GetAll returns the current filter average.
func (c *MagnetometerChannel) GetAll() vector.Vector3 {
	return c.avg
}
