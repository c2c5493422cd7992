package main

import (
	"machine"

	"tinygo.org/x/drivers/hmc5883l"
	"tinygo.org/x/drivers/mpu6050"
)

// accelDevice adapts a tinygo.org/x/drivers/mpu6050 Device to
// sensor.RawSensor. The driver's Read methods return physical units
// (micro-g); mpu6050CountsPerG converts back to the raw LSB-count
// convention the orientation pipeline is built around, matching the
// register-level reads the reference telescope firmware's HAL performed
// directly.
type accelDevice struct {
	dev *mpu6050.Device
}

const mpu6050CountsPerG = 16384.0 // LSB/g at the device's default +-2g range

func newAccelDevice(i2c *machine.I2C) *accelDevice {
	dev := mpu6050.New(i2c)
	return &accelDevice{dev: &dev}
}

func (a *accelDevice) Init() bool {
	a.dev.Configure()
	return a.dev.Connected()
}

func (a *accelDevice) RawX() int16 { return microGToCounts(a.readAccel().x) }
func (a *accelDevice) RawY() int16 { return microGToCounts(a.readAccel().y) }
func (a *accelDevice) RawZ() int16 { return microGToCounts(a.readAccel().z) }

// The MPU6050 has no exposed per-axis hardware bias register in this
// driver; offsets are supplied entirely through config.HardIronConfig.
func (a *accelDevice) OffsetX() int16 { return 0 }
func (a *accelDevice) OffsetY() int16 { return 0 }
func (a *accelDevice) OffsetZ() int16 { return 0 }

type accelSample struct{ x, y, z int32 }

func (a *accelDevice) readAccel() accelSample {
	x, y, z := a.dev.ReadAcceleration()
	return accelSample{x, y, z}
}

func microGToCounts(microG int32) int16 {
	return int16(int64(microG) * int64(mpu6050CountsPerG) / 1_000_000)
}

// magDevice adapts a tinygo.org/x/drivers/hmc5883l Device the same way.
type magDevice struct {
	dev *hmc5883l.Device
}

func newMagDevice(i2c *machine.I2C) *magDevice {
	dev := hmc5883l.New(i2c)
	return &magDevice{dev: &dev}
}

func (m *magDevice) Init() bool {
	m.dev.Configure(hmc5883l.Configuration{})
	return m.dev.Connected()
}

func (m *magDevice) RawX() int16 { x, _, _ := m.dev.ReadRawData(); return x }
func (m *magDevice) RawY() int16 { _, y, _ := m.dev.ReadRawData(); return y }
func (m *magDevice) RawZ() int16 { _, _, z := m.dev.ReadRawData(); return z }

func (m *magDevice) OffsetX() int16 { return 0 }
func (m *magDevice) OffsetY() int16 { return 0 }
func (m *magDevice) OffsetZ() int16 { return 0 }
