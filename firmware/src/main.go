package main

import (
	"fmt"
	"machine"
	"time"

	"github.com/chrisdick79/altaz-core/internal/axis"
	"github.com/chrisdick79/altaz-core/internal/celestial"
	"github.com/chrisdick79/altaz-core/internal/config"
	"github.com/chrisdick79/altaz-core/internal/orientation"
	"github.com/chrisdick79/altaz-core/internal/registry"
	"github.com/chrisdick79/altaz-core/internal/sensor"
	"github.com/chrisdick79/altaz-core/internal/sidereal"
)

// calibrationProfilePath is where reportCalibrationBounds persists the
// CalibrationProfile a cmd/calprofile run later inspects. A board with
// no writable filesystem will simply see SaveProfile return an error,
// which is logged and otherwise ignored — persistence here is an
// offline convenience, not load-bearing for orientation.
const calibrationProfilePath = "calibration.yaml"

const Version = "0.1.0"

// Observer site, fixed at build time; the core has no GPS input of its
// own (out of scope — see SPEC_FULL.md §1).
const (
	siteLatitudeRad  = 0.9075 // ~52 deg N
	siteLongitudeRad = -0.0233
)

type mountState int

const (
	initializationState mountState = iota
	waitingState
	calibratingState
	runningState
	failsafeState
)

var (
	watchdog = machine.Watchdog

	reg    = registry.New()
	engine *orientation.Engine
	conv   celestial.Converter

	statusLED *ledState

	calibButton = machine.D9

	lastState mountState
)

func main() {
	time.Sleep(2 * time.Second)
	println("altaz-core - Version", Version)
	println("Telescope orientation and celestial-coordinate core")

	interval := 10 * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	state := initializationState
	println("Entering INITIALIZATION state...")

	for {
		<-ticker.C

		calibPressed := calibButton.Get()

		switch state {
		case initializationState:
			i2c := machine.I2C0
			i2c.Configure(machine.I2CConfig{Frequency: i2cFrequency})

			accelDev := newAccelDevice(i2c)
			magDev := newMagDevice(i2c)

			scaling, gRange, ok := config.AccelScaling(accelDeviceTag)
			if !ok {
				println("no scaling constants configured for selected accelerometer")
				state = failsafeState
				break
			}
			magScale, ok := config.MagScale(magDeviceTag)
			if !ok {
				println("no scale constant configured for selected magnetometer")
				state = failsafeState
				break
			}

			accelChannel := sensor.NewAccelerometerChannel(accelDev, accelMapper, scaling, gRange)
			magChannel := sensor.NewMagnetometerChannel(magDev, magMapper, magScale)
			engine = orientation.NewEngine(accelChannel, magChannel, hardIron)
			conv = celestial.Converter{Time: sidereal.TimeConverter{Registry: reg}}

			statusLED = newLEDState(machine.LED)
			calibButton.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

			if !engine.Init() {
				println("sensor initialization failed")
				state = failsafeState
				break
			}
			println("Sensors initialized.")

			watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: watchdogTimeoutMillis})
			watchdog.Start()

			lastState = state
			state = waitingState
			println("Entering WAITING state...")

		case waitingState:
			statusLED.setState(ledSlowFlash)
			if calibPressed {
				lastState = state
				state = calibratingState
				println("Entering CALIBRATING state...")
				engine.EnableCalibration(true)
				break
			}
			lastState = state
			state = runningState

		case calibratingState:
			statusLED.setState(ledFastFlash)
			engine.Run()
			if !calibPressed {
				engine.EnableCalibration(false)
				reportCalibrationBounds()
				lastState = state
				state = waitingState
				println("Calibration complete. Returning to WAITING state...")
			}

		case runningState:
			statusLED.setState(ledOn)
			engine.Run()
			pitch, roll, heading := engine.GetOrientation()

			angles := &celestial.Angles{
				Altitude:  pitch,
				Azimuth:   heading,
				Latitude:  siteLatitudeRad,
				Longitude: siteLongitudeRad,
			}
			conv.HorizontalToEquatorial(angles, time.Now().Unix())

			println(fmt.Sprintf(
				"pitch=%.4f roll=%.4f heading=%.4f HA=%.4f Dec=%.4f RA=%.4f",
				pitch, roll, heading, angles.HourAngle, angles.Declination, angles.RightAscension,
			))

			if calibPressed {
				lastState = state
				state = waitingState
			}

		case failsafeState:
			statusLED.setState(ledFastFlash)
			println("FAILSAFE: orientation core halted, awaiting reset.")
			time.Sleep(time.Second)

		default:
			state = waitingState
		}

		if statusLED != nil {
			statusLED.update()
		}
		watchdog.Update()
	}
}

func reportCalibrationBounds() {
	b := engine.Bounds()
	println(fmt.Sprintf("accel bounds: x[%.3f,%.3f] y[%.3f,%.3f] z[%.3f,%.3f]",
		b.AxMin, b.AxMax, b.AyMin, b.AyMax, b.AzMin, b.AzMax))
	println(fmt.Sprintf("mag bounds:   x[%.3f,%.3f] y[%.3f,%.3f] z[%.3f,%.3f]",
		b.MxMin, b.MxMax, b.MyMin, b.MyMax, b.MzMin, b.MzMax))

	profile := config.Profile{
		Label:     "field calibration",
		Timestamp: time.Now(),
		AccelBounds: config.BoundsYAML{
			XMin: b.AxMin, XMax: b.AxMax,
			YMin: b.AyMin, YMax: b.AyMax,
			ZMin: b.AzMin, ZMax: b.AzMax,
		},
		MagBounds: config.BoundsYAML{
			XMin: b.MxMin, XMax: b.MxMax,
			YMin: b.MyMin, YMax: b.MyMax,
			ZMin: b.MzMin, ZMax: b.MzMax,
		},
		AccelBindings: bindingsToYAML(accelBindings),
		MagBindings:   bindingsToYAML(magBindings),
	}
	if err := config.SaveProfile(calibrationProfilePath, profile); err != nil {
		println("failed to save calibration profile:", err.Error())
	} else {
		println("calibration profile saved to", calibrationProfilePath)
	}
}

func bindingsToYAML(bindings [3]axis.Binding) [3]config.AxisBindingYAML {
	var out [3]config.AxisBindingYAML
	for i, b := range bindings {
		out[i] = config.AxisBindingYAML{
			Body:   b.Body.String(),
			Source: b.Source.String(),
			Sign:   b.Sign,
		}
	}
	return out
}
