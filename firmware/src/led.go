package main

import (
	"machine"
	"time"
)

// Status LED patterns: solid off/on during bring-up, slow flash while
// waiting for an operator, fast flash while calibrating, solid on while
// running, rapid flash on init failure.
const (
	ledOff       = 0
	ledOn        = 1
	ledSlowFlash = 2
	ledFastFlash = 3
)

type ledState struct {
	pin        machine.Pin
	state      int
	lastToggle time.Time
	isOn       bool
}

func newLEDState(pin machine.Pin) *ledState {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &ledState{pin: pin, state: ledOff, lastToggle: time.Now()}
}

func (ls *ledState) update() {
	now := time.Now()
	switch ls.state {
	case ledOff:
		ls.pin.Low()
		ls.isOn = false
	case ledOn:
		ls.pin.High()
		ls.isOn = true
	case ledSlowFlash:
		ls.toggleEvery(now, 250*time.Millisecond)
	case ledFastFlash:
		ls.toggleEvery(now, 50*time.Millisecond)
	}
}

func (ls *ledState) toggleEvery(now time.Time, period time.Duration) {
	if now.Sub(ls.lastToggle) < period {
		return
	}
	if ls.isOn {
		ls.pin.Low()
	} else {
		ls.pin.High()
	}
	ls.isOn = !ls.isOn
	ls.lastToggle = now
}

func (ls *ledState) setState(state int) {
	ls.state = state
}
