//go:build tinygo && stm32

package stm32

import (
	"machine"

	"mcukit/digio"
)

// PinDriver implements digio.Driver over the machine package.
type PinDriver struct{}

// NewPinDriver returns the STM32 pin driver. Call digio.SetDriver with it
// during bring-up to make it the process-wide driver.
func NewPinDriver() *PinDriver {
	return &PinDriver{}
}

func (d *PinDriver) ConfigureOutput(pin digio.Pin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (d *PinDriver) ConfigureInput(pin digio.Pin, pull digio.PullMode) error {
	mode := machine.PinInputFloating
	switch pull {
	case digio.PullUp:
		mode = machine.PinInputPullup
	case digio.PullDown:
		mode = machine.PinInputPulldown
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (d *PinDriver) SetPin(pin digio.Pin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}

func (d *PinDriver) GetPin(pin digio.Pin) (bool, error) {
	return machine.Pin(pin).Get(), nil
}

func (d *PinDriver) TogglePin(pin digio.Pin) error {
	p := machine.Pin(pin)
	p.Set(!p.Get())
	return nil
}
