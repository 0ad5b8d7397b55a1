// Package digio provides typed digital input/output pins over a pluggable
// pin driver.
//
// Core code works against the Driver interface; target-specific code
// (see targets/) supplies the hardware implementation. MemDriver is a
// host-side implementation for tests and simulation.
package digio

import "errors"

// Pin identifies a hardware GPIO pin number.
type Pin uint32

// PullMode selects the input pin termination.
type PullMode uint8

const (
	PullNone PullMode = iota
	PullUp
	PullDown
)

var (
	ErrNotConfigured = errors.New("digio: pin not configured")
	ErrNotOutput     = errors.New("digio: pin not configured as output")
)

// Driver is the abstract pin interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type Driver interface {
	// ConfigureOutput configures a pin as a push-pull digital output.
	ConfigureOutput(pin Pin) error

	// ConfigureInput configures a pin as a digital input with the given
	// termination.
	ConfigureInput(pin Pin, pull PullMode) error

	// SetPin drives an output pin high (true) or low (false).
	SetPin(pin Pin, value bool) error

	// GetPin reads the current pin state.
	GetPin(pin Pin) (bool, error)

	// TogglePin inverts an output pin.
	TogglePin(pin Pin) error
}

// Process-wide driver, registered by target code at startup. Optional:
// every constructor also accepts an explicit driver.
var driver Driver

// SetDriver is called by target-specific code to register its driver.
func SetDriver(d Driver) {
	driver = d
}

// MustDriver returns the registered driver or panics if missing.
func MustDriver() Driver {
	if driver == nil {
		panic("digio: driver not configured")
	}
	return driver
}
