// Package serial provides the host-side serial port used to talk to a
// board's console UART.
package serial

import "io"

// Port represents a serial port. The abstraction keeps tools independent
// of the underlying implementation (native port, mock for tests).
type Port interface {
	io.ReadWriteCloser

	// Flush discards buffered, unread input.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate. USB CDC consoles ignore this.
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration for a typical MCU console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
