package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort wraps the tarm/serial implementation.
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens a native serial port.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("serial: config cannot be nil")
	}

	serialConfig := &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	}

	port, err := serial.OpenPort(serialConfig)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Device, err)
	}

	return &NativePort{port: port, cfg: cfg}, nil
}

func (p *NativePort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *NativePort) Write(b []byte) (int, error) { return p.port.Write(b) }
func (p *NativePort) Close() error                { return p.port.Close() }

// Flush discards buffered, unread input.
func (p *NativePort) Flush() error { return p.port.Flush() }
