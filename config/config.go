// Package config loads a board profile from YAML.
//
// The profile names the tick-counter frequency, the serial console and
// the pin assignments of a board, so host tools and bring-up code share
// one description instead of scattered constants.
package config

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"

	"mcukit/mathutil"
)

// Config mirrors board.yml.
type Config struct {
	TickHz uint32             `yaml:"tick_hz"` // 1000000 (by default)
	Serial SerialConfig       `yaml:"serial"`
	Pins   map[string]PinSpec `yaml:"pins"`
}

// SerialConfig describes the board's console UART as seen from the host.
type SerialConfig struct {
	Device      string `yaml:"device"`       // /dev/ttyACM0 (by default)
	Baud        int    `yaml:"baud"`         // 115200 (by default)
	ReadTimeout int    `yaml:"read_timeout"` // milliseconds, 100 (by default)
}

// PinSpec describes one named pin.
type PinSpec struct {
	Pin    uint32 `yaml:"pin"`
	Mode   string `yaml:"mode"` // "input" or "output"
	Pull   string `yaml:"pull"` // "none", "up" or "down"
	Invert bool   `yaml:"invert"`
}

func defaultConfig() Config {
	return Config{
		TickHz: 1000000,
		Serial: SerialConfig{
			Device:      "/dev/ttyACM0",
			Baud:        115200,
			ReadTimeout: 100,
		},
	}
}

// Load reads YAML and overrides defaults; an empty path or a missing file
// yields defaults only.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.sanitize()
	return cfg, nil
}

// sanitize clamps values a broken profile could set to something the rest
// of the library cannot work with.
func (c *Config) sanitize() {
	if c.TickHz == 0 {
		c.TickHz = 1000000
	}
	c.Serial.Baud = int(mathutil.Clamp(int64(c.Serial.Baud), 1200, 4000000))
	c.Serial.ReadTimeout = int(mathutil.Clamp(int64(c.Serial.ReadTimeout), 0, 60000))
	if c.Serial.Device == "" {
		c.Serial.Device = "/dev/ttyACM0"
	}

	for name, p := range c.Pins {
		switch p.Mode {
		case "input", "output":
		default:
			p.Mode = "input"
		}
		switch p.Pull {
		case "none", "up", "down":
		default:
			p.Pull = "none"
		}
		c.Pins[name] = p
	}
}
