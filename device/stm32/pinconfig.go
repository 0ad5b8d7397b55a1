// Package stm32 models the STM32 GPIO port configuration registers.
//
// The package computes register words only; it never touches memory-mapped
// I/O. Target code reads the live registers into a PortState, applies the
// desired pin configuration and writes the words back, so each register
// sees a single read-modify-write regardless of how many pins change.
package stm32

import "mcukit/bitmanip"

// PinMode selects the MODER setting of a pin.
type PinMode uint32

const (
	ModeInput PinMode = iota
	ModeOutput
	ModeAltFunc
	ModeAnalog
)

// OutputType selects the OTYPER setting of a pin.
type OutputType uint32

const (
	PushPull OutputType = iota
	OpenDrain
)

// Speed selects the OSPEEDR setting of a pin.
type Speed uint32

const (
	SpeedLow Speed = iota
	SpeedMedium
	SpeedHigh
	SpeedVeryHigh
)

// Pull selects the PUPDR setting of a pin.
type Pull uint32

const (
	NoPull Pull = iota
	PullUp
	PullDown
)

// AltFunc selects one of the 16 alternate functions of a pin.
type AltFunc uint32

const (
	AF0 AltFunc = iota
	AF1
	AF2
	AF3
	AF4
	AF5
	AF6
	AF7
	AF8
	AF9
	AF10
	AF11
	AF12
	AF13
	AF14
	AF15
)

// PinConfig is the full configuration of one port pin.
type PinConfig struct {
	Mode PinMode
	Type OutputType
	Spd  Speed
	Pull Pull
	AF   AltFunc
}

// PortState is a snapshot of the configuration registers of one GPIO
// port. AFR[0] covers pins 0-7, AFR[1] pins 8-15.
type PortState struct {
	MODER   uint32
	OTYPER  uint32
	OSPEEDR uint32
	PUPDR   uint32
	AFR     [2]uint32
}

// ConfigurePin updates the snapshot with the configuration for pin
// (0-15), leaving all other pins untouched.
func (s *PortState) ConfigurePin(pin int, cfg PinConfig) {
	mode := bitmanip.NewField[uint32](2*pin, 2)
	s.MODER = mode.Insert(s.MODER, uint32(cfg.Mode))

	otype := bitmanip.NewField[uint32](pin, 1)
	s.OTYPER = otype.Insert(s.OTYPER, uint32(cfg.Type))

	speed := bitmanip.NewField[uint32](2*pin, 2)
	s.OSPEEDR = speed.Insert(s.OSPEEDR, uint32(cfg.Spd))

	pull := bitmanip.NewField[uint32](2*pin, 2)
	s.PUPDR = pull.Insert(s.PUPDR, uint32(cfg.Pull))

	af := bitmanip.NewField[uint32](4*(pin&7), 4)
	s.AFR[pin>>3] = af.Insert(s.AFR[pin>>3], uint32(cfg.AF))
}
