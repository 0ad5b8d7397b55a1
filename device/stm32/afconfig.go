package stm32

import "mcukit/bitmanip"

// AFConfig accumulates alternate-function changes for a whole port across
// the AFRL/AFRH register pair, treated as one 64-bit value. Typical use:
//
//	var c stm32.AFConfig
//	c.Load(afrl, afrh)
//	c.Pin(2, stm32.AF7)
//	c.Pin(3, stm32.AF7)
//	afrl, afrh = c.Words()
type AFConfig struct {
	afr uint64
}

// Load seeds the builder with the current AFRL/AFRH register values.
func (c *AFConfig) Load(afrl, afrh uint32) *AFConfig {
	c.afr = uint64(afrh)<<32 | uint64(afrl)
	return c
}

// Pin sets the alternate function of a pin (0-15).
func (c *AFConfig) Pin(pin int, af AltFunc) *AFConfig {
	c.afr = bitmanip.Modify(c.afr,
		uint64(0xf)<<(4*pin),
		uint64(af)<<(4*pin))
	return c
}

// Words returns the accumulated AFRL and AFRH register values.
func (c *AFConfig) Words() (afrl, afrh uint32) {
	return uint32(c.afr), uint32(c.afr >> 32)
}
