// Package imx models the i.MX IOMUXC pad configuration registers.
//
// Like device/stm32 this package computes register words only: the
// SW_MUX_CTL and SW_PAD_CTL values for a pad. Target code writes them to
// the pad's registers.
package imx

import "mcukit/bitmanip"

// PullSelect is the PS field of SW_PAD_CTL.
type PullSelect uint32

const (
	Pull100KDown PullSelect = iota
	Pull5KUp
	Pull47KUp
	Pull100KUp
)

// SlewRate is the SRE field of SW_PAD_CTL.
type SlewRate uint32

const (
	SlewFast SlewRate = iota
	SlewSlow
)

// DriveStrength is the DSE field of SW_PAD_CTL.
type DriveStrength uint32

const (
	DriveX1 DriveStrength = iota
	DriveX4
	DriveX2
	DriveX6
)

// SW_PAD_CTL field layout (i.MX7 M4 pad control register).
var (
	fieldPS  = bitmanip.NewField[uint32](8, 2)
	fieldPE  = bitmanip.NewField[uint32](7, 1)
	fieldHYS = bitmanip.NewField[uint32](6, 1)
	fieldSRE = bitmanip.NewField[uint32](2, 1)
	fieldDSE = bitmanip.NewField[uint32](0, 2)
)

// PadConfig is the full configuration of one pad.
type PadConfig struct {
	MuxMode    uint32 // alternate function select for SW_MUX_CTL
	Pull       PullSelect
	PullEnable bool
	Hysteresis bool
	Slew       SlewRate
	Drive      DriveStrength
}

// MuxCtl returns the SW_MUX_CTL register value for the pad.
func (c PadConfig) MuxCtl() uint32 {
	return c.MuxMode
}

// PadCtl returns the SW_PAD_CTL register value for the pad.
func (c PadConfig) PadCtl() uint32 {
	var v uint32
	v = fieldPS.Insert(v, uint32(c.Pull))
	v = fieldPE.Insert(v, b2u(c.PullEnable))
	v = fieldHYS.Insert(v, b2u(c.Hysteresis))
	v = fieldSRE.Insert(v, uint32(c.Slew))
	v = fieldDSE.Insert(v, uint32(c.Drive))
	return v
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
