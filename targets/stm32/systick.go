//go:build tinygo && stm32

// Package stm32 provides the hardware bindings for STM32 parts: a
// SysTick-backed tick source and a machine.Pin-backed digio driver.
package stm32

import (
	"device/arm"
	"machine"

	"mcukit/tick"
)

// SysTickSource implements tick.Source on the Cortex-M SysTick timer,
// free-running over its full 24-bit range.
type SysTickSource struct {
	hz uint32
}

// NewSysTickSource returns a source clocked from the CPU clock. Init must
// be called before the first reading.
func NewSysTickSource() *SysTickSource {
	return &SysTickSource{hz: machine.CPUFrequency()}
}

// Init starts the SysTick counter without enabling its interrupt.
func (s *SysTickSource) Init() {
	arm.SYST.SYST_CVR.Set(0)
	arm.SYST.SYST_RVR.Set(uint32(s.Mask()))
	arm.SYST.SYST_CSR.Set(arm.SYST_CSR_CLKSOURCE_Msk | arm.SYST_CSR_ENABLE_Msk)
}

// Deinit stops the counter.
func (s *SysTickSource) Deinit() {
	arm.SYST.SYST_CSR.Set(0)
}

// Now returns the current reading. SysTick counts down, so the raw value
// is mirrored into an up-counting timestamp.
func (s *SysTickSource) Now() tick.Ticks {
	return s.Mask() - tick.Ticks(arm.SYST.SYST_CVR.Get())
}

// Mask returns the 24-bit SysTick counter mask.
func (s *SysTickSource) Mask() tick.Ticks {
	return tick.Ticks(arm.SYST_RVR_RELOAD_Msk)
}

// Hz returns the counter clock frequency.
func (s *SysTickSource) Hz() uint32 {
	return s.hz
}
