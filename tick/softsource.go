package tick

// SoftSource is a tick source backed by a plain software counter. The
// counter only moves when Advance is called, which makes it the time base
// for host builds and for tests that need full control over elapsed time.
type SoftSource struct {
	ticks Ticks
	mask  Ticks
	hz    uint32
}

// NewSoftSource returns a software counter clocked (nominally) at hz whose
// significant bits are given by mask.
func NewSoftSource(hz uint32, mask Ticks) *SoftSource {
	return &SoftSource{mask: mask, hz: hz}
}

// Advance moves the counter forward by n ticks, wrapping at the mask.
func (s *SoftSource) Advance(n Ticks) {
	s.ticks = (s.ticks + n) & s.mask
}

// Set forces the counter to a specific reading.
func (s *SoftSource) Set(t Ticks) {
	s.ticks = t & s.mask
}

// Now returns the current counter reading.
func (s *SoftSource) Now() Ticks { return s.ticks }

// Mask returns the counter's significant bits.
func (s *SoftSource) Mask() Ticks { return s.mask }

// Hz returns the nominal counter frequency.
func (s *SoftSource) Hz() uint32 { return s.hz }
