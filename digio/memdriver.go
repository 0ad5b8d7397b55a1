package digio

type memPin struct {
	output bool
	pull   PullMode
	state  bool
}

// MemDriver is an in-memory Driver for host tests and simulation. It
// enforces the configure-before-use contract that hardware silently does
// not.
type MemDriver struct {
	pins map[Pin]*memPin
}

// NewMemDriver returns an empty in-memory pin driver.
func NewMemDriver() *MemDriver {
	return &MemDriver{pins: make(map[Pin]*memPin)}
}

func (m *MemDriver) ConfigureOutput(pin Pin) error {
	m.pins[pin] = &memPin{output: true}
	return nil
}

func (m *MemDriver) ConfigureInput(pin Pin, pull PullMode) error {
	// Pull-up terminated inputs read high until driven.
	m.pins[pin] = &memPin{pull: pull, state: pull == PullUp}
	return nil
}

func (m *MemDriver) SetPin(pin Pin, value bool) error {
	p, ok := m.pins[pin]
	if !ok {
		return ErrNotConfigured
	}
	if !p.output {
		return ErrNotOutput
	}
	p.state = value
	return nil
}

func (m *MemDriver) GetPin(pin Pin) (bool, error) {
	p, ok := m.pins[pin]
	if !ok {
		return false, ErrNotConfigured
	}
	return p.state, nil
}

func (m *MemDriver) TogglePin(pin Pin) error {
	p, ok := m.pins[pin]
	if !ok {
		return ErrNotConfigured
	}
	if !p.output {
		return ErrNotOutput
	}
	p.state = !p.state
	return nil
}

// Drive forces the state of an input pin, simulating an external signal.
func (m *MemDriver) Drive(pin Pin, value bool) error {
	p, ok := m.pins[pin]
	if !ok {
		return ErrNotConfigured
	}
	p.state = value
	return nil
}
