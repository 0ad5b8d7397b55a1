package digio

// Output is a configured digital output pin.
type Output struct {
	d   Driver
	pin Pin
}

// NewOutput configures pin as a push-pull output on d and returns the
// typed wrapper.
func NewOutput(d Driver, pin Pin) (Output, error) {
	if err := d.ConfigureOutput(pin); err != nil {
		return Output{}, err
	}
	return Output{d: d, pin: pin}, nil
}

// Pin returns the wrapped pin number.
func (o Output) Pin() Pin { return o.pin }

// High drives the output high.
func (o Output) High() error { return o.d.SetPin(o.pin, true) }

// Low drives the output low.
func (o Output) Low() error { return o.d.SetPin(o.pin, false) }

// Set drives the output to the given value.
func (o Output) Set(value bool) error { return o.d.SetPin(o.pin, value) }

// Toggle inverts the output.
func (o Output) Toggle() error { return o.d.TogglePin(o.pin) }

// Value returns the pin state as seen by the hardware. On an open-drain
// line this can differ from the last driven value when an external
// circuit holds the line.
func (o Output) Value() (bool, error) { return o.d.GetPin(o.pin) }

// Input is a configured digital input pin.
type Input struct {
	d      Driver
	pin    Pin
	invert bool
}

// NewInput configures pin as an input with the given termination.
func NewInput(d Driver, pin Pin, pull PullMode) (Input, error) {
	if err := d.ConfigureInput(pin, pull); err != nil {
		return Input{}, err
	}
	return Input{d: d, pin: pin}, nil
}

// NewInvertedInput is NewInput for active-low signals: Read returns true
// when the pin is electrically low.
func NewInvertedInput(d Driver, pin Pin, pull PullMode) (Input, error) {
	in, err := NewInput(d, pin, pull)
	in.invert = true
	return in, err
}

// Pin returns the wrapped pin number.
func (i Input) Pin() Pin { return i.pin }

// Read returns the logical pin state.
func (i Input) Read() (bool, error) {
	v, err := i.d.GetPin(i.pin)
	if i.invert {
		v = !v
	}
	return v, err
}
