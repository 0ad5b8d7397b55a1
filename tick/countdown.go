package tick

// State enumerates the countdown timer states.
type State uint8

const (
	Stopped State = iota
	Expired
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Expired:
		return "expired"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Countdown is a polled countdown timer on top of a tick source.
//
// The timer does not update itself: the owner must call Update
// periodically, and expiry is only ever detected there. The interval
// between two Update calls must stay below one full counter period of the
// source, otherwise elapsed ticks alias and expirations are missed. This
// is a caller obligation, not a checked error.
//
// A Countdown is single-writer: updating the same instance from two
// execution contexts (e.g. main loop and interrupt) is a data race the
// caller must exclude.
type Countdown struct {
	src       Source
	state     State
	remaining Ticks
	last      Ticks
}

// NewCountdown returns a stopped countdown timer reading from src.
func NewCountdown(src Source) *Countdown {
	return &Countdown{src: src}
}

// Start loads the timer with a period and captures the current counter
// reading as reference. Legal in any state.
//
// Start(0) leaves the timer running until the next Update observes it;
// Expired never reports true before an Update call.
func (c *Countdown) Start(period Ticks) {
	c.state = Running
	c.remaining = period
	c.last = c.src.Now()
}

// Stop puts the timer into the stopped state. Idempotent, legal in any
// state.
func (c *Countdown) Stop() {
	c.state = Stopped
	c.remaining = 0
}

// Update advances the timer by the ticks elapsed since its reference
// reading. No-op unless the timer is running. When the elapsed time
// reaches the remaining period the timer transitions to expired exactly
// once; remaining is clamped to zero, never negative.
func (c *Countdown) Update() {
	if c.state != Running {
		return
	}

	now := c.src.Now()
	elapsed := Elapsed(c.last, now, c.src.Mask())

	if elapsed >= c.remaining {
		c.state = Expired
		c.remaining = 0
	} else {
		c.remaining -= elapsed
	}
	c.last = now
}

// Expired reports whether the timer has run down.
func (c *Countdown) Expired() bool { return c.state == Expired }

// Stopped reports whether the timer is stopped.
func (c *Countdown) Stopped() bool { return c.state == Stopped }

// Running reports whether the timer is loaded and counting.
func (c *Countdown) Running() bool { return c.state == Running }

// State returns the current timer state.
func (c *Countdown) State() State { return c.state }

// Remaining returns the ticks left until expiry, or 0 if the timer is not
// running. The value reflects the last Update call, not the counter.
func (c *Countdown) Remaining() Ticks {
	if c.state != Running {
		return 0
	}
	return c.remaining
}
