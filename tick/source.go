// Package tick provides timing built on a free-running timestamp counter.
//
// A hardware or software counter is used as time base. Given two counter
// readings, their masked difference is the time elapsed between them. That
// is enough to measure execution time, implement delays, test whether a
// period has passed, and run polled countdown timers.
//
// The counter itself is supplied by the caller through the Source
// interface. It can be backed by a hardware timer (e.g. the Cortex-M
// SysTick, see targets/stm32) or by a software counter such as SoftSource.
package tick

// Ticks is the storage type for counter readings and tick periods.
//
// The counter behind a Source may use fewer bits than Ticks holds; the
// significant bits are identified by the source's mask. All elapsed-time
// arithmetic must be masked to the counter width, never the storage width.
type Ticks uint32

// FullMask is the counter mask of a source that uses all bits of Ticks.
const FullMask Ticks = 0xffffffff

// Source is the capability contract for a free-running tick counter.
//
// Now returns the current counter reading. Readings increase monotonically
// and wrap to zero after Mask. Hz is the counter clock in ticks per second;
// it is fixed for the lifetime of the source and used only for unit
// conversion. A Source backed by a hardware register must tolerate
// concurrent Now calls from multiple contexts (pure load, no side effect).
type Source interface {
	Now() Ticks
	Mask() Ticks
	Hz() uint32
}

// Lifecycle is implemented by sources whose underlying counter has to be
// started before use. The elapsed-time and countdown logic never calls
// these; board bring-up does.
type Lifecycle interface {
	Init()
	Deinit()
}
