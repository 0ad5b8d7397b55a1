package tick

import "mcukit/mathutil"

// SecToTicks converts seconds into ticks for a counter clocked at hz,
// rounding half away from zero. Intended for configuration-time constants;
// use IntUsToTicks on runtime paths where floating point must be avoided.
func SecToTicks(hz uint32, sec float64) Ticks {
	return Ticks(mathutil.RoundHalfAwayFromZero(float64(hz) * sec))
}

// MsToTicks converts milliseconds into ticks for a counter clocked at hz.
func MsToTicks(hz uint32, ms float64) Ticks {
	return SecToTicks(hz, ms*1e-3)
}

// UsToTicks converts microseconds into ticks for a counter clocked at hz.
func UsToTicks(hz uint32, us float64) Ticks {
	return SecToTicks(hz, us*1e-6)
}

// IntUsToTicks converts microseconds into ticks using integer arithmetic
// only. The intermediate product is computed in 64 bits, so it cannot
// overflow for any uint32 input and frequency. Unlike the floating point
// variants the result is truncated, not rounded, and may differ from
// UsToTicks by one tick.
func IntUsToTicks(hz uint32, us uint32) Ticks {
	return Ticks(uint64(us) * uint64(hz) / 1000000)
}

// TicksToUs converts ticks into microseconds using integer arithmetic,
// truncating towards zero.
func TicksToUs(hz uint32, t Ticks) uint32 {
	return uint32(uint64(t) * 1000000 / uint64(hz))
}
