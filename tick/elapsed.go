package tick

// Elapsed returns the ticks elapsed between an older and a newer reading
// of the same source.
//
// Unsigned subtraction followed by masking to the counter width reproduces
// modular arithmetic, so exactly one counter wraparound between the two
// readings is handled correctly (older=mask, newer=0 gives 1). If the true
// elapsed time exceeds one full counter period the result aliases into
// [0, mask] and is indistinguishable from a short interval; that is a hard
// limit of the representation, not a detectable error.
func Elapsed(older, newer, mask Ticks) Ticks {
	return (newer - older) & mask
}

// IsElapsed reports whether period ticks have passed since the start
// reading. Pure; can be polled any number of times.
func IsElapsed(src Source, start, period Ticks) bool {
	return Elapsed(start, src.Now(), src.Mask()) >= period
}

// IsElapsedRepetitive reports whether period ticks have passed since
// *start, and moves *start to the observed time when they have.
//
// Repeated polling turns this into a free-running periodic trigger: each
// period is measured from the instant the previous expiry was detected, so
// late polls delay subsequent firings but never pile them up.
func IsElapsedRepetitive(src Source, start *Ticks, period Ticks) bool {
	now := src.Now()

	if Elapsed(*start, now, src.Mask()) >= period {
		*start = now
		return true
	}
	return false
}

// Delay busy-polls until period ticks have passed. It never yields and is
// meant for short hardware bring-up waits only.
func Delay(src Source, period Ticks) {
	start := src.Now()

	for !IsElapsed(src, start, period) {
	}
}

// DelayUs busy-polls for the given number of microseconds.
func DelayUs(src Source, us uint32) {
	Delay(src, IntUsToTicks(src.Hz(), us))
}
