// Package mathutil provides small scalar helpers shared across the
// library.
package mathutil

// RoundHalfAwayFromZero rounds x to the nearest integer, with halfway
// values rounded away from zero (1.5 -> 2, -1.5 -> -2).
func RoundHalfAwayFromZero(x float64) int64 {
	if x < 0 {
		return int64(x - 0.5)
	}
	return int64(x + 0.5)
}

// Clamp limits x to the range [min, max].
func Clamp[T int | int64 | uint32 | uint64 | float64](x, min, max T) T {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
