// Package bitmanip provides bit manipulation helpers for register values
// and fixed-width integers.
//
// The helpers are more readable than raw bit operators and keep every
// operation on an unsigned type, which sidesteps the sign-extension
// surprises of mixed-width integer arithmetic. They operate on plain
// values: read a register snapshot, transform it, write it back. Modify
// exists so that a clear-and-set sequence costs a single
// read-modify-write on the register, not two.
package bitmanip

// Unsigned constrains the helpers to unsigned integer types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Bit returns a mask with the single bit at pos set.
func Bit[T Unsigned](pos int) T {
	return T(1) << pos
}

// Mask returns a mask of width consecutive bits starting at pos.
func Mask[T Unsigned](pos, width int) T {
	var m T
	for i := 0; i < width; i++ {
		m |= T(1) << (pos + i)
	}
	return m
}

// Set returns v with the bits selected by msk set.
func Set[T Unsigned](v, msk T) T {
	return v | msk
}

// Clear returns v with the bits selected by msk cleared.
func Clear[T Unsigned](v, msk T) T {
	return v &^ msk
}

// Toggle returns v with the bits selected by msk inverted.
func Toggle[T Unsigned](v, msk T) T {
	return v ^ msk
}

// SetValue returns v with the bits selected by msk set if val is true,
// cleared otherwise.
func SetValue[T Unsigned](v, msk T, val bool) T {
	if val {
		return Set(v, msk)
	}
	return Clear(v, msk)
}

// Test reports whether any bit selected by msk is set in v.
func Test[T Unsigned](v, msk T) bool {
	return v&msk != 0
}

// TestAll reports whether every bit selected by msk is set in v.
func TestAll[T Unsigned](v, msk T) bool {
	return v&msk == msk
}

// Modify returns v with the clrMsk bits cleared and then the setMsk bits
// set. Clearing happens first, so bits present in both masks end up set.
func Modify[T Unsigned](v, clrMsk, setMsk T) T {
	return (v &^ clrMsk) | setMsk
}
