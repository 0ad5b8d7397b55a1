package bitmanip

// Field describes the position and mask of a bit field within a register
// or packed word.
type Field[T Unsigned] struct {
	Pos int
	Msk T
}

// NewField returns a descriptor for a field of width bits starting at pos.
func NewField[T Unsigned](pos, width int) Field[T] {
	return Field[T]{Pos: pos, Msk: Mask[T](pos, width)}
}

// Make shifts and masks a right-aligned value into field position.
func (f Field[T]) Make(val T) T {
	return (val << f.Pos) & f.Msk
}

// Extract returns the right-aligned value of the field within reg.
func (f Field[T]) Extract(reg T) T {
	return (reg & f.Msk) >> f.Pos
}

// Insert returns reg with the field replaced by val, leaving the other
// bits untouched.
func (f Field[T]) Insert(reg, val T) T {
	return Modify(reg, f.Msk, f.Make(val))
}
