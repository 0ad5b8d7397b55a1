// Package serialize packs and unpacks fixed-width integers in little or
// big endian byte order.
//
// Store functions write into buf and return the number of bytes written;
// Fetch functions read from buf and return the value together with the
// number of bytes consumed. The count return lets callers walk a message
// buffer with a cursor:
//
//	p := 0
//	p += serialize.Store16LE(buf[p:], seq)
//	p += serialize.Store32LE(buf[p:], payload)
//
// The functions index the slice directly, so a short buffer panics the
// same way any out-of-range access does.
package serialize

// Store8 writes an 8 bit value.
func Store8(buf []byte, v uint8) int {
	buf[0] = v
	return 1
}

// Store16LE writes a 16 bit value LSB first.
func Store16LE(buf []byte, v uint16) int {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	return 2
}

// Store16BE writes a 16 bit value MSB first.
func Store16BE(buf []byte, v uint16) int {
	buf[0] = byte(v >> 8)
	buf[1] = byte(v)
	return 2
}

// Store24LE writes the low 24 bits of v LSB first.
func Store24LE(buf []byte, v uint32) int {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	return 3
}

// Store24BE writes the low 24 bits of v MSB first.
func Store24BE(buf []byte, v uint32) int {
	buf[0] = byte(v >> 16)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v)
	return 3
}

// Store32LE writes a 32 bit value LSB first.
func Store32LE(buf []byte, v uint32) int {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	return 4
}

// Store32BE writes a 32 bit value MSB first.
func Store32BE(buf []byte, v uint32) int {
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
	return 4
}

// Store64LE writes a 64 bit value LSB first.
func Store64LE(buf []byte, v uint64) int {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	return 8
}

// Store64BE writes a 64 bit value MSB first.
func Store64BE(buf []byte, v uint64) int {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * (7 - i)))
	}
	return 8
}

// Fetch8 reads an 8 bit value.
func Fetch8(buf []byte) (uint8, int) {
	return buf[0], 1
}

// Fetch16LE reads a 16 bit value stored LSB first.
func Fetch16LE(buf []byte) (uint16, int) {
	return uint16(buf[1])<<8 | uint16(buf[0]), 2
}

// Fetch16BE reads a 16 bit value stored MSB first.
func Fetch16BE(buf []byte) (uint16, int) {
	return uint16(buf[0])<<8 | uint16(buf[1]), 2
}

// Fetch24LE reads a 24 bit value stored LSB first.
func Fetch24LE(buf []byte) (uint32, int) {
	return uint32(buf[2])<<16 | uint32(buf[1])<<8 | uint32(buf[0]), 3
}

// Fetch24BE reads a 24 bit value stored MSB first.
func Fetch24BE(buf []byte) (uint32, int) {
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), 3
}

// Fetch32LE reads a 32 bit value stored LSB first.
func Fetch32LE(buf []byte) (uint32, int) {
	return uint32(buf[3])<<24 | uint32(buf[2])<<16 |
		uint32(buf[1])<<8 | uint32(buf[0]), 4
}

// Fetch32BE reads a 32 bit value stored MSB first.
func Fetch32BE(buf []byte) (uint32, int) {
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 |
		uint32(buf[2])<<8 | uint32(buf[3]), 4
}

// Fetch64LE reads a 64 bit value stored LSB first.
func Fetch64LE(buf []byte) (uint64, int) {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v, 8
}

// Fetch64BE reads a 64 bit value stored MSB first.
func Fetch64BE(buf []byte) (uint64, int) {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(buf[i])
	}
	return v, 8
}
