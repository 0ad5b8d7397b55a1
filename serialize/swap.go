package serialize

// Swap16 reverses the byte order of a 16 bit value.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the byte order of a 32 bit value.
func Swap32(v uint32) uint32 {
	return v<<24 | (v&0xff00)<<8 | (v>>8)&0xff00 | v>>24
}

// Swap64 reverses the byte order of a 64 bit value.
func Swap64(v uint64) uint64 {
	return uint64(Swap32(uint32(v)))<<32 | uint64(Swap32(uint32(v>>32)))
}
