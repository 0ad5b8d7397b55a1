package serialize

import (
	"bytes"
	"testing"
)

func TestStoreByteOrder(t *testing.T) {
	buf := make([]byte, 8)

	if n := Store16LE(buf, 0x4711); n != 2 || !bytes.Equal(buf[:2], []byte{0x11, 0x47}) {
		t.Errorf("Store16LE: n=%d buf=%x", n, buf[:2])
	}
	if n := Store16BE(buf, 0x4711); n != 2 || !bytes.Equal(buf[:2], []byte{0x47, 0x11}) {
		t.Errorf("Store16BE: n=%d buf=%x", n, buf[:2])
	}
	if n := Store24LE(buf, 0xcafe42); n != 3 || !bytes.Equal(buf[:3], []byte{0x42, 0xfe, 0xca}) {
		t.Errorf("Store24LE: n=%d buf=%x", n, buf[:3])
	}
	if n := Store24BE(buf, 0xcafe42); n != 3 || !bytes.Equal(buf[:3], []byte{0xca, 0xfe, 0x42}) {
		t.Errorf("Store24BE: n=%d buf=%x", n, buf[:3])
	}
	if n := Store32BE(buf, 0x01020304); n != 4 || !bytes.Equal(buf[:4], []byte{1, 2, 3, 4}) {
		t.Errorf("Store32BE: n=%d buf=%x", n, buf[:4])
	}
	if n := Store64LE(buf, 0x0102030405060708); n != 8 ||
		!bytes.Equal(buf, []byte{8, 7, 6, 5, 4, 3, 2, 1}) {
		t.Errorf("Store64LE: n=%d buf=%x", n, buf)
	}
}

func TestFetchByteOrder(t *testing.T) {
	if v, n := Fetch16LE([]byte{0x11, 0x47}); v != 0x4711 || n != 2 {
		t.Errorf("Fetch16LE = %#x, %d", v, n)
	}
	if v, n := Fetch16BE([]byte{0x47, 0x11}); v != 0x4711 || n != 2 {
		t.Errorf("Fetch16BE = %#x, %d", v, n)
	}
	if v, n := Fetch24LE([]byte{0x42, 0xfe, 0xca}); v != 0xcafe42 || n != 3 {
		t.Errorf("Fetch24LE = %#x, %d", v, n)
	}
	if v, n := Fetch24BE([]byte{0xca, 0xfe, 0x42}); v != 0xcafe42 || n != 3 {
		t.Errorf("Fetch24BE = %#x, %d", v, n)
	}
	if v, n := Fetch32LE([]byte{4, 3, 2, 1}); v != 0x01020304 || n != 4 {
		t.Errorf("Fetch32LE = %#x, %d", v, n)
	}
	if v, n := Fetch64BE([]byte{1, 2, 3, 4, 5, 6, 7, 8}); v != 0x0102030405060708 || n != 8 {
		t.Errorf("Fetch64BE = %#x, %d", v, n)
	}
}

func TestCursorWalk(t *testing.T) {
	// The count returns drive a message cursor, firmware style.
	buf := make([]byte, 16)

	p := 0
	p += Store8(buf[p:], 0x7e)
	p += Store16LE(buf[p:], 0x4711)
	p += Store32LE(buf[p:], 0xdeadbeef)
	if p != 7 {
		t.Fatalf("cursor after stores = %d, want 7", p)
	}

	p = 0
	sync, n := Fetch8(buf[p:])
	p += n
	seq, n := Fetch16LE(buf[p:])
	p += n
	payload, n := Fetch32LE(buf[p:])
	p += n

	if sync != 0x7e || seq != 0x4711 || payload != 0xdeadbeef || p != 7 {
		t.Errorf("cursor walk: sync=%#x seq=%#x payload=%#x p=%d",
			sync, seq, payload, p)
	}
}

func TestSwap(t *testing.T) {
	if got := Swap16(0x1234); got != 0x3412 {
		t.Errorf("Swap16 = %#x", got)
	}
	if got := Swap32(0x12345678); got != 0x78563412 {
		t.Errorf("Swap32 = %#x", got)
	}
	if got := Swap64(0x0102030405060708); got != 0x0807060504030201 {
		t.Errorf("Swap64 = %#x", got)
	}
	if got := Swap32(Swap32(0xcafebabe)); got != 0xcafebabe {
		t.Errorf("double swap not identity: %#x", got)
	}
}
