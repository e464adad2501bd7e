package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89}

	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}

	out := make([]byte, 4)
	PutU32LE(out, 0xDEADBEEF)
	if got := U32LE(out); got != 0xDEADBEEF {
		t.Fatalf("PutU32LE round trip = 0x%x", got)
	}

	short := []byte{0xAA}
	if U32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
	PutU32LE(short, 1)
	if short[0] != 0xAA {
		t.Fatalf("short writes should be dropped")
	}
}

func TestPixel(t *testing.T) {
	b := make([]byte, 8)

	PutPixel(b, 1, 1, 0x1234)
	if got := Pixel(b, 1, 1); got != 0x34 {
		t.Fatalf("indexed pixel = 0x%x, want 0x34", got)
	}

	PutPixel(b, 4, 4, 0xCAFEBABE)
	if got := Pixel(b, 4, 4); got != 0xCAFEBABE {
		t.Fatalf("packed pixel = 0x%x, want 0xcafebabe", got)
	}
	if b[4] != 0xBE || b[7] != 0xCA {
		t.Fatalf("packed pixels must be little-endian, got % x", b[4:])
	}

	if got := Pixel(b, 6, 4); got != 0 {
		t.Fatalf("out-of-range read = 0x%x, want 0", got)
	}
	PutPixel(b, 6, 4, 0xFFFFFFFF)
	if b[6] != 0xFE {
		t.Fatalf("out-of-range write modified the buffer")
	}
}
