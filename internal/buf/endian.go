package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// PutU32LE writes v little-endian into b. Short buffers are left untouched.
func PutU32LE(b []byte, v uint32) {
	if len(b) < 4 {
		return
	}
	binary.LittleEndian.PutUint32(b, v)
}

// Pixel reads a bpp-byte pixel at off: one byte for indexed pixels, a
// little-endian word for packed ones. Returns 0 when out of range.
func Pixel(b []byte, off, bpp int) uint32 {
	p, ok := Slice(b, off, bpp)
	if !ok {
		return 0
	}
	if bpp == 1 {
		return uint32(p[0])
	}
	return U32LE(p)
}

// PutPixel writes a bpp-byte pixel at off. Indexed pixels keep the low byte
// of v. Out-of-range writes are dropped.
func PutPixel(b []byte, off, bpp int, v uint32) {
	p, ok := Slice(b, off, bpp)
	if !ok {
		return
	}
	if bpp == 1 {
		p[0] = byte(v)
		return
	}
	PutU32LE(p, v)
}
