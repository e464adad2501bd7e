// Package buf holds overflow-safe arithmetic and bounds checks shared by the
// arena and the pixel copy paths.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// Pixel sizes are always computed through here (width * height * bytesPerPixel).
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// Area returns w * h * bpp, or ok = false on overflow or a negative factor.
func Area(w, h, bpp int) (int, bool) {
	if w < 0 || h < 0 || bpp < 0 {
		return 0, false
	}
	n, ok := MulOverflowSafe(w, h)
	if !ok {
		return 0, false
	}
	return MulOverflowSafe(n, bpp)
}

// CheckRows validates that rows rows of rowBytes bytes, pitch bytes apart and
// starting at offset, fit in a buffer of bufLen bytes. It returns the end
// offset of the last row.
//
//	end, err := buf.CheckRows(len(pix), off, h, pitch, w*bpp)
//	if err != nil {
//	    return fmt.Errorf("surface: %w", err)
//	}
func CheckRows(bufLen, offset, rows, pitch, rowBytes int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if rows < 0 {
		return 0, fmt.Errorf("negative row count: %d", rows)
	}
	if rowBytes < 0 || pitch < rowBytes {
		return 0, fmt.Errorf("row of %d bytes does not fit pitch %d", rowBytes, pitch)
	}
	if rows == 0 {
		return offset, nil
	}

	span, ok := MulOverflowSafe(rows-1, pitch)
	if !ok {
		return 0, fmt.Errorf("overflow: rows=%d * pitch=%d", rows, pitch)
	}
	span, ok = AddOverflowSafe(span, rowBytes)
	if !ok {
		return 0, fmt.Errorf("overflow: span + row=%d", rowBytes)
	}
	end, ok := AddOverflowSafe(offset, span)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + span=%d", offset, span)
	}

	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}

	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
// The returned slice has its capacity clipped to n.
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// Align8 rounds n up to the next multiple of 8.
func Align8(n int) int {
	return (n + 7) &^ 7
}
