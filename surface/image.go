package surface

import (
	"fmt"

	"github.com/joshuapare/peelkit/internal/buf"
	"github.com/joshuapare/peelkit/internal/geom"
)

// Image is an in-memory Surface. Rows are padded to 4-byte multiples, so
// the pitch of an 8-bit image is generally wider than its width.
type Image struct {
	format Format
	w, h   int
	pitch  int
	pix    []byte
	locked bool
}

var _ Surface = (*Image)(nil)

// NewImage creates a w x h image. When alloc is non-nil the pixels come from
// it (for example an arena in temp mode); otherwise from the Go heap.
func NewImage(w, h int, f Format, alloc Allocator) (*Image, error) {
	if f != Indexed8 && f != Packed32 {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, f)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadFormat, w, h)
	}

	rowBytes, ok := buf.MulOverflowSafe(w, f.BytesPerPixel())
	if !ok {
		return nil, fmt.Errorf("%w: width %d overflows", ErrBadFormat, w)
	}
	pitch := (rowBytes + 3) &^ 3
	size, ok := buf.MulOverflowSafe(pitch, h)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrBadFormat, w, h)
	}

	var pix []byte
	if alloc != nil {
		pix = alloc.Alloc(size)
		if pix == nil {
			return nil, fmt.Errorf("%w: %d bytes for %dx%d %v", ErrNoMemory, size, w, h, f)
		}
	} else {
		pix = make([]byte, size)
	}

	return &Image{format: f, w: w, h: h, pitch: pitch, pix: pix}, nil
}

// Format implements Surface.
func (m *Image) Format() Format { return m.format }

// Bounds implements Surface.
func (m *Image) Bounds() geom.Rect { return geom.R(0, 0, m.w, m.h) }

// Pitch returns the row stride in bytes.
func (m *Image) Pitch() int { return m.pitch }

// Lock implements Surface. Locks do not nest.
func (m *Image) Lock() ([]byte, int, error) {
	if m.locked {
		return nil, 0, ErrLocked
	}
	m.locked = true
	return m.pix, m.pitch, nil
}

// Unlock implements Surface.
func (m *Image) Unlock() {
	m.locked = false
}

// At returns the pixel at (x, y): a palette index for indexed images, a
// packed color otherwise. Out-of-bounds reads return 0.
func (m *Image) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return 0
	}
	bpp := m.format.BytesPerPixel()
	return buf.Pixel(m.pix, y*m.pitch+x*bpp, bpp)
}

// Set writes the pixel at (x, y). Out-of-bounds writes are dropped.
func (m *Image) Set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	bpp := m.format.BytesPerPixel()
	buf.PutPixel(m.pix, y*m.pitch+x*bpp, bpp, c)
}

// FillRect sets every pixel of r (clipped to the image) to c.
func (m *Image) FillRect(r geom.Rect, c uint32) {
	r = r.Intersect(m.Bounds())
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			m.Set(x, y, c)
		}
	}
}

// Fill sets every pixel to c.
func (m *Image) Fill(c uint32) {
	m.FillRect(m.Bounds(), c)
}
