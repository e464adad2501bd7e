// Package surface defines the pixel surfaces the region pool reads from and
// restores to, and provides an in-memory implementation.
//
// Surfaces are either 8-bit indexed or 32-bit packed color. Rows may be
// padded, so every copy works row by row using the surface pitch.
package surface

import (
	"errors"
	"fmt"

	"github.com/joshuapare/peelkit/internal/buf"
	"github.com/joshuapare/peelkit/internal/geom"
)

var (
	// ErrLocked indicates a Lock on a surface that is already locked.
	ErrLocked = errors.New("surface: already locked")

	// ErrOutOfBounds indicates a rectangle that is not inside the surface.
	ErrOutOfBounds = errors.New("surface: rectangle out of bounds")

	// ErrShortBuffer indicates a caller buffer too small for the rows copied.
	ErrShortBuffer = errors.New("surface: buffer too small")

	// ErrNoMemory indicates the allocator could not provide pixel memory.
	ErrNoMemory = errors.New("surface: out of memory")

	// ErrBadFormat indicates an unsupported pixel format or size.
	ErrBadFormat = errors.New("surface: bad format")
)

// Format is a pixel format. Its value is the number of bytes per pixel.
type Format uint8

const (
	Indexed8 Format = 1
	Packed32 Format = 4
)

// BytesPerPixel returns the pixel size of f.
func (f Format) BytesPerPixel() int {
	return int(f)
}

func (f Format) String() string {
	switch f {
	case Indexed8:
		return "indexed8"
	case Packed32:
		return "packed32"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Surface is a lockable pixel surface. The pixel slice returned by Lock is
// only valid until Unlock.
type Surface interface {
	// Format returns the current pixel format.
	Format() Format

	// Bounds returns the surface rectangle, always anchored at (0, 0).
	Bounds() geom.Rect

	// Lock grants direct access to the pixels and returns the row pitch in bytes.
	Lock() (pix []byte, pitch int, err error)

	// Unlock ends direct access.
	Unlock()
}

// Allocator provides pixel memory. *arena.Arena satisfies it.
type Allocator interface {
	Alloc(size int) []byte
}

// ReadRect copies the pixels of r from s into dst, row by row. Rows in dst
// are dstPitch bytes apart.
func ReadRect(s Surface, r geom.Rect, dst []byte, dstPitch int) error {
	return copyRect(s, r, dst, dstPitch, false)
}

// WriteRect copies the pixels of r from src back into s, row by row. Rows in
// src are srcPitch bytes apart.
func WriteRect(s Surface, r geom.Rect, src []byte, srcPitch int) error {
	return copyRect(s, r, src, srcPitch, true)
}

func copyRect(s Surface, r geom.Rect, b []byte, bPitch int, toSurface bool) error {
	if r.Empty() {
		return nil
	}
	if !r.In(s.Bounds()) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r, s.Bounds())
	}

	bpp := s.Format().BytesPerPixel()
	rowBytes := r.Dx() * bpp
	rows := r.Dy()
	if _, err := buf.CheckRows(len(b), 0, rows, bPitch, rowBytes); err != nil {
		return fmt.Errorf("%w: %w", ErrShortBuffer, err)
	}

	pix, pitch, err := s.Lock()
	if err != nil {
		return err
	}
	defer s.Unlock()

	start := r.Top*pitch + r.Left*bpp
	if _, err := buf.CheckRows(len(pix), start, rows, pitch, rowBytes); err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	}

	for y := range rows {
		so := start + y*pitch
		bo := y * bPitch
		if toSurface {
			copy(pix[so:so+rowBytes], b[bo:bo+rowBytes])
		} else {
			copy(b[bo:bo+rowBytes], pix[so:so+rowBytes])
		}
	}
	return nil
}
