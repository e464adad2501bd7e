package testutil

import (
	"testing"

	"github.com/joshuapare/peelkit/internal/geom"
	"github.com/joshuapare/peelkit/mem/arena"
	"github.com/joshuapare/peelkit/surface"
)

// Screen dimensions of the target display.
const (
	ScreenWidth  = 320
	ScreenHeight = 200
)

// Checker returns the checkerboard color of pixel (x, y): 0xAA on even
// squares, 0x55 on odd ones, with squares of size cell.
func Checker(x, y, cell int) uint32 {
	if ((x/cell)+(y/cell))%2 == 0 {
		return 0xAA
	}
	return 0x55
}

// NewCheckerScreen returns a 320x200 indexed screen filled with an 8-pixel
// checkerboard.
//
// Example:
//
//	screen := testutil.NewCheckerScreen(t)
//	before := testutil.Snapshot(screen)
func NewCheckerScreen(t testing.TB) *surface.Image {
	t.Helper()
	return NewCheckerSurface(t, ScreenWidth, ScreenHeight, surface.Indexed8)
}

// NewCheckerSurface returns a w x h heap-backed image in format f filled with
// an 8-pixel checkerboard.
func NewCheckerSurface(t testing.TB, w, h int, f surface.Format) *surface.Image {
	t.Helper()

	img, err := surface.NewImage(w, h, f, nil)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}
	for y := range h {
		for x := range w {
			img.Set(x, y, Checker(x, y, 8))
		}
	}
	return img
}

// Snapshot copies every pixel of img, row-major.
func Snapshot(img *surface.Image) []uint32 {
	b := img.Bounds()
	out := make([]uint32, 0, b.Dx()*b.Dy())
	for y := b.Top; y < b.Bottom; y++ {
		for x := b.Left; x < b.Right; x++ {
			out = append(out, img.At(x, y))
		}
	}
	return out
}

// Diff returns the pixels where img differs from a Snapshot taken earlier,
// as 1x1 rectangles, up to limit entries.
func Diff(img *surface.Image, before []uint32, limit int) []geom.Rect {
	b := img.Bounds()
	var out []geom.Rect
	for y := b.Top; y < b.Bottom; y++ {
		for x := b.Left; x < b.Right; x++ {
			if img.At(x, y) != before[y*b.Dx()+x] {
				out = append(out, geom.WH(x, y, 1, 1))
				if len(out) >= limit {
					return out
				}
			}
		}
	}
	return out
}

// NewArena returns a heap-backed arena of the given capacity with no fixed
// buffers, closed when the test ends.
func NewArena(t testing.TB, capacity int) *arena.Arena {
	t.Helper()

	a, err := arena.New(arena.Config{Capacity: capacity, HeapBacked: true})
	if err != nil {
		t.Fatalf("Failed to create arena: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Close()
	})
	return a
}
