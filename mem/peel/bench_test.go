package peel

import (
	"testing"

	"github.com/joshuapare/peelkit/internal/geom"
)

// BenchmarkPool_CaptureRestore measures a sprite-sized capture and restore
// into a warm slot.
func BenchmarkPool_CaptureRestore(b *testing.B) {
	sizes := []struct {
		name string
		r    geom.Rect
	}{
		{"16x16", geom.WH(40, 40, 16, 16)},
		{"32x64", geom.WH(40, 40, 32, 64)},
		{"160x100", geom.WH(40, 40, 160, 100)},
	}
	for _, sz := range sizes {
		b.Run(sz.name, func(b *testing.B) {
			f := newFixture(b, Options{})
			b.SetBytes(int64(sz.r.Dx() * sz.r.Dy()))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				h, _ := f.pool.Capture(sz.r)
				f.pool.Restore(h)
			}
		})
	}
}

// BenchmarkPool_FullTable measures the slot scan with every slot but one in use.
func BenchmarkPool_FullTable(b *testing.B) {
	f := newFixture(b, Options{})
	for range DefaultOptions.Slots - 1 {
		_, _ = f.pool.Capture(geom.WH(0, 0, 8, 8))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		h, _ := f.pool.Capture(geom.WH(0, 0, 8, 8))
		f.pool.Restore(h)
	}
}

// BenchmarkPool_Verify measures capture and restore with digests enabled.
func BenchmarkPool_Verify(b *testing.B) {
	f := newFixture(b, Options{Verify: true})
	r := geom.WH(40, 40, 32, 64)
	b.SetBytes(int64(r.Dx() * r.Dy()))
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		h, _ := f.pool.Capture(r)
		f.pool.Restore(h)
	}
}
