package peel

import (
	"fmt"
	"log/slog"
	"slices"
)

// DefaultBuckets are the slot buffer sizes. Every slot buffer is exactly one
// of them, which keeps buffers reusable across differently sized captures.
var DefaultBuckets = []int{2 << 10, 8 << 10, 32 << 10, 128 << 10}

// Options configures a Pool.
type Options struct {
	// Slots is the size of the slot table.
	Slots int

	// Buckets are the allowed buffer sizes in bytes, strictly increasing.
	// Nil means DefaultBuckets.
	Buckets []int

	// Budget caps the sum of all slot buffer sizes.
	Budget int

	// ReservedRows is the height of the band at the bottom of the target
	// that restores never write to (the status bar).
	ReservedRows int

	// Logger receives diagnostics. Nil means the package logger, which
	// discards unless enabled.
	Logger *slog.Logger

	// Verify stores an xxh3 digest of every capture and refuses to restore
	// a buffer whose contents changed since.
	Verify bool
}

// DefaultOptions drives a 320x200 display: 50 slots, 1200 KiB budget and an
// 8-row status bar.
var DefaultOptions = Options{
	Slots:        50,
	Buckets:      DefaultBuckets,
	Budget:       1200 << 10,
	ReservedRows: 8,
}

// validate checks o and returns a copy that does not share the bucket slice.
func (o Options) validate() (Options, error) {
	if o.Slots <= 0 || o.Slots > 1<<20 {
		return o, fmt.Errorf("%w: %d slots", ErrBadOptions, o.Slots)
	}
	if o.Budget <= 0 {
		return o, fmt.Errorf("%w: budget %d", ErrBadOptions, o.Budget)
	}
	if o.ReservedRows < 0 {
		return o, fmt.Errorf("%w: %d reserved rows", ErrBadOptions, o.ReservedRows)
	}

	if o.Buckets == nil {
		o.Buckets = DefaultBuckets
	}
	if len(o.Buckets) == 0 {
		return o, fmt.Errorf("%w: no buckets", ErrBadOptions)
	}
	for i, b := range o.Buckets {
		if b <= 0 || (i > 0 && b <= o.Buckets[i-1]) {
			return o, fmt.Errorf("%w: buckets %v not strictly increasing", ErrBadOptions, o.Buckets)
		}
	}
	o.Buckets = slices.Clone(o.Buckets)
	return o, nil
}
