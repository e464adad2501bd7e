package peel

import "fmt"

// Handle refers to one capture. The zero Handle (None) is returned whenever a
// capture cannot proceed; every operation taking a Handle treats it as a
// no-op, so callers never need to check before calling Restore.
//
// A handle also carries the generation of the slot acquisition it came from.
// Once the slot has been freed and handed out again, the old handle is stale
// and is ignored like None.
type Handle struct {
	idx int32 // slot index + 1; 0 means None
	gen uint32
}

// None is the handle returned by failed captures.
var None Handle

// Valid reports whether h came from a successful slot acquisition. A valid
// handle may still be stale.
func (h Handle) Valid() bool {
	return h.idx > 0
}

// Slot returns the slot index h refers to, or -1 for None.
func (h Handle) Slot() int {
	return int(h.idx) - 1
}

func (h Handle) String() string {
	if !h.Valid() {
		return "peel(none)"
	}
	return fmt.Sprintf("peel(%d#%d)", h.Slot(), h.gen)
}
