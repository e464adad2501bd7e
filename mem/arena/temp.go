package arena

import "github.com/joshuapare/peelkit/internal/buf"

// AllocTemp bump-allocates size bytes (8-byte aligned, zeroed) from the
// temporary region. It returns nil when size <= 0 or the region is full.
// The result is invalidated by any Rewind to an offset at or below the
// offset it was allocated at.
func (a *Arena) AllocTemp(size int) []byte {
	if a.mem == nil || size <= 0 {
		return nil
	}

	need := buf.Align8(size)
	end, ok := buf.AddOverflowSafe(a.tempOff, need)
	if !ok || need < size || end > a.cfg.TempSize {
		a.stats.tempFails++
		return nil
	}

	off := a.tempOff
	a.tempOff = end
	a.tempPeak = max(a.tempPeak, end)
	a.lastTemp = span{off: off, n: size}
	a.stats.tempAllocs++

	abs := a.tempBase + off
	b := a.mem[abs : abs+size : abs+size]
	clear(b)
	a.traceAlloc(KindTemp, size, abs)
	return b
}

// TempOffset returns the current temporary bump pointer. The value can be
// passed to Rewind later; offsets are plain values, so nesting works as long
// as callers rewind in LIFO order.
func (a *Arena) TempOffset() int {
	return a.tempOff
}

// Rewind resets the temporary bump pointer to off, invalidating everything
// allocated since off was taken. Rewinding forward is a no-op.
func (a *Arena) Rewind(off int) {
	off = max(off, 0)
	if off >= a.tempOff {
		return
	}
	a.tempOff = off
	if a.lastTemp.off >= off {
		a.lastTemp = span{}
	}
}

// SetTempMode redirects Alloc (and so ScratchOrAlloc fallbacks) into the
// temporary region until disabled, so intermediate surfaces built and
// dropped within one drawing operation do not consume persistent capacity.
func (a *Arena) SetTempMode(enabled bool) {
	a.tempMode = enabled
}

// TempMode reports whether general allocations go to the temporary region.
func (a *Arena) TempMode() bool {
	return a.tempMode
}

// Scope is a temporary-region checkpoint. Release rewinds the region to the
// checkpoint and restores the temp mode in effect when it was taken. Copies
// of the pointer share one released flag.
//
//	sc := a.Checkpoint()
//	defer sc.Release()
type Scope struct {
	a        *Arena
	off      int
	tempMode bool
	released bool
}

// Checkpoint captures the temporary bump pointer and temp mode.
func (a *Arena) Checkpoint() *Scope {
	return &Scope{a: a, off: a.tempOff, tempMode: a.tempMode}
}

// Offset returns the temporary offset captured by the checkpoint.
func (s *Scope) Offset() int {
	return s.off
}

// Release rewinds to the checkpoint. Calling it more than once is a no-op.
func (s *Scope) Release() {
	if s.released || s.a == nil {
		return
	}
	s.released = true
	s.a.Rewind(s.off)
	s.a.tempMode = s.tempMode
}

// WithTemp runs fn with temp mode enabled inside a checkpoint. Everything
// allocated through Alloc during fn is released when fn returns, whether it
// fails or not, and the previous temp mode is restored.
func (a *Arena) WithTemp(fn func() error) error {
	sc := a.Checkpoint()
	defer sc.Release()

	a.tempMode = true
	return fn()
}
