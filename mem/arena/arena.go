package arena

import (
	"fmt"

	"github.com/joshuapare/peelkit/internal/buf"
)

// Arena is a fixed-capacity allocator over one backing region.
// See the package documentation for the layout and the three disciplines.
type Arena struct {
	cfg Config

	mem   []byte
	unmap func() error

	// fixed regions carved at construction
	scratch    [2][]byte
	scratchOff [2]int
	file       []byte
	fileOff    int

	// persistBase is the first byte after the fixed buffers; cursor is the
	// next persistent offset and never exceeds tempBase.
	persistBase int
	cursor      int
	tempBase    int

	// tempOff is relative to tempBase.
	tempOff  int
	tempPeak int
	tempMode bool

	// last persistent/temp allocation, for in-place Realloc
	lastPersist span
	lastTemp    span

	stats counters
}

type span struct {
	off, n int
}

type counters struct {
	persistentAllocs int
	persistentFails  int
	tempAllocs       int
	tempFails        int
	scratchMisses    [2]int
	fileMisses       int
	reallocCopies    int
}

// New maps the backing region and carves the scratch and file buffers.
func New(cfg Config) (*Arena, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	var mem []byte
	unmap := func() error { return nil }
	if cfg.HeapBacked {
		mem = make([]byte, cfg.Capacity)
	} else {
		mem, unmap, err = mapRegion(cfg.Capacity)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMapFailed, err)
		}
	}

	a := &Arena{cfg: cfg, mem: mem, unmap: unmap}

	off := 0
	for i, n := range cfg.ScratchSize {
		a.scratch[i] = mem[off : off+n : off+n]
		a.scratchOff[i] = off
		off += n
	}
	a.file = mem[off : off+cfg.FileBufferSize : off+cfg.FileBufferSize]
	a.fileOff = off
	off += cfg.FileBufferSize

	a.persistBase = off
	a.cursor = off
	a.tempBase = cfg.Capacity - cfg.TempSize

	return a, nil
}

// Capacity returns the total size of the backing region.
func (a *Arena) Capacity() int {
	return a.cfg.Capacity
}

// Alloc is the general allocation entry point. While temp mode is enabled it
// is served from the temporary region, otherwise from the persistent region.
func (a *Arena) Alloc(size int) []byte {
	if a.tempMode {
		return a.AllocTemp(size)
	}
	return a.AllocPersistent(size)
}

// AllocPersistent bumps the persistent cursor by size (8-byte aligned) and
// returns zeroed memory. It returns nil when size <= 0 or the persistent
// region is exhausted. There is no way to release the result.
func (a *Arena) AllocPersistent(size int) []byte {
	if a.mem == nil || size <= 0 {
		return nil
	}

	need := buf.Align8(size)
	end, ok := buf.AddOverflowSafe(a.cursor, need)
	if !ok || need < size || end > a.tempBase {
		a.stats.persistentFails++
		return nil
	}

	off := a.cursor
	a.cursor = end
	a.lastPersist = span{off: off, n: size}
	a.stats.persistentAllocs++

	b := a.mem[off : off+size : off+size]
	clear(b)
	a.traceAlloc(KindPersistent, size, off)
	return b
}

// Realloc resizes b, which must have come from this arena. Shrinking reslices.
// Growing the most recent persistent or temporary allocation extends it in
// place when room remains; otherwise a new block is allocated through Alloc
// and the contents copied. The old block is never reclaimed. Returns nil on
// failure, leaving b untouched.
func (a *Arena) Realloc(b []byte, size int) []byte {
	if size <= 0 {
		return nil
	}
	if len(b) == 0 {
		return a.Alloc(size)
	}
	if size <= len(b) {
		return b[:size:size]
	}

	if grown := a.extendInPlace(b, size); grown != nil {
		return grown
	}

	nb := a.Alloc(size)
	if nb == nil {
		return nil
	}
	copy(nb, b)
	a.stats.reallocCopies++
	return nb
}

func (a *Arena) extendInPlace(b []byte, size int) []byte {
	need := buf.Align8(size)
	if need < size {
		return nil
	}

	if s := a.lastPersist; s.n == len(b) && a.owns(b, s.off) {
		end, ok := buf.AddOverflowSafe(s.off, need)
		if !ok || end > a.tempBase {
			return nil
		}
		a.cursor = end
		a.lastPersist.n = size
		a.stats.persistentAllocs++
		nb := a.mem[s.off : s.off+size : s.off+size]
		clear(nb[len(b):])
		a.traceAlloc(KindPersistent, size, s.off)
		return nb
	}

	if s := a.lastTemp; s.n == len(b) && a.owns(b, a.tempBase+s.off) {
		end, ok := buf.AddOverflowSafe(s.off, need)
		if !ok || end > a.cfg.TempSize {
			return nil
		}
		a.tempOff = end
		a.tempPeak = max(a.tempPeak, end)
		a.lastTemp.n = size
		a.stats.tempAllocs++
		abs := a.tempBase + s.off
		nb := a.mem[abs : abs+size : abs+size]
		clear(nb[len(b):])
		a.traceAlloc(KindTemp, size, abs)
		return nb
	}
	return nil
}

// owns reports whether b starts at absolute offset off of the backing region.
func (a *Arena) owns(b []byte, off int) bool {
	return off < len(a.mem) && len(b) > 0 && &a.mem[off] == &b[0]
}

// Reset rewinds the persistent cursor and the temporary region. Every slice
// previously returned becomes invalid. Not used during normal operation.
func (a *Arena) Reset() {
	a.cursor = a.persistBase
	a.tempOff = 0
	a.tempMode = false
	a.lastPersist = span{}
	a.lastTemp = span{}
}

// Close releases the backing region. Allocations after Close return nil.
func (a *Arena) Close() error {
	if a.mem == nil {
		return nil
	}
	a.mem = nil
	a.scratch = [2][]byte{}
	a.file = nil
	return a.unmap()
}

func (a *Arena) traceAlloc(kind Kind, size, off int) {
	if a.cfg.OnAlloc != nil {
		a.cfg.OnAlloc(kind, size, off)
	}
}
