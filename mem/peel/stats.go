package peel

import (
	"fmt"
	"strings"

	"github.com/joshuapare/peelkit/internal/format"
)

// Stats is a snapshot of pool bookkeeping.
type Stats struct {
	Slots     int
	InUse     int
	PeakInUse int // high-water mark of InUse
	Valid     int

	MemoryUsed int // sum of all slot buffer sizes
	Budget     int

	// Buffers[i] counts slots whose buffer is Buckets[i].
	Buckets []int
	Buffers []int

	Captures      int
	Restores      int
	Skipped       int // restores dropped without copying
	Released      int // MarkFreed on an in-use slot
	Invalidated   int
	Resets        int
	Grows         int
	Empty         int
	Oversized     int
	Exhausted     int
	OverBudget    int
	ArenaFailures int
	CopyFailures  int
	Corrupt       int
}

// Stats returns the current bookkeeping.
func (p *Pool) Stats() Stats {
	st := Stats{
		Slots:         p.opts.Slots,
		InUse:         p.inUse,
		PeakInUse:     p.peak,
		MemoryUsed:    p.used,
		Budget:        p.opts.Budget,
		Buckets:       append([]int(nil), p.opts.Buckets...),
		Buffers:       make([]int, len(p.opts.Buckets)),
		Captures:      p.stats.captures,
		Restores:      p.stats.restores,
		Skipped:       p.stats.skipped,
		Released:      p.stats.released,
		Invalidated:   p.stats.invalidated,
		Resets:        p.stats.resets,
		Grows:         p.stats.grows,
		Empty:         p.stats.empty,
		Oversized:     p.stats.oversized,
		Exhausted:     p.stats.exhausted,
		OverBudget:    p.stats.overBudget,
		ArenaFailures: p.stats.arenaFailures,
		CopyFailures:  p.stats.copyFailures,
		Corrupt:       p.stats.corrupt,
	}
	for i := range p.slots {
		s := &p.slots[i]
		if s.state == stateValid {
			st.Valid++
		}
		if s.allocated > 0 {
			st.Buffers[p.bucketFor(s.allocated)]++
		}
	}
	return st
}

// MemoryUsed returns the sum of all slot buffer sizes.
func (p *Pool) MemoryUsed() int {
	return p.used
}

// InUse returns the number of slots currently handed out.
func (p *Pool) InUse() int {
	return p.inUse
}

// Slots returns a snapshot of every slot. It is empty before the first capture.
func (p *Pool) Slots() []SlotInfo {
	out := make([]SlotInfo, len(p.slots))
	for i := range p.slots {
		s := &p.slots[i]
		out[i] = SlotInfo{
			Index:     i,
			Rect:      s.rect,
			Allocated: s.allocated,
			State:     s.state.String(),
			InUse:     s.inUse(),
			Valid:     s.state == stateValid,
			Freed:     s.freed,
		}
	}
	return out
}

// String renders the snapshot on a few lines for operators.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "slots:   %d/%d in use (peak %d, %d valid)\n", s.InUse, s.Slots, s.PeakInUse, s.Valid)
	fmt.Fprintf(&b, "memory:  %s / %s (%s)\n",
		format.Bytes(int64(s.MemoryUsed)), format.Bytes(int64(s.Budget)),
		format.Percent(int64(s.MemoryUsed), int64(s.Budget)))
	b.WriteString("buffers:")
	for i, size := range s.Buckets {
		fmt.Fprintf(&b, " %s=%d", format.Bytes(int64(size)), s.Buffers[i])
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "ops:     %s captures, %s restores, %d skipped, %d invalidated\n",
		format.Count(int64(s.Captures)), format.Count(int64(s.Restores)), s.Skipped, s.Invalidated)
	fmt.Fprintf(&b, "refused: %d exhausted, %d over budget, %d oversized, %d arena, %d copy, %d corrupt",
		s.Exhausted, s.OverBudget, s.Oversized, s.ArenaFailures, s.CopyFailures, s.Corrupt)
	return b.String()
}
