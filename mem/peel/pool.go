package peel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zeebo/xxh3"

	"github.com/joshuapare/peelkit/internal/buf"
	"github.com/joshuapare/peelkit/internal/geom"
	"github.com/joshuapare/peelkit/internal/logger"
	"github.com/joshuapare/peelkit/surface"
)

// Diagnostic events and how many of each are logged.
const (
	evExhausted = "exhausted"
	evBudget    = "budget"
	evArena     = "arena"
	evOversized = "oversized"
	evCopy      = "copy"
	evCorrupt   = "corrupt"

	exhaustLogLimit = 5
	budgetLogLimit  = 1
	arenaLogLimit   = 5
	copyLogLimit    = 5
	corruptLogLimit = 5
)

// Allocator provides slot buffers. Buffers are never released, so only a
// persistent allocation path is needed. *arena.Arena satisfies it.
type Allocator interface {
	AllocPersistent(size int) []byte
}

// Pool is the region pool. See the package documentation.
type Pool struct {
	alloc  Allocator
	target surface.Surface
	opts   Options
	diag   *logger.Limiter

	slots  []slot
	cursor int
	used   int
	inUse  int
	peak   int

	stats counters
}

type counters struct {
	captures      int
	restores      int
	skipped       int
	released      int
	invalidated   int
	resets        int
	grows         int
	empty         int
	oversized     int
	exhausted     int
	overBudget    int
	arenaFailures int
	copyFailures  int
	corrupt       int
}

// New creates a pool drawing slot buffers from a and capturing from target.
// The slot table itself is built on the first capture.
func New(a Allocator, target surface.Surface, opts Options) (*Pool, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil allocator", ErrBadOptions)
	}
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return &Pool{
		alloc:  a,
		target: target,
		opts:   opts,
		diag:   logger.NewLimiter(opts.Logger),
	}, nil
}

// init builds the slot table. Idempotent.
func (p *Pool) init() {
	if p.slots != nil {
		return
	}
	p.slots = make([]slot, p.opts.Slots)
}

// SetTarget switches the surface captures read from and restores write to.
func (p *Pool) SetTarget(s surface.Surface) {
	p.target = s
}

// Target returns the current target surface.
func (p *Pool) Target() surface.Surface {
	return p.target
}

// Capture snapshots r, clipped to the target bounds, into a free slot and
// returns its handle. On failure it returns None and an error matching one of
// the package sentinels; the caller should skip the visual update rather
// than treat it as fatal.
//
// If the copy itself fails after a slot was acquired, the handle is returned
// together with the error. The slot holds no data, so Restore frees it
// without writing anything.
func (p *Pool) Capture(r geom.Rect) (Handle, error) {
	p.init()

	if p.target == nil {
		return None, ErrNoTarget
	}
	clipped := r.Intersect(p.target.Bounds())
	if clipped.Empty() {
		p.stats.empty++
		return None, fmt.Errorf("%w: %v", ErrEmptyRect, r)
	}
	r = clipped

	bpp := p.target.Format().BytesPerPixel()
	need, ok := buf.Area(r.Dx(), r.Dy(), bpp)
	b := -1
	if ok {
		b = p.bucketFor(need)
	}
	if b < 0 {
		p.stats.oversized++
		p.diag.Loud(evOversized, "peel: capture exceeds largest bucket",
			"rect", r.String(), "bytes", need, "largest", p.largestBucket())
		return None, fmt.Errorf("%w: %v needs %d bytes, largest is %d",
			ErrOversized, r, need, p.largestBucket())
	}
	size := p.opts.Buckets[b]

	i := p.findFree()
	if i < 0 {
		p.stats.exhausted++
		p.diag.Limit(evExhausted, exhaustLogLimit, slog.LevelWarn, "peel: pool exhausted",
			"rect", r.String(), "bytes", need, "bucket", size,
			"in_use", p.inUse, "slots", len(p.slots))
		return None, fmt.Errorf("%w: %d/%d in use", ErrPoolExhausted, p.inUse, len(p.slots))
	}
	s := &p.slots[i]

	if err := p.grow(s, size); err != nil {
		return None, err
	}

	s.gen++
	s.state = stateReserved
	s.freed = false
	s.rect = r
	s.bpp = bpp
	s.pitch = r.Dx() * bpp
	s.sum = 0
	p.inUse++
	p.peak = max(p.peak, p.inUse)
	h := Handle{idx: int32(i + 1), gen: s.gen}

	if err := surface.ReadRect(p.target, r, s.pix, s.pitch); err != nil {
		p.stats.copyFailures++
		p.diag.Limit(evCopy, copyLogLimit, slog.LevelWarn, "peel: capture copy failed",
			"rect", r.String(), "error", err)
		if errors.Is(err, surface.ErrLocked) {
			return h, fmt.Errorf("%w: %w", ErrSurfaceLocked, err)
		}
		return h, fmt.Errorf("peel: capture %v: %w", r, err)
	}

	if p.opts.Verify {
		s.sum = xxh3.Hash(s.data())
	}
	s.state = stateValid
	p.stats.captures++
	return h, nil
}

// findFree scans the table round-robin from the cursor and returns the first
// free slot, advancing the cursor past it. In-use slots are never taken,
// whatever their size. Returns -1 when every slot is in use.
func (p *Pool) findFree() int {
	n := len(p.slots)
	for k := range n {
		i := (p.cursor + k) % n
		if !p.slots[i].inUse() {
			p.cursor = (i + 1) % n
			return i
		}
	}
	return -1
}

// grow makes sure s has a buffer of at least size bytes. On failure s is
// left untouched and free.
func (p *Pool) grow(s *slot, size int) error {
	if s.allocated >= size {
		return nil
	}

	delta := size - s.allocated
	if p.used+delta > p.opts.Budget {
		p.stats.overBudget++
		p.diag.Limit(evBudget, budgetLogLimit, slog.LevelWarn, "peel: budget reached, further captures will be skipped",
			"used", p.used, "budget", p.opts.Budget, "bucket", size)
		return fmt.Errorf("%w: %d + %d > %d", ErrBudgetExceeded, p.used, delta, p.opts.Budget)
	}

	pix := p.alloc.AllocPersistent(size)
	if pix == nil {
		p.stats.arenaFailures++
		p.diag.Limit(evArena, arenaLogLimit, slog.LevelError, "peel: allocator exhausted",
			"bucket", size, "used", p.used)
		return fmt.Errorf("%w: %d bytes", ErrArenaExhausted, size)
	}

	// The previous buffer stays with the arena; it has no release path.
	s.pix = pix
	s.allocated = size
	p.used += delta
	p.stats.grows++
	return nil
}

// lookup returns the slot h refers to, or nil for None, foreign and stale handles.
func (p *Pool) lookup(h Handle) *slot {
	i := h.Slot()
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	s := &p.slots[i]
	if s.gen != h.gen {
		return nil
	}
	return s
}

func (p *Pool) release(s *slot) {
	if s.state == stateFree {
		return
	}
	s.state = stateFree
	p.inUse--
}

// safeBottom is the first row of the reserved band of the target.
func (p *Pool) safeBottom() int {
	return p.target.Bounds().Bottom - p.opts.ReservedRows
}

// Restore writes the capture behind h back to the target and frees its slot.
// None, stale handles and handles already released with MarkFreed are
// ignored. The reserved band at the bottom of the target is never written:
// the rectangle is clipped above it, and a capture lying entirely inside it
// is dropped. Captures that never completed, whose pixel format no longer
// matches the target, or that fail verification are dropped as well.
func (p *Pool) Restore(h Handle) {
	s := p.lookup(h)
	if s == nil || s.freed || s.state == stateFree {
		return
	}
	defer p.release(s)

	if s.state != stateValid || p.target == nil {
		p.stats.skipped++
		return
	}
	r := s.rect.ClipBottom(p.safeBottom())
	if r.Empty() || s.bpp != p.target.Format().BytesPerPixel() {
		p.stats.skipped++
		return
	}
	if p.opts.Verify && xxh3.Hash(s.data()) != s.sum {
		p.stats.corrupt++
		p.diag.Limit(evCorrupt, corruptLogLimit, slog.LevelError, "peel: capture changed since it was taken",
			"handle", h.String(), "rect", s.rect.String())
		return
	}

	// Only the bottom is clipped, so row 0 of the buffer is still r.Top.
	if err := surface.WriteRect(p.target, r, s.pix, s.pitch); err != nil {
		p.stats.copyFailures++
		p.diag.Limit(evCopy, copyLogLimit, slog.LevelWarn, "peel: restore copy failed",
			"rect", r.String(), "error", err)
		return
	}
	p.stats.restores++
}

// MarkFreed releases h without restoring it, for captures the caller knows
// it will never restore. Later Restore calls with h are no-ops.
func (p *Pool) MarkFreed(h Handle) {
	s := p.lookup(h)
	if s == nil || s.freed {
		return
	}
	if s.inUse() {
		p.stats.released++
	}
	s.freed = true
	p.release(s)
}

// InvalidateRect frees, without restoring, every valid capture whose
// rectangle intersects r, and returns how many were freed. Used when the
// screen under r was redrawn and the snapshots of it are stale.
func (p *Pool) InvalidateRect(r geom.Rect) int {
	n := 0
	for i := range p.slots {
		s := &p.slots[i]
		if s.state != stateValid || !s.rect.Overlaps(r) {
			continue
		}
		p.release(s)
		n++
	}
	p.stats.invalidated += n
	return n
}

// ResetAll frees every slot and drops all captured data, keeping the buffers
// for reuse. Used on scene transitions.
func (p *Pool) ResetAll() {
	for i := range p.slots {
		s := &p.slots[i]
		s.state = stateFree
		s.rect = geom.Rect{}
		s.sum = 0
	}
	p.inUse = 0
	p.stats.resets++
}
