// Package arena provides the extended-memory allocator used by the rendering core.
//
// # Overview
//
// An Arena owns one large backing region, fixed in size at construction and
// mapped anonymously where the platform allows it. Nothing in the arena is
// freed individually. Instead it serves three allocation disciplines, each
// matched to how long the memory is needed:
//
//   - Persistent: bump allocations that live for the whole process (decoded
//     sprites, sound buffers, palettes, region pool buffers).
//   - Scratch: two fixed buffers (plus a file buffer) reused on every call
//     for short-lived oversized work areas such as image decode intermediates.
//   - Temporary: a dedicated sub-region with a bump pointer that callers save
//     and rewind, releasing everything allocated in between at once.
//
// # Layout
//
//	0                                                         Capacity
//	+-----------+-----------+---------+------------------+------------+
//	| scratch 1 | scratch 2 | file    | persistent ->    | temp ->    |
//	+-----------+-----------+---------+------------------+------------+
//	                                  ^ cursor            ^ TempBase
//
// Persistent allocations can never grow into the temporary region, so
// persistent used + temp used <= Capacity always holds.
//
// # Usage Example
//
//	a, err := arena.New(arena.DefaultConfig)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	// Lives forever
//	palette := a.AllocPersistent(256 * 4)
//
//	// Decode work area, falls back to a general allocation when too big
//	work, _ := a.ScratchOrAlloc(arena.Scratch1, stride*height)
//
//	// Short-lived surface, reclaimed when the scope is released
//	err = a.WithTemp(func() error {
//	    tmp := a.Alloc(w * h)
//	    ...
//	    return nil
//	})
//
// # Failure Semantics
//
// Every allocation path returns nil when it cannot be satisfied. The arena
// never logs, never panics and never retries; callers decide whether a nil is
// recoverable (skip a draw, fall back) or fatal.
//
// # Thread Safety
//
// Arena instances are not thread-safe. The rendering core runs on a single
// cooperative thread; any caller that introduces concurrency must add its
// own mutual exclusion around the arena.
package arena
