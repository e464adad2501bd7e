// Package peel implements the region pool: a bounded cache of rectangular
// screen snapshots ("peels") used for partial redraws.
//
// # Overview
//
// Before a sprite is drawn, the game captures the screen area underneath it.
// On the next frame it restores that capture, erasing the sprite, and draws
// again. The pool holds a fixed table of slots; each slot owns a pixel
// buffer drawn lazily from a persistent allocator and sized to one of a few
// buckets (2, 8, 32 and 128 KiB by default), so a buffer grown for a large
// capture is reused by later small ones. Buffers only ever grow and are
// never returned to the allocator.
//
// # Slot lifecycle
//
//	free --Capture--> reserved --copy ok--> valid --Restore/InvalidateRect/MarkFreed--> free
//
// A slot is reserved before any pixel is touched, so a copy that fails
// halfway leaves a slot that Restore frees without writing stale data.
// ResetAll sends every slot back to free and keeps the buffers.
//
// # Admission
//
// Capture clips the rectangle to the target, rounds the byte size up to a
// bucket and scans the table round-robin from a rotating cursor for the
// first free slot. Slots in use are never taken over, even when that would
// fit better: restoring a snapshot that was silently replaced corrupts the
// screen. Growing a slot buffer is refused when it would push the sum of all
// buffers over the budget. Every refusal returns None and a sentinel error.
// Exhaustion and budget diagnostics are rate limited; an oversized capture is
// a configuration error and is logged every time.
//
// # Handles
//
// None is the zero Handle and is safe to pass anywhere. Handles carry the
// generation of their slot acquisition, so a handle kept past its slot being
// freed and reused no longer affects it.
//
// # Usage
//
//	a, _ := arena.New(arena.DefaultConfig)
//	pool, _ := peel.New(a, screen, peel.DefaultOptions)
//
//	h, err := pool.Capture(spriteRect)
//	if err != nil {
//	    // A failed copy still reserves a slot; give it back.
//	    pool.MarkFreed(h) // no-op when h is None
//	    // skip this visual update
//	}
//	drawSprite(screen)
//	...
//	pool.Restore(h) // no-op when h is None
//
// # Thread safety
//
// A Pool is not safe for concurrent use. It is meant to be owned by the
// single rendering loop; callers sharing one must serialize access.
package peel
