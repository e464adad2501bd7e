package peel

import "errors"

var (
	// ErrBadOptions indicates invalid pool options.
	ErrBadOptions = errors.New("peel: bad options")

	// ErrNoTarget indicates a capture with no target surface set.
	ErrNoTarget = errors.New("peel: no target surface")

	// ErrEmptyRect indicates a capture rectangle with no pixels inside the target.
	ErrEmptyRect = errors.New("peel: empty rectangle")

	// ErrOversized indicates a capture larger than the largest bucket. It is
	// a configuration error and is always logged.
	ErrOversized = errors.New("peel: capture exceeds largest bucket")

	// ErrPoolExhausted indicates that every slot is in use.
	ErrPoolExhausted = errors.New("peel: no free slot")

	// ErrBudgetExceeded indicates that growing the slot buffer would exceed the memory budget.
	ErrBudgetExceeded = errors.New("peel: memory budget exceeded")

	// ErrArenaExhausted indicates that the allocator could not provide the slot buffer.
	ErrArenaExhausted = errors.New("peel: allocator exhausted")

	// ErrSurfaceLocked indicates that the target surface could not be locked for the copy.
	ErrSurfaceLocked = errors.New("peel: target surface locked")
)
