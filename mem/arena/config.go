package arena

import (
	"fmt"

	"github.com/joshuapare/peelkit/internal/buf"
)

// Kind identifies the discipline that served an allocation.
type Kind uint8

const (
	KindPersistent Kind = iota + 1
	KindTemp
	KindScratch1
	KindScratch2
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindPersistent:
		return "persistent"
	case KindTemp:
		return "temp"
	case KindScratch1:
		return "scratch1"
	case KindScratch2:
		return "scratch2"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Config sizes the arena regions. All sizes are in bytes and are rounded up
// to 8-byte multiples.
type Config struct {
	// Capacity is the total size of the backing region.
	Capacity int

	// ScratchSize holds the fixed capacity of scratch buffers 1 and 2. They
	// are sized to the largest decode intermediate ever observed.
	ScratchSize [2]int

	// FileBufferSize is the capacity of the whole-file resource buffer.
	// Zero disables it.
	FileBufferSize int

	// TempSize is the size of the temporary sub-region at the top of the arena.
	TempSize int

	// HeapBacked forces a plain heap slice instead of an anonymous mapping.
	HeapBacked bool

	// OnAlloc, when set, is called after every successful allocation with
	// its kind, requested size and offset in the backing region. A block
	// grown in place by Realloc is reported again with its new size. Used
	// to trace a single suspicious allocation size.
	OnAlloc func(kind Kind, size, off int)
}

// DefaultConfig matches an 8 MiB external memory bank driving a 320x200 display.
var DefaultConfig = Config{
	Capacity:       8 << 20,
	ScratchSize:    [2]int{64 << 10, 64 << 10},
	FileBufferSize: 128 << 10,
	TempSize:       1 << 20,
}

// validate checks that the fixed regions fit inside the capacity and returns
// the aligned sizes.
func (c Config) validate() (Config, error) {
	if c.Capacity <= 0 {
		return c, fmt.Errorf("%w: capacity %d", ErrBadConfig, c.Capacity)
	}
	if c.ScratchSize[0] < 0 || c.ScratchSize[1] < 0 || c.FileBufferSize < 0 || c.TempSize < 0 {
		return c, fmt.Errorf("%w: negative region size", ErrBadConfig)
	}

	c.Capacity = buf.Align8(c.Capacity)
	c.ScratchSize[0] = buf.Align8(c.ScratchSize[0])
	c.ScratchSize[1] = buf.Align8(c.ScratchSize[1])
	c.FileBufferSize = buf.Align8(c.FileBufferSize)
	c.TempSize = buf.Align8(c.TempSize)

	fixed := 0
	for _, n := range []int{c.ScratchSize[0], c.ScratchSize[1], c.FileBufferSize, c.TempSize} {
		var ok bool
		if fixed, ok = buf.AddOverflowSafe(fixed, n); !ok {
			return c, fmt.Errorf("%w: region sizes overflow", ErrBadConfig)
		}
	}
	if fixed > c.Capacity {
		return c, fmt.Errorf("%w: fixed regions need %d bytes, capacity is %d",
			ErrBadConfig, fixed, c.Capacity)
	}
	return c, nil
}
