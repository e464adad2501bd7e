package peel

import "github.com/joshuapare/peelkit/internal/geom"

// state is the slot lifecycle: free, reserved while the copy runs, then
// valid until restored, invalidated, released or reset.
type state uint8

const (
	stateFree state = iota
	stateReserved
	stateValid
)

func (s state) String() string {
	switch s {
	case stateFree:
		return "free"
	case stateReserved:
		return "reserved"
	case stateValid:
		return "valid"
	default:
		return "unknown"
	}
}

type slot struct {
	// pix is owned by the slot, nil until first grown. len(pix) == allocated.
	pix       []byte
	allocated int

	rect  geom.Rect
	pitch int
	bpp   int

	state state
	freed bool
	gen   uint32
	sum   uint64
}

func (s *slot) inUse() bool {
	return s.state != stateFree
}

// data returns the captured bytes.
func (s *slot) data() []byte {
	return s.pix[:s.pitch*s.rect.Dy()]
}

// SlotInfo is a snapshot of one slot for diagnostics.
type SlotInfo struct {
	Index     int
	Rect      geom.Rect
	Allocated int
	State     string
	InUse     bool
	Valid     bool
	Freed     bool
}
