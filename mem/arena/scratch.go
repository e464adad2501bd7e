package arena

// ScratchID selects one of the two fixed scratch buffers.
type ScratchID int

const (
	Scratch1 ScratchID = 1
	Scratch2 ScratchID = 2
)

// Scratch returns the first size bytes of scratch buffer id, or nil when size
// exceeds the buffer's fixed capacity (or id is unknown). Contents are
// undefined: every call hands out the same memory, so nothing survives
// between two calls for the same id.
func (a *Arena) Scratch(id ScratchID, size int) []byte {
	if id != Scratch1 && id != Scratch2 {
		return nil
	}
	i := int(id) - 1
	sb := a.scratch[i]
	if size <= 0 || size > len(sb) {
		a.stats.scratchMisses[i]++
		return nil
	}
	kind := KindScratch1
	if id == Scratch2 {
		kind = KindScratch2
	}
	a.traceAlloc(kind, size, a.scratchOff[i])
	return sb[:size:size]
}

// ScratchOrAlloc returns scratch buffer id when size fits it, otherwise a
// general allocation (persistent, or temporary in temp mode). fallback
// reports whether the general path was taken. The result is nil only when
// both paths fail.
func (a *Arena) ScratchOrAlloc(id ScratchID, size int) (b []byte, fallback bool) {
	if b = a.Scratch(id, size); b != nil {
		return b, false
	}
	return a.Alloc(size), true
}

// FileBuffer returns the first size bytes of the whole-file resource buffer,
// with the same contract as Scratch.
func (a *Arena) FileBuffer(size int) []byte {
	if size <= 0 || size > len(a.file) {
		a.stats.fileMisses++
		return nil
	}
	a.traceAlloc(KindFile, size, a.fileOff)
	return a.file[:size:size]
}
