package arena

// Stats is a snapshot of arena usage.
type Stats struct {
	Capacity       int
	PersistentUsed int // bytes below the persistent cursor, fixed buffers included
	PersistentFree int
	TempSize       int
	TempUsed       int
	TempPeak       int
	TempMode       bool

	PersistentAllocs int
	PersistentFails  int
	TempAllocs       int
	TempFails        int
	ScratchMisses    [2]int
	FileMisses       int
	ReallocCopies    int
}

// Stats returns the current usage counters.
func (a *Arena) Stats() Stats {
	return Stats{
		Capacity:         a.cfg.Capacity,
		PersistentUsed:   a.cursor,
		PersistentFree:   a.tempBase - a.cursor,
		TempSize:         a.cfg.TempSize,
		TempUsed:         a.tempOff,
		TempPeak:         a.tempPeak,
		TempMode:         a.tempMode,
		PersistentAllocs: a.stats.persistentAllocs,
		PersistentFails:  a.stats.persistentFails,
		TempAllocs:       a.stats.tempAllocs,
		TempFails:        a.stats.tempFails,
		ScratchMisses:    a.stats.scratchMisses,
		FileMisses:       a.stats.fileMisses,
		ReallocCopies:    a.stats.reallocCopies,
	}
}
