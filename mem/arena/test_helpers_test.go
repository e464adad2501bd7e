package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// smallConfig is a 64 KiB arena with 4 KiB scratch buffers, a 2 KiB file
// buffer and an 8 KiB temporary region.
var smallConfig = Config{
	Capacity:       64 << 10,
	ScratchSize:    [2]int{4 << 10, 4 << 10},
	FileBufferSize: 2 << 10,
	TempSize:       8 << 10,
}

// newTestArena creates an arena from cfg and closes it when the test ends.
func newTestArena(t testing.TB, cfg Config) *Arena {
	t.Helper()
	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })
	return a
}
