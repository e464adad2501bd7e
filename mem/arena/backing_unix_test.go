//go:build unix

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRegionUnix(t *testing.T) {
	data, unmap, err := mapRegion(1 << 16)
	require.NoError(t, err)
	require.Len(t, data, 1<<16)

	for _, b := range data[:4096] {
		require.Zero(t, b, "anonymous mappings are zero-filled")
	}
	data[0], data[len(data)-1] = 1, 2
	assert.Equal(t, byte(2), data[len(data)-1])

	require.NoError(t, unmap())
	require.NoError(t, unmap(), "double unmap is a no-op")
}
