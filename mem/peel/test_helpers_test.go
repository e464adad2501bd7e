package peel

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/peelkit/internal/testutil"
	"github.com/joshuapare/peelkit/surface"
)

// fixture bundles a pool, its checkerboard screen and a log buffer.
type fixture struct {
	pool   *Pool
	screen *surface.Image
	log    *bytes.Buffer
}

// newFixture builds a pool over a fresh 320x200 checkerboard screen and a
// 4 MiB heap arena. Zero fields of opts fall back to DefaultOptions.
func newFixture(t testing.TB, opts Options) *fixture {
	t.Helper()

	if opts.Slots == 0 {
		opts.Slots = DefaultOptions.Slots
	}
	if opts.Budget == 0 {
		opts.Budget = DefaultOptions.Budget
	}
	if opts.ReservedRows == 0 {
		opts.ReservedRows = DefaultOptions.ReservedRows
	}
	logs := &bytes.Buffer{}
	opts.Logger = slog.New(slog.NewTextHandler(logs, nil))

	screen := testutil.NewCheckerScreen(t)
	p, err := New(testutil.NewArena(t, 4<<20), screen, opts)
	require.NoError(t, err)
	return &fixture{pool: p, screen: screen, log: logs}
}

// capture captures r and requires success.
func (f *fixture) capture(t testing.TB, left, top, right, bottom int) Handle {
	t.Helper()
	h, err := f.pool.Capture(rect(left, top, right, bottom))
	require.NoError(t, err)
	require.True(t, h.Valid())
	return h
}

// slot returns the slot behind h.
func (f *fixture) slot(h Handle) *slot {
	return &f.pool.slots[h.Slot()]
}
