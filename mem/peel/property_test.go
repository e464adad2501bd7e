package peel

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/peelkit/internal/geom"
	"github.com/joshuapare/peelkit/internal/testutil"
)

// randomRect returns a sprite-sized rectangle, sometimes hanging off-screen
// and sometimes as large as the screen.
func randomRect(fake *gofakeit.Faker) geom.Rect {
	w := fake.IntRange(1, 64)
	h := fake.IntRange(1, 80)
	if fake.IntRange(0, 9) == 0 {
		w, h = fake.IntRange(100, 320), fake.IntRange(100, 200)
	}
	x := fake.IntRange(-16, testutil.ScreenWidth)
	y := fake.IntRange(-16, testutil.ScreenHeight)
	return geom.WH(x, y, w, h)
}

// checkInvariants verifies pool-wide accounting against the slot table.
func checkInvariants(t *testing.T, p *Pool, prevAlloc []int) {
	t.Helper()

	sum, inUse := 0, 0
	for i := range p.slots {
		s := &p.slots[i]
		require.GreaterOrEqual(t, s.allocated, prevAlloc[i], "slot %d buffer shrank", i)
		require.Len(t, s.pix, s.allocated, "slot %d", i)
		prevAlloc[i] = s.allocated
		sum += s.allocated
		if s.inUse() {
			inUse++
		}
	}
	require.Equal(t, sum, p.MemoryUsed())
	require.LessOrEqual(t, p.MemoryUsed(), p.opts.Budget)
	require.Equal(t, inUse, p.InUse())
	require.LessOrEqual(t, p.InUse(), p.Stats().PeakInUse)
}

// TestPool_RandomOperations drives random capture/restore/invalidate
// sequences and checks the budget, monotonic buffers and that captures never
// land in a slot that was in use.
func TestPool_RandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		fake := gofakeit.New(seed)
		f := newFixture(t, Options{Slots: 12, Budget: 160 << 10, Verify: true})
		p := f.pool
		p.init()

		prevAlloc := make([]int, len(p.slots))
		var live []Handle

		for range 2000 {
			switch op := fake.IntRange(0, 99); {
			case op < 50:
				busy := make([]bool, len(p.slots))
				for i := range p.slots {
					busy[i] = p.slots[i].inUse()
				}
				h, err := p.Capture(randomRect(fake))
				if err != nil {
					require.Equal(t, None, h, "seed %d: %v", seed, err)
					break
				}
				require.False(t, busy[h.Slot()], "seed %d: slot %d reassigned while in use", seed, h.Slot())
				live = append(live, h)

				// Draw over the captured area, keeping clear of the status bar.
				r := p.slots[h.Slot()].rect.ClipBottom(p.safeBottom())
				f.screen.FillRect(r, uint32(fake.IntRange(0, 255)))

			case op < 85 && len(live) > 0:
				i := fake.IntRange(0, len(live)-1)
				p.Restore(live[i])
				live = append(live[:i], live[i+1:]...)

			case op < 92 && len(live) > 0:
				i := fake.IntRange(0, len(live)-1)
				p.MarkFreed(live[i])
				live = append(live[:i], live[i+1:]...)

			case op < 98:
				p.InvalidateRect(randomRect(fake))

			default:
				p.ResetAll()
			}
			checkInvariants(t, p, prevAlloc)
		}
		require.Zero(t, p.Stats().Corrupt, "seed %d", seed)
	}
}

// TestPool_LIFORestoreRebuildsScreen tests the redraw pattern: captures under
// stacked sprites restored in reverse order leave the screen as it was.
func TestPool_LIFORestoreRebuildsScreen(t *testing.T) {
	fake := gofakeit.New(7)
	f := newFixture(t, Options{})
	before := testutil.Snapshot(f.screen)

	var stack []Handle
	for range 30 {
		r := randomRect(fake).Intersect(geom.R(0, 0, testutil.ScreenWidth, 192))
		if r.Empty() {
			continue
		}
		h, err := f.pool.Capture(r)
		if err != nil {
			continue
		}
		stack = append(stack, h)
		f.screen.FillRect(r, uint32(fake.IntRange(0, 255)))
	}
	require.NotEmpty(t, stack)

	for i := len(stack) - 1; i >= 0; i-- {
		f.pool.Restore(stack[i])
	}
	require.Empty(t, testutil.Diff(f.screen, before, 10))
	require.Equal(t, 0, f.pool.InUse())
}
