package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/peelkit/internal/format"
)

var simFlags sceneFlags

func init() {
	cmd := newSimulateCmd()
	simFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Play a sprite scene and report pool and arena usage",
		Long: `The simulate command moves sprites over a 320x200 screen for a number of
frames. Every frame restores the previous sprites from the region pool,
captures the screen under their new positions and draws them. Full redraws
invalidate pending captures and scene changes reset the pool.

At the end the screen must be back to its background; any leftover pixel
means a capture was lost or restored out of order.

Example:
  peelctl simulate
  peelctl simulate --sprites 60 --slots 50 --budget 256
  peelctl simulate --seed 7 --verify --json
  PEEL_TRACE_ALLOC=2048 peelctl simulate --log-level info`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(simFlags.config())
		},
	}
}

func runSimulate(cfg sceneConfig) error {
	printVerbose("Simulating %d sprites for %d frames (seed %d)\n", cfg.Sprites, cfg.Frames, cfg.Seed)

	res, err := runScene(cfg)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s\n", styled(headerStyle, fmt.Sprintf("Scene %d: %d frames, %d sprites", cfg.Seed, res.Frames, cfg.Sprites)))
	printInfo("  drawn:    %s\n", format.Count(int64(res.Drawn)))
	printInfo("  skipped:  %s\n", skippedSummary(res.Skipped))
	printInfo("  redraws:  %d, scenes: %d\n", res.Redraws, res.Scenes)
	if res.Clean {
		printInfo("  screen:   %s\n\n", styled(okStyle, "clean"))
	} else {
		printInfo("  screen:   %s\n\n", styled(errStyle, fmt.Sprintf("%d dirty pixels", res.DirtyPx)))
	}

	printInfo("%s\n", styled(headerStyle, "Region pool"))
	for _, line := range strings.Split(res.PoolStats.String(), "\n") {
		printInfo("  %s\n", line)
	}

	m := res.MemStats
	printInfo("\n%s\n", styled(headerStyle, "Arena"))
	printInfo("  persistent: %s used, %s free\n",
		format.Bytes(int64(m.PersistentUsed)), format.Bytes(int64(m.PersistentFree)))
	printInfo("  temp:       %s peak of %s\n", format.Bytes(int64(m.TempPeak)), format.Bytes(int64(m.TempSize)))
	printInfo("  %s\n", styled(dimStyle, fmt.Sprintf("allocs %d persistent / %d temp, scratch misses %v",
		m.PersistentAllocs, m.TempAllocs, m.ScratchMisses)))

	if !res.Clean {
		return fmt.Errorf("scene %d left %d dirty pixels", cfg.Seed, res.DirtyPx)
	}
	return nil
}

// skippedSummary renders skip counts sorted by reason.
func skippedSummary(m map[string]int) string {
	if len(m) == 0 {
		return styled(okStyle, "none")
	}
	reasons := make([]string, 0, len(m))
	for r := range m {
		reasons = append(reasons, r)
	}
	slices.Sort(reasons)

	parts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		parts = append(parts, fmt.Sprintf("%d %s", m[r], r))
	}
	return styled(warnStyle, strings.Join(parts, ", "))
}
