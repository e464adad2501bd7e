package main

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/joshuapare/peelkit/internal/format"
)

var (
	soakFlags   sceneFlags
	soakRuns    int
	soakWorkers int
)

func init() {
	cmd := newSoakCmd()
	soakFlags.register(cmd)
	cmd.Flags().IntVar(&soakRuns, "runs", 32, "Number of scenes, seeded seed..seed+runs-1")
	cmd.Flags().IntVar(&soakWorkers, "workers", runtime.GOMAXPROCS(0), "Scenes played in parallel")
	rootCmd.AddCommand(cmd)
}

func newSoakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "soak",
		Short: "Play many independent scenes in parallel",
		Long: `The soak command plays --runs scenes with consecutive seeds. Each scene
owns its own arena, screen and region pool, so scenes run on separate
goroutines without sharing any state.

Example:
  peelctl soak --runs 200 --workers 8
  peelctl soak --runs 50 --slots 10 --budget 64 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSoak(soakFlags.config(), soakRuns, soakWorkers)
		},
	}
}

// soakSummary aggregates the results of a soak run.
type soakSummary struct {
	Runs      int            `json:"runs"`
	Clean     int            `json:"clean"`
	Dirty     []int64        `json:"dirty_seeds"`
	Drawn     int            `json:"drawn"`
	Skipped   map[string]int `json:"skipped"`
	PeakInUse int            `json:"peak_in_use"`
	PeakMem   int            `json:"peak_memory"`
	TempPeak  int            `json:"temp_peak"`
}

func playScenes(base sceneConfig, runs, workers int) ([]sceneResult, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("--runs must be positive, got %d", runs)
	}
	p := pool.NewWithResults[sceneResult]().
		WithMaxGoroutines(max(workers, 1)).
		WithErrors()
	for i := range runs {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		p.Go(func() (sceneResult, error) {
			return runScene(cfg)
		})
	}
	results, err := p.Wait()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(results, bySeed)
	return results, nil
}

func bySeed(a, b sceneResult) int {
	return cmp.Compare(a.Seed, b.Seed)
}

func summarize(results []sceneResult) soakSummary {
	sum := soakSummary{Runs: len(results), Skipped: map[string]int{}}
	for _, r := range results {
		if r.Clean {
			sum.Clean++
		} else {
			sum.Dirty = append(sum.Dirty, r.Seed)
		}
		sum.Drawn += r.Drawn
		for k, v := range r.Skipped {
			sum.Skipped[k] += v
		}
		sum.PeakInUse = max(sum.PeakInUse, r.PoolStats.PeakInUse)
		sum.PeakMem = max(sum.PeakMem, r.PoolStats.MemoryUsed)
		sum.TempPeak = max(sum.TempPeak, r.MemStats.TempPeak)
	}
	return sum
}

func runSoak(base sceneConfig, runs, workers int) error {
	printVerbose("Soaking %d scenes on %d workers\n", runs, workers)

	results, err := playScenes(base, runs, workers)
	if err != nil {
		return err
	}
	sum := summarize(results)
	if jsonOut {
		if err := printJSON(sum); err != nil {
			return err
		}
	} else {
		printInfo("%s\n", styled(headerStyle, fmt.Sprintf("Soak: %d scenes", sum.Runs)))
		printInfo("  clean:       %d/%d\n", sum.Clean, sum.Runs)
		printInfo("  drawn:       %s\n", format.Count(int64(sum.Drawn)))
		printInfo("  skipped:     %s\n", skippedSummary(sum.Skipped))
		printInfo("  peak slots:  %d/%d\n", sum.PeakInUse, base.Pool.Slots)
		printInfo("  peak memory: %s of %s\n", format.Bytes(int64(sum.PeakMem)), format.Bytes(int64(base.Pool.Budget)))
		printInfo("  temp peak:   %s\n", format.Bytes(int64(sum.TempPeak)))
	}

	if len(sum.Dirty) > 0 {
		return fmt.Errorf("%d scenes left dirty pixels, seeds %v", len(sum.Dirty), sum.Dirty)
	}
	return nil
}
