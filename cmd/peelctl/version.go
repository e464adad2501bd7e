package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/joshuapare/peelkit/internal/format"
	"github.com/joshuapare/peelkit/mem/arena"
	"github.com/joshuapare/peelkit/mem/peel"
)

// version is set at release time with -ldflags "-X main.version=...".
var version = "dev"

type versionInfo struct {
	Version    string `json:"version"`
	Revision   string `json:"revision,omitempty"`
	Go         string `json:"go"`
	Arena      int64  `json:"arena_bytes"`
	Slots      int    `json:"slots"`
	PoolBudget int64  `json:"pool_budget_bytes"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and built-in memory defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version
}

func buildVersion() versionInfo {
	info := versionInfo{
		Version:    version,
		Go:         runtime.Version(),
		Arena:      int64(arena.DefaultConfig.Capacity),
		Slots:      peel.DefaultOptions.Slots,
		PoolBudget: int64(peel.DefaultOptions.Budget),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.Revision = s.Value
			}
		}
	}
	return info
}

func runVersion() error {
	info := buildVersion()
	if jsonOut {
		return printJSON(info)
	}

	printInfo("%s %s (%s)\n", styled(headerStyle, "peelctl"), info.Version, info.Go)
	if info.Revision != "" {
		printInfo("  revision: %s\n", info.Revision)
	}
	printInfo("  arena:    %s\n", format.Bytes(info.Arena))
	printInfo("  pool:     %d slots, %s budget\n", info.Slots, format.Bytes(info.PoolBudget))
	return nil
}
