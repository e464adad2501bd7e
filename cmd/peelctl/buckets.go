package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/peelkit/internal/format"
	"github.com/joshuapare/peelkit/internal/logger"
	"github.com/joshuapare/peelkit/mem/arena"
	"github.com/joshuapare/peelkit/mem/peel"
	"github.com/joshuapare/peelkit/surface"
)

var bucketsPacked bool

func init() {
	cmd := newBucketsCmd()
	cmd.Flags().BoolVar(&bucketsPacked, "packed", false, "Assume 32-bit pixels instead of 8-bit indexed")
	rootCmd.AddCommand(cmd)
}

func newBucketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buckets [WxH...]",
		Short: "Show which bucket a capture size lands in",
		Long: `The buckets command prints the bucket each capture size rounds up to and
the bytes lost to rounding. Without arguments it lists common sprite sizes.

Example:
  peelctl buckets
  peelctl buckets 40x50 320x200 --packed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuckets(args)
		},
	}
}

type bucketRow struct {
	Size   string `json:"size"`
	Bytes  int    `json:"bytes"`
	Bucket int    `json:"bucket"`
	Waste  int    `json:"waste"`
	Fits   bool   `json:"fits"`
}

var defaultSizes = []string{"8x8", "16x16", "32x32", "40x50", "32x64", "64x64", "100x100", "160x100", "320x192", "320x200"}

func runBuckets(args []string) error {
	if len(args) == 0 {
		args = defaultSizes
	}
	bpp := surface.Indexed8.BytesPerPixel()
	if bucketsPacked {
		bpp = surface.Packed32.BytesPerPixel()
	}

	// A pool is only needed for its bucket table; nothing is allocated.
	a, err := arena.New(arena.Config{Capacity: 8, HeapBacked: true})
	if err != nil {
		return err
	}
	defer a.Close()
	opts := peel.DefaultOptions
	opts.Logger = logger.Discard()
	p, err := peel.New(a, nil, opts)
	if err != nil {
		return err
	}

	rows := make([]bucketRow, 0, len(args))
	for _, arg := range args {
		w, h, err := parseSize(arg)
		if err != nil {
			return err
		}
		n := w * h * bpp
		b, ok := p.RoundUp(n)
		row := bucketRow{Size: arg, Bytes: n, Bucket: b, Fits: ok}
		if ok {
			row.Waste = b - n
		}
		rows = append(rows, row)
	}

	if jsonOut {
		return printJSON(rows)
	}
	printInfo("%s\n", styled(headerStyle, fmt.Sprintf("%-10s %10s %10s %10s", "size", "bytes", "bucket", "waste")))
	for _, r := range rows {
		if !r.Fits {
			printInfo("%-10s %10s %10s\n", r.Size, format.Count(int64(r.Bytes)), styled(errStyle, "oversized"))
			continue
		}
		printInfo("%-10s %10s %10s %10s\n", r.Size, format.Count(int64(r.Bytes)),
			format.Bytes(int64(r.Bucket)), format.Percent(int64(r.Waste), int64(r.Bucket)))
	}
	return nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("bad width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("bad height in %q", s)
	}
	return w, h, nil
}
