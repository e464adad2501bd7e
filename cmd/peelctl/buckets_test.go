package main

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"40x50", 40, 50, false},
		{"320X200", 320, 200, false},
		{"40", 0, 0, true},
		{"0x5", 0, 0, true},
		{"5x-1", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q) = %d, %d, want %d, %d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func TestBucketsCommand(t *testing.T) {
	withFlags(t, false, true)
	out, err := captureOutput(t, func() error {
		return runBuckets([]string{"40x50", "64x64", "320x200"})
	})
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, []string{"40x50", "2,000", "2 KiB", "4,096", "8 KiB", "64,000", "128 KiB"})
}

func TestBucketsCommand_JSON(t *testing.T) {
	withFlags(t, true, true)
	old := bucketsPacked
	bucketsPacked = true
	t.Cleanup(func() { bucketsPacked = old })

	out, err := captureOutput(t, func() error {
		return runBuckets([]string{"16x16", "320x200"})
	})
	if err != nil {
		t.Fatal(err)
	}
	var rows []bucketRow
	assertJSON(t, out, &rows)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Bucket != 2048 || rows[0].Waste != 1024 || !rows[0].Fits {
		t.Errorf("16x16 packed: %+v", rows[0])
	}
	if rows[1].Fits {
		t.Errorf("320x200 packed should be oversized: %+v", rows[1])
	}
}
