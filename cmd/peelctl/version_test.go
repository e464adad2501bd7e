package main

import "testing"

func TestVersionCommand(t *testing.T) {
	withFlags(t, false, true)

	out, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, []string{"peelctl dev", "arena:    8 MiB", "50 slots, 1,200 KiB budget"})
}

func TestVersionCommand_JSON(t *testing.T) {
	withFlags(t, true, true)

	out, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatal(err)
	}
	var info versionInfo
	assertJSON(t, out, &info)
	if info.Version != "dev" || info.Slots != 50 || info.PoolBudget != 1200<<10 {
		t.Errorf("unexpected version info %+v", info)
	}
	if info.Go == "" {
		t.Error("missing Go version")
	}
}
