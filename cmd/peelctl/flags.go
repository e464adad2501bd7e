package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/peelkit/internal/format"
	"github.com/joshuapare/peelkit/mem/peel"
)

// sceneFlags are the knobs shared by simulate and soak.
type sceneFlags struct {
	seed        int64
	frames      int
	sprites     int
	maxSprite   int
	redrawEvery int
	sceneEvery  int

	slots        int
	budgetKiB    int
	reservedRows int
	verify       bool
	arenaMiB     int
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	def := defaultSceneConfig()
	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", def.Seed, "Random seed for sprite sizes and motion")
	fl.IntVar(&f.frames, "frames", def.Frames, "Number of frames to play")
	fl.IntVar(&f.sprites, "sprites", def.Sprites, "Number of moving sprites")
	fl.IntVar(&f.maxSprite, "max-sprite", def.MaxSprite, "Largest sprite edge in pixels")
	fl.IntVar(&f.redrawEvery, "redraw-every", def.RedrawEvery, "Full redraw every N frames (0 disables)")
	fl.IntVar(&f.sceneEvery, "scene-every", def.SceneEvery, "Scene change every N frames (0 disables)")
	fl.IntVar(&f.slots, "slots", peel.DefaultOptions.Slots, "Region pool slots")
	fl.IntVar(&f.budgetKiB, "budget", peel.DefaultOptions.Budget/format.KiB, "Region pool budget in KiB")
	fl.IntVar(&f.reservedRows, "reserved-rows", peel.DefaultOptions.ReservedRows, "Status bar rows never restored")
	fl.BoolVar(&f.verify, "verify", false, "Digest captures and verify them on restore")
	fl.IntVar(&f.arenaMiB, "arena", def.Arena.Capacity/format.MiB, "Arena capacity in MiB")
}

func (f *sceneFlags) config() sceneConfig {
	cfg := defaultSceneConfig()
	cfg.Seed = f.seed
	cfg.Frames = f.frames
	cfg.Sprites = f.sprites
	cfg.MaxSprite = f.maxSprite
	cfg.RedrawEvery = f.redrawEvery
	cfg.SceneEvery = f.sceneEvery
	cfg.Pool.Slots = f.slots
	cfg.Pool.Budget = f.budgetKiB * format.KiB
	cfg.Pool.ReservedRows = f.reservedRows
	cfg.Pool.Verify = f.verify
	cfg.Arena.Capacity = f.arenaMiB * format.MiB
	return cfg
}
