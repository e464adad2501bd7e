package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/tidwall/hashmap"

	"github.com/joshuapare/peelkit/internal/geom"
	"github.com/joshuapare/peelkit/internal/logger"
	"github.com/joshuapare/peelkit/mem/arena"
	"github.com/joshuapare/peelkit/mem/peel"
	"github.com/joshuapare/peelkit/surface"
)

// traceAllocEnv names one allocation size to log from every arena.
const traceAllocEnv = "PEEL_TRACE_ALLOC"

const (
	screenW = 320
	screenH = 200
)

// sceneConfig describes one simulated run of the sprite renderer.
type sceneConfig struct {
	Seed        int64 `json:"seed"`
	Frames      int   `json:"frames"`
	Sprites     int   `json:"sprites"`
	MaxSprite   int   `json:"max_sprite"`
	RedrawEvery int   `json:"redraw_every"`
	SceneEvery  int   `json:"scene_every"`

	Arena arena.Config `json:"-"`
	Pool  peel.Options `json:"-"`
}

func defaultSceneConfig() sceneConfig {
	return sceneConfig{
		Seed:        1,
		Frames:      300,
		Sprites:     24,
		MaxSprite:   64,
		RedrawEvery: 50,
		SceneEvery:  120,
		Arena:       arena.DefaultConfig,
		Pool:        peel.DefaultOptions,
	}
}

// sceneResult is what a run reports.
type sceneResult struct {
	Seed      int64          `json:"seed"`
	Frames    int            `json:"frames"`
	Drawn     int            `json:"drawn"`
	Skipped   map[string]int `json:"skipped"`
	Redraws   int            `json:"redraws"`
	Scenes    int            `json:"scenes"`
	DirtyPx   int            `json:"dirty_pixels"`
	Clean     bool           `json:"clean"`
	PoolStats peel.Stats     `json:"pool"`
	MemStats  arena.Stats    `json:"arena"`
}

type sprite struct {
	id     int
	r      geom.Rect
	dx, dy int
	color  uint32
}

// scene is one arena, one screen and one pool driven like the game loop:
// restore last frame's sprites, move them, capture under them, draw them.
type scene struct {
	cfg     sceneConfig
	fake    *gofakeit.Faker
	arena   *arena.Arena
	screen  *surface.Image
	pool    *peel.Pool
	sprites []sprite
	handles *hashmap.Map[int, peel.Handle]
	palette uint32
	res     sceneResult
}

// playfield is the part of the screen sprites move in; the rows below it
// belong to the status bar.
func (s *scene) playfield() geom.Rect {
	return geom.R(0, 0, screenW, screenH-s.cfg.Pool.ReservedRows)
}

func newScene(cfg sceneConfig) (*scene, error) {
	if cfg.MaxSprite < 1 {
		return nil, fmt.Errorf("max sprite size must be positive, got %d", cfg.MaxSprite)
	}
	if cfg.Arena.OnAlloc == nil {
		cfg.Arena.OnAlloc = allocTracer()
	}

	a, err := arena.New(cfg.Arena)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	screen, err := surface.NewImage(screenW, screenH, surface.Indexed8, a)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("screen: %w", err)
	}
	pool, err := peel.New(a, screen, cfg.Pool)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	s := &scene{
		cfg:     cfg,
		fake:    gofakeit.New(cfg.Seed),
		arena:   a,
		screen:  screen,
		pool:    pool,
		handles: hashmap.New[int, peel.Handle](cfg.Sprites),
		res:     sceneResult{Seed: cfg.Seed, Skipped: map[string]int{}},
	}
	s.paintBackground()

	field := s.playfield()
	for i := range cfg.Sprites {
		w := s.fake.IntRange(1, min(cfg.MaxSprite, field.Dx()))
		h := s.fake.IntRange(1, min(cfg.MaxSprite, field.Dy()))
		x := s.fake.IntRange(0, field.Dx()-w)
		y := s.fake.IntRange(0, field.Dy()-h)
		s.sprites = append(s.sprites, sprite{
			id:    i,
			r:     geom.WH(x, y, w, h),
			dx:    s.fake.IntRange(-4, 4),
			dy:    s.fake.IntRange(-4, 4),
			color: uint32(s.fake.IntRange(1, 0x3F)),
		})
	}
	return s, nil
}

// allocTracer returns an OnAlloc hook logging every allocation of the size
// named by PEEL_TRACE_ALLOC, or nil when it is unset.
func allocTracer() func(arena.Kind, int, int) {
	v := os.Getenv(traceAllocEnv)
	if v == "" {
		return nil
	}
	size, err := strconv.Atoi(v)
	if err != nil || size <= 0 {
		logger.Warn("ignoring bad "+traceAllocEnv, "value", v)
		return nil
	}
	return func(kind arena.Kind, n, off int) {
		if n == size {
			logger.Info("arena: traced allocation", "kind", kind.String(), "size", n, "offset", off)
		}
	}
}

func (s *scene) close() {
	_ = s.arena.Close()
}

// background is the pixel the playfield shows at (x, y) when nothing is on it.
func (s *scene) background(x, y int) uint32 {
	if ((x/16)+(y/16))%2 == 0 {
		return 0x80 | s.palette
	}
	return 0xC0 | s.palette
}

func (s *scene) paintBackground() {
	field := s.playfield()
	for y := range screenH {
		for x := range screenW {
			if y >= field.Bottom {
				s.screen.Set(x, y, 0xFF)
				continue
			}
			s.screen.Set(x, y, s.background(x, y))
		}
	}
}

// run plays every frame, erases the last sprites and checks that the screen
// is back to the background.
func (s *scene) run() sceneResult {
	for frame := 1; frame <= s.cfg.Frames; frame++ {
		switch {
		case s.cfg.SceneEvery > 0 && frame%s.cfg.SceneEvery == 0:
			// New scene: old snapshots are meaningless.
			s.pool.ResetAll()
			s.palette = (s.palette + 1) & 0x3F
			s.paintBackground()
			s.res.Scenes++
		case s.cfg.RedrawEvery > 0 && frame%s.cfg.RedrawEvery == 0:
			// Full redraw: pending snapshots of the playfield are stale.
			s.paintBackground()
			s.pool.InvalidateRect(s.playfield())
			s.res.Redraws++
		default:
			s.erase()
		}
		s.move()
		s.draw()
		s.res.Frames++
	}
	s.erase()

	field := s.playfield()
	for y := range field.Bottom {
		for x := range field.Right {
			if s.screen.At(x, y) != s.background(x, y) {
				s.res.DirtyPx++
			}
		}
	}
	for y := field.Bottom; y < screenH; y++ {
		for x := range screenW {
			if s.screen.At(x, y) != 0xFF {
				s.res.DirtyPx++
			}
		}
	}
	s.res.Clean = s.res.DirtyPx == 0
	s.res.PoolStats = s.pool.Stats()
	s.res.MemStats = s.arena.Stats()
	return s.res
}

// erase restores the sprites in reverse drawing order.
func (s *scene) erase() {
	for i := len(s.sprites) - 1; i >= 0; i-- {
		h, _ := s.handles.Get(s.sprites[i].id)
		s.pool.Restore(h)
	}
}

func (s *scene) move() {
	field := s.playfield()
	for i := range s.sprites {
		sp := &s.sprites[i]
		x, y := sp.r.Left+sp.dx, sp.r.Top+sp.dy
		if x < 0 || x+sp.r.Dx() > field.Right {
			sp.dx = -sp.dx
		}
		if y < 0 || y+sp.r.Dy() > field.Bottom {
			sp.dy = -sp.dy
		}
		x = geom.Clamp(x, 0, field.Right-sp.r.Dx())
		y = geom.Clamp(y, 0, field.Bottom-sp.r.Dy())
		sp.r = geom.WH(x, y, sp.r.Dx(), sp.r.Dy())
	}
}

// draw captures under every sprite, then blits it. A sprite whose capture
// fails is not drawn this frame, so the screen never holds pixels that
// cannot be erased.
func (s *scene) draw() {
	for i := range s.sprites {
		sp := &s.sprites[i]
		h, err := s.pool.Capture(sp.r)
		s.handles.Set(sp.id, h)
		if err != nil {
			s.res.Skipped[skipReason(err)]++
			if h.Valid() {
				s.pool.MarkFreed(h)
			}
			continue
		}
		if err := s.blit(sp); err != nil {
			s.res.Skipped["blit"]++
			continue
		}
		s.res.Drawn++
	}
}

// blit decodes the sprite into a temporary surface, stages it through a
// scratch buffer and copies it to the screen. Everything but the screen is
// released when it returns.
func (s *scene) blit(sp *sprite) error {
	return s.arena.WithTemp(func() error {
		w, h := sp.r.Dx(), sp.r.Dy()
		img, err := surface.NewImage(w, h, surface.Indexed8, s.arena)
		if err != nil {
			return err
		}
		img.Fill(sp.color)
		img.FillRect(geom.WH(w/4, h/4, max(w/2, 1), max(h/2, 1)), sp.color|0x40)

		stage, _ := s.arena.ScratchOrAlloc(arena.Scratch1, w*h)
		if stage == nil {
			return errors.New("no staging buffer")
		}
		if err := surface.ReadRect(img, img.Bounds(), stage, w); err != nil {
			return err
		}
		return surface.WriteRect(s.screen, sp.r, stage, w)
	})
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, peel.ErrPoolExhausted):
		return "exhausted"
	case errors.Is(err, peel.ErrBudgetExceeded):
		return "budget"
	case errors.Is(err, peel.ErrOversized):
		return "oversized"
	case errors.Is(err, peel.ErrArenaExhausted):
		return "arena"
	case errors.Is(err, peel.ErrSurfaceLocked):
		return "locked"
	default:
		return "other"
	}
}

// runScene builds a scene from cfg, plays it and releases its memory.
func runScene(cfg sceneConfig) (sceneResult, error) {
	s, err := newScene(cfg)
	if err != nil {
		return sceneResult{}, err
	}
	defer s.close()
	return s.run(), nil
}
