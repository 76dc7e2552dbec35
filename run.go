package heartwall

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window Run opens.
type RunConfig struct {
	// Title is the window title.
	Title string

	// Width and Height set the window size. Zero falls back to the wall's
	// screen size.
	Width, Height int

	// Overlay requests a borderless, transparent window so the notes sit
	// straight on the desktop. Platforms that refuse either attribute
	// degrade to a plain window.
	Overlay bool

	// Floating keeps the window above all others.
	Floating bool

	// ShowFPS draws the corner readout.
	ShowFPS bool

	// Debug logs per-frame stats to stderr.
	Debug bool

	// Script, when set, replays a scripted input sequence instead of waiting
	// for a human. Used for automated visual testing.
	Script *ScriptRunner

	// ScreenshotDir is where captured frames land. Empty means "screenshots".
	ScreenshotDir string
}

// game glues a wall, its clock, and the input layer into an ebiten.Game.
// One Update is one clock tick; ebiten's TPS is pinned to TicksPerSecond so
// wall time and tick time stay aligned.
type game struct {
	clock    *Clock
	wall     *Wall
	input    *Input
	renderer *Renderer
	overlay  *DebugOverlay
	script   *ScriptRunner

	debug bool
	stats debugStats

	shotDir   string
	shotQueue []string
	f12Down   bool

	width, height int
}

func newGame(clock *Clock, w *Wall, in *Input, r *Renderer, width, height int) *game {
	return &game{
		clock:    clock,
		wall:     w,
		input:    in,
		renderer: r,
		shotDir:  "screenshots",
		width:    width,
		height:   height,
	}
}

func (g *game) Update() error {
	start := time.Now()
	if g.script != nil {
		g.script.step(g)
	}
	g.input.Update()
	g.clock.Tick()

	// F12 captures the current frame.
	f12 := ebiten.IsKeyPressed(ebiten.KeyF12)
	if f12 && !g.f12Down {
		g.screenshot("manual")
	}
	g.f12Down = f12

	if g.debug {
		g.stats = collectDebugStats(g.clock, g.wall)
		g.stats.updateTime = time.Since(start)
	}
	if g.wall.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.renderer.Draw(screen, g.wall)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.clock, g.wall)
	}
	if g.debug {
		g.stats.drawTime = time.Since(start)
		debugLog(g.stats)
	}
	g.flushScreenshots(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and drives the wall at TicksPerSecond until the
// farewell card finishes or the user closes the window. Blocks until then.
// Must be called from the main goroutine.
func Run(clock *Clock, w *Wall, fonts *FontSet, cfg RunConfig) error {
	width, height := w.ScreenSize()
	if cfg.Width > 0 && cfg.Height > 0 {
		width, height = cfg.Width, cfg.Height
	}

	g := newGame(clock, w, NewInput(w), NewRenderer(fonts), width, height)
	g.debug = cfg.Debug
	g.script = cfg.Script
	if cfg.ScreenshotDir != "" {
		g.shotDir = cfg.ScreenshotDir
	}
	if cfg.ShowFPS {
		g.overlay = NewDebugOverlay()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(TicksPerSecond)

	opts := &ebiten.RunGameOptions{}
	if cfg.Overlay {
		ebiten.SetWindowDecorated(false)
		opts.ScreenTransparent = true
		opts.SkipTaskbar = true
	}
	if cfg.Floating {
		ebiten.SetWindowFloating(true)
	}
	return ebiten.RunGameWithOptions(g, opts)
}
