// Command heartwall covers the desktop with animated sticky notes, one
// message each. Close them all and the survivors fly into a heart, then a
// farewell card says goodbye.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/phanxgames/heartwall"
	"github.com/phanxgames/heartwall/internal/config"
)

// Fallback window size for windowed mode, or when the monitor size is not
// available.
const (
	windowedW = 1280
	windowedH = 800
)

var (
	configPath   string
	messagesPath string
	fontPath     string
	scriptPath   string
	shotDir      string
	count        int
	noteWidth    int
	noteHeight   int
	fontSize     float64
	intervalMs   int
	title        string
	seed         uint64
	noTopmost    bool
	windowed     bool
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "heartwall",
	Short: "Animated sticky-note wall that folds into a heart",
	Long: `Heartwall scatters pastel sticky notes across the screen, one message
each. Drag them around, close them one by one, and once the last note is
gone the rest of the run plays itself: the notes fly into a heart formation
and a farewell card fades in.

Messages, colors, and geometry come from built-in defaults, an optional
YAML config file, and flags, in that order.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, afero.NewOsFs())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&messagesPath, "messages", "m", "", "text file with one note message per line")
	flags.StringVar(&fontPath, "font", "", "TTF/OTF font file (needed for CJK messages)")
	flags.IntVarP(&count, "count", "n", 80, "number of notes to spawn")
	flags.IntVar(&noteWidth, "width", 260, "note width in pixels")
	flags.IntVar(&noteHeight, "height", 160, "note height in pixels")
	flags.Float64Var(&fontSize, "font-size", 16, "body text size in points")
	flags.IntVar(&intervalMs, "interval", 150, "milliseconds between spawns (0 for one burst)")
	flags.StringVar(&title, "title", "", "title drawn in each note's title bar")
	flags.Uint64Var(&seed, "seed", 0, "layout seed (0 seeds from entropy)")
	flags.BoolVar(&noTopmost, "no-topmost", false, "do not keep the wall above other windows")
	flags.BoolVar(&windowed, "windowed", false, "run in a regular window instead of a desktop overlay")
	flags.BoolVar(&debug, "debug", false, "log frame stats and show the FPS readout")
	flags.StringVar(&scriptPath, "script", "", "JSON replay script for automated runs")
	flags.StringVar(&shotDir, "screenshot-dir", "", "directory for F12 and scripted captures")
}

// loadConfig resolves the run's settings: defaults, then the YAML file,
// then any flag the user actually set.
func loadConfig(cmd *cobra.Command, fs afero.Fs) (config.Config, error) {
	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("width") {
		cfg.NoteWidth = noteWidth
	}
	if flags.Changed("height") {
		cfg.NoteHeight = noteHeight
	}
	if flags.Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("font") {
		cfg.FontPath = fontPath
	}
	if noTopmost {
		cfg.StayOnTop = false
	}
	if windowed {
		cfg.Windowed = true
	}
	if debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, fs afero.Fs) error {
	cfg, err := loadConfig(cmd, fs)
	if err != nil {
		return err
	}

	var script *heartwall.ScriptRunner
	if scriptPath != "" {
		data, err := afero.ReadFile(fs, scriptPath)
		if err != nil {
			return fmt.Errorf("read script %s: %w", scriptPath, err)
		}
		if script, err = heartwall.LoadScript(data); err != nil {
			return err
		}
	}

	pool := cfg.MessagePool()
	if messagesPath != "" {
		if pool, err = config.LoadMessages(fs, messagesPath); err != nil {
			return err
		}
	}

	fonts, err := cfg.Fonts(fs)
	if err != nil {
		return err
	}
	colors, err := cfg.Colors()
	if err != nil {
		return err
	}

	seedVal := cfg.Seed
	if seedVal == 0 {
		seedVal = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seedVal, seedVal))

	screenW, screenH := ebiten.Monitor().Size()
	if cfg.Windowed || screenW <= 0 || screenH <= 0 {
		screenW, screenH = windowedW, windowedH
	}

	clock := heartwall.NewClock()
	wall := heartwall.NewWall(clock, heartwall.WallConfig{
		Texts:      heartwall.PickMessages(rng, pool, cfg.Count),
		Positions:  heartwall.GridPositions(rng, cfg.Count, cfg.NoteWidth, cfg.NoteHeight, screenW, screenH),
		NoteWidth:  cfg.NoteWidth,
		NoteHeight: cfg.NoteHeight,
		Title:      cfg.Title,
		Interval:   cfg.Interval(),
		Palette:    colors,
		ScreenW:    screenW,
		ScreenH:    screenH,
		RNG:        rng,
	})

	return heartwall.Run(clock, wall, fonts, heartwall.RunConfig{
		Title:    "heartwall",
		Width:    screenW,
		Height:   screenH,
		Overlay:  !cfg.Windowed,
		Floating: cfg.StayOnTop && !cfg.Windowed,
		ShowFPS:  cfg.Debug,
		Debug:    cfg.Debug,

		Script:        script,
		ScreenshotDir: shotDir,
	})
}
