// Package config holds the tunables of a heartwall run and their loaders.
// Values resolve in three layers: built-in defaults, then an optional YAML
// file, then command-line flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/heartwall"
)

// Config is one run's settings. Zero values mean "unset"; use Default as the
// base so absent YAML keys keep their defaults.
type Config struct {
	// Count is how many notes spawn before the wall waits for closes.
	Count int `yaml:"count"`

	// NoteWidth and NoteHeight size every note in pixels.
	NoteWidth  int `yaml:"note_width"`
	NoteHeight int `yaml:"note_height"`

	// FontSize is the body text size in points.
	FontSize float64 `yaml:"font_size"`

	// StayOnTop keeps the overlay above other windows.
	StayOnTop bool `yaml:"stay_on_top"`

	// Seed fixes the layout and message draw. Zero seeds from entropy.
	Seed uint64 `yaml:"seed"`

	// Title is drawn in each note's title bar.
	Title string `yaml:"title"`

	// IntervalMs is the pause between note spawns. Zero spawns the whole
	// wall in one burst.
	IntervalMs int `yaml:"interval_ms"`

	// Messages overrides the built-in note texts.
	Messages []string `yaml:"messages"`

	// Palette overrides the built-in note colors, as #RRGGBB strings.
	Palette []string `yaml:"palette"`

	// FontPath points at a TTF or OTF file. CJK messages need one; the
	// built-in faces cover Latin only.
	FontPath string `yaml:"font"`

	// Windowed opens a regular window instead of the desktop overlay.
	Windowed bool `yaml:"windowed"`

	// Debug logs per-frame stats and draws the FPS readout.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Count:      80,
		NoteWidth:  260,
		NoteHeight: 160,
		FontSize:   16,
		StayOnTop:  true,
		IntervalMs: 150,
	}
}

// Load reads the YAML file at path over the defaults. An empty path or a
// missing file yields the defaults; any other read failure or malformed
// YAML is an error.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a wall.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count %d is negative", c.Count)
	}
	if c.NoteWidth <= 0 || c.NoteHeight <= 0 {
		return fmt.Errorf("note size %dx%d is not positive", c.NoteWidth, c.NoteHeight)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size %v is not positive", c.FontSize)
	}
	if c.IntervalMs < 0 {
		return fmt.Errorf("interval %dms is negative", c.IntervalMs)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Interval returns the spawn cadence as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// MessagePool returns the configured messages, or the built-ins when none
// are set.
func (c Config) MessagePool() []string {
	if len(c.Messages) > 0 {
		return c.Messages
	}
	return heartwall.DefaultMessages()
}

// Colors parses the palette hex strings. An empty palette yields the
// built-in pastels.
func (c Config) Colors() ([]heartwall.Color, error) {
	if len(c.Palette) == 0 {
		return heartwall.DefaultPalette(), nil
	}
	colors := make([]heartwall.Color, len(c.Palette))
	for i, hex := range c.Palette {
		col, err := heartwall.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		colors[i] = col
	}
	return colors, nil
}

// Fonts builds the font set from the configured font file, or the built-in
// faces when no file is set.
func (c Config) Fonts(fs afero.Fs) (*heartwall.FontSet, error) {
	if c.FontPath == "" {
		return heartwall.DefaultFonts(c.FontSize)
	}
	data, err := afero.ReadFile(fs, c.FontPath)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", c.FontPath, err)
	}
	return heartwall.NewFontSet(data, c.FontSize)
}

// LoadMessages reads one note message per line from path, trimming space
// and skipping blank lines. An unreadable file warns on stderr and returns
// the built-ins; a readable file with no usable lines is an error. An empty
// path returns the built-ins silently.
func LoadMessages(fs afero.Fs, path string) ([]string, error) {
	if path == "" {
		return heartwall.DefaultMessages(), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[heartwall] cannot read messages from %s: %v; using built-ins\n", path, err)
		return heartwall.DefaultMessages(), nil
	}

	var msgs []string
	for _, line := range strings.Split(string(data), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			msgs = append(msgs, s)
		}
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("messages file %s has no usable lines", path)
	}
	return msgs, nil
}
