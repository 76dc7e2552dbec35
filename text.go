package heartwall

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Chrome point sizes. The body size comes from configuration.
const (
	titleFontSize    = 10
	closeFontSize    = 12
	farewellFontSize = 30
)

// pt converts a point size to pixels at 96 DPI.
func pt(size float64) float64 {
	return size * 4 / 3
}

// Font wraps a text/v2 face with a cached line height.
type Font struct {
	face *text.GoTextFace
	lh   float64
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// LoadFont parses TTF/OTF data and returns a face at the given pixel size.
func LoadFont(data []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("heartwall: failed to parse font data: %w", err)
	}
	return newFont(source, size), nil
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying face for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// FontSet bundles the faces the renderer needs: the note body plus the bold
// chrome (title bar, close glyph, farewell card).
type FontSet struct {
	Body     *Font
	Title    *Font
	Close    *Font
	Farewell *Font
}

// NewFontSet builds every face from a single font file, with the body at
// bodySize points. A one-weight file serves the chrome too; there is no
// synthetic bold.
func NewFontSet(data []byte, bodySize float64) (*FontSet, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("heartwall: failed to parse font data: %w", err)
	}
	return &FontSet{
		Body:     newFont(source, pt(bodySize)),
		Title:    newFont(source, pt(titleFontSize)),
		Close:    newFont(source, pt(closeFontSize)),
		Farewell: newFont(source, pt(farewellFontSize)),
	}, nil
}

// DefaultFonts builds the built-in faces: Go Regular for note bodies and Go
// Bold for the chrome. The built-ins cover Latin only; CJK messages need a
// user font loaded through NewFontSet.
func DefaultFonts(bodySize float64) (*FontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("heartwall: failed to parse built-in regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("heartwall: failed to parse built-in bold font: %w", err)
	}
	return &FontSet{
		Body:     newFont(regular, pt(bodySize)),
		Title:    newFont(bold, pt(titleFontSize)),
		Close:    newFont(bold, pt(closeFontSize)),
		Farewell: newFont(bold, pt(farewellFontSize)),
	}, nil
}

// --- Wrapping ---

// WrapText breaks s into lines no wider than maxWidth pixels. Lines prefer
// breaking at spaces; words wider than the limit, and text without spaces
// such as Chinese, break wherever the limit falls. Explicit newlines are
// kept.
func WrapText(f *Font, s string, maxWidth float64) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(f, para, maxWidth)...)
	}
	return lines
}

func wrapLine(f *Font, s string, maxWidth float64) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	start := 0      // first rune of the current line
	lastSpace := -1 // index of the last space on the current line
	i := 0
	for i < len(runes) {
		r := runes[i]
		w, _ := f.MeasureString(string(runes[start : i+1]))
		if w <= maxWidth || i == start {
			if r == ' ' {
				lastSpace = i
			}
			i++
			continue
		}

		// runes[start:i+1] is too wide; close the line before runes[i].
		if lastSpace >= start {
			lines = append(lines, string(runes[start:lastSpace]))
			start = lastSpace + 1
			i = start // re-measure the carried word from scratch
		} else {
			lines = append(lines, string(runes[start:i]))
			start = i
			if r == ' ' {
				// A line never begins with the space it broke on.
				start++
				i = start
			}
		}
		lastSpace = -1
	}
	if start < len(runes) || len(lines) == 0 {
		lines = append(lines, string(runes[start:]))
	}
	return lines
}
