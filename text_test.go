package heartwall

import (
	"strings"
	"testing"
)

func testFont(t *testing.T, size float64) *Font {
	t.Helper()
	fs, err := DefaultFonts(size)
	if err != nil {
		t.Fatalf("DefaultFonts(%v) failed: %v", size, err)
	}
	return fs.Body
}

// --- Fonts ---

func TestDefaultFontsBuildsAllFaces(t *testing.T) {
	fs, err := DefaultFonts(16)
	if err != nil {
		t.Fatalf("DefaultFonts failed: %v", err)
	}
	for name, f := range map[string]*Font{
		"Body": fs.Body, "Title": fs.Title, "Close": fs.Close, "Farewell": fs.Farewell,
	} {
		if f == nil {
			t.Fatalf("%s face is nil", name)
		}
		if f.LineHeight() <= 0 {
			t.Errorf("%s line height = %v, want > 0", name, f.LineHeight())
		}
		if f.Face() == nil {
			t.Errorf("%s has no underlying face", name)
		}
	}
	if fs.Farewell.LineHeight() <= fs.Body.LineHeight() {
		t.Error("farewell face should be larger than the body face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 16); err == nil {
		t.Error("expected an error for garbage font data")
	}
}

func TestMeasureStringGrowsWithContent(t *testing.T) {
	f := testFont(t, 16)

	w1, h1 := f.MeasureString("hi")
	w2, h2 := f.MeasureString("hi there, long line")
	if w2 <= w1 {
		t.Errorf("longer text measured %v, want wider than %v", w2, w1)
	}
	if h1 != h2 {
		t.Errorf("single-line heights differ: %v vs %v", h1, h2)
	}

	if w, _ := f.MeasureString(""); w != 0 {
		t.Errorf("empty string width = %v, want 0", w)
	}
}

func TestPointConversion(t *testing.T) {
	if got := pt(12); got != 16 {
		t.Errorf("pt(12) = %v, want 16", got)
	}
	if got := pt(30); got != 40 {
		t.Errorf("pt(30) = %v, want 40", got)
	}
}

// --- Wrapping ---

func TestWrapTextEmpty(t *testing.T) {
	f := testFont(t, 16)
	if got := WrapText(f, "", 200); got != nil {
		t.Errorf("WrapText(\"\") = %v, want nil", got)
	}
}

func TestWrapTextShortLineUntouched(t *testing.T) {
	f := testFont(t, 16)
	got := WrapText(f, "hello", 10000)
	if len(got) != 1 || got[0] != "hello" {
		t.Errorf("WrapText(short) = %v, want [hello]", got)
	}
}

func TestWrapTextKeepsExplicitNewlines(t *testing.T) {
	f := testFont(t, 16)
	got := WrapText(f, "one\ntwo\n\nfour", 10000)
	want := []string{"one", "two", "", "four"}
	if len(got) != len(want) {
		t.Fatalf("WrapText = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	f := testFont(t, 16)
	s := "the quick brown fox jumps over the lazy dog"
	w, _ := f.MeasureString(s)
	maxWidth := w / 3

	lines := WrapText(f, s, maxWidth)
	if len(lines) < 3 {
		t.Fatalf("got %d lines, want the text split across at least 3", len(lines))
	}
	for i, line := range lines {
		lw, _ := f.MeasureString(line)
		if lw > maxWidth {
			t.Errorf("line %d %q measures %v, over the %v limit", i, line, lw, maxWidth)
		}
	}
	// Breaking only at spaces means joining restores the original.
	if got := strings.Join(lines, " "); got != s {
		t.Errorf("joined lines = %q, want %q", got, s)
	}
}

func TestWrapTextBreaksUnspacedText(t *testing.T) {
	f := testFont(t, 16)
	s := "abcdefghijklmnopqrstuvwxyz"
	oneRune, _ := f.MeasureString("m")
	maxWidth := oneRune * 8

	lines := WrapText(f, s, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("got %d lines, want unspaced text broken up", len(lines))
	}
	for i, line := range lines {
		lw, _ := f.MeasureString(line)
		if lw > maxWidth {
			t.Errorf("line %d %q measures %v, over the %v limit", i, line, lw, maxWidth)
		}
	}
	if got := strings.Join(lines, ""); got != s {
		t.Errorf("joined lines = %q, want %q", got, s)
	}
}

func TestWrapTextTinyWidthStillAdvances(t *testing.T) {
	f := testFont(t, 16)
	lines := WrapText(f, "wide", 1)
	if len(lines) != 4 {
		t.Fatalf("got %d lines with a 1px limit, want one rune per line", len(lines))
	}
	if got := strings.Join(lines, ""); got != "wide" {
		t.Errorf("joined lines = %q, want %q", got, "wide")
	}
}
