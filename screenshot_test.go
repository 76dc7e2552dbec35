package heartwall

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := testGame(t, testWallConfig(1, 0))
	g.screenshot("a")
	g.screenshot("b")
	g.screenshot("c")
	if len(g.shotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(g.shotQueue))
	}
	if g.shotQueue[0] != "a" || g.shotQueue[1] != "b" || g.shotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", g.shotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	g := testGame(t, testWallConfig(1, 0))
	if g.shotDir != "screenshots" {
		t.Errorf("shotDir = %q, want %q", g.shotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	// Three pixels: opaque red, half-alpha green (premultiplied), fully
	// transparent garbage.
	pixels := []byte{
		255, 0, 0, 255,
		0, 128, 0, 128,
		7, 7, 7, 0,
	}
	img := unpremultiply(pixels, 3, 1)

	if got := img.Pix[0:4]; got[0] != 255 || got[1] != 0 || got[2] != 0 || got[3] != 255 {
		t.Errorf("opaque pixel = %v, want [255 0 0 255]", got)
	}
	// 128*255/128 = 255: the green channel unscales back to full.
	if got := img.Pix[4:8]; got[0] != 0 || got[1] != 255 || got[2] != 0 || got[3] != 128 {
		t.Errorf("half-alpha pixel = %v, want [0 255 0 128]", got)
	}
	// Zero alpha passes through untouched.
	if got := img.Pix[8:12]; got[0] != 7 || got[1] != 7 || got[2] != 7 || got[3] != 0 {
		t.Errorf("transparent pixel = %v, want [7 7 7 0]", got)
	}
}

func TestUnpremultiplyClamps(t *testing.T) {
	// Malformed input where a channel exceeds its alpha must clamp, not wrap.
	pixels := []byte{200, 0, 0, 100}
	img := unpremultiply(pixels, 1, 1)
	if img.Pix[0] != 255 {
		t.Errorf("over-range channel = %d, want 255", img.Pix[0])
	}
}

func TestWritePNG(t *testing.T) {
	img := unpremultiply([]byte{255, 0, 0, 255, 0, 0, 255, 255}, 2, 1)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("decoded bounds = %v, want 2x1", b)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	img := unpremultiply([]byte{0, 0, 0, 255}, 1, 1)
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for unwritable path")
	}
}
