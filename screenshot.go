package heartwall

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshot queues a labeled capture of the current frame. The PNG is
// written at the end of the next Draw call, to the game's screenshot
// directory with a timestamped filename. Safe to call from Update or Draw.
func (g *game) screenshot(label string) {
	g.shotQueue = append(g.shotQueue, label)
}

// flushScreenshots writes one PNG per queued label from the rendered frame.
// Called at the end of game.Draw.
func (g *game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(g.shotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[heartwall] screenshot: mkdir %s: %v\n", g.shotDir, err)
		g.shotQueue = g.shotQueue[:0]
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")

	for _, label := range g.shotQueue {
		safe := sanitizeLabel(label)
		path := fmt.Sprintf("%s/%s_%s.png", g.shotDir, stamp, safe)
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[heartwall] screenshot: %v\n", err)
		}
	}

	g.shotQueue = g.shotQueue[:0]
}

// unpremultiply converts premultiplied RGBA pixel data, as returned by
// ebiten's ReadPixels, into a straight-alpha NRGBA image suitable for PNG
// encoding. This matters on the transparent overlay, where faded notes leave
// fractional alpha on most of the frame.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
