package heartwall

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugStats holds per-frame counts and timings. Only populated when the
// app runs with debug on.
type debugStats struct {
	notes      int
	animations int
	timers     int
	updateTime time.Duration
	drawTime   time.Duration
}

// debugLine formats one frame's stats for the stderr log.
func debugLine(stats debugStats) string {
	return fmt.Sprintf("[heartwall] notes: %d | animations: %d | timers: %d | update: %v | draw: %v",
		stats.notes, stats.animations, stats.timers, stats.updateTime, stats.drawTime)
}

// debugLog prints frame stats to stderr. Callers gate on their debug flag.
func debugLog(stats debugStats) {
	_, _ = fmt.Fprintln(os.Stderr, debugLine(stats))
}

// collectDebugStats samples the wall and clock. Timings are filled in by the
// caller around its update and draw work.
func collectDebugStats(clock *Clock, w *Wall) debugStats {
	return debugStats{
		notes:      len(w.Notes()),
		animations: clock.ActiveAnimations(),
		timers:     clock.ActiveTimers(),
	}
}

// DebugOverlay is a small FPS and wall-state readout for the top-left
// corner. The text refreshes twice a second; between refreshes the cached
// image is drawn as-is.
type DebugOverlay struct {
	img       *ebiten.Image
	lastTicks uint64
}

// NewDebugOverlay creates the overlay with its backing image.
func NewDebugOverlay() *DebugOverlay {
	// 160x48 fits the FPS, TPS, and wall lines.
	return &DebugOverlay{img: ebiten.NewImage(160, 48)}
}

// Draw refreshes the readout when due and paints it onto screen.
func (d *DebugOverlay) Draw(screen *ebiten.Image, clock *Clock, w *Wall) {
	if clock.Ticks()-d.lastTicks >= TicksPerSecond/2 {
		d.lastTicks = clock.Ticks()

		d.img.Clear()
		// Semi-transparent background for readability
		d.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(d.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nnotes: %d  anims: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(w.Notes()), clock.ActiveAnimations()))
	}
	screen.DrawImage(d.img, nil)
}
