package heartwall

import "math/rand/v2"

// gridGutter is the horizontal spacing budgeted between grid columns.
const gridGutter = 40

// Heart formation shape: curve-space units scale to pixels, and the whole
// formation sits heartRaise pixels above the screen center.
const (
	heartScaleX = 25
	heartScaleY = 28
	heartRaise  = 120
)

// GridPositions scatters count note slots across the screen. Notes fill a
// grid of equal cells, jittered by up to half the cell slack on each axis,
// clamped to keep GlowPadding from every edge, then shuffled so spawn order
// hops around the screen. Deterministic for a given rng.
func GridPositions(rng *rand.Rand, count, noteW, noteH, screenW, screenH int) []Point {
	if count <= 0 {
		return nil
	}

	cols := screenW / (noteW + gridGutter)
	if cols < 1 {
		cols = 1
	}
	rows := (count + cols - 1) / cols
	cellW := float64(screenW) / float64(cols)
	cellH := float64(screenH) / float64(rows)

	positions := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols

		jitterX := (cellW - float64(noteW)) / 2
		jitterY := (cellH - float64(noteH)) / 2
		x := float64(col)*cellW + randRange(rng, -jitterX, jitterX) + jitterX
		y := float64(row)*cellH + randRange(rng, -jitterY, jitterY) + jitterY

		positions = append(positions, Point{
			X: clampCoord(x, GlowPadding, screenW-noteW-GlowPadding),
			Y: clampCoord(y, GlowPadding, screenH-noteH-GlowPadding),
		})
	}

	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	return positions
}

// HeartPositions returns count slots spaced evenly around the heart curve,
// centered on the screen and raised above center. Each slot is adjusted by
// half the note size so note centers land on the curve, then clamped to the
// screen. Order follows the curve; callers rely on index i matching angle
// i/count of a full turn.
func HeartPositions(count, screenW, screenH, noteW, noteH int) []Point {
	if count <= 0 {
		return nil
	}

	offsetX := float64(screenW) / 2
	offsetY := float64(screenH)/2 - heartRaise

	positions := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 360
		x, y := HeartPoint(angle, heartScaleX, heartScaleY)

		posX := offsetX + x - float64(noteW)/2
		posY := offsetY - y - float64(noteH)/2

		positions = append(positions, Point{
			X: clampCoord(posX, GlowPadding, screenW-noteW-GlowPadding),
			Y: clampCoord(posY, GlowPadding, screenH-noteH-GlowPadding),
		})
	}
	return positions
}

// HeartOutline samples the heart curve once per degree for the farewell
// card's polygon. Points are in card-local coordinates, centered at
// width/2 horizontally with the curve origin centerY pixels from the top.
// The bottom tip may extend past the card and is clipped at draw time.
func HeartOutline(width, scaleX, scaleY, centerY float64) []Vec2 {
	pts := make([]Vec2, 0, 360)
	for deg := 0; deg < 360; deg++ {
		x, y := HeartPoint(float64(deg), scaleX, scaleY)
		pts = append(pts, Vec2{width/2 + x, centerY - y})
	}
	return pts
}

// PickMessages draws n messages from pool with replacement, so a short pool
// can fill a large wall. An empty pool or non-positive n yields nil.
func PickMessages(rng *rand.Rand, pool []string, n int) []string {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = pool[rng.IntN(len(pool))]
	}
	return out
}

func randRange(rng *rand.Rand, a, b float64) float64 {
	return a + rng.Float64()*(b-a)
}

// clampCoord clamps v into [lo, hi] and truncates to whole pixels. The
// bounds may be contradictory on screens smaller than a note; lo wins.
func clampCoord(v float64, lo, hi int) int {
	if v > float64(hi) {
		v = float64(hi)
	}
	if v < float64(lo) {
		v = float64(lo)
	}
	return int(v)
}
