// Fullrun drives a complete wall from first spawn to farewell card with a
// replay script, capturing a screenshot at each stage. The seed is fixed, so
// every run produces the same frames; the captures land in
// docs/demos/fullrun.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/phanxgames/heartwall"
)

const (
	windowTitle = "Heartwall — Full Run"
	screenW     = 1280
	screenH     = 800
	noteCount   = 12
	noteW       = 220
	noteH       = 140
)

func main() {
	fonts, err := heartwall.DefaultFonts(15)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(3, 3))
	positions := heartwall.GridPositions(rng, noteCount, noteW, noteH, screenW, screenH)

	// With 12 notes at a 150ms interval the last fade completes around tick
	// 121 and the flight begins at 134. The waits below land one capture on
	// the idle wall, one mid-flight, one on the settled heart, and one on
	// the farewell card.
	script := fmt.Sprintf(`{"steps": [
		{"action": "wait", "ticks": 100},
		{"action": "click", "x": %d, "y": %d},
		{"action": "wait", "ticks": 22},
		{"action": "screenshot", "label": "wall"},
		{"action": "wait", "ticks": 21},
		{"action": "screenshot", "label": "flight"},
		{"action": "wait", "ticks": 19},
		{"action": "screenshot", "label": "heart"},
		{"action": "wait", "ticks": 50},
		{"action": "screenshot", "label": "farewell"}
	]}`, positions[0].X+noteW/2, positions[0].Y+noteH/2)

	runner, err := heartwall.LoadScript([]byte(script))
	if err != nil {
		log.Fatal(err)
	}

	clock := heartwall.NewClock()
	wall := heartwall.NewWall(clock, heartwall.WallConfig{
		Texts:      heartwall.PickMessages(rng, heartwall.DefaultMessages(), noteCount),
		Positions:  positions,
		NoteWidth:  noteW,
		NoteHeight: noteH,
		Interval:   150 * time.Millisecond,
		ScreenW:    screenW,
		ScreenH:    screenH,
		RNG:        rng,
	})

	if err := heartwall.Run(clock, wall, fonts, heartwall.RunConfig{
		Title:         windowTitle,
		Width:         screenW,
		Height:        screenH,
		Script:        runner,
		ScreenshotDir: "docs/demos/fullrun",
	}); err != nil {
		log.Fatal(err)
	}
}
