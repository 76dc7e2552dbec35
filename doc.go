// Package heartwall animates a wall of sticky notes over the desktop with
// [Ebitengine], then folds them into a heart.
//
// Notes spawn one by one onto a borderless transparent overlay, each carrying
// a short message. They can be dragged, raised, dismissed with the x button,
// or spiraled away with a double click or Escape. Once the last message has
// appeared, or the user clears the wall first, the surviving notes fly along
// eased, swinging paths onto a heart-shaped outline, and a farewell card
// fades in over the formation before the overlay exits.
//
// # Quick start
//
// The simplest way to run a wall is [Run], which opens the window and drives
// the clock for you:
//
//	clock := heartwall.NewClock()
//	wall := heartwall.NewWall(clock, heartwall.WallConfig{
//		Texts:     texts,
//		Positions: heartwall.GridPositions(rng, len(texts), 260, 160, 1920, 1080),
//		ScreenW:   1920, ScreenH: 1080,
//		RNG:       rng,
//	})
//	heartwall.Run(clock, wall, fonts, heartwall.RunConfig{Overlay: true})
//
// For full control, implement [ebiten.Game] yourself: call [Input.Update] and
// [Clock.Tick] once per frame and hand the wall to a [Renderer].
//
// # Timebase
//
// Everything moves on a fixed 20ms tick. Durations are converted to whole
// tick counts up front, so every fade, flight, and spiral lands on the same
// tick no matter how the wall is driven. Tests advance a [Clock] by hand and
// assert exact positions at exact ticks; the window pins ebiten's TPS to
// [TicksPerSecond] so real time matches tick time.
//
// # Pieces
//
// [Clock] owns timers and stepped [Animation] values. [Wall] owns the notes
// and the merge choreography. [Input] turns raw mouse and key state into wall
// gestures. [Renderer] rasterizes note chrome with [gg] and draws live text
// with ebiten's text/v2. Tweening curves come from [gween]; wall events can
// feed a [Donburi] world through the adapter in heartwall/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package heartwall
