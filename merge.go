package heartwall

import "time"

// Farewell card geometry and pacing.
const (
	farewellCardSize = 600
	farewellRaise    = 100

	farewellFadeIn  = 500 * time.Millisecond
	farewellHold    = 1500 * time.Millisecond
	farewellFadeOut = 200 * time.Millisecond
)

// Card is the farewell overlay: a borderless square centered over the
// emptied wall that fades in, holds, and fades away.
type Card struct {
	X, Y          int
	Width, Height int
	Alpha         float64

	disposed bool
}

// Dispose marks the card destroyed.
func (c *Card) Dispose() {
	c.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (c *Card) IsDisposed() bool {
	return c.disposed
}

// MergeSession counts the convergence flights still in the air. One session
// exists per run. Every flight reports in exactly once, including flights
// whose note vanished mid-air; a countdown below zero means a completion
// fired twice and is a programming error.
type MergeSession struct {
	remaining int
	onZero    func()
}

// Remaining returns the number of flights still in the air.
func (s *MergeSession) Remaining() int {
	return s.remaining
}

// arrived records one finished flight and fires onZero when the last one
// lands.
func (s *MergeSession) arrived() {
	s.remaining--
	if s.remaining < 0 {
		panic("heartwall: merge countdown below zero")
	}
	if s.remaining == 0 && s.onZero != nil {
		s.onZero()
	}
}

// startConvergence snapshots the surviving notes and sends each one flying
// to its heart slot. Notes mid-spiral keep their own exit; an empty wall
// goes straight to the farewell card.
func (w *Wall) startConvergence() {
	w.phase = WallConverging
	w.emit(EventMergeStarted, nil)

	snapshot := make([]*Note, 0, len(w.notes))
	for _, n := range w.notes {
		if n.State == NoteFadingIn || n.State == NoteIdle {
			snapshot = append(snapshot, n)
		}
	}
	if len(snapshot) == 0 {
		w.showFarewell()
		return
	}

	slots := HeartPositions(len(snapshot), w.screenW, w.screenH, w.noteW, w.noteH)
	w.session = &MergeSession{
		remaining: len(snapshot),
		onZero: func() {
			w.clock.After(SettleDelay, w.showFarewell)
		},
	}
	for i, n := range snapshot {
		turns := 1.5 + w.rng.Float64()*1.5
		w.clock.Start(MoveTo(n, slots[i], ConvergeDuration, turns, w.session.arrived))
	}
}

// showFarewell presents the farewell card exactly once, no matter how many
// paths race to it.
func (w *Wall) showFarewell() {
	if w.cardShown {
		return
	}
	w.cardShown = true

	w.card = &Card{
		X:      (w.screenW - farewellCardSize) / 2,
		Y:      (w.screenH-farewellCardSize)/2 - farewellRaise,
		Width:  farewellCardSize,
		Height: farewellCardSize,
	}
	w.clock.Start(NewAnimation(w.card, farewellFadeIn, nil, func(raw, _ float64) {
		w.card.Alpha = raw
	}, func() {
		w.clock.After(farewellHold, w.fadeOutFarewell)
	}))
}

func (w *Wall) fadeOutFarewell() {
	w.clock.Start(FadeOut(w.card, farewellFadeOut, func() {
		w.card.Dispose()
		w.phase = WallFinished
		w.emit(EventFinished, nil)
	}))
}
