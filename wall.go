package heartwall

import (
	"math/rand/v2"
	"time"
)

// EventSink is the interface for optional event-bus integration. When set on
// a Wall, lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event WallEvent)
}

// WallEvent carries note lifecycle data for the event bridge.
type WallEvent struct {
	Kind   EventKind
	NoteID uint32
	X, Y   int
}

// EventKind identifies a kind of wall event.
type EventKind uint8

const (
	EventSpawned      EventKind = iota // a note was created and began fading in
	EventRaised                        // a note moved to the top of the stack
	EventClosed                        // a note was destroyed
	EventMergeStarted                  // the convergence flight began
	EventFinished                      // the farewell card faded out
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventRaised:
		return "raised"
	case EventClosed:
		return "closed"
	case EventMergeStarted:
		return "merge-started"
	case EventFinished:
		return "finished"
	}
	return "unknown"
}

// WallPhase tracks the wall through its run. Phases only move forward.
type WallPhase uint8

const (
	WallSpawning       WallPhase = iota // notes still appearing
	WallAwaitingClose                   // all notes spawned, wall idle
	WallMergeScheduled                  // merge queued, spawning halted
	WallConverging                      // notes flying into the heart
	WallFinished                        // farewell done, ready to exit
)

// WallConfig assembles everything a Wall needs. Texts and Positions must be
// the same length; note i gets Texts[i] at Positions[i]. Zero-value sizes
// and a nil palette or rng fall back to the package defaults.
type WallConfig struct {
	Texts      []string
	Positions  []Point
	NoteWidth  int
	NoteHeight int
	Title      string
	Interval   time.Duration
	Palette    []Color
	ScreenW    int
	ScreenH    int
	RNG        *rand.Rand
}

// Wall owns every note and runs the whole show: staggered spawning, close
// tracking, merge scheduling, and the farewell card. All of it advances on
// the clock given to NewWall; the wall itself never touches real time.
type Wall struct {
	clock *Clock
	rng   *rand.Rand
	sink  EventSink

	texts            []string
	positions        []Point
	noteW, noteH     int
	title            string
	interval         time.Duration
	palette          []Color
	screenW, screenH int

	notes     []*Note
	phase     WallPhase
	nextIndex int
	zCounter  int

	session   *MergeSession
	card      *Card
	cardShown bool
}

// NewWall creates a wall and queues the first spawn on the clock. An empty
// text list skips straight to scheduling the merge.
func NewWall(clock *Clock, cfg WallConfig) *Wall {
	if clock == nil {
		panic("heartwall: wall requires a clock")
	}
	if len(cfg.Texts) != len(cfg.Positions) {
		panic("heartwall: texts and positions count mismatch")
	}

	w := &Wall{
		clock:     clock,
		rng:       cfg.RNG,
		texts:     cfg.Texts,
		positions: cfg.Positions,
		noteW:     cfg.NoteWidth,
		noteH:     cfg.NoteHeight,
		title:     cfg.Title,
		interval:  cfg.Interval,
		palette:   cfg.Palette,
		screenW:   cfg.ScreenW,
		screenH:   cfg.ScreenH,
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if len(w.palette) == 0 {
		w.palette = DefaultPalette()
	}
	if w.noteW <= 0 {
		w.noteW = 260
	}
	if w.noteH <= 0 {
		w.noteH = 160
	}
	if w.interval < 0 {
		w.interval = 0
	}

	if len(w.texts) == 0 {
		w.scheduleMerge()
	} else {
		clock.After(SpawnDelay, w.spawnNext)
	}
	return w
}

// SetEventSink sets the optional event bridge.
func (w *Wall) SetEventSink(sink EventSink) {
	w.sink = sink
}

// Phase returns the wall's current phase.
func (w *Wall) Phase() WallPhase {
	return w.phase
}

// Notes returns the live notes in spawn order. The slice is the wall's own;
// callers must not mutate it.
func (w *Wall) Notes() []*Note {
	return w.notes
}

// Card returns the farewell card, or nil before it appears.
func (w *Wall) Card() *Card {
	return w.card
}

// ScreenSize returns the screen dimensions the wall lays out against.
func (w *Wall) ScreenSize() (width, height int) {
	return w.screenW, w.screenH
}

// Finished reports whether the farewell card has run its course and the
// application should exit.
func (w *Wall) Finished() bool {
	return w.phase == WallFinished
}

// spawnNext creates the next note. With a zero interval the remaining notes
// all appear in the same burst; otherwise the next spawn is queued on the
// clock. Spawning stops the moment the wall leaves the spawning phase.
func (w *Wall) spawnNext() {
	for {
		if w.phase != WallSpawning || w.nextIndex >= len(w.texts) {
			return
		}
		w.spawnOne()

		if w.nextIndex >= len(w.texts) {
			// Let the last note finish fading in, then head for the heart.
			w.phase = WallAwaitingClose
			w.clock.After(FadeDuration, w.scheduleMerge)
			return
		}
		if w.interval > 0 {
			w.clock.After(w.interval, w.spawnNext)
			return
		}
	}
}

func (w *Wall) spawnOne() {
	i := w.nextIndex
	w.nextIndex++

	n := NewNote(
		w.texts[i],
		w.title,
		w.palette[w.rng.IntN(len(w.palette))],
		w.noteW,
		w.noteH,
		w.positions[i],
	)
	n.OnClosed = w.handleNoteClosed
	n.State = NoteFadingIn
	w.zCounter++
	n.Z = w.zCounter
	w.notes = append(w.notes, n)

	w.clock.Start(FadeIn(n, FadeDuration, func() {
		if n.State == NoteFadingIn {
			n.State = NoteIdle
			w.Raise(n)
		}
	}))
	w.emit(EventSpawned, n)
}

// Raise moves the note to the top of the draw order.
func (w *Wall) Raise(n *Note) {
	w.zCounter++
	n.Z = w.zCounter
	w.emit(EventRaised, n)
}

func (w *Wall) handleNoteClosed(n *Note) {
	for i, other := range w.notes {
		if other == n {
			w.notes = append(w.notes[:i], w.notes[i+1:]...)
			break
		}
	}
	w.emit(EventClosed, n)

	// The user beat the spawner to it: an empty wall heads straight for the
	// merge and spawning halts.
	if w.phase < WallMergeScheduled && len(w.notes) == 0 {
		w.scheduleMerge()
	}
}

// scheduleMerge queues the convergence after HeartDelay. Idempotent: any
// number of triggers in any order schedule exactly one merge, and spawning
// is cancelled from that moment.
func (w *Wall) scheduleMerge() {
	if w.phase >= WallMergeScheduled {
		return
	}
	w.phase = WallMergeScheduled
	w.clock.After(HeartDelay, w.startConvergence)
}

// CloseNote destroys the note immediately, the way the × button does.
func (w *Wall) CloseNote(n *Note) {
	n.Dispose()
}

// SpiralClose dismisses the note with the corkscrew animation. Once a merge
// is scheduled the dismissal degrades to an immediate close so the spiral
// cannot fight the convergence flight.
func (w *Wall) SpiralClose(n *Note) {
	if n.IsDisposed() || n.State == NoteClosing {
		return
	}
	if w.phase >= WallMergeScheduled {
		n.Dispose()
		return
	}
	n.State = NoteClosing
	w.clock.Start(SpiralOut(n, Point{w.screenW / 2, w.screenH / 2}, SpiralDuration, func() {
		n.Dispose()
	}))
}

// DragTo moves a note to (x, y), clamped so the note and its glow stay on
// screen. Drags stop once the notes start flying.
func (w *Wall) DragTo(n *Note, x, y int) {
	if w.phase >= WallConverging || n.IsDisposed() || n.State == NoteClosing {
		return
	}
	n.X = clampCoord(float64(x), GlowPadding, w.screenW-n.Width-GlowPadding)
	n.Y = clampCoord(float64(y), GlowPadding, w.screenH-n.Height-GlowPadding)
}

func (w *Wall) emit(kind EventKind, n *Note) {
	if w.sink == nil {
		return
	}
	ev := WallEvent{Kind: kind}
	if n != nil {
		ev.NoteID = n.ID
		ev.X = n.X
		ev.Y = n.Y
	}
	w.sink.EmitEvent(ev)
}
