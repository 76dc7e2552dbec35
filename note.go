package heartwall

// NoteState tracks a note through its lifecycle. Transitions only move
// forward: Pending to FadingIn at spawn, FadingIn to Idle when the fade
// completes, a live state to Closing when a spiral-out starts, and any state
// to Gone at disposal.
type NoteState uint8

const (
	NotePending NoteState = iota
	NoteFadingIn
	NoteIdle
	NoteClosing
	NoteGone
)

// noteIDCounter is a plain counter (no atomic; heartwall is single-threaded).
var noteIDCounter uint32

func nextNoteID() uint32 {
	noteIDCounter++
	return noteIDCounter
}

// Chrome metrics shared by the renderer and the input layer.
const (
	// titleBarHeight is the strip along the top of every note.
	titleBarHeight = 30

	// closeBoxSize and closeBoxInset place the × hit region in the title
	// bar's top-right corner.
	closeBoxSize  = 24
	closeBoxInset = 8
)

// Note is one sticky note on the wall. A single flat struct that the
// renderer, the input layer, and animations write to directly; the wall owns
// it and assigns its place in the raise order.
type Note struct {
	ID    uint32
	Text  string
	Title string
	Color Color

	// X, Y is the top-left corner in screen pixels.
	X, Y          int
	Width, Height int

	// Alpha is the note's opacity in [0, 1]. ShadowAlpha tracks it scaled by
	// ShadowMaxAlpha, so it never exceeds that ceiling.
	Alpha       float64
	ShadowAlpha float64

	State NoteState

	// Z is the raise order assigned by the wall; higher draws on top.
	Z int

	// OnClosed fires exactly once when the note is disposed.
	OnClosed func(*Note)

	disposed bool
}

// NewNote creates a fully transparent note at the given position. The note
// is Pending until the wall starts its fade-in.
func NewNote(text, title string, color Color, width, height int, at Point) *Note {
	return &Note{
		ID:     nextNoteID(),
		Text:   text,
		Title:  title,
		Color:  color,
		X:      at.X,
		Y:      at.Y,
		Width:  width,
		Height: height,
		State:  NotePending,
	}
}

// Bounds returns the note's screen rectangle.
func (n *Note) Bounds() Rect {
	return Rect{float64(n.X), float64(n.Y), float64(n.Width), float64(n.Height)}
}

// ShadowBounds returns the note's rectangle grown by GlowPadding on every
// side; the shadow blob fills this area.
func (n *Note) ShadowBounds() Rect {
	return Rect{
		X:      float64(n.X - GlowPadding),
		Y:      float64(n.Y - GlowPadding),
		Width:  float64(n.Width + 2*GlowPadding),
		Height: float64(n.Height + 2*GlowPadding),
	}
}

// CloseBox returns the × hit region in the title bar.
func (n *Note) CloseBox() Rect {
	return Rect{
		X:      float64(n.X + n.Width - closeBoxSize - closeBoxInset),
		Y:      float64(n.Y + (titleBarHeight-closeBoxSize)/2),
		Width:  closeBoxSize,
		Height: closeBoxSize,
	}
}

// setAlpha writes the note's opacity and keeps the shadow paired to it.
func (n *Note) setAlpha(a float64) {
	n.Alpha = a
	n.ShadowAlpha = a * ShadowMaxAlpha
}

// Dispose marks the note destroyed and fires OnClosed exactly once. Safe to
// call repeatedly; animations targeting a disposed note finish on their next
// tick without touching it.
func (n *Note) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.State = NoteGone
	if n.OnClosed != nil {
		cb := n.OnClosed
		n.OnClosed = nil
		cb(n)
	}
}

// IsDisposed reports whether Dispose has been called.
func (n *Note) IsDisposed() bool {
	return n.disposed
}
