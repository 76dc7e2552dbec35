package heartwall

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	dragDeadZone     = 4.0 // pixels
	doubleClickDelay = 400 * time.Millisecond

	doubleClickTicks = uint64(doubleClickDelay / TickInterval)
)

// --- Per-pointer state ---

type pointerState struct {
	down           bool
	startX, startY float64
	lastX, lastY   float64
	note           *Note // note captured at press time, nil for misses
	dragging       bool
	grabDX, grabDY float64 // cursor offset from the note origin at press
}

// Input turns raw pointer and key state into wall gestures: press-to-raise,
// dead-zoned dragging, close-box presses, double-press spirals, and Escape.
// One instance drives one wall.
type Input struct {
	wall *Wall

	pointer pointerState
	escDown bool

	// Double-press detection, keyed by note ID so a destroyed note can
	// never match a newcomer.
	lastPressID   uint32
	lastPressTick uint64

	injectQueue []syntheticPointerEvent
}

// NewInput creates the input frontend for a wall.
func NewInput(w *Wall) *Input {
	if w == nil {
		panic("heartwall: input requires a wall")
	}
	return &Input{wall: w}
}

// Update consumes one injected event if any are queued, otherwise reads the
// mouse, and feeds the pointer state machine. Call once per frame, before
// the clock advances.
func (in *Input) Update() {
	if !in.processInjected() {
		mx, my := ebiten.CursorPosition()
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.processPointer(float64(mx), float64(my), pressed)
	}

	esc := ebiten.IsKeyPressed(ebiten.KeyEscape)
	if esc && !in.escDown {
		in.pressEscape()
	}
	in.escDown = esc
}

// --- Hit testing ---

// hitTest finds the topmost live note at (x, y). Notes mid-spiral are still
// hit-testable; the wall decides what a press on them may do.
func (in *Input) hitTest(x, y float64) *Note {
	var top *Note
	for _, n := range in.wall.Notes() {
		if !n.Bounds().Contains(x, y) {
			continue
		}
		if top == nil || n.Z > top.Z {
			top = n
		}
	}
	return top
}

// --- Pointer state machine ---

// processPointer advances the single-pointer state machine with the current
// cursor position and button state.
func (in *Input) processPointer(x, y float64, pressed bool) {
	ps := &in.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.note = nil
		ps.dragging = false
		in.press(x, y)

	case !pressed && ps.down:
		ps.down = false
		ps.note = nil
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = x, y
		if ps.note == nil {
			return
		}
		if !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) <= dragDeadZone {
				return
			}
			ps.dragging = true
			// A drag is not a click; forget the press for double-press
			// purposes.
			in.lastPressID = 0
		}
		in.wall.DragTo(ps.note, int(math.Round(x-ps.grabDX)), int(math.Round(y-ps.grabDY)))

	default:
		// Hover. Remember the position so Escape knows what is under the
		// cursor.
		ps.lastX, ps.lastY = x, y
	}
}

// press resolves what a fresh button press means: close box, double-press
// spiral, or grab-and-raise.
func (in *Input) press(x, y float64) {
	n := in.hitTest(x, y)
	if n == nil {
		in.lastPressID = 0
		return
	}

	// The close box acts on press, not release.
	if n.CloseBox().Contains(x, y) {
		in.lastPressID = 0
		in.wall.CloseNote(n)
		return
	}

	// Second press on the same note inside the click window.
	now := in.wall.clock.Ticks()
	if n.ID == in.lastPressID && now-in.lastPressTick <= doubleClickTicks {
		in.lastPressID = 0
		in.wall.SpiralClose(n)
		return
	}
	in.lastPressID = n.ID
	in.lastPressTick = now

	in.wall.Raise(n)
	in.pointer.note = n
	in.pointer.grabDX = x - float64(n.X)
	in.pointer.grabDY = y - float64(n.Y)
}

// pressEscape dismisses whatever note the cursor is over.
func (in *Input) pressEscape() {
	if n := in.hitTest(in.pointer.lastX, in.pointer.lastY); n != nil {
		in.wall.SpiralClose(n)
	}
}
