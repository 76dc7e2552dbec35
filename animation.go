package heartwall

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// AnimationTarget is the non-owning handle an animation polls before every
// step. A target that reports disposed ends the animation at that tick: the
// completion callback still fires, but nothing is written to the target
// again.
type AnimationTarget interface {
	IsDisposed() bool
}

// Animation advances a transition in fixed integer steps, one per clock
// tick. An animation over duration d spans d/TickInterval steps (minimum
// one); progress after step i is i/steps and the easing function shapes the
// value handed to apply. The completion callback runs exactly once, either
// on the tick progress reaches 1 or on the first tick that finds the target
// disposed.
//
// Animations do not self-schedule. Register them with Clock.Start and the
// clock steps them until Done.
type Animation struct {
	target AnimationTarget
	steps  int
	index  int
	easing ease.TweenFunc
	apply  func(raw, eased float64)
	onDone func()

	// Done marks the animation finished; the clock drops it.
	Done bool
}

// NewAnimation builds a stepped transition over duration. apply receives the
// raw and eased progress each step. A nil easing runs linear; onDone may be
// nil. The target may be nil for animations whose subject cannot vanish.
func NewAnimation(target AnimationTarget, duration time.Duration, fn ease.TweenFunc, apply func(raw, eased float64), onDone func()) *Animation {
	if apply == nil {
		panic("heartwall: animation requires an apply func")
	}
	if fn == nil {
		fn = ease.Linear
	}
	steps := int(duration / TickInterval)
	if steps < 1 {
		steps = 1
	}
	return &Animation{
		target: target,
		steps:  steps,
		easing: fn,
		apply:  apply,
		onDone: onDone,
	}
}

// step advances the animation by one tick. Called by Clock.Tick.
func (a *Animation) step() {
	if a.Done {
		return
	}
	if a.target != nil && a.target.IsDisposed() {
		a.finish()
		return
	}
	a.index++
	raw := float64(a.index) / float64(a.steps)
	a.apply(raw, Progress(a.easing, raw))
	if a.index >= a.steps {
		a.finish()
	}
}

func (a *Animation) finish() {
	if a.Done {
		return
	}
	a.Done = true
	if a.onDone != nil {
		a.onDone()
	}
}

// spiralRotations is the number of turns a spiral-out makes on its way to
// the center.
const spiralRotations = 2.5

// FadeIn returns the spawn transition: note opacity rises linearly from zero
// with the shadow tracking at ShadowMaxAlpha. Writes are gated on the
// fading-in state, so a close that begins mid-fade takes over the opacity
// without interference.
func FadeIn(n *Note, duration time.Duration, onDone func()) *Animation {
	return NewAnimation(n, duration, ease.Linear, func(raw, _ float64) {
		if n.State != NoteFadingIn {
			return
		}
		n.setAlpha(raw)
	}, onDone)
}

// MoveTo returns the convergence flight: an eased glide from the note's
// current position to target with a decaying swing, snapping exactly onto
// target on the final step. turns sets how many full swing cycles the flight
// makes.
func MoveTo(n *Note, target Point, duration time.Duration, turns float64, onDone func()) *Animation {
	startX := float64(n.X)
	startY := float64(n.Y)
	tx := float64(target.X)
	ty := float64(target.Y)
	return NewAnimation(n, duration, ease.InOutQuad, func(raw, eased float64) {
		if raw >= 1 {
			n.X, n.Y = target.X, target.Y
			return
		}
		dx, dy := SwingOffset(raw, eased, turns)
		n.X = int(math.Round(lerp(startX, tx, eased) + dx))
		n.Y = int(math.Round(lerp(startY, ty, eased) + dy))
	}, onDone)
}

// FadeOut returns the farewell card's exit: opacity falls linearly from full
// to zero. The card stays alive through the fade; dispose it from onDone.
func FadeOut(c *Card, duration time.Duration, onDone func()) *Animation {
	return NewAnimation(c, duration, ease.Linear, func(raw, _ float64) {
		c.Alpha = 1 - raw
	}, onDone)
}

// SpiralOut returns the dismissal transition: the note corkscrews inward to
// center while fading from its current opacity to zero. The animation never
// destroys its target; dispose the note from onDone.
func SpiralOut(n *Note, center Point, duration time.Duration, onDone func()) *Animation {
	cx := float64(center.X)
	cy := float64(center.Y)
	startRadius := math.Hypot(float64(n.X)-cx, float64(n.Y)-cy)
	startAngle := math.Atan2(float64(n.Y)-cy, float64(n.X)-cx)
	startAlpha := n.Alpha
	return NewAnimation(n, duration, ease.InOutQuad, func(_, eased float64) {
		x, y := SpiralPoint(cx, cy, startRadius, startAngle, spiralRotations, eased)
		n.X = int(math.Round(x))
		n.Y = int(math.Round(y))
		n.setAlpha(startAlpha * (1 - eased))
	}, onDone)
}
