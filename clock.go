package heartwall

import "time"

// Clock is the package's single scheduler. Every animation and one-shot
// timer advances only inside Tick, which the game loop calls once per frame
// at TicksPerSecond. Tests drive a Clock synchronously by calling Tick in a
// loop; no real time is involved.
//
// Work scheduled while a tick is in progress joins the clock at the end of
// that tick and runs no earlier than the next one. Within a tick, due timers
// fire before animations step.
type Clock struct {
	ticks      uint64
	timers     []*clockTimer
	animations []*Animation

	ticking       bool
	pendingTimers []*clockTimer
	pendingAnims  []*Animation
	dueBuf        []func()
}

type clockTimer struct {
	remaining int
	fn        func()
}

// NewClock creates an idle clock with no scheduled work.
func NewClock() *Clock {
	return &Clock{}
}

// Ticks returns the number of completed ticks. The counter increments at the
// start of Tick, so callbacks running inside tick n observe Ticks() == n.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// durationTicks converts a delay to a whole tick count, rounding up.
// Every delay takes at least one tick; After(0) fires on the next tick.
func durationTicks(d time.Duration) int {
	n := int((d + TickInterval - 1) / TickInterval)
	if n < 1 {
		n = 1
	}
	return n
}

// After schedules fn to run once d has elapsed, quantized up to whole ticks.
func (c *Clock) After(d time.Duration, fn func()) {
	if fn == nil {
		panic("heartwall: After requires a callback")
	}
	tm := &clockTimer{remaining: durationTicks(d), fn: fn}
	if c.ticking {
		c.pendingTimers = append(c.pendingTimers, tm)
		return
	}
	c.timers = append(c.timers, tm)
}

// Start registers an animation. Its first step runs on the next Tick.
func (c *Clock) Start(a *Animation) {
	if a == nil {
		panic("heartwall: cannot start nil animation")
	}
	if c.ticking {
		c.pendingAnims = append(c.pendingAnims, a)
		return
	}
	c.animations = append(c.animations, a)
}

// ActiveAnimations returns the number of registered, unfinished animations.
func (c *Clock) ActiveAnimations() int {
	return len(c.animations) + len(c.pendingAnims)
}

// ActiveTimers returns the number of timers waiting to fire.
func (c *Clock) ActiveTimers() int {
	return len(c.timers) + len(c.pendingTimers)
}

// Tick advances the clock by one TickInterval: due timers fire first, then
// every active animation steps exactly once. Finished animations are
// dropped. Timers and animations scheduled by callbacks during the tick are
// held back until the tick completes.
func (c *Clock) Tick() {
	c.ticking = true
	c.ticks++

	due := c.dueBuf[:0]
	keptTimers := c.timers[:0]
	for _, tm := range c.timers {
		tm.remaining--
		if tm.remaining <= 0 {
			due = append(due, tm.fn)
		} else {
			keptTimers = append(keptTimers, tm)
		}
	}
	c.timers = keptTimers
	for _, fn := range due {
		fn()
	}
	c.dueBuf = due[:0]

	kept := c.animations[:0]
	for _, a := range c.animations {
		a.step()
		if !a.Done {
			kept = append(kept, a)
		}
	}
	c.animations = kept

	c.ticking = false
	if len(c.pendingTimers) > 0 {
		c.timers = append(c.timers, c.pendingTimers...)
		c.pendingTimers = c.pendingTimers[:0]
	}
	if len(c.pendingAnims) > 0 {
		c.animations = append(c.animations, c.pendingAnims...)
		c.pendingAnims = c.pendingAnims[:0]
	}
}
