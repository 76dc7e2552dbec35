package heartwall

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Progress evaluates a gween easing function at normalized time t. The
// function is applied over the unit interval, so Progress(ease.Linear, t)
// returns t and every curve maps 0 to 0 and 1 to 1.
func Progress(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}

// EaseInOutQuad is the default transition curve: quadratic acceleration in
// the first half, quadratic deceleration in the second.
func EaseInOutQuad(t float64) float64 {
	return Progress(ease.InOutQuad, t)
}

// HeartPoint samples the parametric heart curve at the given angle in
// degrees. Coordinates are in curve space, unscaled x in [-16, 16] and y in
// [-17, 5] with y increasing upward; callers negate y when mapping to screen
// space.
func HeartPoint(angleDeg, scaleX, scaleY float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	sin := math.Sin(rad)
	x = 16 * sin * sin * sin * scaleX
	y = (13*math.Cos(rad) - 5*math.Cos(2*rad) - 2*math.Cos(3*rad) - math.Cos(4*rad)) * scaleY
	return x, y
}

// SpiralPoint returns the position on an inward spiral around (cx, cy). The
// radius decays linearly from startRadius to zero as eased goes 0 to 1 while
// the angle advances the given number of rotations from startAngle. At
// eased=1 the result is exactly the center.
func SpiralPoint(cx, cy, startRadius, startAngle, rotations, eased float64) (x, y float64) {
	radius := startRadius * (1 - eased)
	angle := startAngle + rotations*2*math.Pi*eased
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}

// swingAmplitude is the peak pixel displacement of the convergence wobble.
const swingAmplitude = 5

// SwingOffset returns the decaying sinusoidal perturbation applied during a
// note's flight to its heart slot. The oscillation phase follows raw
// progress through the given number of turns at four times the turn rate;
// the amplitude shrinks with eased progress so the note lands without
// wobble.
func SwingOffset(rawProgress, eased, turns float64) (dx, dy float64) {
	phase := rawProgress * turns * 2 * math.Pi * 4
	amp := (1 - eased) * swingAmplitude
	return math.Sin(phase) * amp, math.Cos(phase) * amp
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
