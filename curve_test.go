package heartwall

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// --- EaseInOutQuad ---

func TestEaseInOutQuadEndpoints(t *testing.T) {
	if got := EaseInOutQuad(0); got != 0 {
		t.Errorf("EaseInOutQuad(0) = %v, want 0", got)
	}
	if got := EaseInOutQuad(1); got != 1 {
		t.Errorf("EaseInOutQuad(1) = %v, want 1", got)
	}
}

func TestEaseInOutQuadShape(t *testing.T) {
	tests := []struct {
		name   string
		t      float64
		expect float64
	}{
		{"first quarter", 0.25, 0.125},
		{"midpoint", 0.5, 0.5},
		{"third quarter", 0.75, 0.875},
		{"early", 0.1, 0.02},
		{"late", 0.9, 0.98},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EaseInOutQuad(tt.t)
			if math.Abs(got-tt.expect) > 1e-6 {
				t.Errorf("EaseInOutQuad(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestEaseInOutQuadBoundsAndMonotonic(t *testing.T) {
	prev := 0.0
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		got := EaseInOutQuad(x)
		if got < 0 || got > 1 {
			t.Fatalf("EaseInOutQuad(%v) = %v, outside [0, 1]", x, got)
		}
		if got < prev-1e-6 {
			t.Fatalf("EaseInOutQuad not monotonic: f(%v) = %v < previous %v", x, got, prev)
		}
		prev = got
	}
}

func TestEaseInOutQuadContinuousAtMidpoint(t *testing.T) {
	below := EaseInOutQuad(0.5 - 1e-4)
	above := EaseInOutQuad(0.5 + 1e-4)
	if math.Abs(above-below) > 1e-3 {
		t.Errorf("discontinuity at 0.5: f(0.5-eps) = %v, f(0.5+eps) = %v", below, above)
	}
}

func TestProgressLinear(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.3, 0.5, 0.75, 1} {
		got := Progress(ease.Linear, x)
		if math.Abs(got-x) > 1e-6 {
			t.Errorf("Progress(Linear, %v) = %v, want %v", x, got, x)
		}
	}
}

// --- HeartPoint ---

func TestHeartPoint(t *testing.T) {
	tests := []struct {
		name    string
		angle   float64
		scaleX  float64
		scaleY  float64
		expectX float64
		expectY float64
	}{
		{"top notch", 0, 1, 1, 0, 5},
		{"right lobe", 90, 1, 1, 16, 4},
		{"bottom tip", 180, 1, 1, 0, -17},
		{"left lobe", 270, 1, 1, -16, 4},
		{"scaled", 90, 25, 28, 400, 112},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := HeartPoint(tt.angle, tt.scaleX, tt.scaleY)
			if math.Abs(x-tt.expectX) > 1e-9 || math.Abs(y-tt.expectY) > 1e-9 {
				t.Errorf("HeartPoint(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.angle, tt.scaleX, tt.scaleY, x, y, tt.expectX, tt.expectY)
			}
		})
	}
}

func TestHeartPointSymmetry(t *testing.T) {
	for _, angle := range []float64{10, 45, 77, 120, 160} {
		xl, yl := HeartPoint(angle, 1, 1)
		xr, yr := HeartPoint(360-angle, 1, 1)
		if math.Abs(xl+xr) > 1e-9 {
			t.Errorf("x not mirrored at %v deg: %v vs %v", angle, xl, xr)
		}
		if math.Abs(yl-yr) > 1e-9 {
			t.Errorf("y not symmetric at %v deg: %v vs %v", angle, yl, yr)
		}
	}
}

// --- SpiralPoint ---

func TestSpiralPointEndpoints(t *testing.T) {
	const cx, cy = 400.0, 300.0
	startRadius := 200.0
	startAngle := math.Pi / 3

	x, y := SpiralPoint(cx, cy, startRadius, startAngle, 2.5, 0)
	wantX := cx + startRadius*math.Cos(startAngle)
	wantY := cy + startRadius*math.Sin(startAngle)
	if math.Abs(x-wantX) > 1e-9 || math.Abs(y-wantY) > 1e-9 {
		t.Errorf("SpiralPoint at eased=0 = (%v, %v), want start (%v, %v)", x, y, wantX, wantY)
	}

	x, y = SpiralPoint(cx, cy, startRadius, startAngle, 2.5, 1)
	if x != cx || y != cy {
		t.Errorf("SpiralPoint at eased=1 = (%v, %v), want center (%v, %v)", x, y, cx, cy)
	}
}

func TestSpiralPointRadiusDecays(t *testing.T) {
	const cx, cy = 0.0, 0.0
	prev := math.Inf(1)
	for i := 0; i <= 10; i++ {
		eased := float64(i) / 10
		x, y := SpiralPoint(cx, cy, 150, 0, 2.5, eased)
		r := math.Hypot(x, y)
		if r > prev+1e-9 {
			t.Fatalf("radius grew at eased=%v: %v > %v", eased, r, prev)
		}
		prev = r
	}
}

// --- SwingOffset ---

func TestSwingOffsetVanishesAtEnd(t *testing.T) {
	dx, dy := SwingOffset(1, 1, 2)
	if dx != 0 || dy != 0 {
		t.Errorf("SwingOffset at eased=1 = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestSwingOffsetStart(t *testing.T) {
	dx, dy := SwingOffset(0, 0, 2)
	if math.Abs(dx) > 1e-9 || math.Abs(dy-swingAmplitude) > 1e-9 {
		t.Errorf("SwingOffset at start = (%v, %v), want (0, %v)", dx, dy, float64(swingAmplitude))
	}
}

func TestSwingOffsetMagnitude(t *testing.T) {
	for i := 0; i <= 10; i++ {
		raw := float64(i) / 10
		eased := EaseInOutQuad(raw)
		dx, dy := SwingOffset(raw, eased, 2.5)
		want := (1 - eased) * swingAmplitude
		if got := math.Hypot(dx, dy); math.Abs(got-want) > 1e-9 {
			t.Errorf("swing magnitude at raw=%v is %v, want %v", raw, got, want)
		}
	}
}

// --- lerp ---

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		expect  float64
	}{
		{"start", 10, 20, 0, 10},
		{"end", 10, 20, 1, 20},
		{"middle", 10, 20, 0.5, 15},
		{"negative span", 20, -20, 0.25, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.expect)
			}
		})
	}
}
