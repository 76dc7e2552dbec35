package heartwall

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to the renderer.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ParseHexColor parses a "#RRGGBB" string into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("parse color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
		A: 1,
	}, nil
}

// mustHex is ParseHexColor for compile-time palette literals.
func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic("heartwall: " + err.Error())
	}
	return c
}

// Lighten blends the color toward white. amount 0 returns the color
// unchanged, amount 1 returns white. Alpha is preserved.
func (c Color) Lighten(amount float64) Color {
	amount = clamp01(amount)
	return Color{
		R: c.R + (1-c.R)*amount,
		G: c.G + (1-c.G)*amount,
		B: c.B + (1-c.B)*amount,
		A: c.A,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// toRGBA converts a Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for sub-pixel geometry such as polygon outlines.
type Vec2 struct {
	X, Y float64
}

// Point is an integer screen position. Note positions and layout slots are
// whole pixels; animations interpolate in float64 and round on write.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// WhitePixel is a 1x1 white image used for solid color fills (debug overlay).
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// --- Timing ---

const (
	// TickInterval is the fixed scheduler tick. Every duration in the package
	// is quantized to this granularity; the game loop runs at TicksPerSecond
	// so one Update equals one tick.
	TickInterval   = 20 * time.Millisecond
	TicksPerSecond = 50

	// FadeDuration is the length of a note's fade-in.
	FadeDuration = 500 * time.Millisecond

	// SpawnDelay is the pause before the first note appears.
	SpawnDelay = 150 * time.Millisecond

	// HeartDelay is the pause between the merge being scheduled and the
	// convergence flight starting.
	HeartDelay = 250 * time.Millisecond

	// ConvergeDuration is the length of each note's flight to its heart slot.
	ConvergeDuration = 500 * time.Millisecond

	// SettleDelay is the pause between the heart completing and the farewell
	// card appearing.
	SettleDelay = 500 * time.Millisecond

	// SpiralDuration is the length of the spiral-out close.
	SpiralDuration = 500 * time.Millisecond
)

// --- Geometry ---

const (
	// GlowPadding is the soft shadow margin around each note. It doubles as
	// the screen edge padding for layout and drag clamping.
	GlowPadding = 18

	// ShadowMaxAlpha is the peak opacity of a note's shadow blob.
	ShadowMaxAlpha = 0.22
)

// ShadowColor is the warm pink tint of every note's shadow blob.
var ShadowColor = mustHex("#FFC1CC")

// DefaultPalette returns the built-in pastel note colors. The slice is fresh
// on every call; callers may mutate their copy.
func DefaultPalette() []Color {
	return []Color{
		mustHex("#FFE1E1"),
		mustHex("#FFF5CC"),
		mustHex("#E2F4FF"),
		mustHex("#DFF8E1"),
		mustHex("#F7E2FF"),
		mustHex("#FFF0E6"),
		mustHex("#E6F8FF"),
		mustHex("#FDEBFF"),
		mustHex("#FFFAE2"),
		mustHex("#E9FFF5"),
	}
}

// DefaultMessages returns the built-in note messages. The slice is fresh on
// every call; callers may mutate their copy.
func DefaultMessages() []string {
	return []string{
		"我想你了",
		"多晒晒太阳",
		"多喝水哦",
		"保持微笑呀",
		"有我在呢",
		"加油你最棒",
		"慢慢来会好的",
		"记得吃早餐",
		"保持热爱",
		"小确幸正在路上",
		"不许熬夜",
		"早点休息呀",
		"好心情要常在",
		"开心每一天",
		"要对自己好一点",
		"记得吃午饭",
		"给自己一个拥抱",
		"相信好事正在发生",
		"笑一笑吧",
		"愿你所想皆成真",
		"今天也要元气满满",
	}
}

// FarewellText is the message on the farewell card.
const FarewellText = "祝你天天开心"
