package heartwall

import (
	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Note chrome geometry. The title strip runs across the top, the body block
// is inset below it, and the gradient fills the body so the note reads as a
// paper card.
const (
	noteBorderLighten  = 0.25
	titleBarLighten    = 0.40
	gradientTopLighten = 0.05
	gradientBotLighten = 0.25

	titleInsetX  = 14
	bodyInsetX   = 18
	bodyInsetTop = 14
	bodyInsetBot = 18
	bodyTextPad  = 10

	// bodyWrapMargin is the horizontal space the chrome takes from the body
	// text: both side insets, the text padding, and a right-hand margin.
	bodyWrapMargin = 64

	closeGlyph = "×"
)

// Farewell card geometry. The heart is sampled in curve space and scaled to
// fill the card; the text sits just below the curve origin with its shadow
// pass offset down-right.
const (
	cardHeartScaleX  = 18
	cardHeartScaleY  = 20
	cardHeartCenterY = 280
	cardOutlineWidth = 2
	cardTextOffsetY  = 290
	cardShadowOffset = 2
)

// Chrome colors fixed across all notes; the note's own color drives the
// face, the title strip, and the gradient tints.
var (
	titleTextColor   = mustHex("#3F3F3F")
	closeGlyphColor  = mustHex("#555555")
	bodyTextColor    = mustHex("#2A2A2A")
	cardFillColor    = mustHex("#FF6F92")
	cardOutlineColor = mustHex("#FFC0CB")
	cardTextColor    = mustHex("#FFFFFF")
	cardShadowColor  = mustHex("#800000")
)

type faceKey struct {
	color Color
	w, h  int
}

type sizeKey struct {
	w, h int
}

// Renderer draws a wall to an ebiten screen. Note chrome is rasterized once
// per color and size with gg and cached as GPU images; text is drawn live
// every frame so ebiten's glyph atlas carries CJK strings. One renderer
// serves one game loop.
type Renderer struct {
	fonts *FontSet

	faces   map[faceKey]*ebiten.Image
	shadows map[sizeKey]*ebiten.Image
	card    *ebiten.Image
	cardKey sizeKey

	// wrapped caches each note's body text broken to the note's width. Note
	// texts never change after spawn, so entries are only ever dropped
	// wholesale by Reset.
	wrapped map[uint32]string

	sortBuf []*Note
	op      ebiten.DrawImageOptions
	textOp  text.DrawOptions
}

// NewRenderer creates a renderer drawing with the given fonts. The image
// caches fill lazily on the first Draw.
func NewRenderer(fonts *FontSet) *Renderer {
	if fonts == nil {
		panic("heartwall: renderer requires fonts")
	}
	return &Renderer{
		fonts:   fonts,
		faces:   make(map[faceKey]*ebiten.Image),
		shadows: make(map[sizeKey]*ebiten.Image),
		wrapped: make(map[uint32]string),
	}
}

// Draw paints the wall onto screen: notes bottom-up in raise order, then the
// farewell card on top. The screen is not cleared; callers decide whether
// the backdrop is a fill or a transparent desktop.
func (r *Renderer) Draw(screen *ebiten.Image, w *Wall) {
	for _, n := range r.sortByRaiseOrder(w.Notes()) {
		r.drawNote(screen, n)
	}
	if c := w.Card(); c != nil && !c.IsDisposed() && c.Alpha > 0 {
		r.drawCard(screen, c)
	}
}

// Reset drops every cached image and wrapped text. Call when a wall is torn
// down; the caches rebuild lazily on the next Draw.
func (r *Renderer) Reset() {
	for _, img := range r.faces {
		img.Deallocate()
	}
	clear(r.faces)
	for _, img := range r.shadows {
		img.Deallocate()
	}
	clear(r.shadows)
	if r.card != nil {
		r.card.Deallocate()
		r.card = nil
	}
	clear(r.wrapped)
}

// sortByRaiseOrder orders notes bottom-up by Z into a reused scratch slice.
// Insertion sort: zero allocations after the buffer reaches its high-water
// mark, and near O(n) here since a raise moves one note at a time.
func (r *Renderer) sortByRaiseOrder(notes []*Note) []*Note {
	nc := len(notes)
	if cap(r.sortBuf) < nc {
		r.sortBuf = make([]*Note, nc)
	}
	r.sortBuf = r.sortBuf[:nc]
	copy(r.sortBuf, notes)
	for i := 1; i < nc; i++ {
		key := r.sortBuf[i]
		j := i - 1
		for j >= 0 && r.sortBuf[j].Z > key.Z {
			r.sortBuf[j+1] = r.sortBuf[j]
			j--
		}
		r.sortBuf[j+1] = key
	}
	return r.sortBuf
}

func (r *Renderer) drawNote(screen *ebiten.Image, n *Note) {
	if n.IsDisposed() || n.Alpha <= 0 {
		return
	}

	if n.ShadowAlpha > 0 {
		sb := n.ShadowBounds()
		r.op.GeoM.Reset()
		r.op.GeoM.Translate(sb.X, sb.Y)
		r.op.ColorScale.Reset()
		r.op.ColorScale.ScaleAlpha(float32(n.ShadowAlpha))
		screen.DrawImage(r.shadowImage(n.Width, n.Height), &r.op)
	}

	r.op.GeoM.Reset()
	r.op.GeoM.Translate(float64(n.X), float64(n.Y))
	r.op.ColorScale.Reset()
	r.op.ColorScale.ScaleAlpha(float32(n.Alpha))
	screen.DrawImage(r.noteFace(n.Color, n.Width, n.Height), &r.op)

	if n.Title != "" {
		tf := r.fonts.Title
		ty := float64(n.Y) + (titleBarHeight-tf.LineHeight())/2
		r.drawString(screen, tf, n.Title, float64(n.X+titleInsetX), ty, titleTextColor, n.Alpha, false)
	}

	box := n.CloseBox()
	gw, gh := r.fonts.Close.MeasureString(closeGlyph)
	r.drawString(screen, r.fonts.Close, closeGlyph,
		box.X+(box.Width-gw)/2, box.Y+(box.Height-gh)/2, closeGlyphColor, n.Alpha, false)

	if body := r.wrappedBody(n); body != "" {
		bx := float64(n.X + bodyInsetX + bodyTextPad)
		by := float64(n.Y + titleBarHeight + bodyInsetTop + bodyTextPad)
		r.drawString(screen, r.fonts.Body, body, bx, by, bodyTextColor, n.Alpha, false)
	}
}

func (r *Renderer) drawCard(screen *ebiten.Image, c *Card) {
	r.op.GeoM.Reset()
	r.op.GeoM.Translate(float64(c.X), float64(c.Y))
	r.op.ColorScale.Reset()
	r.op.ColorScale.ScaleAlpha(float32(c.Alpha))
	screen.DrawImage(r.cardImage(c.Width, c.Height), &r.op)

	// Shadow pass first so the white face sits on top of it.
	cx := float64(c.X) + float64(c.Width)/2
	cy := float64(c.Y) + cardTextOffsetY
	f := r.fonts.Farewell
	r.drawString(screen, f, FarewellText, cx+cardShadowOffset, cy+cardShadowOffset, cardShadowColor, c.Alpha, true)
	r.drawString(screen, f, FarewellText, cx, cy, cardTextColor, c.Alpha, true)
}

// drawString renders s at (x, y) tinted c and faded by alpha. Centered text
// is aligned on both axes around the point; otherwise (x, y) is the top-left
// of the first line.
func (r *Renderer) drawString(dst *ebiten.Image, f *Font, s string, x, y float64, c Color, alpha float64, centered bool) {
	r.textOp.GeoM.Reset()
	r.textOp.GeoM.Translate(x, y)
	r.textOp.ColorScale.Reset()
	r.textOp.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	r.textOp.ColorScale.ScaleAlpha(float32(alpha))
	r.textOp.LineSpacing = f.LineHeight()
	if centered {
		r.textOp.PrimaryAlign = text.AlignCenter
		r.textOp.SecondaryAlign = text.AlignCenter
	} else {
		r.textOp.PrimaryAlign = text.AlignStart
		r.textOp.SecondaryAlign = text.AlignStart
	}
	text.Draw(dst, s, f.Face(), &r.textOp)
}

// wrappedBody returns the note's text broken to fit the body block, cached
// by note ID.
func (r *Renderer) wrappedBody(n *Note) string {
	if s, ok := r.wrapped[n.ID]; ok {
		return s
	}
	s := joinLines(WrapText(r.fonts.Body, n.Text, float64(n.Width-bodyWrapMargin)))
	r.wrapped[n.ID] = s
	return s
}

func joinLines(lines []string) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	}
	size := len(lines) - 1
	for _, l := range lines {
		size += len(l)
	}
	buf := make([]byte, 0, size)
	for i, l := range lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, l...)
	}
	return string(buf)
}

// noteFace rasterizes a note's chrome: paper base, title strip, body
// gradient, and a hairline border, all tinted from the note's color.
func (r *Renderer) noteFace(c Color, w, h int) *ebiten.Image {
	key := faceKey{c, w, h}
	if img, ok := r.faces[key]; ok {
		return img
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(c.toRGBA())
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	dc.SetColor(c.Lighten(titleBarLighten).toRGBA())
	dc.DrawRectangle(0, 0, float64(w), titleBarHeight)
	dc.Fill()

	// Body gradient, one row strip at a time from light to lighter.
	top := c.Lighten(gradientTopLighten)
	bot := c.Lighten(gradientBotLighten)
	gx := float64(bodyInsetX)
	gy := float64(titleBarHeight + bodyInsetTop)
	gw := float64(w - 2*bodyInsetX)
	rows := h - titleBarHeight - bodyInsetTop - bodyInsetBot
	denom := rows - 1
	if denom < 1 {
		denom = 1
	}
	for i := 0; i < rows; i++ {
		dc.SetColor(blendColor(top, bot, float64(i)/float64(denom)).toRGBA())
		dc.DrawRectangle(gx, gy+float64(i), gw, 1)
		dc.Fill()
	}

	dc.SetColor(c.Lighten(noteBorderLighten).toRGBA())
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, float64(w)-1, float64(h)-1)
	dc.Stroke()

	img := ebiten.NewImageFromImage(dc.Image())
	r.faces[key] = img
	return img
}

// shadowImage rasterizes the glow blob for a note size: a solid ellipse
// filling the note's padded bounds, tinted at draw time.
func (r *Renderer) shadowImage(noteW, noteH int) *ebiten.Image {
	key := sizeKey{noteW, noteH}
	if img, ok := r.shadows[key]; ok {
		return img
	}

	w := noteW + 2*GlowPadding
	h := noteH + 2*GlowPadding
	dc := gg.NewContext(w, h)
	dc.SetColor(ShadowColor.toRGBA())
	dc.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2)
	dc.Fill()

	img := ebiten.NewImageFromImage(dc.Image())
	r.shadows[key] = img
	return img
}

// cardImage rasterizes the farewell card's heart polygon. The card size
// never changes mid-run, but a stale image from a previous wall is replaced.
func (r *Renderer) cardImage(w, h int) *ebiten.Image {
	if r.card != nil && r.cardKey == (sizeKey{w, h}) {
		return r.card
	}
	if r.card != nil {
		r.card.Deallocate()
	}

	dc := gg.NewContext(w, h)
	outline := HeartOutline(float64(w), cardHeartScaleX, cardHeartScaleY, cardHeartCenterY)
	dc.MoveTo(outline[0].X, outline[0].Y)
	for _, p := range outline[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetColor(cardFillColor.toRGBA())
	dc.FillPreserve()
	dc.SetColor(cardOutlineColor.toRGBA())
	dc.SetLineWidth(cardOutlineWidth)
	dc.Stroke()

	r.card = ebiten.NewImageFromImage(dc.Image())
	r.cardKey = sizeKey{w, h}
	return r.card
}

// blendColor interpolates between two colors. t 0 returns a, t 1 returns b.
func blendColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
