// render.go - The compositor: layered, deterministic card assembly.
//
// Draw order is fixed: rounded background, cover art (or placeholder),
// title, score, body, platform badge, then the optional QR stamp.
// Later layers overlap earlier ones only inside their own regions.
package card

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Layout constants shared by every card. Horizontal positions derive
// from Style.Padding; these are the fixed vertical rhythms and badge
// geometry.
const (
	titleMaxLines = 2  // title lines kept, extras dropped
	titleLineGap  = 5  // extra pixels between title lines
	scoreGap      = 15 // gap between title block and score
	bodyGap       = 20 // gap between score and body
	bodyMaxLines  = 8  // body lines kept, ellipsized past this
	bodyLineGap   = 8  // extra pixels between body lines
	badgeLogoSize = 32
	badgeGutter   = 10 // logo to label
	stampSize     = 64 // QR stamp edge
)

// FontSource supplies faces for the style's font slots. Because
// OpenType faces are not safe for concurrent use, implementations
// mint a fresh face per call. A FontSource must always return a
// usable face; pkg/fonts ends its chain in a built-in bitmap font so
// layout math never sees an undefined metric.
type FontSource interface {
	Face(spec FontSpec) font.Face
}

// ImageSource loads optional images (cover art, platform logos) by
// reference. Timeouts, retries and caching are the implementation's
// concern; the engine only sees a decoded image or an error.
type ImageSource interface {
	Load(ref string) (image.Image, error)
}

// Renderer composes cards for one style. It is stateless between
// calls, so a single Renderer may serve concurrent renders as long as
// its sources tolerate concurrent reads.
type Renderer struct {
	style  Style
	fonts  FontSource
	images ImageSource
}

// NewRenderer creates a renderer. Both sources may be nil: a nil
// FontSource falls back to the built-in bitmap face, a nil
// ImageSource makes every cover and logo unavailable (placeholders
// render instead).
func NewRenderer(style Style, fonts FontSource, images ImageSource) *Renderer {
	return &Renderer{style: style, fonts: fonts, images: images}
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style {
	return r.style
}

// Render validates review and composes the card. The only error it
// returns is a *ValidationError raised before any pixel is touched;
// unavailable covers and logos degrade to the placeholder tile and
// the accent circle. Identical inputs produce byte-identical
// canvases.
func (r *Renderer) Render(review Review) (*image.RGBA, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}

	s := r.style
	canvas := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))

	// Background through the outer rounded mask; the corners stay
	// transparent and nothing later draws into them (padding exceeds
	// the corner radius).
	outer := RoundedMask(s.Width, s.Height, s.CornerRadius)
	draw.DrawMask(canvas, canvas.Bounds(), image.NewUniform(s.Background), image.Point{}, outer, image.Point{}, draw.Src)

	r.drawCover(canvas, review)
	r.drawTextColumn(canvas, review)

	if b, ok := ResolveBranding(review.Platform, review.Username); ok {
		r.drawBadge(canvas, b)
	}
	if review.ReviewURL != "" {
		r.drawStamp(canvas, review.ReviewURL)
	}

	return canvas, nil
}

// face resolves a font slot, falling back to the bitmap face when no
// source is configured.
func (r *Renderer) face(spec FontSpec) font.Face {
	if r.fonts != nil {
		if f := r.fonts.Face(spec); f != nil {
			return f
		}
	}
	return basicfont.Face7x13
}

// drawCover pastes the normalized cover art into the slot at
// (padding, padding), or paints the placeholder when the cover is
// missing or unusable.
func (r *Renderer) drawCover(canvas *image.RGBA, review Review) {
	s := r.style
	slot := image.Rect(s.Padding, s.Padding, s.Padding+s.CoverWidth, s.Padding+s.CoverHeight())

	if review.Cover != "" && r.images != nil {
		if src, err := r.images.Load(review.Cover); err == nil {
			if tile, err := NormalizeCover(src, slot.Dx(), slot.Dy(), s.CoverRadius); err == nil {
				draw.Draw(canvas, slot, tile, image.Point{}, draw.Over)
				return
			}
		}
	}

	r.drawPlaceholder(canvas, slot)
}

// drawPlaceholder fills the cover slot with the placeholder color
// behind a centered "No Cover" label, using the same rounded window
// shape a real cover would have.
func (r *Renderer) drawPlaceholder(canvas *image.RGBA, slot image.Rectangle) {
	s := r.style
	mask := RoundedMask(slot.Dx(), slot.Dy(), s.CoverRadius)
	draw.DrawMask(canvas, slot, image.NewUniform(s.Placeholder), image.Point{}, mask, image.Point{}, draw.Over)

	face := r.face(s.BodyFont)
	label := "No Cover"
	w := font.MeasureString(face, label).Ceil()
	m := face.Metrics()
	x := slot.Min.X + (slot.Dx()-w)/2
	baseline := slot.Min.Y + slot.Dy()/2 + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	drawString(canvas, label, x, baseline, s.Secondary, face)
}

// drawTextColumn lays out title, score and body down the column to
// the right of the cover slot.
func (r *Renderer) drawTextColumn(canvas *image.RGBA, review Review) {
	s := r.style
	colX := s.Padding + s.CoverWidth + s.Padding
	colW := s.Width - colX - s.Padding
	y := s.Padding

	// Title: at most two lines, extras dropped without an ellipsis.
	titleFace := r.face(s.TitleFont)
	titleLines := WrapText(review.Title, titleFace, colW)
	if len(titleLines) > titleMaxLines {
		titleLines = titleLines[:titleMaxLines]
	}
	titleAscent := titleFace.Metrics().Ascent.Ceil()
	for _, line := range titleLines {
		drawString(canvas, line, colX, y+titleAscent, s.Primary, titleFace)
		y += int(s.TitleFont.Size) + titleLineGap
	}

	// Score in its bucket color.
	y += scoreGap
	label, bucket := ClassifyScore(review.Score)
	scoreFace := r.face(s.ScoreFont)
	drawString(canvas, label, colX, y+scoreFace.Metrics().Ascent.Ceil(), s.ScoreColors.For(bucket), scoreFace)
	y += int(s.ScoreFont.Size) + bodyGap

	// Body: at most eight lines, the last one ellipsized when the
	// wrap produced more.
	bodyFace := r.face(s.BodyFont)
	bodyLines := truncateLines(WrapText(review.Body, bodyFace, colW), bodyMaxLines)
	bodyAscent := bodyFace.Metrics().Ascent.Ceil()
	for _, line := range bodyLines {
		drawString(canvas, line, colX, y+bodyAscent, s.Secondary, bodyFace)
		y += int(s.BodyFont.Size) + bodyLineGap
	}
}

// drawBadge renders the platform mark and label anchored to the
// bottom-left corner. When the logo cannot be loaded a filled circle
// of the platform accent takes its exact footprint, so the label
// never shifts.
func (r *Renderer) drawBadge(canvas *image.RGBA, b Branding) {
	s := r.style
	x := s.Padding
	top := s.Height - s.Padding - badgeLogoSize

	if !r.drawLogo(canvas, b.Logo, x, top) {
		dc := gg.NewContextForRGBA(canvas)
		dc.SetColor(b.Accent)
		dc.DrawCircle(float64(x)+badgeLogoSize/2, float64(top)+badgeLogoSize/2, badgeLogoSize/2)
		dc.Fill()
	}

	face := r.face(s.BadgeFont)
	m := face.Metrics()
	baseline := top + badgeLogoSize/2 + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	drawString(canvas, b.Label(), x+badgeLogoSize+badgeGutter, baseline, s.Secondary, face)
}

// drawLogo loads and stamps the platform logo, reporting whether it
// succeeded.
func (r *Renderer) drawLogo(canvas *image.RGBA, ref string, x, top int) bool {
	if ref == "" || r.images == nil {
		return false
	}
	src, err := r.images.Load(ref)
	if err != nil {
		return false
	}
	logo := imaging.Resize(src, badgeLogoSize, badgeLogoSize, imaging.Lanczos)
	rect := image.Rect(x, top, x+badgeLogoSize, top+badgeLogoSize)
	draw.Draw(canvas, rect, logo, image.Point{}, draw.Over)
	return true
}

// drawStamp encodes url as a QR code in the bottom-right corner.
// Encoding failures skip the stamp; the card still renders.
func (r *Renderer) drawStamp(canvas *image.RGBA, url string) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return
	}
	s := r.style
	x := s.Width - s.Padding - stampSize
	y := s.Height - s.Padding - stampSize
	draw.Draw(canvas, image.Rect(x, y, x+stampSize, y+stampSize), q.Image(stampSize), image.Point{}, draw.Over)
}

// truncateLines keeps at most limit lines. When lines are dropped,
// the final kept line marks the cut: its last three characters become
// "...", or the whole line does when it has three or fewer.
func truncateLines(lines []string, limit int) []string {
	if len(lines) <= limit {
		return lines
	}
	kept := append([]string(nil), lines[:limit]...)
	last := []rune(kept[limit-1])
	if len(last) > 3 {
		kept[limit-1] = string(last[:len(last)-3]) + "..."
	} else {
		kept[limit-1] = "..."
	}
	return kept
}

// drawString draws one line of text with its baseline at y.
func drawString(dst *image.RGBA, s string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
