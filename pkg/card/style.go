// style.go - Immutable per-render styling: geometry, colors and font slots.
package card

import "image/color"

// FontSpec names a font slot by weight and pixel size. The FontSource
// decides which concrete face backs each weight.
type FontSpec struct {
	Bold bool
	Size float64
}

// ScoreColors maps score buckets to their display colors.
type ScoreColors struct {
	Good color.RGBA
	Okay color.RGBA
	Poor color.RGBA
	Bad  color.RGBA
}

// For returns the color for a bucket.
func (sc ScoreColors) For(b Bucket) color.RGBA {
	switch b {
	case BucketGood:
		return sc.Good
	case BucketOkay:
		return sc.Okay
	case BucketPoor:
		return sc.Poor
	default:
		return sc.Bad
	}
}

// Style holds every knob for one card render. Values are read-only
// once constructed; a single Style may back many concurrent renders.
type Style struct {
	Width  int
	Height int

	Background color.RGBA
	Primary    color.RGBA // title text
	Secondary  color.RGBA // body text, badge label, placeholder label
	Accent     color.RGBA

	TitleFont FontSpec
	ScoreFont FontSpec
	BodyFont  FontSpec
	BadgeFont FontSpec

	// Padding is the outer margin everything else is measured from.
	Padding int

	// CoverWidth fixes the cover slot; the height is derived from the
	// 2:3 poster aspect, see CoverHeight.
	CoverWidth int

	CornerRadius int // outer card corners
	CoverRadius  int // cover window corners

	Placeholder color.RGBA // fill behind "No Cover"

	ScoreColors ScoreColors
}

// CoverHeight is the cover slot height for the fixed poster aspect.
func (s Style) CoverHeight() int {
	return s.CoverWidth * 3 / 2
}

// DefaultStyle returns the stock card: 1200x675 canvas, dark theme,
// 300px cover slot, 40px padding.
func DefaultStyle() Style {
	return Style{
		Width:      1200,
		Height:     675,
		Background: color.RGBA{18, 18, 24, 255},
		Primary:    color.RGBA{255, 255, 255, 255},
		Secondary:  color.RGBA{156, 163, 175, 255},
		Accent:     color.RGBA{236, 72, 153, 255},
		TitleFont:  FontSpec{Bold: true, Size: 48},
		ScoreFont:  FontSpec{Bold: true, Size: 72},
		BodyFont:   FontSpec{Size: 24},
		BadgeFont:  FontSpec{Size: 20},

		Padding:      40,
		CoverWidth:   300,
		CornerRadius: 20,
		CoverRadius:  15,
		Placeholder:  color.RGBA{40, 40, 50, 255},

		ScoreColors: ScoreColors{
			Good: color.RGBA{34, 197, 94, 255},
			Okay: color.RGBA{234, 179, 8, 255},
			Poor: color.RGBA{249, 115, 22, 255},
			Bad:  color.RGBA{239, 68, 68, 255},
		},
	}
}
