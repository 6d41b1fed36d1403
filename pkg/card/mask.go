// mask.go - Rounded rectangle alpha masks.
package card

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// RoundedMask returns a width x height alpha mask that is opaque
// inside a rounded rectangle and transparent outside, with
// anti-aliased corners. The radius is clamped to half the shorter
// side; the gg primitive does not clamp on its own and folds in on
// itself past that point.
func RoundedMask(width, height, radius int) *image.Alpha {
	r := float64(max(0, min(radius, width/2, height/2)))

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(0, 0, float64(width), float64(height), r)
	dc.Fill()
	return dc.AsMask()
}
