// cover.go - Cover art normalization: aspect-fill, center-crop, rounded mask.
package card

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// NormalizeCover scales src so it fully covers targetW x targetH,
// center-crops the overflowing dimension and applies a rounded mask
// of the given radius to the tile's alpha channel. The Lanczos filter
// keeps downscaled art free of aliasing. The returned tile is exactly
// targetW x targetH.
//
// It fails only on unusable input; substituting a placeholder for a
// missing cover is the Renderer's policy, not this function's.
func NormalizeCover(src image.Image, targetW, targetH, radius int) (*image.RGBA, error) {
	if src == nil {
		return nil, errors.New("nil cover image")
	}
	if targetW <= 0 || targetH <= 0 {
		return nil, fmt.Errorf("invalid cover target %dx%d", targetW, targetH)
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("empty cover image")
	}

	srcRatio := float64(b.Dx()) / float64(b.Dy())
	dstRatio := float64(targetW) / float64(targetH)

	// Aspect-fill: match the tighter dimension, let the other spill
	// past the target and crop it back around the center. Ceil keeps
	// rounding from undershooting the crop box.
	var resized *image.NRGBA
	if srcRatio > dstRatio {
		w := int(math.Ceil(float64(targetH) * srcRatio))
		resized = imaging.Resize(src, w, targetH, imaging.Lanczos)
	} else {
		h := int(math.Ceil(float64(targetW) / srcRatio))
		resized = imaging.Resize(src, targetW, h, imaging.Lanczos)
	}
	cropped := imaging.CropAnchor(resized, targetW, targetH, imaging.Center)

	mask := RoundedMask(targetW, targetH, radius)
	tile := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.DrawMask(tile, tile.Bounds(), cropped, image.Point{}, mask, image.Point{}, draw.Src)
	return tile, nil
}
