// Package export writes rendered cards to files and streams. The
// format is inferred from the output extension. PNG is the canonical
// format and keeps the transparent rounded corners; the other formats
// delegate to imaging's encoders and flatten alpha as each format
// requires.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
)

// Save writes img to path, creating parent directories as needed.
// The format is inferred from the extension:
//   - ".png" → PNG with alpha
//   - ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp" → via imaging
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return writePNG(path, img)
	case ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp":
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use .png, .jpg, .gif, .tif or .bmp", ext)
	}
}

// writePNG encodes img to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// EncodePNG writes img as PNG to w. Used for in-memory delivery
// (HTTP responses, WASM).
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// DefaultName derives an output file name from a card title. Letters,
// digits, spaces, '-' and '_' survive, surrounding spaces are
// stripped and each remaining space becomes an underscore.
func DefaultName(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	name := strings.Trim(b.String(), " ")
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		return "review_card.png"
	}
	return name + "_review.png"
}
