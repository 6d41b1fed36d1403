// rebase.go - Reference rewriting for bundled logo assets.
package imageio

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
)

// RebaseLogos rewrites bundled platform logo references into a
// configured directory before delegating. Covers, URLs and anything
// outside the logo prefix pass through untouched.
type RebaseLogos struct {
	Dir  string
	Next card.ImageSource
}

var _ card.ImageSource = RebaseLogos{}

func (r RebaseLogos) Load(ref string) (image.Image, error) {
	if r.Dir != "" {
		if rest, ok := strings.CutPrefix(ref, card.LogoPrefix); ok {
			ref = filepath.Join(r.Dir, rest)
		}
	}
	return r.Next.Load(ref)
}
