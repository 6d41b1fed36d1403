// Package fonts resolves and serves the typefaces drawn onto review
// cards. Each slot (regular, bold) is resolved once from an ordered
// candidate list of file paths and "google:FAMILY:WEIGHT" specs, with
// the embedded Go fonts as the final source. Faces are minted per call
// because opentype faces are not safe for concurrent use; Face never
// returns nil, degrading to a fixed bitmap face if minting fails.
package fonts

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
)

// Config lists font candidates per slot. Each candidate is either a
// TTF/OTF file path or a "google:FAMILY:WEIGHT" spec fetched from the
// Google Fonts API and cached under CacheDir.
type Config struct {
	Regular  []string
	Bold     []string
	CacheDir string
}

// Library holds the parsed fonts for both slots. Safe for concurrent
// use: the parsed fonts are immutable after New and faces are minted
// fresh on every Face call.
type Library struct {
	regular *opentype.Font
	bold    *opentype.Font
	log     *slog.Logger
}

var _ card.FontSource = (*Library)(nil)

// New resolves both slots. It never fails: unusable candidates are
// logged and skipped, and the embedded Go fonts back every slot.
func New(cfg Config, log *slog.Logger) *Library {
	if log == nil {
		log = slog.Default()
	}
	l := &Library{log: log}
	l.regular = l.resolve("regular", cfg.Regular, cfg.CacheDir, goregular.TTF)
	l.bold = l.resolve("bold", cfg.Bold, cfg.CacheDir, gobold.TTF)
	return l
}

func (l *Library) resolve(slot string, candidates []string, cacheDir string, embedded []byte) *opentype.Font {
	for _, cand := range candidates {
		data, err := l.readCandidate(cand, cacheDir)
		if err != nil {
			l.log.Warn("font candidate unavailable", "slot", slot, "candidate", cand, "error", err)
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			l.log.Warn("font candidate unusable", "slot", slot, "candidate", cand, "error", err)
			continue
		}
		l.log.Debug("font resolved", "slot", slot, "candidate", cand)
		return parsed
	}

	parsed, err := opentype.Parse(embedded)
	if err != nil {
		// The embedded Go fonts always parse; if this is ever reached
		// the slot stays on the bitmap fallback.
		l.log.Error("embedded font failed to parse", "slot", slot, "error", err)
		return nil
	}
	return parsed
}

func (l *Library) readCandidate(cand, cacheDir string) ([]byte, error) {
	if strings.HasPrefix(cand, "google:") {
		return l.fetchGoogleFont(cand, cacheDir)
	}
	return os.ReadFile(cand)
}

// Face mints a face for the slot and size in spec. The caller owns the
// returned face and must not share it across goroutines.
func (l *Library) Face(spec card.FontSpec) font.Face {
	src := l.regular
	if spec.Bold {
		src = l.bold
	}
	if src == nil || spec.Size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
