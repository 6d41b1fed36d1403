// fonts_test.go - Slot resolution and face minting.
package fonts

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewFallsBackToEmbedded(t *testing.T) {
	l := New(Config{Regular: []string{"/no/such/font.ttf"}}, discard())

	face := l.Face(card.FontSpec{Size: 24})
	if face == nil {
		t.Fatal("Face returned nil")
	}
	if face == basicfont.Face7x13 {
		t.Error("embedded font did not resolve, face degraded to bitmap")
	}
	if a := face.Metrics().Ascent.Ceil(); a <= 0 {
		t.Errorf("ascent = %d, want > 0", a)
	}
}

func TestNewResolvesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(Config{Regular: []string{path}}, discard())
	if l.regular == nil {
		t.Fatal("regular slot did not resolve")
	}
}

func TestNewSkipsUnparsableCandidate(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.ttf")
	if err := os.WriteFile(good, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(Config{Regular: []string{bad, good}}, discard())
	if l.regular == nil {
		t.Fatal("regular slot did not resolve past the bad candidate")
	}
}

func TestFaceBitmapFallback(t *testing.T) {
	l := New(Config{}, discard())
	if face := l.Face(card.FontSpec{Size: 0}); face != basicfont.Face7x13 {
		t.Error("zero size did not fall back to the bitmap face")
	}

	empty := &Library{log: discard()}
	if face := empty.Face(card.FontSpec{Size: 24, Bold: true}); face != basicfont.Face7x13 {
		t.Error("unresolved slot did not fall back to the bitmap face")
	}
}

func TestFaceSizes(t *testing.T) {
	l := New(Config{}, discard())

	small := l.Face(card.FontSpec{Size: 12}).Metrics().Ascent.Ceil()
	large := l.Face(card.FontSpec{Size: 48}).Metrics().Ascent.Ceil()
	if large <= small {
		t.Errorf("48pt ascent %d not larger than 12pt ascent %d", large, small)
	}
}
