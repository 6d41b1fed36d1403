// export_test.go - Extension dispatch, directory creation, name derivation.
package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestSavePNGKeepsAlpha(t *testing.T) {
	img := imaging.New(10, 10, color.NRGBA{60, 60, 80, 255})
	img.SetNRGBA(0, 0, color.NRGBA{})

	path := filepath.Join(t.TempDir(), "card.png")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, _, _, a := back.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d after roundtrip, want 0", a)
	}
}

func TestSaveJPEG(t *testing.T) {
	img := imaging.New(16, 16, color.NRGBA{200, 10, 10, 255})

	path := filepath.Join(t.TempDir(), "card.jpg")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if b := back.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("bounds = %dx%d, want 16x16", b.Dx(), b.Dy())
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{0, 0, 0, 255})

	path := filepath.Join(t.TempDir(), "out", "cards", "x.png")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{0, 0, 0, 255})

	err := Save(img, filepath.Join(t.TempDir(), "card.webp"))
	if err == nil {
		t.Fatal("unsupported extension did not error")
	}
}

func TestEncodePNG(t *testing.T) {
	img := imaging.New(6, 6, color.NRGBA{1, 2, 3, 255})

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Errorf("bounds = %dx%d, want 6x6", b.Dx(), b.Dy())
	}
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Outer Wilds", "Outer_Wilds_review.png"},
		{"Hades: II", "Hades_II_review.png"},
		{"NieR:Automata", "NieRAutomata_review.png"},
		{"Elden Ring!!!", "Elden_Ring_review.png"},
		{"spaced  twice", "spaced__twice_review.png"},
		{"trailing   ", "trailing_review.png"},
		{"  leading", "leading_review.png"},
		{"snake_case-name", "snake_case-name_review.png"},
		{"ドーナツ", "ドーナツ_review.png"},
		{"", "review_card.png"},
		{"!!!", "review_card.png"},
	}

	for _, tt := range tests {
		if got := DefaultName(tt.title); got != tt.want {
			t.Errorf("DefaultName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
