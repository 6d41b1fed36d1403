package card

import (
	"image/color"
	"testing"
)

func TestResolveBranding(t *testing.T) {
	if _, ok := ResolveBranding(PlatformNone, "ignored"); ok {
		t.Error("PlatformNone resolved to a badge")
	}

	b, ok := ResolveBranding(PlatformBackloggd, "megumin")
	if !ok {
		t.Fatal("Backloggd did not resolve")
	}
	if b.Name != "Backloggd" {
		t.Errorf("name = %q, want Backloggd", b.Name)
	}
	if b.Logo == "" {
		t.Error("Backloggd logo reference is empty")
	}
	if want := (color.RGBA{139, 92, 246, 255}); b.Accent != want {
		t.Errorf("accent = %v, want %v", b.Accent, want)
	}

	l, ok := ResolveBranding(PlatformLetterboxd, "")
	if !ok {
		t.Fatal("Letterboxd did not resolve")
	}
	if want := (color.RGBA{255, 128, 0, 255}); l.Accent != want {
		t.Errorf("accent = %v, want %v", l.Accent, want)
	}
}

func TestBrandingLabel(t *testing.T) {
	b, _ := ResolveBranding(PlatformBackloggd, "megumin")
	if got, want := b.Label(), "Backloggd @megumin"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}

	// No username, no "@" suffix.
	b, _ = ResolveBranding(PlatformLetterboxd, "")
	if got, want := b.Label(), "Letterboxd"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}
