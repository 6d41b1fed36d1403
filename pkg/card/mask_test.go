package card

import "testing"

func TestRoundedMask(t *testing.T) {
	mask := RoundedMask(100, 60, 15)

	if b := mask.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
		t.Fatalf("mask bounds = %dx%d, want 100x60", b.Dx(), b.Dy())
	}
	if a := mask.AlphaAt(50, 30).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := mask.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	// Edge midpoints sit inside the rounded outline.
	if a := mask.AlphaAt(50, 1).A; a == 0 {
		t.Errorf("top edge alpha = 0, want opaque")
	}
}

func TestRoundedMaskClampsRadius(t *testing.T) {
	// A radius larger than half the short side must clamp instead of
	// folding the outline in on itself: the center stays opaque.
	mask := RoundedMask(40, 40, 500)

	if a := mask.AlphaAt(20, 20).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := mask.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestRoundedMaskZeroRadius(t *testing.T) {
	mask := RoundedMask(20, 20, 0)

	// Sharp corners: everything is opaque.
	if a := mask.AlphaAt(0, 0).A; a != 255 {
		t.Errorf("corner alpha = %d, want 255", a)
	}
}
