// google_test.go - Spec parsing, WOFF2 detection and cache hits.
package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseGoogleSpec(t *testing.T) {
	tests := []struct {
		spec   string
		family string
		weight string
		ok     bool
	}{
		{"google:Inter:800", "Inter", "800", true},
		{"google:Noto Sans:400", "Noto Sans", "400", true},
		{"google:Inter", "", "", false},
		{"google::800", "", "", false},
		{"google:Inter:", "", "", false},
		{"fonts/custom.ttf", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		family, weight, ok := parseGoogleSpec(tt.spec)
		if family != tt.family || weight != tt.weight || ok != tt.ok {
			t.Errorf("parseGoogleSpec(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.spec, family, weight, ok, tt.family, tt.weight, tt.ok)
		}
	}
}

func TestIsWOFF2Data(t *testing.T) {
	if !isWOFF2Data("https://fonts.gstatic.com/s/inter/v18/x.woff2", nil) {
		t.Error("woff2 URL suffix not detected")
	}
	if !isWOFF2Data("https://fonts.gstatic.com/s/inter/v18/x", []byte("wOF2....")) {
		t.Error("wOF2 magic bytes not detected")
	}
	if isWOFF2Data("https://fonts.gstatic.com/s/inter/v18/x.ttf", goregular.TTF) {
		t.Error("plain TTF misdetected as WOFF2")
	}
	if isWOFF2Data("x", []byte("wO")) {
		t.Error("short data misdetected as WOFF2")
	}
}

func TestFetchGoogleFontCacheHit(t *testing.T) {
	dir := t.TempDir()
	cached := filepath.Join(dir, "Inter-800.ttf")
	if err := os.WriteFile(cached, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	l := &Library{log: discard()}
	data, err := l.fetchGoogleFont("google:Inter:800", dir)
	if err != nil {
		t.Fatalf("fetchGoogleFont: %v", err)
	}
	if !bytes.Equal(data, goregular.TTF) {
		t.Error("cache hit returned different bytes")
	}
}

func TestFetchGoogleFontBadSpec(t *testing.T) {
	l := &Library{log: discard()}
	if _, err := l.fetchGoogleFont("google:Inter", t.TempDir()); err == nil {
		t.Fatal("malformed spec did not error")
	}
}
