// imageio_test.go - Local and HTTP loading against a test server.
package imageio

import (
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
)

func newLoader() *Loader {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.png")
	src := imaging.New(40, 60, color.NRGBA{210, 40, 40, 255})
	if err := imaging.Save(src, path); err != nil {
		t.Fatal(err)
	}

	img, err := newLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 60 {
		t.Errorf("bounds = %dx%d, want 40x60", b.Dx(), b.Dy())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := newLoader().Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("missing file did not error")
	}
}

func TestLoadEmptyRef(t *testing.T) {
	if _, err := newLoader().Load(""); err == nil {
		t.Fatal("empty reference did not error")
	}
}

func TestLoadHTTP(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/png")
		png.Encode(w, imaging.New(30, 45, color.NRGBA{10, 200, 30, 255}))
	}))
	defer srv.Close()

	img, err := newLoader().Load(srv.URL + "/cover.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 45 {
		t.Errorf("bounds = %dx%d, want 30x45", b.Dx(), b.Dy())
	}
	if !strings.Contains(gotUA, "Mozilla") {
		t.Errorf("User-Agent = %q, want a browser UA", gotUA)
	}
}

func TestLoadHTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := newLoader().Load(srv.URL); err == nil {
		t.Fatal("404 response did not error")
	}
}

func TestLoadHTTPNotAnImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>definitely not pixels</html>")
	}))
	defer srv.Close()

	if _, err := newLoader().Load(srv.URL); err == nil {
		t.Fatal("non-image body did not error")
	}
}

func TestRebaseLogos(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "backloggd_logo.png")
	if err := imaging.Save(imaging.New(32, 32, color.NRGBA{139, 92, 246, 255}), logo); err != nil {
		t.Fatal(err)
	}

	src := RebaseLogos{Dir: dir, Next: newLoader()}
	if _, err := src.Load(card.LogoPrefix + "backloggd_logo.png"); err != nil {
		t.Fatalf("rebased logo load: %v", err)
	}
	// References outside the logo prefix pass through untouched.
	if _, err := src.Load(logo); err != nil {
		t.Fatalf("absolute path load: %v", err)
	}
}
