// Package imageio loads cover art and logos from local paths or HTTP
// URLs. Remote fetches go through a shared retrying client with a
// bounded body size; decoding accepts any format imaging understands.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
)

// maxImageBytes bounds how much of a remote body is decoded.
const maxImageBytes = 20 << 20

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

var (
	clientOnce sync.Once
	client     *http.Client
)

// httpClient returns the shared retrying client used for image fetches.
func httpClient() *http.Client {
	clientOnce.Do(func() {
		rc := retryablehttp.NewClient()
		rc.RetryMax = 2
		rc.HTTPClient.Timeout = 10 * time.Second
		rc.Logger = nil
		client = rc.StandardClient()
	})
	return client
}

// Loader resolves image references for the renderer. Failures are
// logged at warn level and returned; the renderer degrades to its
// placeholder, so a missing cover never fails a card.
type Loader struct {
	log *slog.Logger
}

var _ card.ImageSource = (*Loader)(nil)

func New(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{log: log}
}

// Load reads an image from a local path or an http(s) URL.
func (l *Loader) Load(ref string) (image.Image, error) {
	img, err := l.load(ref)
	if err != nil {
		l.log.Warn("image unavailable", "ref", ref, "error", err)
		return nil, err
	}
	return img, nil
}

func (l *Loader) load(ref string) (image.Image, error) {
	if ref == "" {
		return nil, errors.New("empty image reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.fetch(ref)
	}
	img, err := imaging.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", ref, err)
	}
	return img, nil
}

func (l *Loader) fetch(url string) (image.Image, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	// Some cover hosts reject requests without a browser UA.
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d for %s", resp.StatusCode, url)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding image from %s: %w", url, err)
	}
	return img, nil
}
