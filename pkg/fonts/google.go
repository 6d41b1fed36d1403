// google.go - Fetches fonts from the Google Fonts CSS API.
//
// Specs use the form "google:FAMILY:WEIGHT" (e.g. "google:Inter:800").
// Google serves WOFF2 to modern user agents, so fetched fonts are
// converted to SFNT before use and cached under the configured
// directory so later runs stay offline.
package fonts

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tdewolff/font"
)

// fontURLRe extracts the font file URL from the CSS response.
// Matches: url(https://fonts.gstatic.com/s/inter/v18/xxx.woff2)
var fontURLRe = regexp.MustCompile(`url\((https://fonts\.gstatic\.com/[^)]+)\)`)

var (
	clientOnce sync.Once
	client     *http.Client
)

// httpClient returns the shared retrying client used for font fetches.
func httpClient() *http.Client {
	clientOnce.Do(func() {
		rc := retryablehttp.NewClient()
		rc.RetryMax = 2
		rc.HTTPClient.Timeout = 15 * time.Second
		rc.Logger = nil
		client = rc.StandardClient()
	})
	return client
}

// parseGoogleSpec splits a "google:Family:Weight" spec into its parts.
func parseGoogleSpec(spec string) (family, weight string, ok bool) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || parts[0] != "google" || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// fetchGoogleFont downloads the font named by spec, converting WOFF2
// to SFNT. The cache is consulted first and updated on success; a
// failed cache write is logged but does not fail the fetch.
func (l *Library) fetchGoogleFont(spec, cacheDir string) ([]byte, error) {
	family, weight, ok := parseGoogleSpec(spec)
	if !ok {
		return nil, fmt.Errorf("invalid google font spec %q: expected google:FAMILY:WEIGHT", spec)
	}

	var cacheFile string
	if cacheDir != "" {
		cacheFile = filepath.Join(cacheDir, fmt.Sprintf("%s-%s.ttf", family, weight))
		if data, err := os.ReadFile(cacheFile); err == nil {
			return data, nil
		}
	}

	cssURL := fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s:wght@%s",
		url.QueryEscape(family), weight)

	req, err := http.NewRequest(http.MethodGet, cssURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	// Modern UA so Google answers with WOFF2 URLs, which we can convert.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching CSS from Google Fonts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google Fonts CSS API returned status %d for %s wght@%s", resp.StatusCode, family, weight)
	}

	cssBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading CSS response: %w", err)
	}

	matches := fontURLRe.FindSubmatch(cssBody)
	if matches == nil {
		return nil, fmt.Errorf("no font URL found in Google Fonts CSS response for %s wght@%s", family, weight)
	}
	fontURL := string(matches[1])

	fontResp, err := httpClient().Get(fontURL)
	if err != nil {
		return nil, fmt.Errorf("downloading font file: %w", err)
	}
	defer fontResp.Body.Close()

	if fontResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("font file download returned status %d", fontResp.StatusCode)
	}

	fontData, err := io.ReadAll(io.LimitReader(fontResp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}

	if isWOFF2Data(fontURL, fontData) {
		sfnt, err := font.ToSFNT(fontData)
		if err != nil {
			return nil, fmt.Errorf("converting WOFF2 to SFNT: %w", err)
		}
		fontData = sfnt
	}

	if cacheFile != "" {
		werr := os.MkdirAll(cacheDir, 0o755)
		if werr == nil {
			werr = os.WriteFile(cacheFile, fontData, 0o644)
		}
		if werr != nil {
			l.log.Warn("font cache write failed", "file", cacheFile, "error", werr)
		}
	}

	return fontData, nil
}

// isWOFF2Data reports whether font data is WOFF2, by URL extension or
// magic bytes.
func isWOFF2Data(url string, data []byte) bool {
	if strings.HasSuffix(strings.ToLower(url), ".woff2") {
		return true
	}
	return len(data) >= 4 && data[0] == 'w' && data[1] == 'O' && data[2] == 'F' && data[3] == '2'
}
