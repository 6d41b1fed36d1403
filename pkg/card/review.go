// Package card composes review card images from typed review data.
// A Renderer turns a validated Review plus an immutable Style into an
// RGBA canvas using a fixed layered layout: rounded background, cover
// art, title, score, body text and an optional platform badge.
package card

import (
	"fmt"
	"math"
	"strings"
)

// ── Content kinds ──

// Kind says what the review is about. It only affects wording at the
// edges (file parsing, API responses), never layout.
type Kind int

const (
	KindGame Kind = iota
	KindMovie
)

// String returns the lowercase name used in review documents.
func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	default:
		return "game"
	}
}

// ParseKind maps a document string onto the closed Kind enum.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "game":
		return KindGame, nil
	case "movie":
		return KindMovie, nil
	default:
		return 0, fmt.Errorf("unknown content kind %q: expected \"game\" or \"movie\"", s)
	}
}

// ── Platforms ──

// Platform identifies the review platform shown in the badge.
// The set is closed; resolver switches over it exhaustively so an
// unhandled platform is a compile-time smell, not a silent no-op.
type Platform int

const (
	PlatformNone Platform = iota
	PlatformBackloggd
	PlatformLetterboxd
)

// String returns the lowercase name used in review documents, or ""
// for PlatformNone.
func (p Platform) String() string {
	switch p {
	case PlatformBackloggd:
		return "backloggd"
	case PlatformLetterboxd:
		return "letterboxd"
	default:
		return ""
	}
}

// ParsePlatform maps a document string onto the closed Platform enum.
// The empty string (and "none") mean no badge.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PlatformNone, nil
	case "backloggd":
		return PlatformBackloggd, nil
	case "letterboxd":
		return PlatformLetterboxd, nil
	default:
		return 0, fmt.Errorf("unknown platform %q: expected \"backloggd\" or \"letterboxd\"", s)
	}
}

// ── Review ──

// Review is one render's worth of input. It is validated once at the
// start of Render and treated as immutable afterwards.
type Review struct {
	Title string
	Score float64 // 0 to 10 inclusive
	Body  string
	Kind  Kind

	// Cover optionally references the cover art: an http(s) URL, a
	// local path, or any scheme the configured ImageSource accepts.
	Cover string

	Platform Platform
	Username string

	// ReviewURL, when set, is encoded as a QR stamp in the bottom
	// right corner of the card.
	ReviewURL string
}

// Validate checks the invariants a render depends on. It returns a
// *ValidationError describing the first violation, or nil.
func (r Review) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.Body) == "" {
		return &ValidationError{Field: "body", Reason: "must not be empty"}
	}
	// NaN passes both range comparisons, so reject it explicitly.
	if math.IsNaN(r.Score) || r.Score < 0 || r.Score > 10 {
		return &ValidationError{Field: "score", Reason: fmt.Sprintf("%v is outside the 0-10 range", r.Score)}
	}
	return nil
}
