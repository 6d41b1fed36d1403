// Package reviewfile reads review documents from TOML files. A
// document is the on-disk form of a review plus its presentation
// choices (palette, output path) and resolves into the typed parts
// the renderer consumes.
package reviewfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
	"github.com/MegumiinUwU/Bakuretsu/pkg/export"
)

// Document mirrors the on-disk TOML review file.
type Document struct {
	Title     string  `toml:"title"`
	Kind      string  `toml:"kind"`
	Score     float64 `toml:"score"`
	Body      string  `toml:"body"`
	Cover     string  `toml:"cover"`
	Platform  string  `toml:"platform"`
	Username  string  `toml:"username"`
	ReviewURL string  `toml:"review_url"`
	Palette   string  `toml:"palette"`
	Output    string  `toml:"output"`
}

// Load reads and decodes a review document.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading review file: %w", err)
	}
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing review file %s: %w", path, err)
	}
	return doc, nil
}

// Review assembles the document's review fields into a typed Review.
// Unknown kind and platform names are hard errors; range and emptiness
// checks are left to the renderer's validation.
func (d Document) Review() (card.Review, error) {
	kind, err := card.ParseKind(d.Kind)
	if err != nil {
		return card.Review{}, err
	}
	platform, err := card.ParsePlatform(d.Platform)
	if err != nil {
		return card.Review{}, err
	}
	return card.Review{
		Title:     d.Title,
		Score:     d.Score,
		Body:      d.Body,
		Kind:      kind,
		Cover:     d.Cover,
		Platform:  platform,
		Username:  d.Username,
		ReviewURL: d.ReviewURL,
	}, nil
}

// Style resolves the document's palette into a render style. An
// unknown palette name falls back to the default; the second return
// is false in that case so callers can warn without failing the card.
func (d Document) Style() (card.Style, bool) {
	if d.Palette == "" {
		return card.DefaultPalette().Style(), true
	}
	p, ok := card.PaletteByName(d.Palette)
	if !ok {
		return card.DefaultPalette().Style(), false
	}
	return p.Style(), true
}

// OutputPath returns the document's output path, deriving one from
// the title when unset.
func (d Document) OutputPath() string {
	if d.Output != "" {
		return d.Output
	}
	return export.DefaultName(d.Title)
}

// Example returns a starter review document for the init command.
func Example() string {
	return `# Review card definition.

title = "Outer Wilds"
kind = "game"    # game | movie
score = 9.5      # 0 to 10
body = """
A solar system stuck in a 22 minute loop, and every loop you keep only
what you learned. No upgrades, no unlocks. The bravest ending in games.
"""

# Everything below is optional.
cover = "https://example.com/outer-wilds.jpg"  # URL or local path
platform = "backloggd"                         # backloggd | letterboxd
username = "megumin"
review_url = "https://backloggd.com/u/megumin/review/1/"
palette = "Bakuretsu Dark"                     # see: bakuretsu palettes
output = "outer_wilds.png"
`
}
