// wrap.go - Greedy word wrapping against measured pixel widths.
package card

import (
	"strings"

	"golang.org/x/image/font"
)

// WrapText breaks text into lines that each fit within maxWidth
// pixels when measured with face. Wrapping is greedy: words join the
// current line until one would push it past maxWidth, then a new line
// starts with that word. Words are never split, so a single word
// wider than maxWidth becomes its own overflowing line; trimming that
// is the caller's decision.
func WrapText(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		if font.MeasureString(face, testLine).Ceil() > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	return append(lines, currentLine)
}
