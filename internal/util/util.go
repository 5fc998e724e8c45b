// internal/util/util.go
package util

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes shortens text to at most maxRunes runes, marking the cut with an ellipsis.
func TruncateRunes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	return string([]rune(text)[:maxRunes]) + "…"
}

// WrapWords breaks text into lines of at most width runes at word boundaries.
// Words longer than width stay on a line of their own.
func WrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	var (
		lines []string
		cur   strings.Builder
		n     int
	)
	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		if n > 0 && n+1+wl > width {
			lines = append(lines, cur.String())
			cur.Reset()
			n = 0
		}
		if n > 0 {
			cur.WriteByte(' ')
			n++
		}
		cur.WriteString(w)
		n += wl
	}
	return append(lines, cur.String())
}
