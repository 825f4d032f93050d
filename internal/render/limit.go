package render

import "unicode/utf8"

const (
	DefaultMaxChars = 100000
	TruncatedMarker = "\n..."
)

// Cap обрезает текст до max символов и дописывает маркер. При max <= 0 текст не обрезается.
func Cap(s string, max int) (string, bool) {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:max]) + TruncatedMarker, true
}
