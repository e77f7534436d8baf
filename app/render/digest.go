package render

import (
	"regexp"
	"strings"
)

var (
	markupChars  = regexp.MustCompile("[#*`\\[\\]()\\-]")
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Digest produces the short synopsis for the platform's summary field:
// markup control characters stripped, whitespace runs collapsed to single
// spaces, hard-truncated to limit runes. No ellipsis is appended; the
// field's character budget is exact.
func Digest(markdown string, limit int) string {
	text := markupChars.ReplaceAllString(markdown, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return text
}

// Truncate hard-truncates text to limit runes.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
