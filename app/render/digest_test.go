package render

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDigestStripsMarkupAndCollapsesWhitespace(t *testing.T) {
	got := Digest("# Title\n\nSome **bold** text", 100)
	if got != "Title Some bold text" {
		t.Errorf("Expected 'Title Some bold text', got '%s'", got)
	}
}

func TestDigestTruncationBoundary(t *testing.T) {
	source := strings.Repeat("x", 100)

	got := Digest(source, 24)
	if utf8.RuneCountInString(got) != 24 {
		t.Errorf("Expected exactly 24 runes, got %d", utf8.RuneCountInString(got))
	}
	if strings.HasSuffix(got, "...") || strings.HasSuffix(got, "…") {
		t.Error("No ellipsis may be appended; the character budget is exact")
	}
}

func TestDigestTruncationCountsRunes(t *testing.T) {
	source := strings.Repeat("微", 30)

	got := Digest(source, 24)
	if utf8.RuneCountInString(got) != 24 {
		t.Errorf("Expected 24 runes for multibyte text, got %d", utf8.RuneCountInString(got))
	}
}

func TestDigestShorterThanLimit(t *testing.T) {
	got := Digest("short text", 24)
	if got != "short text" {
		t.Errorf("Expected unmodified text, got '%s'", got)
	}
}

func TestDigestEmptyInput(t *testing.T) {
	if got := Digest("", 24); got != "" {
		t.Errorf("Expected empty digest, got '%s'", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Expected 'hel', got '%s'", got)
	}
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Expected 'hello', got '%s'", got)
	}
}
