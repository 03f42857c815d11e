package goident

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	quoteRun      = regexp.MustCompile(`["']`)
	spaceRun      = regexp.MustCompile(`\s+`)
	spaceUnderRun = regexp.MustCompile(`[\s_]+`)
	spaceDashRun  = regexp.MustCompile(`[\s-]+`)
	separatorRun  = regexp.MustCompile(`[\s_-]+`)
)

// Format converts a raw translated phrase into an identifier in the given
// casing convention. It is pure and never fails: an unrecognized format
// yields the cleaned-but-unjoined text.
//
// The input is first cleaned: surrounding whitespace trimmed, lowercased,
// quote characters stripped, and internal whitespace runs collapsed to a
// single space. An input that is empty after cleaning yields an empty
// string; length and emptiness validation is the caller's concern.
func Format(f OutputFormat, text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = quoteRun.ReplaceAllString(text, "")
	text = spaceRun.ReplaceAllString(text, " ")

	switch f {
	case KebabCase:
		return spaceUnderRun.ReplaceAllString(text, "-")
	case SnakeCase:
		return spaceDashRun.ReplaceAllString(text, "_")
	case CamelCase:
		words := splitWords(text)
		if len(words) == 0 {
			return ""
		}
		var b strings.Builder
		b.WriteString(words[0])
		for _, w := range words[1:] {
			b.WriteString(capitalize(w))
		}
		return b.String()
	case PascalCase:
		words := splitWords(text)
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(w))
		}
		return b.String()
	case Lowercase:
		return separatorRun.ReplaceAllString(text, "")
	case Uppercase:
		return strings.ToUpper(spaceDashRun.ReplaceAllString(text, "_"))
	default:
		return text
	}
}

// splitWords splits cleaned text on whitespace, underscore, and hyphen runs,
// dropping empty segments produced by leading or trailing separators.
func splitWords(text string) []string {
	parts := separatorRun.Split(text, -1)
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// capitalize uppercases the first rune of a word.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
