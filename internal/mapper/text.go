// Package mapper converts WordPress REST API records into the internal
// persisted shapes and validates them. Everything here is pure: no I/O,
// no database access.
package mapper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9]+`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	decEntityRe   = regexp.MustCompile(`&#([0-9]+);`)
	hexEntityRe   = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
)

// namedEntities is applied in order after the numeric forms. &amp; comes
// last so that a double-encoded sequence like "&amp;amp;" decodes exactly
// one level per pass.
var namedEntities = []struct{ entity, replacement string }{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&apos;", "'"},
	{"&nbsp;", " "},
	{"&copy;", "©"},
	{"&reg;", "®"},
	{"&trade;", "™"},
	{"&hellip;", "…"},
	{"&mdash;", "—"},
	{"&ndash;", "–"},
	{"&lsquo;", "‘"},
	{"&rsquo;", "’"},
	{"&ldquo;", "“"},
	{"&rdquo;", "”"},
	{"&laquo;", "«"},
	{"&raquo;", "»"},
	{"&amp;", "&"},
}

// ToSlug lowercases the text, collapses every run of non [a-z0-9]
// characters into a single hyphen and trims leading/trailing hyphens.
// The result is stable: ToSlug(ToSlug(x)) == ToSlug(x).
func ToSlug(text string) string {
	s := strings.ToLower(text)
	s = slugInvalidRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DecodeHTMLEntities decodes decimal and hex numeric entities plus a fixed
// table of named entities. Numeric forms are decoded first, named forms
// last; applying it to already-decoded text is a no-op.
func DecodeHTMLEntities(text string) string {
	s := decEntityRe.ReplaceAllStringFunc(text, func(m string) string {
		n, err := strconv.ParseInt(m[2:len(m)-1], 10, 32)
		if err != nil {
			return m
		}
		return string(rune(n))
	})
	s = hexEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.ParseInt(m[3:len(m)-1], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(n))
	})
	for _, e := range namedEntities {
		s = strings.ReplaceAll(s, e.entity, e.replacement)
	}
	return s
}

// StripHTML removes all tags and decodes entities. Used for plain-text
// fields such as titles and excerpts.
func StripHTML(html string) string {
	return strings.TrimSpace(DecodeHTMLEntities(tagRe.ReplaceAllString(html, "")))
}

// CalculateReadTime estimates reading time in minutes at 200 words per
// minute, rounded up, never below 1.
func CalculateReadTime(content string) int {
	words := len(strings.Fields(StripHTML(content)))
	minutes := (words + 199) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Truncate cuts a string to at most n characters.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// wpDateFormats lists the timestamp layouts WordPress emits, tried in order.
var wpDateFormats = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a WordPress post date.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, format := range wpDateFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
