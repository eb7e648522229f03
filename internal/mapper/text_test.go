package mapper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation collapsed", "Hello, World!", "hello-world"},
		{"ampersand", "News & Politics", "news-politics"},
		{"leading and trailing junk", "  --Breaking News-- ", "breaking-news"},
		{"numbers kept", "Top 10 Stories of 2024", "top-10-stories-of-2024"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSlug(tt.input))
		})
	}
}

func TestToSlug_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"News & Politics",
		"Top 10 Stories of 2024",
		"Ünïcode Tïtle",
	}
	for _, in := range inputs {
		once := ToSlug(in)
		assert.Equal(t, once, ToSlug(once), "ToSlug should be stable for %q", in)
	}
}

func TestDecodeHTMLEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"named amp", "AT&amp;T", "AT&T"},
		{"decimal apostrophe", "It&#8217;s here", "It’s here"},
		{"hex", "caf&#xE9;", "café"},
		{"named quote", "&quot;quoted&quot;", `"quoted"`},
		{"mdash and hellip", "wait&mdash;no&hellip;", "wait—no…"},
		{"mixed numeric and named", "&#60;b&gt;", "<b>"},
		{"no entities", "plain text", "plain text"},
		{"unknown entity untouched", "&bogus;", "&bogus;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeHTMLEntities(tt.input))
		})
	}
}

func TestDecodeHTMLEntities_SingleLevel(t *testing.T) {
	// Double-encoded input loses exactly one level per pass because &amp;
	// is replaced last.
	assert.Equal(t, "&amp;", DecodeHTMLEntities("&amp;amp;"))
	assert.Equal(t, "&", DecodeHTMLEntities(DecodeHTMLEntities("&amp;amp;")))
}

func TestDecodeHTMLEntities_NoOpOnDecoded(t *testing.T) {
	decoded := DecodeHTMLEntities("It&#8217;s AT&amp;T — “fine”")
	assert.Equal(t, decoded, DecodeHTMLEntities(decoded))
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple tags", "<p>Hello</p>", "Hello"},
		{"nested tags", "<div><b>Bold</b> text</div>", "Bold text"},
		{"attributes", `<a href="https://example.com">link</a>`, "link"},
		{"entities inside", "<p>AT&amp;T wins</p>", "AT&T wins"},
		{"self closing", "line<br/>break", "linebreak"},
		{"whitespace trimmed", "  <p> padded </p>  ", "padded"},
		{"no tags", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestCalculateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"one word", "hello", 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words rounds up", strings.Repeat("word ", 201), 2},
		{"400 words", strings.Repeat("word ", 400), 2},
		{"tags do not count", "<p>" + strings.Repeat("word ", 250) + "</p>", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateReadTime(tt.content))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "héll", Truncate("héllo", 4), "truncation counts runes, not bytes")
	assert.Equal(t, "", Truncate("", 5))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"wordpress local", "2024-03-15T10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"rfc3339", "2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"space separated", "2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"date only", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	_, err := ParseDate("not a date")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
