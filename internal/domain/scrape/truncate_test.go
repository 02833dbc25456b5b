package scrape_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/b-d055/bedrock-agents-webscraper-go/internal/domain/scrape"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{
			name:  "empty string",
			in:    "",
			limit: 10,
			want:  "",
		},
		{
			name:  "under the limit",
			in:    "short text",
			limit: 64,
			want:  "short text",
		},
		{
			name:  "exactly at the limit",
			in:    "0123456789",
			limit: 10,
			want:  "0123456789",
		},
		{
			name:  "ascii over the limit",
			in:    "0123456789",
			limit: 4,
			want:  "0123...",
		},
		{
			name:  "trailing whitespace dropped before marker",
			in:    "hello      world",
			limit: 8,
			want:  "hello...",
		},
		{
			name:  "multi-byte rune straddling the limit",
			in:    "ｗｅｂｐａｇｅ", // 3 bytes per rune
			limit: 7,
			want:  "ｗｅ...",
		},
		{
			name:  "cut lands on rune boundary",
			in:    "ｗｅｂｐａｇｅ",
			limit: 6,
			want:  "ｗｅ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrape.Truncate(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate(%q, %d) produced invalid UTF-8", tt.in, tt.limit)
			}
		})
	}
}

func TestTruncateLargeDocument(t *testing.T) {
	// 30000 two-byte runes, roughly three times the ceiling.
	in := strings.Repeat("é", 30000)

	got := scrape.Truncate(in, scrape.MaxTextBytes)

	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncation marker, got tail %q", got[len(got)-8:])
	}

	kept := strings.TrimSuffix(got, "...")
	if len(kept) > scrape.MaxTextBytes {
		t.Errorf("kept %d bytes, ceiling is %d", len(kept), scrape.MaxTextBytes)
	}
	if !strings.HasPrefix(in, kept) {
		t.Error("truncated text is not a prefix of the original")
	}
	if !utf8.ValidString(got) {
		t.Error("truncated text is not valid UTF-8")
	}
}
