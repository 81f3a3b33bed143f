package matcher_test

import (
	"testing"

	"github.com/leetie/minigrep/internal/matcher"
	"github.com/stretchr/testify/require"
)

const (
	poemDuct  = "Rust:\nsafe, fast, productive.\nPick three.\nDuct"
	poemTrust = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."
)

func TestSearch(t *testing.T) {
	cases := []struct {
		name          string
		query         string
		contents      string
		lineNumbers   bool
		caseSensitive bool
		wantRes       []string
	}{
		{
			name:          "Positive - one result case sensitive",
			query:         "duct",
			contents:      poemDuct,
			caseSensitive: true,
			wantRes:       []string{"safe, fast, productive."},
		},
		{
			name:          "Positive - case insensitive",
			query:         "rUsT",
			contents:      poemTrust,
			caseSensitive: false,
			wantRes:       []string{"Rust:", "Trust me."},
		},
		{
			name:          "Positive - case insensitive keeps original line",
			query:         "DUCT",
			contents:      poemDuct,
			caseSensitive: false,
			wantRes:       []string{"safe, fast, productive.", "Duct"},
		},
		{
			name:          "Positive - line numbers",
			query:         "a",
			contents:      "a\nb\nabc\n",
			lineNumbers:   true,
			caseSensitive: true,
			wantRes:       []string{"1 a", "3 abc"},
		},
		{
			name:          "Positive - line numbers case insensitive",
			query:         "rust",
			contents:      poemTrust,
			lineNumbers:   true,
			caseSensitive: false,
			wantRes:       []string{"1 Rust:", "4 Trust me."},
		},
		{
			name:          "Positive - empty lines are counted",
			query:         "b",
			contents:      "a\n\nb",
			lineNumbers:   true,
			caseSensitive: true,
			wantRes:       []string{"3 b"},
		},
		{
			name:          "Positive - CRLF line breaks",
			query:         "b",
			contents:      "a\r\nb\r\n",
			caseSensitive: true,
			wantRes:       []string{"b"},
		},
		{
			name:          "Negative - no matches",
			query:         "xyz",
			contents:      poemDuct,
			caseSensitive: true,
			wantRes:       []string{},
		},
		{
			name:          "Negative - empty contents",
			query:         "a",
			contents:      "",
			caseSensitive: true,
			wantRes:       []string{},
		},
		{
			name:          "Negative - case sensitive misses other case",
			query:         "rust",
			contents:      poemTrust,
			caseSensitive: true,
			wantRes:       []string{"Trust me."},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res := matcher.Search(tt.query, tt.contents, tt.lineNumbers, tt.caseSensitive)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestSearchIdempotent(t *testing.T) {
	first := matcher.Search("a", "a\nb\nabc\n", true, true)
	second := matcher.Search("a", "a\nb\nabc\n", true, true)

	require.Equal(t, first, second)
}

func TestSearchVariants(t *testing.T) {
	require.Equal(t, []string{"safe, fast, productive."}, matcher.SearchCaseSensitive("duct", poemDuct, false))
	require.Equal(t, []string{"Rust:", "Trust me."}, matcher.SearchCaseInsensitive("rUsT", poemTrust, false))
}

func TestLineNumbersDontChangeMatches(t *testing.T) {
	plain := matcher.Search("s", poemTrust, false, false)
	numbered := matcher.Search("s", poemTrust, true, false)

	require.Len(t, numbered, len(plain))
	require.Equal(t, []string{"1 Rust:", "2 safe, fast, productive.", "4 Trust me."}, numbered)
}

func TestLines(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		wantRes  []string
	}{
		{name: "empty", contents: "", wantRes: nil},
		{name: "single newline", contents: "\n", wantRes: []string{""}},
		{name: "unterminated tail", contents: "a\nb", wantRes: []string{"a", "b"}},
		{name: "terminated tail", contents: "a\nb\n", wantRes: []string{"a", "b"}},
		{name: "crlf", contents: "a\r\nb\r\n", wantRes: []string{"a", "b"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantRes, matcher.Lines(tt.contents))
		})
	}
}
