package termui

import (
	"testing"

	"github.com/asquared31415/irc-client/session"
)

func plainLine(s string) session.Line {
	return session.Line{Spans: []session.Span{{Text: s}}}
}

func rowTexts(rows []session.Line) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		for _, sp := range row.Spans {
			out[i] += sp.Text
		}
	}
	return out
}

var testsWordWrap = []struct {
	name  string
	in    string
	width int
	want  []string
}{
	{name: "fits on one row", in: "hi", width: 10, want: []string{"hi"}},
	{name: "two words wrap at boundary", in: "hello world", width: 5, want: []string{"hello", "world"}},
	{name: "single word wider than width fills grapheme by grapheme", in: "abcdefghijk", width: 4, want: []string{"abcd", "efgh", "ijk"}},
	{name: "zero width returns unwrapped", in: "hello", width: 0, want: []string{"hello"}},
}

func TestWordWrap(t *testing.T) {
	for _, tc := range testsWordWrap {
		t.Run(tc.name, func(t *testing.T) {
			got := rowTexts(WordWrap(plainLine(tc.in), tc.width))
			if len(got) != len(tc.want) {
				t.Fatalf("WordWrap(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestWrappedHeight(t *testing.T) {
	if h := WrappedHeight(plainLine("hello world"), 5); h != 2 {
		t.Errorf("WrappedHeight = %d, want 2", h)
	}
	if h := WrappedHeight(plainLine(""), 5); h < 1 {
		t.Errorf("WrappedHeight of empty line = %d, want >= 1", h)
	}
}

func TestTruncate(t *testing.T) {
	got := Truncate(plainLine("abcdefgh"), 4)
	want := "abcd"
	var gotText string
	for _, sp := range got.Spans {
		gotText += sp.Text
	}
	if gotText != want {
		t.Errorf("Truncate = %q, want %q", gotText, want)
	}
}
