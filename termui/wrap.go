package termui

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/asquared31415/irc-client/session"
)

// WordWrap splits line into rows no wider than width display columns,
// breaking at Unicode word boundaries (spec.md §4.4's WordWrap mode):
// a word that fits on the current row is appended; a word wider than
// the rectangle itself is filled grapheme-by-grapheme and the remainder
// recurses onto new rows; otherwise a new row is opened for the word.
func WordWrap(line session.Line, width int) []session.Line {
	if width <= 0 {
		return []session.Line{line}
	}

	rows := [][]session.Span{{}}
	remaining := width

	for _, span := range line.Spans {
		rest := span.Text
		for rest != "" {
			word, tail, _ := uniseg.FirstWordInString(rest)
			rest = tail
			handleWord(&rows, width, &remaining, word, span.Style)
		}
	}

	out := make([]session.Line, len(rows))
	for i, spans := range rows {
		out[i] = session.Line{Spans: spans}
	}
	return out
}

func handleWord(rows *[][]session.Span, width int, remaining *int, word string, style session.Style) {
	if word == "" {
		return
	}

	wordWidth := DisplayWidth(word)

	// A run of whitespace that doesn't fit on the current row is a wrap
	// point, not content: drop it rather than opening the next row with
	// a leading space.
	if wordWidth > *remaining && strings.TrimSpace(word) == "" {
		return
	}

	switch {
	case wordWidth <= *remaining:
		appendSpan(rows, style, word)
		*remaining -= wordWidth

	case wordWidth > width:
		fit, rest := splitToFit(word, *remaining)
		if fit != "" {
			appendSpan(rows, style, fit)
		}
		*rows = append(*rows, []session.Span{})
		*remaining = width
		handleWord(rows, width, remaining, rest, style)

	default:
		*rows = append(*rows, []session.Span{{Style: style, Text: word}})
		*remaining = width - wordWidth
	}
}

func appendSpan(rows *[][]session.Span, style session.Style, text string) {
	last := len(*rows) - 1
	(*rows)[last] = append((*rows)[last], session.Span{Style: style, Text: text})
}

// splitToFit consumes graphemes of word until remaining columns run
// out, returning the consumed prefix and the unconsumed remainder.
func splitToFit(word string, remaining int) (fit, rest string) {
	var fitBuilder []string
	gr := uniseg.NewGraphemes(word)
	consumed := 0

	for gr.Next() {
		g := gr.Str()
		if remaining <= 0 {
			break
		}
		w := clusterWidth(g)
		remaining -= w
		fitBuilder = append(fitBuilder, g)
		consumed += len(g)
	}

	for _, g := range fitBuilder {
		fit += g
	}
	rest = word[consumed:]
	return fit, rest
}

// Truncate produces a single row holding as many graphemes of each span
// as fit within width display columns, per spec.md §4.4's Truncate
// mode.
func Truncate(line session.Line, width int) session.Line {
	var spans []session.Span
	remaining := width

	for _, span := range line.Spans {
		if remaining <= 0 {
			break
		}

		var b []byte
		gr := uniseg.NewGraphemes(span.Text)
		for gr.Next() {
			w := clusterWidth(gr.Str())
			if w > remaining {
				break
			}
			b = append(b, gr.Str()...)
			remaining -= w
		}

		if len(b) > 0 {
			spans = append(spans, session.Span{Style: span.Style, Text: string(b)})
		}
	}

	return session.Line{Spans: spans}
}

// WrappedHeight returns how many rows line occupies when wrapped to
// width (minimum 1, per the original's NonZeroU16 height).
func WrappedHeight(line session.Line, width int) int {
	rows := WordWrap(line, width)
	if len(rows) < 1 {
		return 1
	}
	return len(rows)
}
