package termui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	zeroWidthJoiner     = "‍"
	variationSelector16 = "️"
)

var skinTones = []string{
	"\U0001f3fb",
	"\U0001f3fc",
	"\U0001f3fd",
	"\U0001f3fe",
	"\U0001f3ff",
}

// DisplayWidth returns the number of terminal display columns s would
// occupy, summing the per-grapheme-cluster width (spec.md §4.4:
// zero-width joiners and variation-selector-16 are zero width,
// ZWJ-joined or skin-tone-modified emoji sequences are always two
// columns, and a tab is four columns).
func DisplayWidth(s string) int {
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += clusterWidth(gr.Str())
	}
	return width
}

func clusterWidth(cluster string) int {
	if cluster == zeroWidthJoiner || cluster == variationSelector16 {
		return 0
	}

	if strings.Contains(cluster, zeroWidthJoiner) {
		return 2
	}

	for _, tone := range skinTones {
		if strings.Contains(cluster, tone) {
			return 2
		}
	}

	if cluster == "\t" {
		return 4
	}

	return runewidth.StringWidth(cluster)
}

// Graphemes splits s into its grapheme clusters in order.
func Graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
