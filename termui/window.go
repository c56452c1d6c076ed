package termui

// Window computes the windowed view into buf for a rectangle of the
// given cell width, implementing spec.md §4.4.2's pin-left / center /
// pin-right / fits-entirely cases. It returns the visible text slice
// and the column the cursor should be drawn at.
func Window(buf *InputBuffer, width int) (visible string, cursorCol int) {
	bounds := buf.boundaries()
	total := len(bounds) - 1

	cursorIdx := indexOf(bounds, buf.Cursor)
	before := cursorIdx
	after := total - cursorIdx

	w := width - 1
	if w < 0 {
		w = 0
	}

	switch {
	case before < w/2:
		// Pin left: show the first min(w, before+after) graphemes.
		n := before + after
		if n > w {
			n = w
		}
		return sliceGraphemes(buf.Text, bounds, 0, n), before

	case after >= w/2:
		// Center: w/2 graphemes before the cursor, w/2 after.
		start := cursorIdx - w/2
		end := cursorIdx + w/2
		return sliceGraphemes(buf.Text, bounds, start, end), w / 2

	case before+after >= w:
		// Pin right: end at the buffer end.
		start := total - w
		return sliceGraphemes(buf.Text, bounds, start, total), w - after

	default:
		// Buffer fits entirely.
		return buf.Text, before
	}
}

// sliceGraphemes returns the substring spanning grapheme indices
// [start, end), clamped to the valid range.
func sliceGraphemes(text string, bounds []int, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(bounds)-1 {
		end = len(bounds) - 1
	}
	if start > end {
		start = end
	}
	return text[bounds[start]:bounds[end]]
}
