package termui

import "github.com/rivo/uniseg"

// InputBuffer is a cursor-aware text buffer. Cursor is a byte offset
// into Text that always sits on a grapheme-cluster boundary, per
// spec.md §4.4.1.
type InputBuffer struct {
	Text   string
	Cursor int
}

// boundaries returns the byte offset of the start of every grapheme
// cluster in Text, plus a trailing entry for len(Text).
func (b *InputBuffer) boundaries() []int {
	bounds := []int{0}
	pos := 0
	gr := uniseg.NewGraphemes(b.Text)
	for gr.Next() {
		pos += len(gr.Str())
		bounds = append(bounds, pos)
	}
	return bounds
}

// Insert inserts s at the cursor and advances the cursor past it.
func (b *InputBuffer) Insert(s string) {
	b.Text = b.Text[:b.Cursor] + s + b.Text[b.Cursor:]
	b.Cursor += len(s)
}

// Backspace deletes the grapheme before the cursor and moves the
// cursor back onto the new boundary.
func (b *InputBuffer) Backspace() {
	bounds := b.boundaries()
	idx := indexOf(bounds, b.Cursor)
	if idx <= 0 {
		return
	}

	start := bounds[idx-1]
	b.Text = b.Text[:start] + b.Text[b.Cursor:]
	b.Cursor = start
}

// Delete removes the grapheme at the cursor, leaving the cursor in
// place.
func (b *InputBuffer) Delete() {
	bounds := b.boundaries()
	idx := indexOf(bounds, b.Cursor)
	if idx == -1 || idx >= len(bounds)-1 {
		return
	}

	end := bounds[idx+1]
	b.Text = b.Text[:b.Cursor] + b.Text[end:]
}

// Select moves the cursor to the grapheme boundary at charIndex
// (clamped to the valid range).
func (b *InputBuffer) Select(charIndex int) {
	bounds := b.boundaries()
	if charIndex < 0 {
		charIndex = 0
	}
	if charIndex >= len(bounds) {
		charIndex = len(bounds) - 1
	}
	b.Cursor = bounds[charIndex]
}

// Offset moves the cursor by k graphemes (negative moves left),
// clamped to the buffer's extent.
func (b *InputBuffer) Offset(k int) {
	bounds := b.boundaries()
	idx := indexOf(bounds, b.Cursor)
	if idx == -1 {
		return
	}

	idx += k
	if idx < 0 {
		idx = 0
	}
	if idx >= len(bounds) {
		idx = len(bounds) - 1
	}
	b.Cursor = bounds[idx]
}

// Finish returns the buffer's text and clears it.
func (b *InputBuffer) Finish() string {
	text := b.Text
	b.Text = ""
	b.Cursor = 0
	return text
}

func indexOf(bounds []int, pos int) int {
	for i, p := range bounds {
		if p == pos {
			return i
		}
	}
	return -1
}
