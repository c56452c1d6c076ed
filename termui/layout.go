package termui

// Axis is the direction a Layout's sections are arranged along.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// SectionKind distinguishes a fixed-size leaf from a weighted-fill one.
type SectionKind int

const (
	KindExact SectionKind = iota
	KindFill
)

// Section is one element of a Layout: either Exact(Size) lines/columns,
// or Fill(Weight) sharing the remainder, optionally containing nested
// sub-sections along a different axis.
type Section struct {
	Kind   SectionKind
	Size   int // used when Kind == KindExact
	Weight int // used when Kind == KindFill
	Axis   Axis
	Nested []Section
}

// Exact builds a fixed-size leaf section.
func Exact(size int) Section {
	return Section{Kind: KindExact, Size: size}
}

// Fill builds a weighted-fill leaf section.
func Fill(weight int) Section {
	return Section{Kind: KindFill, Weight: weight}
}

// Rect is a resolved rectangle in terminal cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Layout is a tree of sections along a single top-level axis.
type Layout struct {
	Axis     Axis
	Sections []Section
}

// Calc resolves the layout against a terminal size, returning one Rect
// per leaf section in depth-first order. Exact sections are resolved
// first; the remainder is distributed across Fill sections proportional
// to weight using a base/remainder split (spec.md §4.4: "11 split 3
// ways yields [4,4,3]").
func (l Layout) Calc(termWidth, termHeight int) []Rect {
	return calcRecurse(l.Axis, l.Sections, Rect{X: 0, Y: 0, Width: termWidth, Height: termHeight})
}

type sizeState struct {
	resolved bool
	size     int
	weight   int // valid when !resolved
}

func calcRecurse(axis Axis, sections []Section, rect Rect) []Rect {
	var remaining int
	var axisStart int
	var makeRect func(pos, size int) Rect

	switch axis {
	case Vertical:
		remaining = rect.Height
		axisStart = rect.Y
		makeRect = func(pos, size int) Rect {
			return Rect{X: rect.X, Y: pos, Width: rect.Width, Height: size}
		}
	default:
		remaining = rect.Width
		axisStart = rect.X
		makeRect = func(pos, size int) Rect {
			return Rect{X: pos, Y: rect.Y, Width: size, Height: rect.Height}
		}
	}

	states := make([]sizeState, len(sections))
	for i, s := range sections {
		switch s.Kind {
		case KindExact:
			if s.Size < remaining {
				remaining -= s.Size
				states[i] = sizeState{resolved: true, size: s.Size}
			} else {
				// Section does not fit; clamp to zero rather than the
				// upstream TODO'd panic.
				states[i] = sizeState{resolved: true, size: 0}
			}
		case KindFill:
			states[i] = sizeState{resolved: false, weight: s.Weight}
		}
	}

	totalWeight := 0
	for _, st := range states {
		if !st.resolved {
			totalWeight += st.weight
		}
	}

	var split []int
	if totalWeight > 0 {
		base := remaining / totalWeight
		rem := remaining % totalWeight
		split = make([]int, totalWeight)
		for i := range split {
			split[i] = base
			if i < rem {
				split[i]++
			}
		}
	}

	splitIdx := 0
	for i, st := range states {
		if st.resolved {
			continue
		}
		sum := 0
		for k := 0; k < st.weight; k++ {
			sum += split[splitIdx]
			splitIdx++
		}
		states[i] = sizeState{resolved: true, size: sum}
	}

	var rects []Rect
	pos := axisStart

	for i, st := range states {
		rect := makeRect(pos, st.size)
		if len(sections[i].Nested) > 0 {
			rects = append(rects, calcRecurse(sections[i].Axis, sections[i].Nested, rect)...)
		} else {
			rects = append(rects, rect)
		}
		pos += st.size
	}

	return rects
}
