package termui

import "testing"

var testsLayoutCalc = []struct {
	name   string
	layout Layout
	w, h   int
	want   []Rect
}{
	{
		name:   "header/body/footer",
		layout: Layout{Axis: Vertical, Sections: []Section{Exact(1), Fill(1), Exact(1)}},
		w:      80,
		h:      24,
		want: []Rect{
			{X: 0, Y: 0, Width: 80, Height: 1},
			{X: 0, Y: 1, Width: 80, Height: 22},
			{X: 0, Y: 23, Width: 80, Height: 1},
		},
	},
	{
		name:   "two fills weighted 2:1 over 11",
		layout: Layout{Axis: Vertical, Sections: []Section{Fill(2), Fill(1)}},
		w:      80,
		h:      11,
		want: []Rect{
			{X: 0, Y: 0, Width: 80, Height: 8},
			{X: 0, Y: 8, Width: 80, Height: 3},
		},
	},
	{
		name:   "equal fills split evenly",
		layout: Layout{Axis: Horizontal, Sections: []Section{Fill(1), Fill(1)}},
		w:      10,
		h:      5,
		want: []Rect{
			{X: 0, Y: 0, Width: 5, Height: 5},
			{X: 5, Y: 0, Width: 5, Height: 5},
		},
	},
	{
		name:   "exact section too large clamps to zero",
		layout: Layout{Axis: Vertical, Sections: []Section{Exact(100), Fill(1)}},
		w:      80,
		h:      24,
		want: []Rect{
			{X: 0, Y: 0, Width: 80, Height: 0},
			{X: 0, Y: 0, Width: 80, Height: 24},
		},
	},
}

func TestLayoutCalc(t *testing.T) {
	for _, tc := range testsLayoutCalc {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.layout.Calc(tc.w, tc.h)
			if len(got) != len(tc.want) {
				t.Fatalf("Calc() = %+v, want %+v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("rect %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestLayoutCalcNested(t *testing.T) {
	layout := Layout{
		Axis: Vertical,
		Sections: []Section{
			Fill(1),
			{Kind: KindExact, Size: 2, Axis: Horizontal, Nested: []Section{Fill(1), Fill(1)}},
		},
	}
	got := layout.Calc(10, 11)
	want := []Rect{
		{X: 0, Y: 0, Width: 10, Height: 9},
		{X: 0, Y: 9, Width: 5, Height: 2},
		{X: 5, Y: 9, Width: 5, Height: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("Calc() = %+v, want %+v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
