package ircmsg

import "testing"

func strp(s string) *string { return &s }

var testsParseTags = []struct {
	name string
	in   string
	want Tags
}{
	{name: "empty", in: "", want: Tags{}},
	{name: "single no value", in: "time", want: Tags{"time": nil}},
	{name: "single with value", in: "time=2021-01-01T00:00:00Z", want: Tags{"time": strp("2021-01-01T00:00:00Z")}},
	{name: "trailing equals maps to no value", in: "time=", want: Tags{"time": nil}},
	{name: "multiple", in: "a=1;b;c=3", want: Tags{"a": strp("1"), "b": nil, "c": strp("3")}},
}

func TestParseTags(t *testing.T) {
	for _, tc := range testsParseTags {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseTags(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("ParseTags(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for k, wantV := range tc.want {
				gotV, ok := got[k]
				if !ok {
					t.Fatalf("missing key %q", k)
				}
				if (gotV == nil) != (wantV == nil) {
					t.Fatalf("key %q: got nil=%v, want nil=%v", k, gotV == nil, wantV == nil)
				}
				if gotV != nil && *gotV != *wantV {
					t.Fatalf("key %q: got %q, want %q", k, *gotV, *wantV)
				}
			}
		})
	}
}

func TestTagsStringDeterministic(t *testing.T) {
	tags := Tags{"b": strp("2"), "a": strp("1"), "c": nil}
	want := "@a=1;b=2;c "
	for i := 0; i < 10; i++ {
		if got := tags.String(); got != want {
			t.Fatalf("iteration %d: Tags.String() = %q, want %q", i, got, want)
		}
	}
}

func TestTagsStringEmpty(t *testing.T) {
	if got := (Tags{}).String(); got != "" {
		t.Errorf("empty Tags.String() = %q, want empty", got)
	}
}

func TestTagsEmptyValueReserializesWithoutEquals(t *testing.T) {
	got := ParseTags("key=").String()
	want := "@key "
	if got != want {
		t.Fatalf("ParseTags(%q).String() = %q, want %q", "key=", got, want)
	}
}
