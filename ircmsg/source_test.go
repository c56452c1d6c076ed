package ircmsg

import "testing"

var testsParseSource = []struct {
	name string
	in   string
	want Source
}{
	{name: "full", in: "nick!user@host", want: Source{Name: "nick", User: "user", Host: "host"}},
	{name: "nick and host only", in: "nick@host", want: Source{Name: "nick", Host: "host"}},
	{name: "nick and user only", in: "nick!user", want: Source{Name: "nick", User: "user"}},
	{name: "server name", in: "server.example", want: Source{Name: "server.example"}},
	{name: "empty", in: "", want: Source{}},
}

func TestParseSource(t *testing.T) {
	for _, tc := range testsParseSource {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSource(tc.in)
			if got != tc.want {
				t.Errorf("ParseSource(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSourceIsServer(t *testing.T) {
	if !ParseSource("server.example").IsServer() {
		t.Error("bare server name should report IsServer() == true")
	}
	if ParseSource("nick!user@host").IsServer() {
		t.Error("nick!user@host should report IsServer() == false")
	}
}

func TestSourceStringRoundTrip(t *testing.T) {
	for _, tc := range testsParseSource {
		if tc.in == "" {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.want.String(); got != tc.in {
				t.Errorf("Source{%+v}.String() = %q, want %q", tc.want, got, tc.in)
			}
		})
	}
}
