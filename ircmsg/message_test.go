package ircmsg

import (
	"reflect"
	"testing"
)

func TestParseInteriorCRLF(t *testing.T) {
	_, err := Parse("PRIVMSG #chan :hi\r\nPRIVMSG #chan :bye")
	if err == nil {
		t.Fatal("expected error for interior CRLF")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Reason != ReasonInteriorCRLF {
		t.Fatalf("got %v, want ReasonInteriorCRLF", err)
	}
}

func TestParseEmptyLine(t *testing.T) {
	_, err := Parse("   ")
	if err == nil {
		t.Fatal("expected error for empty line")
	}
}

func TestParseNoCommand(t *testing.T) {
	_, err := Parse("@time=1 :nick!u@h")
	if err == nil {
		t.Fatal("expected error for missing command")
	}
}

func TestParseJoinMoreKeysThanChannelsFails(t *testing.T) {
	_, err := Parse("JOIN #a k1,k2")
	if err == nil {
		t.Fatal("expected error for more keys than channels")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Reason != ReasonInvalidParams {
		t.Fatalf("got %v, want ReasonInvalidParams", err)
	}
}

var testsParse = []struct {
	name      string
	in        string
	wantTags  Tags
	wantSrc   Source
	hasSrc    bool
	wantCmd   Command
}{
	{
		name:    "simple ping",
		in:      "PING :abc",
		wantCmd: Ping{Token: "abc"},
	},
	{
		name:    "privmsg with source",
		in:      ":nick!user@host PRIVMSG #chan :hello there",
		wantSrc: Source{Name: "nick", User: "user", Host: "host"},
		hasSrc:  true,
		wantCmd: Privmsg{Targets: []string{"#chan"}, Text: "hello there"},
	},
	{
		name:     "tags and source and numeric",
		in:       "@time=2021-01-01T00:00:00Z;msgid=abc :server.example 001 nick :Welcome",
		wantTags: Tags{"time": strp("2021-01-01T00:00:00Z"), "msgid": strp("abc")},
		wantSrc:  Source{Name: "server.example"},
		hasSrc:   true,
		wantCmd:  Numeric{Num: 1, Args: []Param{NewStringParam("nick"), NewStringParam("Welcome")}},
	},
	{
		name:    "join with keys",
		in:      "JOIN #a,#b k1,k2",
		wantCmd: Join{Channels: []string{"#a", "#b"}, Keys: []string{"k1", "k2"}},
	},
	{
		name:    "join no keys",
		in:      "JOIN #a,#b",
		wantCmd: Join{Channels: []string{"#a", "#b"}},
	},
	{
		name:    "part with reason",
		in:      "PART #a :goodbye",
		wantCmd: Part{Channels: []string{"#a"}, Reason: "goodbye", HasReason: true},
	},
	{
		name:    "part no reason",
		in:      "PART #a",
		wantCmd: Part{Channels: []string{"#a"}},
	},
	{
		name:    "topic query",
		in:      "TOPIC #a",
		wantCmd: Topic{Channel: "#a"},
	},
	{
		name:    "topic set",
		in:      "TOPIC #a :new topic here",
		wantCmd: Topic{Channel: "#a", Topic: "new topic here", HasTopic: true},
	},
	{
		name:    "mode with string",
		in:      "MODE #a +o nick",
		wantCmd: Mode{Target: "#a", ModeString: "+o nick", HasModeStr: true},
	},
	{
		name:    "unknown verb",
		in:      "WHOIS nick",
		wantCmd: Unknown{Verb: "WHOIS", Args: []Param{NewStringParam("nick")}},
	},
	{
		name:    "error",
		in:      "ERROR :Closing Link",
		wantCmd: Error{Reason: "Closing Link"},
	},
}

func TestParse(t *testing.T) {
	for _, tc := range testsParse {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
			}

			if msg.HasSrc != tc.hasSrc {
				t.Errorf("HasSrc = %v, want %v", msg.HasSrc, tc.hasSrc)
			}
			if tc.hasSrc && msg.Source != tc.wantSrc {
				t.Errorf("Source = %+v, want %+v", msg.Source, tc.wantSrc)
			}
			if tc.wantTags != nil {
				for k, v := range tc.wantTags {
					got, ok := msg.Tags[k]
					if !ok || (got == nil) != (v == nil) || (got != nil && *got != *v) {
						t.Errorf("Tags[%q] mismatch: got %v, want %v", k, got, v)
					}
				}
			}
			if !reflect.DeepEqual(msg.Command, tc.wantCmd) {
				t.Errorf("Command = %#v, want %#v", msg.Command, tc.wantCmd)
			}
		})
	}
}

func TestParseCommaListDiscardsEmptyEntries(t *testing.T) {
	msg, err := Parse("JOIN #a,,#b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	j, ok := msg.Command.(Join)
	if !ok {
		t.Fatalf("expected Join, got %#v", msg.Command)
	}
	want := []string{"#a", "#b"}
	if !reflect.DeepEqual(j.Channels, want) {
		t.Errorf("Channels = %v, want %v", j.Channels, want)
	}
}
