package session

import "github.com/asquared31415/irc-client/ircmsg"

// Style names a small closed set of span styles. Rendering maps these
// to concrete terminal styles; the session layer never deals in colors
// directly.
type Style int

const (
	StyleDefault Style = iota
	StyleNick
	StyleJoined
	StyleLeft
	StyleWarn
	StyleError
	StyleEmote
	StyleStatus
)

// Span is a single styled run of text within a Line.
type Span struct {
	Style Style
	Text  string
}

// Line is an ordered sequence of styled spans. Lines never carry
// embedded CR/LF; callers strip newlines on construction.
type Line struct {
	Spans []Span
}

// NewLine builds a single-span line, stripping any embedded CR/LF.
func NewLine(style Style, text string) Line {
	return Line{Spans: []Span{{Style: style, Text: stripEOL(text)}}}
}

// NewLineSpans builds a multi-span line from already-built spans,
// stripping embedded CR/LF from each span's text.
func NewLineSpans(spans ...Span) Line {
	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = Span{Style: s.Style, Text: stripEOL(s.Text)}
	}
	return Line{Spans: out}
}

func stripEOL(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' || s[i] == '\n' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// TargetKind distinguishes the three flavors of Target.
type TargetKind int

const (
	TargetStatus TargetKind = iota
	TargetChannel
	TargetNickname
)

// Target identifies a window: the synthetic Status window, a joined
// channel, or a private conversation with a nick.
type Target struct {
	Kind TargetKind
	Name string // channel name or nick; empty for Status
}

// Channel holds per-channel state: raw mode string, topic, member set,
// and message history.
type Channel struct {
	Name     string
	Modes    string
	Topic    string
	Users    map[string]struct{}
	Messages []Line
}

// NewChannel constructs an empty channel record.
func NewChannel(name string) *Channel {
	return &Channel{Name: name, Users: make(map[string]struct{})}
}

// UserConversation holds the message history of a private conversation
// with a single nick.
type UserConversation struct {
	Nick     string
	Messages []Line
}

// Phase is the connection state machine: Registration until the server
// confirms with RPL_WELCOME, then Connected for the rest of the
// session.
type Phase int

const (
	PhaseRegistration Phase = iota
	PhaseConnected
)

// PendingNames accumulates RPL_NAMREPLY entries for a channel between
// that reply and the matching RPL_ENDOFNAMES.
type PendingNames struct {
	ActiveNames map[string][]string
}

func newPendingNames() *PendingNames {
	return &PendingNames{ActiveNames: make(map[string][]string)}
}

// Outbound is anything that can accept a client-origin command destined
// for the server. The writer thread drains it.
type Outbound interface {
	Send(cmd ircmsg.Command)
}
