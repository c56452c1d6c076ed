package ircmsg

import "strings"

const (
	sourceUserSep byte = '!'
	sourceHostSep byte = '@'
)

// Source identifies who sent a message: either a bare server name, or a
// nick with an optional ident and/or host. See RFC1459 section 2.3.1:
//
//	<prefix> :: <servername> | <nick> [ '!' <user> ] [ '@' <host> ]
type Source struct {
	Name string
	User string // empty if absent
	Host string // empty if absent
}

// IsServer reports whether this source has neither a user nor a host,
// which is how a bare server name round-trips.
func (s Source) IsServer() bool {
	return s.User == "" && s.Host == ""
}

// ParseSource parses the prefix portion of a line (without the leading
// ':'). Per spec.md §4.1 step 3: "nick[!user][@host]" or a bare server
// name; if '!' is absent and '@' is present, it's "nick@host"; otherwise,
// with neither present, it's a server name.
func ParseSource(raw string) Source {
	userIdx := strings.IndexByte(raw, sourceUserSep)
	hostIdx := strings.IndexByte(raw, sourceHostSep)

	switch {
	case userIdx >= 0 && hostIdx > userIdx:
		return Source{Name: raw[:userIdx], User: raw[userIdx+1 : hostIdx], Host: raw[hostIdx+1:]}
	case userIdx >= 0:
		return Source{Name: raw[:userIdx], User: raw[userIdx+1:]}
	case hostIdx >= 0:
		return Source{Name: raw[:hostIdx], Host: raw[hostIdx+1:]}
	default:
		return Source{Name: raw}
	}
}

// String renders the source back to wire form (without the leading ':').
func (s Source) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.User != "" {
		b.WriteByte(sourceUserSep)
		b.WriteString(s.User)
	}
	if s.Host != "" {
		b.WriteByte(sourceHostSep)
		b.WriteString(s.Host)
	}
	return b.String()
}
