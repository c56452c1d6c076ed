package ircmsg

import "strings"

const ctcpDelim = '\x01'

// CTCP is a decoded CTCP request or reply: a PRIVMSG/NOTICE body whose
// first byte is 0x01, per spec.md §4.1.2.
type CTCP struct {
	Verb      string
	Params    string
	HasParams bool
}

// IsCTCP reports whether a PRIVMSG/NOTICE body is CTCP-framed.
func IsCTCP(body string) bool {
	return len(body) > 0 && body[0] == ctcpDelim
}

// ParseCTCP decodes a CTCP-framed body. The caller must have already
// checked IsCTCP. A missing closing delimiter is tolerated: everything
// after the leading 0x01 is taken as the payload.
func ParseCTCP(body string) CTCP {
	payload := strings.TrimPrefix(body, string(ctcpDelim))
	payload = strings.TrimSuffix(payload, string(ctcpDelim))

	verb, params, hasParams := strings.Cut(payload, " ")
	return CTCP{Verb: verb, Params: params, HasParams: hasParams}
}

// Encode frames a CTCP command back into a PRIVMSG/NOTICE body.
func (c CTCP) Encode() string {
	var b strings.Builder
	b.WriteByte(ctcpDelim)
	b.WriteString(c.Verb)
	if c.HasParams {
		b.WriteByte(' ')
		b.WriteString(c.Params)
	}
	b.WriteByte(ctcpDelim)
	return b.String()
}

// EncodeACTION frames an ACTION ("/me") CTCP body.
func EncodeACTION(text string) string {
	return CTCP{Verb: "ACTION", Params: text, HasParams: text != ""}.Encode()
}

// ClientInfoReply is the fixed space-separated list of CTCP verbs this
// client understands, sent in reply to a CLIENTINFO request.
const ClientInfoReply = "ACTION CLIENTINFO"
