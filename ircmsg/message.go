package ircmsg

import (
	"strconv"
	"strings"
)

// Message is a single parsed (or about-to-be-serialized) IRC line: an
// optional tag set, an optional source, and a command.
type Message struct {
	Tags    Tags
	Source  Source
	HasSrc  bool
	Command Command
}

// Parse implements the procedure in spec.md §4.1: trim leading spaces,
// consume an optional tags segment, consume an optional source, then
// split the remainder into a verb and its parameters and map the verb to
// a Command variant. The input must not contain the line's terminating
// CRLF (or any interior CR/LF).
func Parse(line string) (*Message, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, &ParseError{Reason: ReasonInteriorCRLF, Line: line}
	}

	rest := strings.TrimLeft(line, " ")
	if rest == "" {
		return nil, &ParseError{Reason: ReasonEmptyLine, Line: line}
	}

	msg := &Message{Tags: Tags{}}

	if rest[0] == '@' {
		seg, remainder, _ := strings.Cut(rest[1:], " ")
		msg.Tags = ParseTags(seg)
		rest = strings.TrimLeft(remainder, " ")
	}

	if len(rest) > 0 && rest[0] == ':' {
		seg, remainder, _ := strings.Cut(rest[1:], " ")
		msg.Source = ParseSource(seg)
		msg.HasSrc = true
		rest = strings.TrimLeft(remainder, " ")
	}

	if rest == "" {
		return nil, &ParseError{Reason: ReasonNoCommand, Line: line}
	}

	verb, paramsStr, _ := strings.Cut(rest, " ")
	if verb == "" {
		return nil, &ParseError{Reason: ReasonNoCommand, Line: line}
	}

	params := parseParams(paramsStr)

	cmd, err := buildCommand(verb, params)
	if err != nil {
		return nil, err
	}
	msg.Command = cmd

	return msg, nil
}

// parseParams applies step 5 of the procedure: tokens are split on
// spaces; a token beginning with ':' (after any leading spaces already
// consumed) starts a trailing string holding the rest of the line.
func parseParams(s string) []Param {
	var params []Param

	for s != "" {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			break
		}

		if s[0] == ':' {
			params = append(params, NewStringParam(s[1:]))
			break
		}

		token, remainder, found := strings.Cut(s, " ")
		params = append(params, ParseParamToken(token))
		if !found {
			break
		}
		s = remainder
	}

	return params
}

func strParam(ps []Param, i int) string {
	if i >= len(ps) {
		return ""
	}
	return ps[i].String()
}

// buildCommand maps a verb and its already-parsed parameters to a
// Command per spec.md §4.1.1.
func buildCommand(verb string, params []Param) (Command, error) {
	if n, err := strconv.Atoi(verb); err == nil && len(verb) == 3 && n >= 0 && n <= 999 {
		return Numeric{Num: uint16(n), Args: params}, nil
	}

	switch verb {
	case "PASS":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "PASS requires a token", Line: verb}
		}
		return Pass{Token: strParam(params, 0)}, nil

	case "NICK":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "NICK requires a nick", Line: verb}
		}
		return Nick{Nick: strParam(params, 0)}, nil

	case "USER":
		if len(params) < 4 {
			return nil, &ParseError{Reason: "USER requires username and realname", Line: verb}
		}
		return User{Username: strParam(params, 0), Realname: strParam(params, 3)}, nil

	case "PING":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "PING requires a token", Line: verb}
		}
		return Ping{Token: strParam(params, 0)}, nil

	case "PONG":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "PONG requires a token", Line: verb}
		}
		p := Pong{Token: strParam(params, 0)}
		if len(params) > 1 {
			p.Server = strParam(params, 1)
		}
		return p, nil

	case "QUIT":
		q := Quit{}
		if len(params) > 0 {
			q.Reason = strParam(params, 0)
			q.HasReason = true
		}
		return q, nil

	case "JOIN":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "JOIN requires channels", Line: verb}
		}
		j := Join{Channels: params[0].Items()}
		if len(params) > 1 {
			j.Keys = params[1].Items()
		}
		if len(j.Keys) > len(j.Channels) {
			return nil, &ParseError{Reason: ReasonInvalidParams, Line: verb}
		}
		return j, nil

	case "PART":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "PART requires channels", Line: verb}
		}
		p := Part{Channels: params[0].Items()}
		if len(params) > 1 {
			p.Reason = strParam(params, 1)
			p.HasReason = true
		}
		return p, nil

	case "TOPIC":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "TOPIC requires a channel", Line: verb}
		}
		t := Topic{Channel: strParam(params, 0)}
		if len(params) > 1 {
			t.Topic = strParam(params, 1)
			t.HasTopic = true
		}
		return t, nil

	case "MODE":
		if len(params) < 1 {
			return nil, &ParseError{Reason: "MODE requires a target", Line: verb}
		}
		m := Mode{Target: strParam(params, 0)}
		if len(params) > 1 {
			rest := make([]string, 0, len(params)-1)
			for _, p := range params[1:] {
				rest = append(rest, p.Wire())
			}
			m.ModeString = strings.Join(rest, " ")
			m.HasModeStr = true
		}
		return m, nil

	case "PRIVMSG":
		if len(params) < 2 {
			return nil, &ParseError{Reason: "PRIVMSG requires targets and text", Line: verb}
		}
		return Privmsg{Targets: params[0].Items(), Text: strParam(params, 1)}, nil

	case "NOTICE":
		if len(params) < 2 {
			return nil, &ParseError{Reason: "NOTICE requires targets and text", Line: verb}
		}
		return Notice{Targets: params[0].Items(), Text: strParam(params, 1)}, nil

	case "ERROR":
		return Error{Reason: strParam(params, 0)}, nil

	default:
		return Unknown{Verb: verb, Args: params}, nil
	}
}
