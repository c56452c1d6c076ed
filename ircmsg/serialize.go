package ircmsg

import (
	"sort"
	"strings"
)

// NewMessage wraps a client-origin command with no tags and no source,
// ready for Serialize.
func NewMessage(cmd Command) Message {
	return Message{Command: cmd}
}

// Serialize implements the client-emit contract in spec.md §4.1: a
// client-origin Message (Source must be empty) is rendered to its wire
// form with a trailing CRLF. Server-only commands (Error, Numeric) and
// structurally invalid commands are rejected.
func Serialize(msg Message) (string, error) {
	if msg.HasSrc {
		return "", ErrClientMustNotSendSource
	}

	body, err := serializeCommand(msg.Command)
	if err != nil {
		return "", err
	}

	return msg.Tags.String() + body + "\r\n", nil
}

func serializeCommand(cmd Command) (string, error) {
	switch c := cmd.(type) {
	case Pass:
		if c.Token == "" {
			return "", ErrMissingParams
		}
		return "PASS :" + c.Token, nil

	case Nick:
		if c.Nick == "" {
			return "", ErrMissingParams
		}
		return "NICK :" + c.Nick, nil

	case User:
		if c.Username == "" {
			return "", ErrMissingParams
		}
		return "USER " + c.Username + " 0 * :" + c.Realname, nil

	case Ping:
		if c.Token == "" {
			return "", ErrMissingParams
		}
		return "PING :" + c.Token, nil

	case Pong:
		if c.Token == "" {
			return "", ErrMissingParams
		}
		return "PONG :" + c.Token, nil

	case Quit:
		if !c.HasReason {
			return "QUIT", nil
		}
		return "QUIT :" + c.Reason, nil

	case Join:
		return serializeJoin(c)

	case Part:
		if len(c.Channels) == 0 {
			return "", ErrMissingParams
		}
		line := "PART " + strings.Join(c.Channels, ",")
		if c.HasReason {
			line += " :" + c.Reason
		}
		return line, nil

	case Topic:
		if c.Channel == "" {
			return "", ErrMissingParams
		}
		line := "TOPIC " + c.Channel
		if c.HasTopic {
			line += " :" + c.Topic
		}
		return line, nil

	case Mode:
		if c.Target == "" {
			return "", ErrMissingParams
		}
		line := "MODE " + c.Target
		if c.HasModeStr {
			line += " " + c.ModeString
		}
		return line, nil

	case Privmsg:
		if len(c.Targets) == 0 {
			return "", ErrInvalidParams
		}
		return "PRIVMSG " + strings.Join(c.Targets, ",") + " :" + c.Text, nil

	case Notice:
		if len(c.Targets) == 0 {
			return "", ErrInvalidParams
		}
		return "NOTICE " + strings.Join(c.Targets, ",") + " :" + c.Text, nil

	case Error:
		return "", ErrClientMayNotEmitServerOnly

	case Numeric:
		return "", ErrClientMayNotEmitServerOnly

	case Unknown:
		return serializeUnknown(c), nil

	case Raw:
		return c.Text, nil

	default:
		return "", ErrInvalidParams
	}
}

// serializeJoin sorts (channel, key) pairs so keyed entries precede
// unkeyed ones, then emits the channel list and, if any key is present,
// a parallel key list aligned by position (per spec.md §4.1: "must never
// emit a comma gap that would misalign keys with channels").
func serializeJoin(j Join) (string, error) {
	if len(j.Channels) == 0 {
		return "", ErrMissingParams
	}

	type pair struct {
		channel string
		key     string
		hasKey  bool
	}

	pairs := make([]pair, len(j.Channels))
	for i, ch := range j.Channels {
		p := pair{channel: ch}
		if i < len(j.Keys) && j.Keys[i] != "" {
			p.key = j.Keys[i]
			p.hasKey = true
		}
		pairs[i] = p
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].hasKey && !pairs[b].hasKey
	})

	channels := make([]string, len(pairs))
	var keys []string
	anyKey := false
	for i, p := range pairs {
		channels[i] = p.channel
		if p.hasKey {
			anyKey = true
		}
	}
	if anyKey {
		keys = make([]string, len(pairs))
		for i, p := range pairs {
			keys[i] = p.key
		}
	}

	line := "JOIN " + strings.Join(channels, ",")
	if len(keys) > 0 {
		line += " " + strings.Join(keys, ",")
	}
	return line, nil
}

func serializeUnknown(u Unknown) string {
	var b strings.Builder
	b.WriteString(u.Verb)

	for i, p := range u.Args {
		b.WriteByte(' ')
		last := i == len(u.Args)-1
		wire := p.Wire()
		if last && (wire == "" || strings.Contains(wire, " ") || strings.HasPrefix(wire, ":")) {
			b.WriteByte(':')
		}
		b.WriteString(wire)
	}

	return b.String()
}
