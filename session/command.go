package session

import (
	"fmt"
	"strings"

	"github.com/asquared31415/irc-client/ircmsg"
)

// CommandError is surfaced to the current target rather than treated as
// fatal, per spec.md §4.3.1.
type CommandError struct {
	msg string
}

func (e *CommandError) Error() string { return e.msg }

func errIncorrectArgCount(verb string, expected, found int) *CommandError {
	return &CommandError{msg: fmt.Sprintf("/%s: expected %d argument(s), got %d", verb, expected, found)}
}

func errInvalidArg(verb, value, expected string) *CommandError {
	return &CommandError{msg: fmt.Sprintf("/%s: invalid argument %q, expected %s", verb, value, expected)}
}

func errUnknownCommand(verb string) *CommandError {
	return &CommandError{msg: fmt.Sprintf("unknown command: /%s", verb)}
}

// HandleInputLine processes one completed line of user input: a line
// beginning with '/' is parsed as a command (spec.md §4.3.1 plus the
// supplemental commands in SPEC_FULL.md §4.3.[FULL]); anything else is
// a message to the current target.
func HandleInputLine(line string, s *SessionState) {
	if strings.HasPrefix(line, "/") {
		if err := runCommand(line[1:], s); err != nil {
			s.Warn("%s", err.Error())
		}
		return
	}

	sendMessageToCurrentTarget(line, s)
}

func sendMessageToCurrentTarget(text string, s *SessionState) {
	t := s.CurrentTarget()

	switch t.Kind {
	case TargetStatus:
		s.Warn("cannot send message to status")
		return
	case TargetChannel, TargetNickname:
		s.Outbound.Send(ircmsg.Privmsg{Targets: []string{t.Name}, Text: text})
	}

	s.AppendLine(t, NewLine(StyleDefault, fmt.Sprintf("%s %s", s.Nick, text)))
}

// tokenize splits on runs of spaces, discarding empty tokens, per
// spec.md §4.3.1.
func tokenize(line string) []string {
	return strings.Fields(line)
}

func runCommand(line string, s *SessionState) error {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return errUnknownCommand("")
	}

	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch verb {
	case "join":
		return cmdJoin(args, s)
	case "raw":
		return cmdRaw(line, verb, s)
	case "msg":
		return cmdMsg(args, s)
	case "quit":
		return cmdQuit(s)
	case "part":
		return cmdPart(args, s)
	case "nick":
		return cmdNick(args, s)
	case "topic":
		return cmdTopic(args, s)
	case "me":
		return cmdMe(args, s)
	case "clear":
		return cmdClear(s)
	default:
		return errUnknownCommand(verb)
	}
}

func requireConnected(verb string, s *SessionState) error {
	if s.Phase != PhaseConnected {
		return &CommandError{msg: fmt.Sprintf("/%s: not connected", verb)}
	}
	return nil
}

func cmdJoin(args []string, s *SessionState) error {
	if err := requireConnected("join", s); err != nil {
		return err
	}
	if len(args) != 1 {
		return errIncorrectArgCount("join", 1, len(args))
	}

	channel := args[0]
	if !ircmsg.IsValidChannel(channel) {
		return errInvalidArg("join", channel, "a channel name")
	}

	s.Outbound.Send(ircmsg.Join{Channels: []string{channel}})
	s.EnsureChannelTarget(channel)
	s.SelectTarget(len(s.AllTargets) - 1)

	return nil
}

func cmdRaw(fullLine, verb string, s *SessionState) error {
	if err := requireConnected("raw", s); err != nil {
		return err
	}

	text := strings.TrimSpace(strings.TrimPrefix(fullLine, verb))
	if text == "" {
		return errIncorrectArgCount("raw", 1, 0)
	}

	s.Outbound.Send(ircmsg.Raw{Text: text})
	return nil
}

func cmdMsg(args []string, s *SessionState) error {
	if len(args) != 1 {
		return errIncorrectArgCount("msg", 1, len(args))
	}

	nick := args[0]
	if !ircmsg.IsValidNick(nick) {
		return errInvalidArg("msg", nick, "a nickname")
	}

	s.EnsureConversationTarget(nick)
	idx := s.findTargetIdx(Target{Kind: TargetNickname, Name: nick})
	s.SelectTarget(idx)

	return nil
}

func cmdQuit(s *SessionState) error {
	s.Outbound.Send(ircmsg.Quit{})
	s.QuitRequested = true
	return nil
}

func currentChannel(verb string, s *SessionState) (*Channel, error) {
	t := s.CurrentTarget()
	if t.Kind != TargetChannel {
		return nil, &CommandError{msg: fmt.Sprintf("/%s: current target is not a channel", verb)}
	}
	ch, ok := s.Channels[t.Name]
	if !ok {
		return nil, &CommandError{msg: fmt.Sprintf("/%s: unknown channel %s", verb, t.Name)}
	}
	return ch, nil
}

func cmdPart(args []string, s *SessionState) error {
	ch, err := currentChannel("part", s)
	if err != nil {
		return err
	}

	part := ircmsg.Part{Channels: []string{ch.Name}}
	if len(args) > 0 {
		part.Reason = strings.Join(args, " ")
		part.HasReason = true
	}

	s.Outbound.Send(part)
	return nil
}

func cmdNick(args []string, s *SessionState) error {
	if len(args) != 1 {
		return errIncorrectArgCount("nick", 1, len(args))
	}

	newNick := args[0]
	if !ircmsg.IsValidNick(newNick) {
		return errInvalidArg("nick", newNick, "a nickname")
	}

	s.Outbound.Send(ircmsg.Nick{Nick: newNick})
	return nil
}

func cmdTopic(args []string, s *SessionState) error {
	ch, err := currentChannel("topic", s)
	if err != nil {
		return err
	}

	topic := ircmsg.Topic{Channel: ch.Name}
	if len(args) > 0 {
		topic.Topic = strings.Join(args, " ")
		topic.HasTopic = true
	}

	s.Outbound.Send(topic)
	return nil
}

func cmdMe(args []string, s *SessionState) error {
	if len(args) == 0 {
		return errIncorrectArgCount("me", 1, 0)
	}

	t := s.CurrentTarget()
	if t.Kind == TargetStatus {
		return &CommandError{msg: "/me: cannot send to status"}
	}

	action := strings.Join(args, " ")
	s.Outbound.Send(ircmsg.Privmsg{Targets: []string{t.Name}, Text: ircmsg.EncodeACTION(action)})
	s.AppendLine(t, NewLine(StyleEmote, fmt.Sprintf("* %s %s", s.Nick, action)))

	return nil
}

func cmdClear(s *SessionState) error {
	s.Scrollback[s.CurrentTarget()] = 0
	return nil
}
