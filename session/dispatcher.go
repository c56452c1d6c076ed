package session

import (
	"fmt"
	"strings"

	"github.com/asquared31415/irc-client/ircmsg"
)

// numeric reply codes referenced by the dispatcher table (spec.md §4.3
// plus the supplemental additions in SPEC_FULL.md §4.3.[FULL]).
const (
	rplWelcome    = 1
	rplYourHost   = 2
	rplCreated    = 3
	rplMyInfo     = 4
	rplISupport   = 5
	rplLUserOther = 251
	rplLUserOp    = 252 // through 255, plus 265/266 below share handling
	errNoMOTD     = 422
	rplMOTDStart  = 375
	rplMOTD       = 372
	rplEndOfMOTD  = 376
	rplNamReply   = 353
	rplEndOfNames = 366
	rplUModeIs    = 221
	rplTopic      = 332
	rplNoTopic    = 331
)

var lusersFamily = map[uint16]bool{
	251: true, 252: true, 253: true, 254: true, 255: true, 265: true, 266: true,
}

// Dispatch implements the dispatcher contract of spec.md §4.3 plus the
// supplemental NICK/KICK/TOPIC reactions of SPEC_FULL.md §4.3.[FULL].
// The caller holds state's lock for the duration of this call.
func Dispatch(msg *ircmsg.Message, s *SessionState) error {
	switch cmd := msg.Command.(type) {
	case ircmsg.Ping:
		s.Outbound.Send(ircmsg.Pong{Token: cmd.Token})

	case ircmsg.Error:
		s.AppendLine(Target{Kind: TargetStatus}, NewLine(StyleError, cmd.Reason))
		s.QuitRequested = true

	case ircmsg.Join:
		dispatchJoin(msg, cmd, s)

	case ircmsg.Part:
		dispatchPart(msg, cmd, s)

	case ircmsg.Mode:
		dispatchMode(msg, cmd, s)

	case ircmsg.Privmsg:
		dispatchPrivmsgNotice(msg, cmd.Targets, cmd.Text, "", s)

	case ircmsg.Notice:
		dispatchPrivmsgNotice(msg, cmd.Targets, cmd.Text, "NOTICE ", s)

	case ircmsg.Quit:
		reason := cmd.Reason
		if !cmd.HasReason {
			reason = "disconnected"
		}
		name := "someone"
		if msg.HasSrc {
			name = msg.Source.Name
		}
		s.AppendLine(Target{Kind: TargetStatus}, NewLine(StyleLeft, fmt.Sprintf("%s quit: %s", name, reason)))

	case ircmsg.Nick:
		dispatchNick(msg, cmd, s)

	case ircmsg.Numeric:
		dispatchNumeric(msg, cmd, s)

	case ircmsg.Pass, ircmsg.User:
		s.Warn("client received %s", verbOf(msg.Command))

	case ircmsg.Unknown:
		dispatchUnknown(msg, cmd, s)

	default:
		s.Warn("unhandled command: %#v", msg.Command)
	}

	return nil
}

func verbOf(cmd ircmsg.Command) string {
	switch cmd.(type) {
	case ircmsg.Pass:
		return "PASS"
	case ircmsg.User:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

func dispatchJoin(msg *ircmsg.Message, cmd ircmsg.Join, s *SessionState) {
	self := msg.HasSrc && msg.Source.Name == s.Nick

	for _, chanName := range cmd.Channels {
		ch, existed := s.Channels[chanName]
		if self {
			ch = s.EnsureChannelTarget(chanName)
		} else if !existed {
			continue
		}

		if msg.HasSrc {
			ch.Users[msg.Source.Name] = struct{}{}
			line := NewLine(StyleJoined, fmt.Sprintf("%s joined %s", msg.Source.Name, chanName))
			ch.Messages = append(ch.Messages, line)
		}
	}
}

func dispatchPart(msg *ircmsg.Message, cmd ircmsg.Part, s *SessionState) {
	self := msg.HasSrc && msg.Source.Name == s.Nick

	for _, chanName := range cmd.Channels {
		ch, ok := s.Channels[chanName]
		if !ok {
			continue
		}

		if msg.HasSrc {
			text := fmt.Sprintf("%s left", msg.Source.Name)
			if cmd.HasReason {
				text += ": " + cmd.Reason
			}
			ch.Messages = append(ch.Messages, NewLine(StyleLeft, text))
			delete(ch.Users, msg.Source.Name)
		}

		if self {
			s.RemoveChannelTarget(chanName)
		}
	}
}

func dispatchMode(msg *ircmsg.Message, cmd ircmsg.Mode, s *SessionState) {
	if !ircmsg.IsValidChannel(cmd.Target) {
		// Nickname MODE is acknowledged but not yet applied.
		return
	}

	ch, ok := s.Channels[cmd.Target]
	if !ok {
		s.Warn("MODE for unjoined channel %s", cmd.Target)
		return
	}

	if cmd.HasModeStr {
		ch.Modes = cmd.ModeString
	}
}

func dispatchPrivmsgNotice(msg *ircmsg.Message, targets []string, text, prefix string, s *SessionState) {
	for _, tname := range targets {
		if ircmsg.IsCTCP(text) {
			handleCTCP(msg, tname, text, s)
			continue
		}

		t := targetFor(tname, msg, s)
		who := "?"
		if msg.HasSrc {
			who = msg.Source.Name
		}
		s.AppendLine(t, NewLine(StyleDefault, prefix+fmt.Sprintf("%s %s", who, text)))
	}
}

// targetFor resolves the window a PRIVMSG/NOTICE to tname belongs in:
// a channel target for a channel name, or the sender's own conversation
// window for a message addressed to us directly (spec.md §4.3: "the
// conversation is keyed by the sender nick").
func targetFor(tname string, msg *ircmsg.Message, s *SessionState) Target {
	if ircmsg.IsValidChannel(tname) {
		return Target{Kind: TargetChannel, Name: tname}
	}

	sender := tname
	if msg.HasSrc {
		sender = msg.Source.Name
	}
	s.EnsureConversationTarget(sender)
	return Target{Kind: TargetNickname, Name: sender}
}

func handleCTCP(msg *ircmsg.Message, tname, text string, s *SessionState) {
	ctcp := ircmsg.ParseCTCP(text)
	who := "?"
	if msg.HasSrc {
		who = msg.Source.Name
	}

	switch ctcp.Verb {
	case "ACTION":
		t := targetFor(tname, msg, s)
		s.AppendLine(t, NewLine(StyleEmote, fmt.Sprintf("* %s %s", who, ctcp.Params)))

	case "CLIENTINFO":
		if msg.HasSrc {
			reply := ircmsg.CTCP{Verb: "CLIENTINFO", Params: ircmsg.ClientInfoReply, HasParams: true}
			s.Outbound.Send(ircmsg.Notice{Targets: []string{msg.Source.Name}, Text: reply.Encode()})
		}

	default:
		s.Warn("unrecognized CTCP %s from %s", ctcp.Verb, who)
	}
}

func dispatchNick(msg *ircmsg.Message, cmd ircmsg.Nick, s *SessionState) {
	if !msg.HasSrc {
		return
	}

	old := msg.Source.Name

	if old == s.Nick {
		s.Nick = cmd.Nick
		s.RenameUserEverywhere(old, cmd.Nick)
		return
	}

	channels := s.RenameUserEverywhere(old, cmd.Nick)
	line := NewLine(StyleDefault, fmt.Sprintf("%s is now known as %s", old, cmd.Nick))
	for _, chanName := range channels {
		s.Channels[chanName].Messages = append(s.Channels[chanName].Messages, line)
	}
}

func dispatchNumeric(msg *ircmsg.Message, cmd ircmsg.Numeric, s *SessionState) {
	args := cmd.Args

	switch {
	case cmd.Num == rplWelcome:
		dispatchWelcome(args, s)

	case cmd.Num == rplYourHost || cmd.Num == rplCreated:
		s.StatusMessages = append(s.StatusMessages, NewLine(StyleStatus, lastArg(args)))

	case cmd.Num == rplMyInfo:
		s.StatusMessages = append(s.StatusMessages, NewLine(StyleStatus, joinArgsFrom(args, 1)))

	case cmd.Num == rplISupport:
		// Ignored; a future version could parse capabilities.

	case lusersFamily[cmd.Num]:
		dispatchLUsers(cmd.Num, args, s)

	case cmd.Num == errNoMOTD:
		s.StatusMessages = append(s.StatusMessages, NewLine(StyleWarn, lastArg(args)))

	case cmd.Num == rplMOTDStart || cmd.Num == rplMOTD || cmd.Num == rplEndOfMOTD:
		s.StatusMessages = append(s.StatusMessages, NewLine(StyleStatus, lastArg(args)))

	case cmd.Num == rplNamReply:
		dispatchNamReply(args, s)

	case cmd.Num == rplEndOfNames:
		dispatchEndOfNames(args, s)

	case cmd.Num == rplUModeIs:
		// Acknowledged, unimplemented.

	case cmd.Num == rplTopic:
		dispatchRplTopic(args, s)

	case cmd.Num == rplNoTopic:
		dispatchRplNoTopic(args, s)

	default:
		s.Warn("unhandled numeric %03d: %s", cmd.Num, dumpArgs(args))
	}
}

func dispatchWelcome(args []ircmsg.Param, s *SessionState) {
	if s.Phase != PhaseRegistration {
		s.Warn("received RPL_WELCOME outside Registration phase")
		return
	}

	assignedNick := strArg(args, 0)
	welcomeText := lastArg(args)

	if assignedNick != "" && assignedNick != s.RequestedNick {
		s.Warn("server assigned nick %s (requested %s)", assignedNick, s.RequestedNick)
	}
	if assignedNick != "" {
		s.Nick = assignedNick
	}

	s.Phase = PhaseConnected
	s.StatusMessages = append(s.StatusMessages, NewLine(StyleStatus, welcomeText))
}

// lusersCountArg reports whether num carries a separate count token
// before its trailing text. RPL_LUSERCLIENT (251) packs everything into
// a single trailing string ("There are X users..."); the rest of the
// LUSERS family (252-255, 265, 266) send the count as its own arg.
func lusersCountArg(num uint16) bool {
	return num != rplLUserOther
}

func dispatchLUsers(num uint16, args []ircmsg.Param, s *SessionState) {
	text := lastArg(args)
	if lusersCountArg(num) && len(args) >= 2 {
		count := args[len(args)-2].String()
		text = count + " " + text
	}
	s.StatusMessages = append(s.StatusMessages, NewLine(StyleStatus, text))
}

func dispatchNamReply(args []ircmsg.Param, s *SessionState) {
	if len(args) < 3 {
		s.Warn("malformed RPL_NAMREPLY")
		return
	}

	chanName := args[len(args)-2].String()
	names := strings.Fields(args[len(args)-1].String())
	s.Pending.ActiveNames[chanName] = append(s.Pending.ActiveNames[chanName], names...)
}

func dispatchEndOfNames(args []ircmsg.Param, s *SessionState) {
	if len(args) < 2 {
		s.Warn("malformed RPL_ENDOFNAMES")
		return
	}

	chanName := args[len(args)-2].String()
	names, ok := s.Pending.ActiveNames[chanName]
	if !ok {
		s.Warn("RPL_ENDOFNAMES for %s with no accumulator", chanName)
		return
	}
	delete(s.Pending.ActiveNames, chanName)

	ch, ok := s.Channels[chanName]
	if !ok {
		s.Warn("RPL_ENDOFNAMES for unknown channel %s", chanName)
		return
	}

	for _, n := range names {
		ch.Users[strings.TrimLeft(n, "~&@%+")] = struct{}{}
	}

	ch.Messages = append(ch.Messages, NewLine(StyleStatus, fmt.Sprintf("names: %s", strings.Join(names, " "))))
}

func dispatchRplTopic(args []ircmsg.Param, s *SessionState) {
	if len(args) < 2 {
		return
	}
	chanName := args[len(args)-2].String()
	topic := args[len(args)-1].String()
	if ch, ok := s.Channels[chanName]; ok {
		ch.Topic = topic
	}
}

func dispatchRplNoTopic(args []ircmsg.Param, s *SessionState) {
	if len(args) < 2 {
		return
	}
	chanName := args[len(args)-2].String()
	if ch, ok := s.Channels[chanName]; ok {
		ch.Topic = ""
	}
}

func dispatchUnknown(msg *ircmsg.Message, cmd ircmsg.Unknown, s *SessionState) {
	switch cmd.Verb {
	case "OPER", "NAMES", "LIST":
		s.Warn("client received %s", cmd.Verb)
		return

	case "KICK":
		dispatchKick(msg, cmd, s)
		return
	}

	s.Warn("unhandled %s: %s", cmd.Verb, dumpArgs(cmd.Args))
}

func dispatchKick(msg *ircmsg.Message, cmd ircmsg.Unknown, s *SessionState) {
	if len(cmd.Args) < 2 {
		s.Warn("malformed KICK")
		return
	}

	chanName := cmd.Args[0].String()
	kicked := cmd.Args[1].String()
	reason := ""
	hasReason := len(cmd.Args) > 2
	if hasReason {
		reason = cmd.Args[len(cmd.Args)-1].String()
	}

	ch, ok := s.Channels[chanName]
	if !ok {
		return
	}

	by := "?"
	if msg.HasSrc {
		by = msg.Source.Name
	}

	if kicked == s.Nick {
		text := fmt.Sprintf("you were kicked by %s", by)
		if hasReason {
			text += ": " + reason
		}
		s.AppendLine(Target{Kind: TargetStatus}, NewLine(StyleError, text))
		s.RemoveChannelTarget(chanName)
		return
	}

	delete(ch.Users, kicked)
	text := fmt.Sprintf("%s was kicked by %s", kicked, by)
	if hasReason {
		text += ": " + reason
	}
	ch.Messages = append(ch.Messages, NewLine(StyleLeft, text))
}

func strArg(args []ircmsg.Param, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i].String()
}

func lastArg(args []ircmsg.Param) string {
	if len(args) == 0 {
		return ""
	}
	return args[len(args)-1].String()
}

func joinArgsFrom(args []ircmsg.Param, from int) string {
	if from >= len(args) {
		return ""
	}
	parts := make([]string, 0, len(args)-from)
	for _, a := range args[from:] {
		parts = append(parts, a.Wire())
	}
	return strings.Join(parts, " ")
}

func dumpArgs(args []ircmsg.Param) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Wire()
	}
	return strings.Join(parts, " ")
}
