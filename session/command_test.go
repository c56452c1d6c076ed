package session

import (
	"testing"

	"github.com/asquared31415/irc-client/ircmsg"
)

func TestHandleInputLinePlainMessage(t *testing.T) {
	s, ob := newTestState()
	s.Phase = PhaseConnected
	s.EnsureChannelTarget("#general")
	s.SelectTarget(1)

	HandleInputLine("hello there", s)

	if len(ob.sent) != 1 {
		t.Fatalf("got %d sent commands, want 1", len(ob.sent))
	}
	pm, ok := ob.sent[0].(ircmsg.Privmsg)
	if !ok || pm.Text != "hello there" || pm.Targets[0] != "#general" {
		t.Errorf("got %#v", ob.sent[0])
	}

	msgs := s.Channels["#general"].Messages
	if len(msgs) != 1 {
		t.Fatalf("expected local echo, got %d lines", len(msgs))
	}
}

func TestHandleInputLineToStatusRejected(t *testing.T) {
	s, ob := newTestState()

	HandleInputLine("hello", s)

	if len(ob.sent) != 0 {
		t.Fatalf("expected nothing sent, got %#v", ob.sent)
	}
	if len(s.StatusMessages) != 1 {
		t.Fatalf("expected a warning line, got %d", len(s.StatusMessages))
	}
}

func TestCmdJoinRequiresConnected(t *testing.T) {
	s, _ := newTestState()
	HandleInputLine("/join #general", s)

	if len(s.StatusMessages) != 1 {
		t.Fatalf("expected a rejection warning, got %d messages", len(s.StatusMessages))
	}
	if _, ok := s.Channels["#general"]; ok {
		t.Fatal("did not expect channel to be joined")
	}
}

func TestCmdJoinSendsAndSelects(t *testing.T) {
	s, ob := newTestState()
	s.Phase = PhaseConnected

	HandleInputLine("/join #general", s)

	if len(ob.sent) != 1 {
		t.Fatalf("got %d sent commands, want 1", len(ob.sent))
	}
	j, ok := ob.sent[0].(ircmsg.Join)
	if !ok || j.Channels[0] != "#general" {
		t.Errorf("got %#v", ob.sent[0])
	}
	if s.CurrentTarget().Name != "#general" {
		t.Errorf("CurrentTarget = %+v, want #general selected", s.CurrentTarget())
	}
}

func TestCmdJoinRejectsInvalidChannel(t *testing.T) {
	s, _ := newTestState()
	s.Phase = PhaseConnected

	HandleInputLine("/join notachannel", s)

	if len(s.StatusMessages) != 1 {
		t.Fatalf("expected a rejection warning, got %d", len(s.StatusMessages))
	}
}

func TestCmdPartCurrentChannel(t *testing.T) {
	s, ob := newTestState()
	s.EnsureChannelTarget("#general")
	s.SelectTarget(1)

	HandleInputLine("/part goodbye everyone", s)

	if len(ob.sent) != 1 {
		t.Fatalf("got %d sent commands, want 1", len(ob.sent))
	}
	p, ok := ob.sent[0].(ircmsg.Part)
	if !ok || p.Channels[0] != "#general" || p.Reason != "goodbye everyone" {
		t.Errorf("got %#v", ob.sent[0])
	}
}

func TestCmdPartOnStatusRejected(t *testing.T) {
	s, ob := newTestState()
	HandleInputLine("/part", s)

	if len(ob.sent) != 0 {
		t.Fatalf("expected nothing sent, got %#v", ob.sent)
	}
}

func TestCmdNickEmitsNick(t *testing.T) {
	s, ob := newTestState()
	HandleInputLine("/nick newnick", s)

	if len(ob.sent) != 1 {
		t.Fatalf("got %d sent commands, want 1", len(ob.sent))
	}
	n, ok := ob.sent[0].(ircmsg.Nick)
	if !ok || n.Nick != "newnick" {
		t.Errorf("got %#v", ob.sent[0])
	}
	if s.Nick != "tester" {
		t.Error("nick should only change once the server confirms via NICK dispatch")
	}
}

func TestCmdTopicQueryAndSet(t *testing.T) {
	s, ob := newTestState()
	s.EnsureChannelTarget("#general")
	s.SelectTarget(1)

	HandleInputLine("/topic", s)
	tq, ok := ob.sent[0].(ircmsg.Topic)
	if !ok || tq.HasTopic {
		t.Errorf("got %#v, want a bare topic query", ob.sent[0])
	}

	HandleInputLine("/topic new topic text", s)
	ts, ok := ob.sent[1].(ircmsg.Topic)
	if !ok || !ts.HasTopic || ts.Topic != "new topic text" {
		t.Errorf("got %#v", ob.sent[1])
	}
}

func TestCmdMeEmitsCTCPAndEchoes(t *testing.T) {
	s, ob := newTestState()
	s.EnsureChannelTarget("#general")
	s.SelectTarget(1)

	HandleInputLine("/me waves hello", s)

	pm, ok := ob.sent[0].(ircmsg.Privmsg)
	if !ok || !ircmsg.IsCTCP(pm.Text) {
		t.Fatalf("got %#v, want a CTCP-framed PRIVMSG", ob.sent[0])
	}

	msgs := s.Channels["#general"].Messages
	if len(msgs) != 1 || msgs[0].Spans[0].Style != StyleEmote {
		t.Fatalf("got %#v, want a local emote echo", msgs)
	}
}

func TestCmdClearResetsScrollback(t *testing.T) {
	s, _ := newTestState()
	s.Scrollback[s.CurrentTarget()] = 5

	HandleInputLine("/clear", s)

	if s.Scrollback[s.CurrentTarget()] != 0 {
		t.Errorf("Scrollback = %d, want 0", s.Scrollback[s.CurrentTarget()])
	}
}

func TestCmdMsgOpensConversation(t *testing.T) {
	s, _ := newTestState()
	HandleInputLine("/msg alice", s)

	if s.CurrentTarget().Kind != TargetNickname || s.CurrentTarget().Name != "alice" {
		t.Errorf("CurrentTarget = %+v, want conversation with alice", s.CurrentTarget())
	}
}

func TestCmdQuitSetsFlag(t *testing.T) {
	s, ob := newTestState()
	HandleInputLine("/quit", s)

	if !s.QuitRequested {
		t.Error("expected QuitRequested to be set")
	}
	if len(ob.sent) != 1 {
		t.Fatalf("got %d sent commands, want 1", len(ob.sent))
	}
}

func TestUnknownCommandWarns(t *testing.T) {
	s, _ := newTestState()
	HandleInputLine("/bogus", s)

	if len(s.StatusMessages) != 1 {
		t.Fatalf("expected a warning line, got %d", len(s.StatusMessages))
	}
}
