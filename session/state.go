package session

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// SessionState is the single shared mutable object every thread
// touches. Mu protects every field below; callers acquire it for the
// minimum span needed (spec.md §4.3's shared-state policy: one mutex,
// no nested locks).
type SessionState struct {
	Mu sync.Mutex

	Addr          string
	RequestedNick string
	Nick          string
	Phase         Phase

	Channels      map[string]*Channel
	Conversations map[string]*UserConversation
	Pending       *PendingNames

	AllTargets     []Target
	SelectedIdx    int
	StatusMessages []Line
	Scrollback     map[Target]int

	Outbound Outbound
	Log      *logrus.Entry

	// QuitRequested signals orderly shutdown. The main loop checks it
	// after each dispatched message and periodically, and cancels the
	// shared context that the other goroutines watch.
	QuitRequested bool
}

// NewSessionState builds a fresh session in the Registration phase with
// only the Status target present.
func NewSessionState(addr, requestedNick string, outbound Outbound, log *logrus.Entry) *SessionState {
	return &SessionState{
		Addr:          addr,
		RequestedNick: requestedNick,
		Nick:          requestedNick,
		Phase:         PhaseRegistration,
		Channels:      make(map[string]*Channel),
		Conversations: make(map[string]*UserConversation),
		Pending:       newPendingNames(),
		AllTargets:    []Target{{Kind: TargetStatus}},
		SelectedIdx:   0,
		Scrollback:    make(map[Target]int),
		Outbound:      outbound,
		Log:           log,
	}
}

// CurrentTarget returns the selected window.
func (s *SessionState) CurrentTarget() Target {
	return s.AllTargets[s.SelectedIdx]
}

// SelectTarget moves the selected window, clamped to the valid range.
func (s *SessionState) SelectTarget(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.AllTargets) {
		idx = len(s.AllTargets) - 1
	}
	s.SelectedIdx = idx
}

// SelectStatus selects the Status window.
func (s *SessionState) SelectStatus() {
	s.SelectedIdx = 0
}

func (s *SessionState) findTargetIdx(t Target) int {
	for i, existing := range s.AllTargets {
		if existing == t {
			return i
		}
	}
	return -1
}

// EnsureChannelTarget adds name as a joined channel and a window if
// absent, returning the Channel record.
func (s *SessionState) EnsureChannelTarget(name string) *Channel {
	ch, ok := s.Channels[name]
	if !ok {
		ch = NewChannel(name)
		s.Channels[name] = ch
	}

	t := Target{Kind: TargetChannel, Name: name}
	if s.findTargetIdx(t) == -1 {
		s.AllTargets = append(s.AllTargets, t)
	}

	return ch
}

// RemoveChannelTarget drops a channel from state and from the target
// list. If it was selected, Status becomes selected.
func (s *SessionState) RemoveChannelTarget(name string) {
	delete(s.Channels, name)
	delete(s.Pending.ActiveNames, name)

	t := Target{Kind: TargetChannel, Name: name}
	idx := s.findTargetIdx(t)
	if idx == -1 {
		return
	}

	wasSelected := s.SelectedIdx == idx
	s.AllTargets = append(s.AllTargets[:idx], s.AllTargets[idx+1:]...)
	delete(s.Scrollback, t)

	if wasSelected {
		s.SelectStatus()
	} else if s.SelectedIdx > idx {
		s.SelectedIdx--
	}
}

// EnsureConversationTarget adds nick as a private conversation window
// if absent, returning the UserConversation record.
func (s *SessionState) EnsureConversationTarget(nick string) *UserConversation {
	uc, ok := s.Conversations[nick]
	if !ok {
		uc = &UserConversation{Nick: nick}
		s.Conversations[nick] = uc
	}

	t := Target{Kind: TargetNickname, Name: nick}
	if s.findTargetIdx(t) == -1 {
		s.AllTargets = append(s.AllTargets, t)
	}

	return uc
}

// AppendLine appends a line to the history backing t, creating
// underlying state if the kind requires it. Status lines always work;
// Channel/Nickname targets must already exist in AllTargets.
func (s *SessionState) AppendLine(t Target, line Line) {
	switch t.Kind {
	case TargetStatus:
		s.StatusMessages = append(s.StatusMessages, line)
	case TargetChannel:
		if ch, ok := s.Channels[t.Name]; ok {
			ch.Messages = append(ch.Messages, line)
		}
	case TargetNickname:
		uc := s.EnsureConversationTarget(t.Name)
		uc.Messages = append(uc.Messages, line)
	}
}

// Warn appends a yellow-styled warning line to the currently selected
// target and, if a logger is attached, records it to disk too. Never
// fatal, per spec.md §4.3's dispatcher contract.
func (s *SessionState) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.AppendLine(s.CurrentTarget(), NewLine(StyleWarn, msg))
	if s.Log != nil {
		s.Log.Warn(msg)
	}
}

// Error appends a red-styled error line to the currently selected
// target and, if a logger is attached, records it to disk too. Never
// fatal on its own; callers decide whether to also set QuitRequested.
func (s *SessionState) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.AppendLine(s.CurrentTarget(), NewLine(StyleError, msg))
	if s.Log != nil {
		s.Log.Error(msg)
	}
}

// History returns the line history backing t, or nil if unknown.
func (s *SessionState) History(t Target) []Line {
	switch t.Kind {
	case TargetStatus:
		return s.StatusMessages
	case TargetChannel:
		if ch, ok := s.Channels[t.Name]; ok {
			return ch.Messages
		}
	case TargetNickname:
		if uc, ok := s.Conversations[t.Name]; ok {
			return uc.Messages
		}
	}
	return nil
}

// RenameUserEverywhere replaces oldNick with newNick in every channel's
// user set (used on NICK from another user, per SPEC_FULL.md §4.3).
func (s *SessionState) RenameUserEverywhere(oldNick, newNick string) (inChannels []string) {
	for name, ch := range s.Channels {
		if _, ok := ch.Users[oldNick]; ok {
			delete(ch.Users, oldNick)
			ch.Users[newNick] = struct{}{}
			inChannels = append(inChannels, name)
		}
	}
	return inChannels
}
