package session

import "github.com/asquared31415/irc-client/ircmsg"

type fakeOutbound struct {
	sent []ircmsg.Command
}

func (f *fakeOutbound) Send(cmd ircmsg.Command) {
	f.sent = append(f.sent, cmd)
}

func newTestState() (*SessionState, *fakeOutbound) {
	ob := &fakeOutbound{}
	s := NewSessionState("irc.example:6697", "tester", ob, nil)
	return s, ob
}
