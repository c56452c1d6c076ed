package main

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/asquared31415/irc-client/ircmsg"
	"github.com/asquared31415/irc-client/ircnet"
	"github.com/asquared31415/irc-client/session"
	"github.com/asquared31415/irc-client/termui"
)

// outboundQueue is a channel-backed session.Outbound. The reader/writer
// thread is its sole consumer, guaranteeing FIFO delivery to the server
// per spec.md §5.
type outboundQueue chan ircmsg.Command

func (q outboundQueue) Send(cmd ircmsg.Command) { q <- cmd }

const (
	outboundBuf = 64
	inboundBuf  = 64
)

// run dials the server, wires the framer/writer/dispatcher/UI together,
// and blocks until the session ends (explicit quit, server ERROR, or
// fatal I/O), per spec.md §2's data-flow description and §5's threading
// model: one reader/writer goroutine, one input goroutine, and this
// function acting as the main loop.
func run(opts options, screen tcell.Screen, log *logrus.Entry) error {
	conn, err := ircnet.Dial(opts.Addr, opts.TLS)
	if err != nil {
		return err
	}
	defer conn.Close()

	framer := ircnet.NewFramer(conn)
	writer := ircnet.NewWriter(conn)

	outbound := make(outboundQueue, outboundBuf)
	inbound := make(chan *ircmsg.Message, inboundBuf)

	state := session.NewSessionState(opts.Addr, opts.Nick, outbound, log)
	renderer := &termui.Renderer{Screen: screen}
	input := &termui.InputBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sendRegistration(outbound, opts)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		readerWriterLoop(ctx, framer, writer, outbound, inbound, log)
		cancel()
	}()

	go func() {
		defer wg.Done()
		inputLoop(ctx, screen, state, renderer, input)
		cancel()
	}()

	withLock(state, func() { renderer.Render(state, input) })

	mainLoop(ctx, cancel, inbound, state, renderer, input, log)

	state.Mu.Lock()
	state.QuitRequested = true
	state.Mu.Unlock()

	// mainLoop has already observed shutdown; wake a PollEvent that may
	// still be blocked in the input goroutine so it can observe ctx too.
	cancel()
	_ = screen.PostEvent(tcell.NewEventInterrupt(nil))

	wg.Wait()
	return nil
}

// sendRegistration emits the fixed registration sequence of spec.md
// §6: an optional PASS (Twitch token), then NICK, then USER.
func sendRegistration(outbound outboundQueue, opts options) {
	if opts.TwitchToken != "" {
		outbound.Send(ircmsg.Pass{Token: opts.TwitchToken})
	}
	outbound.Send(ircmsg.Nick{Nick: opts.Nick})
	outbound.Send(ircmsg.User{Username: opts.Nick, Realname: opts.Nick})
}

// mainLoop drains inbound messages and dispatches each one under the
// session lock, rendering after every mutation (spec.md §5: "no render
// runs concurrent with state mutation"). It returns once ctx is
// cancelled by any of the three cooperating goroutines.
func mainLoop(
	ctx context.Context,
	cancel context.CancelFunc,
	inbound <-chan *ircmsg.Message,
	state *session.SessionState,
	renderer *termui.Renderer,
	input *termui.InputBuffer,
	log *logrus.Entry,
) {
	for {
		select {
		case <-ctx.Done():
			return

		case msg := <-inbound:
			var derr error
			withLock(state, func() {
				derr = session.Dispatch(msg, state)
				renderer.Render(state, input)
			})
			if derr != nil {
				log.WithError(derr).Error("dispatcher aborted session")
				cancel()
				return
			}

			var quit bool
			state.Mu.Lock()
			quit = state.QuitRequested
			state.Mu.Unlock()
			if quit {
				cancel()
				return
			}

		case <-time.After(50 * time.Millisecond):
			// Periodically notice a quit requested by the input thread
			// (e.g. "/quit") even with no inbound traffic.
			var quit bool
			state.Mu.Lock()
			quit = state.QuitRequested
			state.Mu.Unlock()
			if quit {
				cancel()
				return
			}
		}
	}
}

func withLock(state *session.SessionState, fn func()) {
	state.Mu.Lock()
	defer state.Mu.Unlock()
	fn()
}
