package main

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/asquared31415/irc-client/ircmsg"
	"github.com/asquared31415/irc-client/ircnet"
	"github.com/asquared31415/irc-client/session"
	"github.com/asquared31415/irc-client/termui"
)

// readerWriterLoop is the reader/writer thread of spec.md §4.3: it owns
// the framer, draining one outbound command per iteration (if any) and
// forwarding every parsed inbound message onto inbound. It returns on
// ctx cancellation or any I/O error.
func readerWriterLoop(
	ctx context.Context,
	framer *ircnet.Framer,
	writer *ircnet.Writer,
	outbound <-chan ircmsg.Command,
	inbound chan<- *ircmsg.Message,
	log *logrus.Entry,
) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		select {
		case cmd := <-outbound:
			if err := writer.Write(ircmsg.NewMessage(cmd)); err != nil {
				log.WithError(err).Error("write failed")
				return
			}
		default:
		}

		msgs, err := framer.Recv()
		if err != nil {
			log.WithError(err).Error("connection lost")
			return
		}

		for _, msg := range msgs {
			select {
			case inbound <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// inputLoop is the input thread of spec.md §4.3: it polls terminal
// events, translates them into editing Actions (§4.4.3), applies them
// to the input buffer or forwards a finished line to the command/input
// handler, and re-renders after every change. PollEvent itself blocks
// until the next terminal event or screen.Fini/PostEvent, so the poll
// happens on its own goroutine and is joined with ctx here.
func inputLoop(
	ctx context.Context,
	screen tcell.Screen,
	state *session.SessionState,
	renderer *termui.Renderer,
	input *termui.InputBuffer,
) {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, isInterrupt := ev.(*tcell.EventInterrupt); isInterrupt {
				continue
			}

			action := termui.TranslateEvent(ev)
			if applyAction(action, state, input) {
				return
			}

			withLock(state, func() { renderer.Render(state, input) })
		}
	}
}

// applyAction mutates state/input per the translated Action, returning
// true if the session should now quit (set by a finished "/quit" line).
func applyAction(action termui.Action, state *session.SessionState, input *termui.InputBuffer) (quit bool) {
	switch action.Kind {
	case termui.ActionNone:
		return false

	case termui.ActionResize:
		return false

	case termui.ActionType:
		input.Insert(string(action.Rune))

	case termui.ActionEnter:
		line := input.Finish()
		withLock(state, func() { session.HandleInputLine(line, state) })
		state.Mu.Lock()
		quit = state.QuitRequested
		state.Mu.Unlock()

	case termui.ActionBackspace:
		input.Backspace()

	case termui.ActionDelete:
		input.Delete()

	case termui.ActionPreviousCharacter:
		input.Offset(-1)

	case termui.ActionNextCharacter:
		input.Offset(1)

	case termui.ActionFirstCharacter:
		input.Select(0)

	case termui.ActionLastCharacter:
		input.Offset(len(input.Text))

	case termui.ActionPreviousLine:
		scrollCurrentTarget(state, 1)

	case termui.ActionNextLine:
		scrollCurrentTarget(state, -1)

	case termui.ActionPreviousWindow:
		selectRelativeTarget(state, -1)

	case termui.ActionNextWindow:
		selectRelativeTarget(state, 1)
	}

	return quit
}

func scrollCurrentTarget(state *session.SessionState, delta int) {
	state.Mu.Lock()
	defer state.Mu.Unlock()

	t := state.CurrentTarget()
	next := state.Scrollback[t] + delta
	if next < 0 {
		next = 0
	}
	state.Scrollback[t] = next
}

func selectRelativeTarget(state *session.SessionState, delta int) {
	state.Mu.Lock()
	defer state.Mu.Unlock()

	n := len(state.AllTargets)
	next := (state.SelectedIdx + delta + n) % n
	state.SelectTarget(next)
}
