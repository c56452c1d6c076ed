package termui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/asquared31415/irc-client/session"
)

// Renderer draws a SessionState's current frame onto a tcell screen
// using the fixed top-level layout from spec.md §4.4: [Fill(1) main,
// Exact(1) status, Exact(1) input].
type Renderer struct {
	Screen tcell.Screen
}

var topLevelLayout = Layout{
	Axis: Vertical,
	Sections: []Section{
		Fill(1),
		Exact(1),
		Exact(1),
	},
}

var styleTable = map[session.Style]tcell.Style{
	session.StyleDefault: tcell.StyleDefault,
	session.StyleNick:    tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true),
	session.StyleJoined:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	session.StyleLeft:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	session.StyleWarn:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	session.StyleError:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	session.StyleEmote:   tcell.StyleDefault.Foreground(tcell.ColorPurple).Italic(true),
	session.StyleStatus:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
}

func tcellStyle(s session.Style) tcell.Style {
	if st, ok := styleTable[s]; ok {
		return st
	}
	return tcell.StyleDefault
}

// Render recomputes the layout for the screen's current size and draws
// the main scrollback, status line, and input line. The caller must
// hold the session's lock: renders are serialized by it, per spec.md
// §5.
func (r *Renderer) Render(s *session.SessionState, input *InputBuffer) {
	r.Screen.Clear()

	w, h := r.Screen.Size()
	rects := topLevelLayout.Calc(w, h)
	mainRect, statusRect, inputRect := rects[0], rects[1], rects[2]

	target := s.CurrentTarget()
	r.drawMain(mainRect, s.History(target), s.Scrollback[target])
	r.drawStatus(statusRect, s, target)
	r.drawInput(inputRect, input)

	r.Screen.Show()
}

func (r *Renderer) drawMain(rect Rect, history []session.Line, scrollback int) {
	if rect.Height <= 0 || rect.Width <= 0 {
		return
	}

	var wrapped []session.Line
	budget := rect.Height
	skip := scrollback

	for i := len(history) - 1; i >= 0 && budget > 0; i-- {
		if skip > 0 {
			skip--
			continue
		}

		rows := WordWrap(history[i], rect.Width)
		if len(rows) > budget {
			rows = rows[len(rows)-budget:]
		}
		wrapped = append(rows, wrapped...)
		budget -= len(rows)
	}

	startRow := rect.Y + rect.Height - len(wrapped)
	for i, line := range wrapped {
		r.drawLine(rect.X, startRow+i, rect.Width, line)
	}
}

func (r *Renderer) drawLine(x, y, width int, line session.Line) {
	col := x
	for _, span := range line.Spans {
		style := tcellStyle(span.Style)
		for _, g := range Graphemes(span.Text) {
			w := clusterWidth(g)
			if col+w > x+width {
				return
			}
			runes := []rune(g)
			r.Screen.SetContent(col, y, runes[0], runes[1:], style)
			col += w
		}
	}
}

func (r *Renderer) drawStatus(rect Rect, s *session.SessionState, target session.Target) {
	phase := ""
	if s.Phase == session.PhaseRegistration {
		phase = " [*REGISTRATION*]"
	}

	name := targetLabel(target)
	line := fmt.Sprintf("%s%s %s - %s", s.Addr, phase, s.Nick, name)

	if target.Kind == session.TargetChannel {
		if ch, ok := s.Channels[target.Name]; ok && ch.Topic != "" {
			line += " — " + ch.Topic
		}
	}

	style := tcellStyle(session.StyleStatus).Background(tcell.ColorNavy)
	r.drawPaddedLine(rect, line, style)
}

func targetLabel(t session.Target) string {
	switch t.Kind {
	case session.TargetStatus:
		return "Status"
	default:
		return t.Name
	}
}

func (r *Renderer) drawPaddedLine(rect Rect, text string, style tcell.Style) {
	truncated := Truncate(session.NewLine(session.StyleStatus, text), rect.Width)

	col := rect.X
	for _, span := range truncated.Spans {
		for _, g := range Graphemes(span.Text) {
			w := clusterWidth(g)
			runes := []rune(g)
			r.Screen.SetContent(col, rect.Y, runes[0], runes[1:], style)
			col += w
		}
	}

	for col < rect.X+rect.Width {
		r.Screen.SetContent(col, rect.Y, ' ', nil, style)
		col++
	}
}

func (r *Renderer) drawInput(rect Rect, input *InputBuffer) {
	style := tcell.StyleDefault.Background(tcell.ColorBlue)

	// Window subtracts its own reserved cursor column, so the full
	// rectangle width is passed here unmodified.
	visible, cursorCol := Window(input, rect.Width)

	col := rect.X
	for _, g := range Graphemes(visible) {
		w := clusterWidth(g)
		runes := []rune(g)
		r.Screen.SetContent(col, rect.Y, runes[0], runes[1:], style)
		col += w
	}
	for col < rect.X+rect.Width {
		r.Screen.SetContent(col, rect.Y, ' ', nil, style)
		col++
	}

	r.Screen.ShowCursor(rect.X+cursorCol, rect.Y)
}
