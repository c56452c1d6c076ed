package termui

import "github.com/gdamore/tcell/v2"

// ActionKind enumerates the editing/navigation actions a terminal event
// can translate to, per spec.md §4.4.3.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionResize
	ActionType
	ActionEnter
	ActionBackspace
	ActionDelete
	ActionPreviousLine
	ActionNextLine
	ActionPreviousCharacter
	ActionNextCharacter
	ActionFirstCharacter
	ActionLastCharacter
	ActionPreviousWindow
	ActionNextWindow
)

// Action is the translated result of one terminal event.
type Action struct {
	Kind   ActionKind
	Rune   rune // valid when Kind == ActionType
	Width  int  // valid when Kind == ActionResize
	Height int  // valid when Kind == ActionResize
}

// TranslateEvent maps a raw tcell event to an Action using the default
// emacs-flavored bindings: Ctrl-P/N scroll, Ctrl-B/F move the cursor one
// grapheme, Ctrl-A/E jump to start/end, Ctrl-D delete-forward, Ctrl-Q/J
// switch windows, and plain Enter/Backspace/Delete/printable characters
// behave as expected. Anything else (key-up, mouse, etc.) yields
// ActionNone.
func TranslateEvent(ev tcell.Event) Action {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Action{Kind: ActionResize, Width: w, Height: h}

	case *tcell.EventKey:
		return translateKey(e)

	default:
		return Action{Kind: ActionNone}
	}
}

func translateKey(e *tcell.EventKey) Action {
	switch e.Key() {
	case tcell.KeyEnter:
		return Action{Kind: ActionEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Action{Kind: ActionBackspace}
	case tcell.KeyDelete:
		return Action{Kind: ActionDelete}
	case tcell.KeyCtrlP:
		return Action{Kind: ActionPreviousLine}
	case tcell.KeyCtrlN:
		return Action{Kind: ActionNextLine}
	case tcell.KeyCtrlB:
		return Action{Kind: ActionPreviousCharacter}
	case tcell.KeyCtrlF:
		return Action{Kind: ActionNextCharacter}
	case tcell.KeyCtrlA:
		return Action{Kind: ActionFirstCharacter}
	case tcell.KeyCtrlE:
		return Action{Kind: ActionLastCharacter}
	case tcell.KeyCtrlD:
		return Action{Kind: ActionDelete}
	case tcell.KeyCtrlQ:
		return Action{Kind: ActionPreviousWindow}
	case tcell.KeyCtrlJ:
		return Action{Kind: ActionNextWindow}
	case tcell.KeyRune:
		return Action{Kind: ActionType, Rune: e.Rune()}
	default:
		return Action{Kind: ActionNone}
	}
}
