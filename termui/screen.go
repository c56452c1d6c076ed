package termui

import "github.com/gdamore/tcell/v2"

// NewScreen initializes a tcell screen: raw mode, alternate screen
// buffer, mouse reporting. Callers must call Screen.Fini (directly, or
// via a recover()ed panic handler) before the process exits, so the
// terminal is always restored per spec.md §7.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.EnableMouse()
	screen.Clear()

	return screen, nil
}
