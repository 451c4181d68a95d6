// Package terminal shows a rendered grid on an interactive terminal.
package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"chargrid/core"
)

// ErrScreenClosed is returned by View when the screen is finalised before
// a key is pressed.
var ErrScreenClosed = errors.New("terminal: screen closed")

// Paint copies every cell of c onto screen at the top-left corner using
// the default style. Cells beyond the screen size are clipped by tcell.
func Paint(screen tcell.Screen, c core.Canvas) {
	screen.Clear()
	columns, rows := c.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			mainc, combc := splitCell(c.Get(x, y, " "))
			screen.SetContent(x, y, mainc, combc, tcell.StyleDefault)
		}
	}
	screen.Show()
}

// splitCell turns a one-character cell into tcell's primary rune plus
// combining runes.
func splitCell(cell string) (rune, []rune) {
	runes := []rune(cell)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

// View paints c on screen and blocks until a key is pressed. The screen
// must already be initialised; View does not finalise it.
func View(screen tcell.Screen, c core.Canvas) error {
	Paint(screen, c)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Paint(screen, c)
		case *tcell.EventKey:
			return nil
		case nil:
			return ErrScreenClosed
		}
	}
}

// Show opens the controlling terminal, displays c until a key is pressed
// and restores the terminal.
func Show(c core.Canvas) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	// Ensure terminal is restored even on panic
	defer screen.Fini()

	return View(screen, c)
}
