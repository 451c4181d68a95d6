package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"chargrid/canvas"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func TestPaint(t *testing.T) {
	g, err := canvas.New(6, 3, ".")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.DrawRectangle(0, 0, 5, 2, "#")
	g.DrawText(1, 1, "hi", 0)
	g.Set(4, 1, "e\u0301")

	screen := newSimScreen(t, 10, 5)
	Paint(screen, g)

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			mainc, combc, _, _ := screen.GetContent(x, y)
			got := string(append([]rune{mainc}, combc...))
			if want := g.Get(x, y, ""); got != want {
				t.Errorf("screen (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}

	// Outside the grid the screen stays blank.
	if mainc, _, _, _ := screen.GetContent(8, 4); mainc != ' ' {
		t.Errorf("screen (8,4) = %q, want space", mainc)
	}
}

func TestViewReturnsOnKey(t *testing.T) {
	g, err := canvas.New(2, 1, "x")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	screen := newSimScreen(t, 4, 2)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	if err := View(screen, g); err != nil {
		t.Fatalf("View() error = %v", err)
	}

	if mainc, _, _, _ := screen.GetContent(1, 0); mainc != 'x' {
		t.Errorf("screen (1,0) = %q, want 'x'", mainc)
	}
}

// closedScreen reports no further events, as a finalised screen does.
type closedScreen struct {
	tcell.SimulationScreen
}

func (closedScreen) PollEvent() tcell.Event { return nil }

func TestViewScreenClosed(t *testing.T) {
	g, err := canvas.New(2, 1, "x")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	screen := closedScreen{newSimScreen(t, 4, 2)}
	if err := View(screen, g); !errors.Is(err, ErrScreenClosed) {
		t.Errorf("View() error = %v, want %v", err, ErrScreenClosed)
	}
}

func TestSplitCell(t *testing.T) {
	tests := []struct {
		cell  string
		mainc rune
		combc int
	}{
		{"", ' ', 0},
		{"a", 'a', 0},
		{"─", '─', 0},
		{"e\u0301", 'e', 1},
	}

	for _, tt := range tests {
		mainc, combc := splitCell(tt.cell)
		if mainc != tt.mainc || len(combc) != tt.combc {
			t.Errorf("splitCell(%q) = %q, %d combining; want %q, %d", tt.cell, mainc, len(combc), tt.mainc, tt.combc)
		}
	}
}
