package canvas

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestGrid creates a grid with a visible background so expected
// renders survive editors that strip trailing spaces.
func newTestGrid(t *testing.T, columns, rows int) *Grid {
	t.Helper()
	g, err := New(columns, rows, ".")
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", columns, rows, err)
	}
	return g
}

// assertGridEquals checks the rendered grid against expected, which may
// start with a newline for readability.
func assertGridEquals(t *testing.T, g *Grid, expected string) {
	t.Helper()
	expected = strings.TrimPrefix(expected, "\n")
	if diff := cmp.Diff(strings.Split(expected, "\n"), g.Rows()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s\n\nActual:\n%s", diff, g.Render())
	}
}

// assertCharAt verifies a character at a specific position.
func assertCharAt(t *testing.T, g *Grid, x, y int, expected string) {
	t.Helper()
	if got := g.Get(x, y, "<out>"); got != expected {
		t.Errorf("character at (%d,%d): expected %q, got %q", x, y, expected, got)
	}
}

// countChar returns how many cells hold char.
func countChar(g *Grid, char string) int {
	n := 0
	for _, row := range g.Cells() {
		for _, c := range row {
			if c == char {
				n++
			}
		}
	}
	return n
}
