package canvas

import (
	"fmt"

	"chargrid/core"
)

// DrawLine draws a line between two points using Bresenham's algorithm.
// Both end points are included. Without a character the background is used.
func (g *Grid) DrawLine(x1, y1, x2, y2 int, char ...string) error {
	c, err := g.resolve(char)
	if err != nil {
		return err
	}
	g.line(x1, y1, x2, y2, c)
	return nil
}

func (g *Grid) line(x1, y1, x2, y2 int, char string) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}

	errTerm := dx - dy
	g.setClipped(x2, y2, char)
	for x1 != x2 || y1 != y2 {
		g.setClipped(x1, y1, char)

		// Both tests use the error from before this step.
		e2 := 2 * errTerm
		if e2 > -dy {
			errTerm -= dy
			x1 += sx
		}
		if e2 < dx {
			errTerm += dx
			y1 += sy
		}
	}
}

// DrawRectangle draws the outline of the box with corners (x1, y1) and
// (x2, y2). Corners may be given in any order.
func (g *Grid) DrawRectangle(x1, y1, x2, y2 int, char ...string) error {
	c, err := g.resolve(char)
	if err != nil {
		return err
	}
	g.outline(x1, y1, x2, y2, c)
	return nil
}

func (g *Grid) outline(x1, y1, x2, y2 int, char string) {
	g.line(x1, y1, x2, y1, char)
	g.line(x1, y1, x1, y2, char)
	g.line(x2, y1, x2, y2, char)
	g.line(x1, y2, x2, y2, char)
}

// FillRectangle fills the inclusive box from (x1, y1) to (x2, y2).
// x1 must be <= x2 and y1 must be <= y2; reversed corners fill nothing.
func (g *Grid) FillRectangle(x1, y1, x2, y2 int, char ...string) error {
	c, err := g.resolve(char)
	if err != nil {
		return err
	}
	g.fill(x1, y1, x2, y2, c)
	return nil
}

func (g *Grid) fill(x1, y1, x2, y2 int, char string) {
	// Clip to grid bounds
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 >= g.width {
		x2 = g.width - 1
	}
	if y2 >= g.height {
		y2 = g.height - 1
	}

	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.cells[y][x] = char
		}
	}
}

// Clear fills every cell with the background character.
func (g *Grid) Clear() {
	g.fill(0, 0, g.width-1, g.height-1, g.background)
	Logger().Debug("canvas: grid cleared", "background", g.background)
}

// DrawCircle draws a circle outline centred on (cx, cy).
// A radius of 0 sets the centre only; a negative radius draws nothing.
func (g *Grid) DrawCircle(cx, cy, radius int, char ...string) error {
	c, err := g.resolve(char)
	if err != nil {
		return err
	}

	x0, y0 := 0, radius
	delta := 2 - 2*radius
	for y0 >= 0 {
		g.setClipped(cx+x0, cy+y0, c)
		g.setClipped(cx+x0, cy-y0, c)
		g.setClipped(cx-x0, cy+y0, c)
		g.setClipped(cx-x0, cy-y0, c)

		// Inside the circle: step horizontally.
		if e := 2*(delta+y0) - 1; delta < 0 && e <= 0 {
			x0++
			delta += 2*x0 + 1
			continue
		}

		// Outside the circle: step vertically.
		if e := 2*(delta-x0) - 1; delta > 0 && e > 0 {
			y0--
			delta += 1 - 2*y0
			continue
		}

		x0++
		delta += 2 * (x0 - y0)
		y0--
	}
	return nil
}

// DrawText writes text starting at (x, y), one character per cell, advancing
// along dir. If a border character is given, an outline is drawn one cell
// outside the text.
func (g *Grid) DrawText(x, y int, text string, dir core.Direction, border ...string) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if len(border) > 1 {
		return fmt.Errorf("%w: expected at most one border character, got %d", ErrInvalidCharacter, len(border))
	}
	if len(border) == 1 {
		if err := CheckChar(border[0]); err != nil {
			return err
		}
	}

	dx, dy := dir.Step()
	start := core.Point{X: x, Y: y}
	chars := graphemes(text)
	for i, ch := range chars {
		p := start.Add(i*dx, i*dy)
		g.setClipped(p.X, p.Y, ch)
	}

	if len(border) == 1 {
		b := textBounds(x, y, len(chars), dir)
		g.outline(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, border[0])
	}
	return nil
}

// TextBounds returns the box DrawText uses for the border of text placed
// at (x, y) along dir.
func TextBounds(x, y int, text string, dir core.Direction) core.Bounds {
	return textBounds(x, y, len(graphemes(text)), dir)
}

func textBounds(x, y, n int, dir core.Direction) core.Bounds {
	if dir == core.Vertical {
		return core.Bounds{Min: core.Point{X: x - 1, Y: y - 1}, Max: core.Point{X: x + 1, Y: y + n}}
	}
	return core.Bounds{Min: core.Point{X: x - 1, Y: y - 1}, Max: core.Point{X: x + n, Y: y + 1}}
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
