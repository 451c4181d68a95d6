package canvas

import (
	"errors"
	"fmt"
	"strings"

	"chargrid/core"
)

// Default grid settings used by NewDefault.
const (
	DefaultColumns    = 80
	DefaultRows       = 25
	DefaultBackground = " "
)

// Common errors
var (
	ErrInvalidDimension = errors.New("columns and rows must be more than 0")
	ErrInvalidCharacter = errors.New("char must be a single character")
	ErrOutOfBounds      = errors.New("position out of bounds")

	ErrInvalidPosition  = core.ErrInvalidPosition
	ErrInvalidDirection = core.ErrInvalidDirection
)

// Grid is a fixed-size matrix of single-character cells with drawing
// primitives.
//
// Thread Safety:
// Grid is NOT thread-safe. Every operation, reads included, must be
// serialized externally if a grid is shared between goroutines.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X is the column and increases rightward
//   - Y is the row and increases downward
//
// Clipping:
// Drawing outside the grid is silently ignored, so shapes that straddle
// an edge are drawn partially. Malformed arguments (bad characters,
// dimensions, directions) are reported as errors before anything is drawn.
type Grid struct {
	cells      [][]string
	width      int
	height     int
	background string
}

// New creates a grid of the given size filled with background.
func New(columns, rows int, background string) (*Grid, error) {
	if err := checkSize(columns, rows); err != nil {
		return nil, err
	}
	if err := CheckChar(background); err != nil {
		return nil, err
	}

	g := &Grid{
		cells:      newCells(columns, rows, background),
		width:      columns,
		height:     rows,
		background: background,
	}
	Logger().Debug("canvas: grid created", "columns", columns, "rows", rows, "background", background)
	return g, nil
}

// NewDefault creates an 80x25 grid filled with spaces.
func NewDefault() *Grid {
	g, _ := New(DefaultColumns, DefaultRows, DefaultBackground)
	return g
}

func checkSize(columns, rows int) error {
	if columns <= 0 || rows <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, columns, rows)
	}
	return nil
}

func newCells(columns, rows int, fill string) [][]string {
	cells := make([][]string, rows)
	for y := range cells {
		cells[y] = newRow(columns, fill)
	}
	return cells
}

func newRow(columns int, fill string) []string {
	row := make([]string, columns)
	for x := range row {
		row[x] = fill
	}
	return row
}

// Size returns the number of columns and rows.
func (g *Grid) Size() (columns, rows int) {
	return g.width, g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Background returns the current background character.
func (g *Grid) Background() string {
	return g.background
}

// SetBackground changes the background character. Existing cells keep
// their content; the new value is used by later resizes, clears and
// draws that omit a character.
func (g *Grid) SetBackground(char string) error {
	if err := CheckChar(char); err != nil {
		return err
	}
	g.background = char
	Logger().Debug("canvas: background changed", "background", char)
	return nil
}

// Resize changes the size of the grid, wiping out the contents.
// Every cell is refilled with the background character.
func (g *Grid) Resize(columns, rows int) error {
	if err := checkSize(columns, rows); err != nil {
		return err
	}
	g.cells = newCells(columns, rows, g.background)
	g.width, g.height = columns, rows
	Logger().Debug("canvas: grid resized", "columns", columns, "rows", rows)
	return nil
}

// ResizePreserving changes the size of the grid keeping the overlapping
// content. New cells are filled with the background character and cells
// beyond the new size are dropped.
func (g *Grid) ResizePreserving(columns, rows int) error {
	if err := checkSize(columns, rows); err != nil {
		return err
	}

	cells := make([][]string, rows)
	for y := range cells {
		if y >= g.height {
			cells[y] = newRow(columns, g.background)
			continue
		}
		row := g.cells[y]
		if columns <= len(row) {
			cells[y] = append([]string(nil), row[:columns]...)
			continue
		}
		cells[y] = append(append(make([]string, 0, columns), row...), newRow(columns-len(row), g.background)...)
	}

	g.cells = cells
	g.width, g.height = columns, rows
	Logger().Debug("canvas: grid resized, content kept", "columns", columns, "rows", rows)
	return nil
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the character at x, y, or def when the position lies
// outside the grid.
func (g *Grid) Get(x, y int, def string) string {
	if !g.inside(x, y) {
		return def
	}
	return g.cells[y][x]
}

// Set places a character at x, y. Without a character the background is
// written. Positions outside the grid are ignored.
func (g *Grid) Set(x, y int, char ...string) error {
	c, err := g.resolve(char)
	if err != nil {
		return err
	}
	g.setClipped(x, y, c)
	return nil
}

// At returns the character at the structured position pos ([x, y]).
// Unlike Get, a position outside the grid is an error.
func (g *Grid) At(pos []int) (string, error) {
	p, err := core.PointOf(pos)
	if err != nil {
		return "", err
	}
	if !g.inside(p.X, p.Y) {
		return "", fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}
	return g.cells[p.Y][p.X], nil
}

// SetAt writes char at the structured position pos ([x, y]).
// Unlike Set, a position outside the grid is an error.
func (g *Grid) SetAt(pos []int, char string) error {
	p, err := core.PointOf(pos)
	if err != nil {
		return err
	}
	if err := CheckChar(char); err != nil {
		return err
	}
	if !g.inside(p.X, p.Y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}
	g.cells[p.Y][p.X] = char
	return nil
}

// Cells returns a copy of the cell matrix, addressed [row][column].
func (g *Grid) Cells() [][]string {
	cells := make([][]string, g.height)
	for y, row := range g.cells {
		cells[y] = append([]string(nil), row...)
	}
	return cells
}

// Rows returns each row as a string, top row first.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y, row := range g.cells {
		rows[y] = strings.Join(row, "")
	}
	return rows
}

// Render returns the grid as rows joined by newlines, without a trailing
// newline.
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))

	for y, row := range g.cells {
		for _, c := range row {
			sb.WriteString(c)
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// String implements fmt.Stringer using Render.
func (g *Grid) String() string {
	return g.Render()
}

// setClipped sets a character with bounds checking (no error).
func (g *Grid) setClipped(x, y int, char string) {
	if g.inside(x, y) {
		g.cells[y][x] = char
	}
}
