// Package core contains the fundamental types shared by the chargrid packages.
package core

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Common errors
var (
	ErrInvalidPosition  = errors.New("position must be an [x, y] pair")
	ErrInvalidDirection = errors.New(`direction must be "horizontal" or "vertical"`)
)

// Point represents a cell coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// PointOf converts a structured position value into a Point.
func PointOf(pos []int) (Point, error) {
	if len(pos) != 2 {
		return Point{}, fmt.Errorf("%w: got %d elements", ErrInvalidPosition, len(pos))
	}
	return Point{X: pos[0], Y: pos[1]}, nil
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is the axis along which text advances.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Horizontal || d == Vertical
}

// Step returns the per-character advance for the direction.
func (d Direction) Step() (dx, dy int) {
	if d == Vertical {
		return 0, 1
	}
	return 1, 0
}

// ParseDirection parses a direction name, ignoring case. Only plain
// lowercase mapping is applied, so compatibility forms do not match.
func ParseDirection(s string) (Direction, error) {
	switch cases.Lower(language.Und).String(s) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Bounds represents an inclusive rectangular area of cells.
type Bounds struct {
	Min, Max Point
}

// Normalize returns the bounds with Min at the top-left and Max at the bottom-right.
func (b Bounds) Normalize() Bounds {
	if b.Min.X > b.Max.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Min.Y > b.Max.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// Width returns the number of columns covered by the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows covered by the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Canvas is the read side of a character grid.
type Canvas interface {
	// Size returns the number of columns and rows.
	Size() (columns, rows int)
	// Get returns the cell at x, y, or def when the position is outside.
	Get(x, y int, def string) string
	// String returns the rows joined by newlines.
	String() string
}
