// Package script replays JSON drawing scripts against a canvas.Grid.
//
// A script looks like:
//
//	{
//	  "columns": 20, "rows": 5, "background": " ",
//	  "ops": [
//	    {"op": "rect", "from": [0, 0], "to": [19, 4], "char": "*"},
//	    {"op": "text", "at": [2, 2], "text": "Hello!"},
//	    {"op": "circle", "at": [14, 2], "radius": 1, "char": "o"}
//	  ]
//	}
//
// Positions are [x, y] pairs. Omitting "char" draws with the background.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chargrid/canvas"
	"chargrid/config"
	"chargrid/core"
)

// ErrUnknownOp is returned for an op name the script runner does not know.
var ErrUnknownOp = errors.New("unknown op")

const maxFileSize = 4 * 1024 * 1024 // 4MB

// Script is a grid size plus a list of drawing operations.
// A zero size or empty background falls back to the config values.
type Script struct {
	Columns    int    `json:"columns,omitempty"`
	Rows       int    `json:"rows,omitempty"`
	Background string `json:"background,omitempty"`
	Ops        []Op   `json:"ops"`
}

// Op is a single drawing operation.
type Op struct {
	Op        string  `json:"op"`
	At        []int   `json:"at,omitempty"`
	From      []int   `json:"from,omitempty"`
	To        []int   `json:"to,omitempty"`
	Size      []int   `json:"size,omitempty"`
	Radius    int     `json:"radius,omitempty"`
	Char      *string `json:"char,omitempty"`
	Filled    bool    `json:"filled,omitempty"`
	Text      string  `json:"text,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Border    *string `json:"border,omitempty"`
}

// Parse decodes a script from JSON.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script JSON: %w", err)
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat script: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("script too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Run creates a grid from the script size, falling back to cfg, and
// applies every op to it.
func (s *Script) Run(cfg *config.Config) (*canvas.Grid, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	columns, rows, background := cfg.Columns, cfg.Rows, cfg.Background
	if s.Columns != 0 {
		columns = s.Columns
	}
	if s.Rows != 0 {
		rows = s.Rows
	}
	if s.Background != "" {
		background = s.Background
	}

	g, err := canvas.New(columns, rows, background)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply runs the ops in order, stopping at the first error.
func (s *Script) Apply(g *canvas.Grid) error {
	for i, op := range s.Ops {
		if err := op.apply(g); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	canvas.Logger().Debug("script: applied", "ops", len(s.Ops))
	return nil
}

func (op Op) apply(g *canvas.Grid) error {
	char := optional(op.Char)

	switch op.Op {
	case "set":
		p, err := core.PointOf(op.At)
		if err != nil {
			return err
		}
		return g.Set(p.X, p.Y, char...)

	case "line", "rect":
		from, err := core.PointOf(op.From)
		if err != nil {
			return err
		}
		to, err := core.PointOf(op.To)
		if err != nil {
			return err
		}
		switch {
		case op.Op == "line":
			return g.DrawLine(from.X, from.Y, to.X, to.Y, char...)
		case op.Filled:
			return g.FillRectangle(from.X, from.Y, to.X, to.Y, char...)
		default:
			return g.DrawRectangle(from.X, from.Y, to.X, to.Y, char...)
		}

	case "circle":
		c, err := core.PointOf(op.At)
		if err != nil {
			return err
		}
		return g.DrawCircle(c.X, c.Y, op.Radius, char...)

	case "text":
		p, err := core.PointOf(op.At)
		if err != nil {
			return err
		}
		dir := core.Horizontal
		if op.Direction != "" {
			if dir, err = core.ParseDirection(op.Direction); err != nil {
				return err
			}
		}
		return g.DrawText(p.X, p.Y, op.Text, dir, optional(op.Border)...)

	case "clear":
		g.Clear()
		return nil

	case "background":
		if op.Char == nil {
			return fmt.Errorf("%w: background op needs a char", canvas.ErrInvalidCharacter)
		}
		return g.SetBackground(*op.Char)

	case "resize", "resize_preserving":
		size, err := core.PointOf(op.Size)
		if err != nil {
			return err
		}
		if op.Op == "resize" {
			return g.Resize(size.X, size.Y)
		}
		return g.ResizePreserving(size.X, size.Y)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
}

// optional turns a nullable JSON string into the optional character
// argument taken by the grid methods.
func optional(s *string) []string {
	if s == nil {
		return nil
	}
	return []string{*s}
}

func str(s string) *string { return &s }

// Demo returns the sample scene: a framed grid with a greeting and a
// vertical word.
func Demo() *Script {
	return &Script{
		Columns:    36,
		Rows:       6,
		Background: " ",
		Ops: []Op{
			{Op: "rect", From: []int{0, 0}, To: []int{35, 5}, Char: str("*")},
			{Op: "text", At: []int{17, 1}, Text: "Test", Direction: "vertical"},
			{Op: "text", At: []int{4, 2}, Text: "Hello!"},
		},
	}
}
