package canvas

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// CheckChar enforces the single-character contract. A character is one
// user-perceived character (extended grapheme cluster), so "é" written with a
// combining accent is accepted while "ab" and "" are not.
func CheckChar(s string) error {
	if uniseg.GraphemeClusterCount(s) != 1 {
		return fmt.Errorf("%w: %q is not appropriate", ErrInvalidCharacter, s)
	}
	return nil
}

// graphemes splits text into the characters that DrawText places one per cell.
func graphemes(text string) []string {
	chars := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}

// resolve picks the drawing character for an optional char argument.
// No argument means the current background.
func (g *Grid) resolve(char []string) (string, error) {
	switch len(char) {
	case 0:
		return g.background, nil
	case 1:
		if err := CheckChar(char[0]); err != nil {
			return "", err
		}
		return char[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one character argument, got %d", ErrInvalidCharacter, len(char))
	}
}
