// Package canvas provides a fixed-size 2D character grid with drawing primitives.
package canvas

import "chargrid/core"

// Canvas represents the read side of a 2D grid.
// Re-exported from core package for convenience.
type Canvas = core.Canvas

var _ Canvas = (*Grid)(nil)
