package config

import (
	"fmt"

	"github.com/lgbarn/dreamchess-go/internal/errors"
)

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// Glyphs selects letters or chess symbols for pieces
	Glyphs GlyphSet

	// Colour draws the board with ANSI colours
	Colour bool

	// Coordinates adds file letters and rank numbers around the board
	Coordinates bool

	// SVGFile, when set, receives an SVG diagram after every accepted move
	SVGFile string

	// SVGSquareSize is the side of one square in the SVG diagram, in pixels
	SVGSquareSize int
}

// NewDisplayConfig creates a DisplayConfig with default values.
// The default board is the plain 8x8 letter grid.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Glyphs:        Letters,
		SVGSquareSize: 45,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.SVGSquareSize <= 0 {
		return fmt.Errorf("svg square size must be positive, got %d: %w", d.SVGSquareSize, errors.ErrInvalidConfig)
	}
	if d.Glyphs != Letters && d.Glyphs != Unicode {
		return fmt.Errorf("unknown glyph set %d: %w", d.Glyphs, errors.ErrInvalidConfig)
	}
	return nil
}
