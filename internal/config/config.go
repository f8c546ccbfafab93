// Package config provides configuration for the dreamchess command.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lgbarn/dreamchess-go/internal/errors"
)

// GlyphSet selects how pieces are drawn in the text board.
type GlyphSet int

const (
	Letters GlyphSet = iota // FEN letters, PNBRQK / pnbrqk
	Unicode                 // chess symbols
)

// String returns the flag value of the glyph set.
func (g GlyphSet) String() string {
	switch g {
	case Letters:
		return "letters"
	case Unicode:
		return "unicode"
	default:
		return "unknown"
	}
}

// ParseGlyphSet converts a flag value to a GlyphSet.
func ParseGlyphSet(s string) (GlyphSet, error) {
	switch strings.ToLower(s) {
	case "letters", "ascii":
		return Letters, nil
	case "unicode":
		return Unicode, nil
	}
	return Letters, fmt.Errorf("unknown glyph set %q: %w", s, errors.ErrInvalidConfig)
}

// HistoryFormat selects the history export format.
type HistoryFormat int

const (
	TextHistory HistoryFormat = iota // numbered "<N>. <move>" lines
	JSONHistory                      // JSON document with one entry per step
)

// String returns the flag value of the format.
func (f HistoryFormat) String() string {
	switch f {
	case TextHistory:
		return "text"
	case JSONHistory:
		return "json"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used for exports in this format.
func (f HistoryFormat) Extension() string {
	if f == JSONHistory {
		return ".json"
	}
	return ".txt"
}

// ParseHistoryFormat converts a flag value to a HistoryFormat.
func ParseHistoryFormat(s string) (HistoryFormat, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return TextHistory, nil
	case "json":
		return JSONHistory, nil
	}
	return TextHistory, fmt.Errorf("unknown history format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// Board display settings
	Display *DisplayConfig

	// History export settings
	History *HistoryConfig

	// Verbosity controls logging: 0=warnings and errors, 1=info, 2=debug
	Verbosity int

	// Workers is the number of goroutines used by parallel perft
	Workers int

	// PerftDepth runs a perft count to this depth instead of a game (0 = off)
	PerftDepth int

	// StartFEN is the starting position; empty means the standard one
	StartFEN string

	// OutputFilename is the file the board is written to (empty = stdout)
	OutputFilename string

	// LogFilename is the file log records are written to (empty = stderr)
	LogFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Display:    NewDisplayConfig(),
		History:    NewHistoryConfig(),
		Verbosity:  1,
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the board and command output are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream log records are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// LogLevel maps Verbosity to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity <= 0:
		return slog.LevelWarn
	case c.Verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.PerftDepth < 0 {
		return fmt.Errorf("perft depth must not be negative, got %d: %w", c.PerftDepth, errors.ErrInvalidConfig)
	}
	if c.Display != nil {
		if err := c.Display.Validate(); err != nil {
			return err
		}
	}
	if c.History != nil {
		if err := c.History.Validate(); err != nil {
			return err
		}
	}
	return nil
}
