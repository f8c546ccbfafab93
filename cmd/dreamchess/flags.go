// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/dreamchess-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file for boards and command output (default: stdout)")
	logFile    = flag.String("l", "", "Log file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=warnings, 1=info, 2=debug")
	quiet      = flag.Bool("s", false, "Silent mode: only log warnings and errors")

	// Board display
	glyphs      = flag.String("glyphs", "letters", "Piece glyphs: letters, unicode")
	colourBoard = flag.Bool("colour", false, "Draw the board with ANSI colours")
	coordinates = flag.Bool("coords", false, "Label files and ranks around the board")
	svgFile     = flag.String("svg", "", "Write an SVG diagram of the board to this file after every move")
	svgSquare   = flag.Int("svgsize", 45, "Side of one SVG square in pixels")

	// History export
	historyDir    = flag.String("historydir", "history", "Directory for exported move histories")
	historyFormat = flag.String("historyformat", "text", "History export format: text, json")
	autoExport    = flag.Bool("autoexport", false, "Export the history when the game ends or on quit")

	// Position and perft
	startFEN   = flag.String("fen", "", "Start from this FEN position instead of the standard one")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth and exit")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	if err := applyHistoryFlags(cfg); err != nil {
		return err
	}
	applyRunFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
	return nil
}

// applyDisplayFlags configures board display settings.
func applyDisplayFlags(cfg *config.Config) error {
	g, err := config.ParseGlyphSet(*glyphs)
	if err != nil {
		return err
	}
	cfg.Display.Glyphs = g
	cfg.Display.Colour = *colourBoard
	cfg.Display.Coordinates = *coordinates
	cfg.Display.SVGFile = *svgFile
	cfg.Display.SVGSquareSize = *svgSquare
	return nil
}

// applyHistoryFlags configures history export settings.
func applyHistoryFlags(cfg *config.Config) error {
	f, err := config.ParseHistoryFormat(*historyFormat)
	if err != nil {
		return err
	}
	cfg.History.Format = f
	cfg.History.Dir = *historyDir
	cfg.History.AutoExport = *autoExport
	return nil
}

// applyRunFlags configures the starting position and perft mode.
func applyRunFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.PerftDepth = *perftDepth
	cfg.Workers = *workers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
}
