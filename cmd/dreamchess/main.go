// dreamchess is a two-player chess game played from the terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/config"
	"github.com/lgbarn/dreamchess-go/internal/engine"
	"github.com/lgbarn/dreamchess-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("dreamchess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := newLogger(cfg)

	board, err := startingBoard(cfg)
	if err != nil {
		logger.Error("Invalid starting position", "fen", cfg.StartFEN, "error", err)
		os.Exit(1)
	}

	if cfg.PerftDepth > 0 {
		if err := perftUntilInterrupted(cfg, board, logger); err != nil {
			logger.Error("Perft failed", "error", err)
			os.Exit(1)
		}
		return
	}

	g := game.New(game.WithBoard(board), game.WithLogger(logger))
	logger.Info("Game started", "game", g.ID().String(), "fen", g.FEN())

	s := newSession(cfg, g, logger)
	if err := s.run(os.Stdin); err != nil {
		logger.Error("Reading input failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the text logger at the configured verbosity.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(cfg.LogFile, &slog.HandlerOptions{Level: cfg.LogLevel()}))
}

// startingBoard returns the configured starting position.
func startingBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.StartFEN == "" {
		return chess.NewBoard(), nil
	}
	return engine.NewBoardFromFEN(cfg.StartFEN)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if cfg.LogFilename == "" {
		return
	}
	file, err := os.OpenFile(cfg.LogFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dreamchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are entered as <from>-<to>[=<piece>], e.g. e2-e4 or e7-e8=N.\n")
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.name, c.help)
	}
}
