package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/config"
	"github.com/lgbarn/dreamchess-go/internal/engine"
)

// perftUntilInterrupted runs perft, cancelling it on Ctrl-C.
func perftUntilInterrupted(cfg *config.Config, board *chess.Board, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runPerft(ctx, cfg, board, logger)
}

// runPerft counts the leaf nodes of the move tree to cfg.PerftDepth and
// writes a report to cfg.OutputFile. At verbosity 2 and above the per-move
// breakdown is written first.
func runPerft(ctx context.Context, cfg *config.Config, board *chess.Board, logger *slog.Logger) error {
	p := message.NewPrinter(language.English)
	logger.Info("Perft started", "depth", cfg.PerftDepth, "workers", cfg.Workers, "fen", engine.ToFEN(board))

	if cfg.Verbosity >= 2 {
		divide := engine.Divide(board, cfg.PerftDepth)
		keys := make([]string, 0, len(divide))
		for k := range divide {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.Fprintf(cfg.OutputFile, "%s: %d\n", k, divide[k])
		}
	}

	start := time.Now()
	nodes, err := engine.PerftParallel(ctx, board, cfg.PerftDepth, cfg.Workers)
	if err != nil {
		return fmt.Errorf("perft(%d): %w", cfg.PerftDepth, err)
	}
	elapsed := time.Since(start)

	rate := 0
	if elapsed > 0 {
		rate = int(float64(nodes) / elapsed.Seconds())
	}
	p.Fprintf(cfg.OutputFile, "perft(%d) nodes=%d rate=%dn/s (%.3fs elapsed)\n",
		cfg.PerftDepth, nodes, rate, elapsed.Seconds())
	logger.Debug("Perft finished", "nodes", nodes, "elapsed", elapsed)
	return nil
}
