package engine

import (
	"context"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		MakeMove(child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move's
// long form ("e2-e4").
func Divide(board *chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range LegalMoves(board) {
		child := board.Copy()
		MakeMove(child, m)
		counts[m.String()] = Perft(child, depth-1)
	}
	return counts
}

// PerftParallel computes Perft by counting the subtree of each root move on
// the worker pool. It returns ctx.Err() if the context is cancelled before
// every subtree is counted.
func PerftParallel(ctx context.Context, board *chess.Board, depth, workers int) (uint64, error) {
	if depth <= 1 {
		return Perft(board, depth), nil
	}

	moves := LegalMoves(board)
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: Perft(item.Board, item.Depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start(ctx)

	go func() {
		for i, m := range moves {
			child := board.Copy()
			MakeMove(child, m)
			pool.Submit(worker.WorkItem{Board: child, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	var nodes uint64
	received := 0
	for result := range pool.Results() {
		nodes += result.Nodes
		received++
	}

	if err := ctx.Err(); err != nil && received < len(moves) {
		return nodes, err
	}
	return nodes, nil
}
