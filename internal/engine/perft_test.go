package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/testutil"
)

// Reference node counts from the chessprogramming wiki perft results.
var perftPositions = []struct {
	name  string
	fen   string
	nodes []uint64 // indexed by depth-1
}{
	{"initial", InitialFEN, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
}

func TestPerft(t *testing.T) {
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			b := mustFEN(t, pos.fen)
			for i, want := range pos.nodes {
				depth := i + 1
				if got := Perft(b, depth); got != want {
					t.Errorf("Perft(%d) = %d; want %d", depth, got, want)
				}
			}
			testutil.AssertEqual(t, ToFEN(b), pos.fen, "perft must not mutate the board")
		})
	}
}

func TestPerftDepthZero(t *testing.T) {
	testutil.AssertEqual(t, Perft(chess.NewBoard(), 0), uint64(1))
}

func TestPerftParallel(t *testing.T) {
	b := chess.NewBoard()

	for _, workers := range []int{1, 4} {
		got, err := PerftParallel(context.Background(), b, 3, workers)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, uint64(8902), "workers=%d", workers)
	}

	got, err := PerftParallel(context.Background(), b, 1, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(20))
}

func TestPerftParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PerftParallel(ctx, chess.NewBoard(), 3, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestDivide(t *testing.T) {
	counts := Divide(chess.NewBoard(), 2)

	testutil.AssertEqual(t, len(counts), 20)
	for move, n := range counts {
		if n != 20 {
			t.Errorf("Divide[%s] = %d; want 20", move, n)
		}
	}
	if _, ok := counts["e2-e4"]; !ok {
		t.Error("Divide() missing e2-e4")
	}

	var total uint64
	for _, n := range Divide(mustFEN(t, perftPositions[1].fen), 2) {
		total += n
	}
	testutil.AssertEqual(t, total, uint64(2039))
}
