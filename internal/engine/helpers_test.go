package engine

import (
	"testing"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/testutil"
)

// mustFEN builds a board from FEN or fails the test.
func mustFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

// play validates and applies each textual move in turn, failing the test
// at the first illegal one.
func play(t testing.TB, b *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m := testutil.MustParseMove(t, b, text)
		if !MoveIsValid(b, m) {
			t.Fatalf("move %s rejected on\n%s", text, b)
		}
		MakeMove(b, m)
	}
}

// valid reports whether a textual move is valid on the board.
func valid(t testing.TB, b *chess.Board, text string) bool {
	t.Helper()
	return MoveIsValid(b, testutil.MustParseMove(t, b, text))
}
