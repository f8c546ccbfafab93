package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/dreamchess-go/internal/chess"
)

// AssertBoardEqual fails if the two boards hold different state. The report
// shows both diagrams and a square-by-square diff.
func AssertBoardEqual(t testing.TB, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	diff := cmp.Diff(want.Squares(), got.Squares(), cmp.Transformer("Char", func(p chess.Piece) string {
		return string(p.Char())
	}))
	fail(t, "boards differ (-want +got):\nwant:\n"+want.String()+"got:\n"+got.String()+diff, msgAndArgs...)
}

// AssertPieceAt fails if the square does not hold the wanted piece.
func AssertPieceAt(t testing.TB, b *chess.Board, sq chess.Square, want chess.Piece) {
	t.Helper()
	if got := b.PieceAt(sq); got != want {
		t.Errorf("PieceAt(%v) = %v; want %v", sq, got, want)
	}
}

// MustSquare parses an algebraic square name or fails the test.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustParseMove parses a textual move against the board or fails the test.
func MustParseMove(t testing.TB, b *chess.Board, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(b, text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}
