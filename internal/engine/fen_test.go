package engine

import (
	"testing"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/errors"
	"github.com/lgbarn/dreamchess-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Equal(chess.NewBoard())
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.PieceAt(chess.SquareAt(4, 3)) == chess.WhitePawn &&
					b.PieceAt(chess.SquareAt(4, 1)) == chess.None &&
					b.Turn() == chess.Black &&
					b.EnPassant() == chess.SquareAt(4, 2)
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling() == chess.NoCastling
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.Turn() == chess.White && b.MoveNumber() == 1 &&
					b.PieceAt(chess.E8) == chess.BlackKing
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 17 42",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock() == 17 && b.MoveNumber() == 42
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed:\n%s", board)
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KZ - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"bad clock", "4k3/8/8/8/8/8/8/4K3 w - - a 1"},
		{"bad move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestToFEN(t *testing.T) {
	testutil.AssertEqual(t, ToFEN(chess.NewBoard()), InitialFEN)

	b := chess.NewBoard()
	play(t, b, "e2-e4")
	testutil.AssertEqual(t, ToFEN(b), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	play(t, b, "c7-c5", "g1-f3")
	testutil.AssertEqual(t, ToFEN(b), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
}

func TestFENRoundTrip(t *testing.T) {
	for name, fen := range benchFENs {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, ToFEN(mustFEN(t, fen)), fen)
		})
	}
}
