package engine

import (
	"testing"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/testutil"
)

func TestFoolsMate(t *testing.T) {
	b := chess.NewBoard()
	play(t, b, "f2-f3", "e7-e5", "g2-g4", "d8-h4")

	testutil.AssertTrue(t, IsInCheck(b), "IsInCheck")
	testutil.AssertTrue(t, IsCheckmate(b), "IsCheckmate")
	testutil.AssertFalse(t, HasLegalMoves(b), "HasLegalMoves")
	testutil.AssertFalse(t, IsInGame(b), "IsInGame")
	testutil.AssertEqual(t, GameStatus(b), Checkmate)
}

func TestGameStatus(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		status Status
		inGame bool
	}{
		{"initial", InitialFEN, InProgress, true},
		{"check with escape", "4k3/8/8/8/8/8/8/4R2K b - - 0 1", Check, true},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1", InProgress, true},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", Checkmate, false},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", InProgress, true},
		{"king captured", "8/8/8/8/8/8/8/4K3 b - - 0 1", KingCaptured, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := GameStatus(b); got != tt.status {
				t.Errorf("GameStatus() = %v; want %v", got, tt.status)
			}
			if got := IsInGame(b); got != tt.inGame {
				t.Errorf("IsInGame() = %v; want %v", got, tt.inGame)
			}
		})
	}
}

func TestBackRankMateDelivered(t *testing.T) {
	b := mustFEN(t, "6k1/5ppp/8/8/8/8/8/3R2K1 w - - 0 1")
	play(t, b, "d1-d8")

	testutil.AssertEqual(t, GameStatus(b), Checkmate)
}

func TestStalemateHasNoMoves(t *testing.T) {
	b := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	testutil.AssertFalse(t, IsInCheck(b), "IsInCheck")
	testutil.AssertFalse(t, HasLegalMoves(b), "HasLegalMoves")
	testutil.AssertFalse(t, IsCheckmate(b), "IsCheckmate")
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{InProgress, "in progress"},
		{Check, "check"},
		{Checkmate, "checkmate"},
		{KingCaptured, "king captured"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q; want %q", tt.status, got, tt.want)
		}
	}
}
