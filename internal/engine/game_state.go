package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// Status describes the state of the game for the side to move.
type Status int

const (
	// InProgress means the side to move is not in check and has its king.
	InProgress Status = iota
	// Check means the side to move is in check but can escape.
	Check
	// Checkmate means the side to move is in check with no legal move.
	Checkmate
	// KingCaptured means the side to move has no king on the board.
	KingCaptured
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case KingCaptured:
		return "king captured"
	default:
		return "unknown"
	}
}

// GameStatus classifies the position for the side to move.
// Stalemate is reported as InProgress.
func GameStatus(board *chess.Board) Status {
	if _, ok := board.FindKing(board.Turn()); !ok {
		return KingCaptured
	}
	if !IsInCheck(board) {
		return InProgress
	}
	if HasLegalMoves(board) {
		return Check
	}
	return Checkmate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board) && !HasLegalMoves(board)
}

// IsInGame reports whether the side to move still has a king and is not
// checkmated.
func IsInGame(board *chess.Board) bool {
	status := GameStatus(board)
	return status == InProgress || status == Check
}
