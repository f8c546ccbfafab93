package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// pawnStartRank returns the rank pawns of the colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// pawnMoveIsSemiValid checks the movement pattern of a pawn. Pawns move
// forward one square onto an empty square, two from their start rank over an
// empty square, or one square diagonally onto an enemy piece or the en
// passant target.
func pawnMoveIsSemiValid(board *chess.Board, m chess.Move) bool {
	colour := m.Piece.Color()
	if m.RankStep() != colour.PawnDirection() {
		return false
	}

	hor := m.HorizontalDelta()
	ver := m.VerticalDelta()

	switch {
	case hor == 0 && ver == 1:
		return board.IsEmpty(m.Destination)

	case hor == 0 && ver == 2:
		return m.Source.Rank() == pawnStartRank(colour) &&
			isPathClear(board, m.Source, m.Destination) &&
			board.IsEmpty(m.Destination)

	case hor == 1 && ver == 1:
		if !board.IsEmpty(m.Destination) {
			return true
		}
		return isEnPassantCapture(board, m)
	}

	return false
}

// isEnPassantCapture reports whether a diagonal pawn move onto an empty
// square captures the pawn that has just advanced two squares.
func isEnPassantCapture(board *chess.Board, m chess.Move) bool {
	if m.Destination != board.EnPassant() {
		return false
	}
	victim := enPassantVictim(m)
	return board.PieceAt(victim) == chess.MakePiece(m.Piece.OppositeColor(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture: the destination file on the source rank.
func enPassantVictim(m chess.Move) chess.Square {
	return chess.SquareAt(m.Destination.File(), m.Source.Rank())
}
