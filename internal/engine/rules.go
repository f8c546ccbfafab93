// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// MoveIsSemiValid reports whether a move obeys board bounds, occupancy and
// the movement pattern of the piece. It does not consider whether the move
// leaves the mover's own king in check.
func MoveIsSemiValid(board *chess.Board, m chess.Move) bool {
	if !m.Source.Valid() || !m.Destination.Valid() || m.Source == m.Destination {
		return false
	}

	colour := board.Turn()
	piece := board.PieceAt(m.Source)
	if piece == chess.None || piece.Color() != colour || m.Piece != piece {
		return false
	}

	target := board.PieceAt(m.Destination)
	if target != chess.None && target.Color() == colour {
		return false
	}

	if !promotionIsValid(m, colour) {
		return false
	}

	switch piece.Type() {
	case chess.Pawn:
		return pawnMoveIsSemiValid(board, m)
	case chess.King:
		if m.HorizontalDelta() <= 1 && m.VerticalDelta() <= 1 {
			return true
		}
		return castleIsSemiValid(board, m)
	default:
		return canPieceMove(board, piece.Type(), m.Source, m.Destination)
	}
}

// promotionIsValid checks that a promotion piece only appears on a promotion
// move and is a queen, rook, bishop or knight of the mover's colour. A
// promotion move without a promotion piece is allowed; it promotes to a queen.
func promotionIsValid(m chess.Move, colour chess.Colour) bool {
	if m.Promotion == chess.None {
		return true
	}
	if !m.IsPromotion() || m.Promotion.Color() != colour {
		return false
	}
	for _, kind := range chess.PromotionKinds {
		if m.Promotion.Type() == kind {
			return true
		}
	}
	return false
}

// canPieceMove checks the movement pattern of a knight, bishop, rook, queen
// or king step from one square to another, including path obstruction.
func canPieceMove(board *chess.Board, pieceType chess.Piece, from, to chess.Square) bool {
	colDiff := abs(to.File() - from.File())
	rankDiff := abs(to.Rank() - from.Rank())

	switch pieceType {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		return isDiagonal(from, to) && isPathClear(board, from, to)

	case chess.Rook:
		return isStraight(from, to) && isPathClear(board, from, to)

	case chess.Queen:
		if isDiagonal(from, to) || isStraight(from, to) {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1 && colDiff+rankDiff > 0
	}

	return false
}

// MoveIsValid reports whether a move is semi-valid and does not leave the
// mover's king attacked. The move is tried on a copy of the board.
func MoveIsValid(board *chess.Board, m chess.Move) bool {
	if !MoveIsSemiValid(board, m) {
		return false
	}
	return tryMove(board, m)
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, m chess.Move) bool {
	colour := board.Turn()
	testBoard := board.Copy()
	MakeMove(testBoard, m)
	return !IsColourInCheck(testBoard, colour)
}

// MoveIsPromotion reports whether the move is a pawn reaching the far rank.
// The moving piece is read from the board.
func MoveIsPromotion(board *chess.Board, m chess.Move) bool {
	if !m.Source.Valid() {
		return false
	}
	return chess.NewMoveWithPromotion(m.Source, m.Destination, board.PieceAt(m.Source), chess.None).IsPromotion()
}
