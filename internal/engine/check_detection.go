package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// offset is a (file, rank) step.
type offset struct{ file, rank int }

var (
	knightOffsets   = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalOffsets = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// step returns the square reached from sq by n steps of o, NoSquare if off the board.
func step(sq chess.Square, o offset, n int) chess.Square {
	return chess.SquareAt(sq.File()+o.file*n, sq.Rank()+o.rank*n)
}

// IsInCheck reports whether the side to move is in check. A side without a
// king is treated as in check.
func IsInCheck(board *chess.Board) bool {
	return IsColourInCheck(board, board.Turn())
}

// IsColourInCheck reports whether the given colour's king is attacked.
// A colour without a king on the board is treated as in check.
func IsColourInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return true
	}
	return SquareAttacked(board, king, colour.Opposite())
}

// SquareAttacked reports whether some piece of the attacker colour could move
// onto sq if it held an enemy piece. Castling never attacks and check
// avoidance is not considered.
func SquareAttacked(board *chess.Board, sq chess.Square, attacker chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind sq.
	pawn := chess.MakePiece(attacker, chess.Pawn)
	behind := -attacker.PawnDirection()
	for _, df := range []int{-1, 1} {
		from := step(sq, offset{df, behind}, 1)
		if from != chess.NoSquare && board.PieceAt(from) == pawn {
			return true
		}
	}

	knight := chess.MakePiece(attacker, chess.Knight)
	for _, o := range knightOffsets {
		from := step(sq, o, 1)
		if from != chess.NoSquare && board.PieceAt(from) == knight {
			return true
		}
	}

	king := chess.MakePiece(attacker, chess.King)
	for _, o := range kingOffsets {
		from := step(sq, o, 1)
		if from != chess.NoSquare && board.PieceAt(from) == king {
			return true
		}
	}

	queen := chess.MakePiece(attacker, chess.Queen)
	if rayAttacked(board, sq, diagonalOffsets, chess.MakePiece(attacker, chess.Bishop), queen) {
		return true
	}
	return rayAttacked(board, sq, straightOffsets, chess.MakePiece(attacker, chess.Rook), queen)
}

// rayAttacked walks each direction from sq up to the first occupied square and
// reports whether that square holds one of the two slider pieces.
func rayAttacked(board *chess.Board, sq chess.Square, dirs []offset, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		for n := 1; ; n++ {
			from := step(sq, dir, n)
			if from == chess.NoSquare {
				break
			}
			piece := board.PieceAt(from)
			if piece == chess.None {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}
