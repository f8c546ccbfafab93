package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// isDiagonal reports whether from and to share a diagonal.
func isDiagonal(from, to chess.Square) bool {
	df := abs(to.File() - from.File())
	dr := abs(to.Rank() - from.Rank())
	return df == dr && df != 0
}

// isStraight reports whether from and to share a file or a rank.
func isStraight(from, to chess.Square) bool {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	return (df == 0) != (dr == 0)
}

// isPathClear checks that every square strictly between from and to is
// empty. The two squares must lie on a common straight line or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File() - from.File())
	rankDir := sign(to.Rank() - from.Rank())

	file := from.File() + fileDir
	rank := from.Rank() + rankDir

	for file != to.File() || rank != to.Rank() {
		sq := chess.SquareAt(file, rank)
		if sq == chess.NoSquare {
			return false
		}
		if !board.IsEmpty(sq) {
			return false
		}
		file += fileDir
		rank += rankDir
	}

	return true
}
