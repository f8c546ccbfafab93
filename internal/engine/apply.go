package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// MakeMove applies a move to the board and flips the side to move.
// The move must already have been validated; no legality check is made.
//
// Captured pieces (including en passant victims) are counted on the board,
// a castling king brings its rook along and a promoting pawn is replaced by
// its promotion piece, a queen if none was chosen. Castling rights, the en
// passant target and the move clocks are updated as well.
func MakeMove(board *chess.Board, m chess.Move) {
	colour := board.Turn()
	piece := board.PieceAt(m.Source)
	target := board.PieceAt(m.Destination)
	isPawn := piece.Is(chess.Pawn)
	capture := target != chess.None

	// En passant: a pawn moving diagonally onto an empty square takes the
	// pawn beside it.
	if isPawn && m.HorizontalDelta() == 1 && target == chess.None {
		victim := enPassantVictim(m)
		if captured := board.PieceAt(victim); captured != chess.None {
			board.AddCaptured(captured)
			board.SetPiece(victim, chess.None)
			capture = true
		}
	}

	if target != chess.None {
		board.AddCaptured(target)
	}

	if piece.Is(chess.King) && m.HorizontalDelta() == 2 {
		applyCastleRook(board, m)
	}

	placed := piece
	if isPawn && m.Destination.Valid() && isLastRank(m.Destination, colour) {
		placed = m.Promotion
		if placed == chess.None {
			placed = chess.MakePiece(colour, chess.Queen)
		}
	}
	board.SetPiece(m.Destination, placed)
	board.SetPiece(m.Source, chess.None)

	updateCastlingRights(board, m.Source, m.Destination)

	board.SetEnPassant(chess.NoSquare)
	if isPawn && m.VerticalDelta() == 2 {
		board.SetEnPassant(chess.SquareAt(m.Source.File(), m.Source.Rank()+colour.PawnDirection()))
	}

	if isPawn || capture {
		board.SetHalfmoveClock(0)
	} else {
		board.SetHalfmoveClock(board.HalfmoveClock() + 1)
	}
	if colour == chess.Black {
		board.SetMoveNumber(board.MoveNumber() + 1)
	}

	board.SetTurn(board.OpponentTurn())
}

// isLastRank reports whether sq is on the rank a pawn of the colour promotes on.
func isLastRank(sq chess.Square, colour chess.Colour) bool {
	return sq.Rank() == colour.Opposite().HomeRank()
}
