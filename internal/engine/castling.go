package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// castle describes the squares involved in one castling move.
type castle struct {
	right     chess.CastlingRights
	kingFrom  chess.Square
	kingTo    chess.Square
	rookFrom  chess.Square
	rookTo    chess.Square
	between   []chess.Square // must be empty
	kingsPath []chess.Square // must not be attacked, start square included
}

var castles = map[chess.Colour][2]castle{
	chess.White: {
		{
			right: chess.WhiteKingside, kingFrom: chess.E1, kingTo: chess.G1,
			rookFrom: chess.H1, rookTo: chess.F1,
			between:   []chess.Square{chess.F1, chess.G1},
			kingsPath: []chess.Square{chess.E1, chess.F1, chess.G1},
		},
		{
			right: chess.WhiteQueenside, kingFrom: chess.E1, kingTo: chess.C1,
			rookFrom: chess.A1, rookTo: chess.D1,
			between:   []chess.Square{chess.B1, chess.C1, chess.D1},
			kingsPath: []chess.Square{chess.E1, chess.D1, chess.C1},
		},
	},
	chess.Black: {
		{
			right: chess.BlackKingside, kingFrom: chess.E8, kingTo: chess.G8,
			rookFrom: chess.H8, rookTo: chess.F8,
			between:   []chess.Square{chess.F8, chess.G8},
			kingsPath: []chess.Square{chess.E8, chess.F8, chess.G8},
		},
		{
			right: chess.BlackQueenside, kingFrom: chess.E8, kingTo: chess.C8,
			rookFrom: chess.A8, rookTo: chess.D8,
			between:   []chess.Square{chess.B8, chess.C8, chess.D8},
			kingsPath: []chess.Square{chess.E8, chess.D8, chess.C8},
		},
	},
}

// findCastle returns the castling move a king move from/to corresponds to.
func findCastle(colour chess.Colour, from, to chess.Square) (castle, bool) {
	for _, c := range castles[colour] {
		if c.kingFrom == from && c.kingTo == to {
			return c, true
		}
	}
	return castle{}, false
}

// castleIsSemiValid checks a two-file king move: the castling right is
// intact, the rook is on its home square, the squares between king and rook
// are empty and the king neither starts on, passes over nor lands on an
// attacked square.
func castleIsSemiValid(board *chess.Board, m chess.Move) bool {
	colour := m.Piece.Color()
	c, ok := findCastle(colour, m.Source, m.Destination)
	if !ok || !board.Castling().Has(c.right) {
		return false
	}
	if board.PieceAt(c.rookFrom) != chess.MakePiece(colour, chess.Rook) {
		return false
	}
	for _, sq := range c.between {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	for _, sq := range c.kingsPath {
		if SquareAttacked(board, sq, colour.Opposite()) {
			return false
		}
	}
	return true
}

// applyCastleRook relocates the rook of a castling king move.
func applyCastleRook(board *chess.Board, m chess.Move) {
	c, ok := findCastle(m.Piece.Color(), m.Source, m.Destination)
	if !ok {
		return
	}
	rook := board.PieceAt(c.rookFrom)
	board.SetPiece(c.rookFrom, chess.None)
	board.SetPiece(c.rookTo, rook)
}

// updateCastlingRights removes castling rights when a king or rook leaves its
// home square or a rook is captured on its home square.
func updateCastlingRights(board *chess.Board, from, to chess.Square) {
	for _, sides := range castles {
		for _, c := range sides {
			if from == c.kingFrom || from == c.rookFrom || to == c.rookFrom {
				board.RemoveCastling(c.right)
			}
		}
	}
}
