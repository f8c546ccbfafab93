package chess

// Move represents a candidate transition from one square to another.
// Promotion is None unless the move is a pawn reaching the far rank.
type Move struct {
	// Source square.
	Source Square

	// Destination square.
	Destination Square

	// The piece occupying Source when the move was built.
	Piece Piece

	// The piece placed on Destination for a promotion (None otherwise).
	Promotion Piece
}

// NewMove creates a move between two squares, looking up the moving piece on
// the board. A pawn reaching the far rank promotes to a queen of its colour.
func NewMove(b *Board, src, dst Square) Move {
	m := Move{
		Source:      src,
		Destination: dst,
		Piece:       b.PieceAt(src),
	}
	if m.IsPromotion() {
		m.Promotion = MakePiece(m.Piece.Color(), Queen)
	}
	return m
}

// NewMoveWithPromotion creates a move from raw values without consulting a
// board. It is used for synthetic probes and move generation.
func NewMoveWithPromotion(src, dst Square, piece, promotion Piece) Move {
	return Move{
		Source:      src,
		Destination: dst,
		Piece:       piece,
		Promotion:   promotion,
	}
}

// HorizontalDelta returns the absolute file distance of the move.
func (m Move) HorizontalDelta() int {
	return absInt(m.Destination.File() - m.Source.File())
}

// VerticalDelta returns the absolute rank distance of the move.
func (m Move) VerticalDelta() int {
	return absInt(m.Destination.Rank() - m.Source.Rank())
}

// FileStep returns -1, 0 or +1: the file direction of the move.
func (m Move) FileStep() int {
	return signInt(m.Destination.File() - m.Source.File())
}

// RankStep returns -1, 0 or +1: the rank direction of the move.
func (m Move) RankStep() int {
	return signInt(m.Destination.Rank() - m.Source.Rank())
}

// IsPromotion reports whether the moving piece is a pawn landing on rank 1 or 8.
func (m Move) IsPromotion() bool {
	if !m.Piece.Is(Pawn) || !m.Destination.Valid() {
		return false
	}
	r := m.Destination.Rank()
	return r == 0 || r == BoardSize-1
}

// IsCastle reports whether the move is a king moving two files.
func (m Move) IsCastle() bool {
	return m.Piece.Is(King) && m.HorizontalDelta() == 2 && m.VerticalDelta() == 0
}

// String returns the long form of the move, e.g. "e2-e4" or "e7-e8=Q".
func (m Move) String() string {
	s := m.Source.String() + "-" + m.Destination.String()
	if m.Promotion != None {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func signInt(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
