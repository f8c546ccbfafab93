package chess

// CastlingRights records which castling moves are still available.
// A right is lost once the king or the corresponding rook leaves its home
// square, or that rook is captured.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether all the given rights are present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r && r != 0
}

// String returns the FEN castling field, "-" when no right remains.
func (c CastlingRights) String() string {
	var s []byte
	if c.Has(WhiteKingside) {
		s = append(s, 'K')
	}
	if c.Has(WhiteQueenside) {
		s = append(s, 'Q')
	}
	if c.Has(BlackKingside) {
		s = append(s, 'k')
	}
	if c.Has(BlackQueenside) {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// backRank is the standard piece order on the first and eighth ranks.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The 64 squares, index = rank*8 + file.
	squares [NumSquares]Piece

	// Who has the next move.
	turn Colour

	// Number of times each coloured piece has been captured.
	captured map[Piece]int

	// Remaining castling rights.
	castling CastlingRights

	// Square a pawn may capture onto en passant, NoSquare otherwise.
	enPassant Square

	// The current move number, incremented after Black moves.
	moveNumber int

	// Half-moves since the last pawn move or capture.
	halfmoveClock int
}

// NewEmptyBoard creates a board with every square empty and White to move.
func NewEmptyBoard() *Board {
	return &Board{
		turn:       White,
		captured:   make(map[Piece]int),
		enPassant:  NoSquare,
		moveNumber: 1,
	}
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.setupInitialPosition()
	return b
}

// setupInitialPosition places the standard starting pieces and resets turn,
// castling rights and clocks. It assumes every square is already empty.
func (b *Board) setupInitialPosition() {
	for file := 0; file < BoardSize; file++ {
		b.squares[SquareAt(file, 0)] = W(backRank[file])
		b.squares[SquareAt(file, 1)] = W(Pawn)
		b.squares[SquareAt(file, 6)] = B(Pawn)
		b.squares[SquareAt(file, 7)] = B(backRank[file])
	}

	b.turn = White
	b.castling = AllCastling
	b.enPassant = NoSquare
	b.moveNumber = 1
	b.halfmoveClock = 0
}

// Clear empties every square and forgets captures, castling rights and the
// en passant target. White is to move afterwards.
func (b *Board) Clear() {
	for i := range b.squares {
		b.squares[i] = None
	}
	b.captured = make(map[Piece]int)
	b.turn = White
	b.castling = NoCastling
	b.enPassant = NoSquare
	b.moveNumber = 1
	b.halfmoveClock = 0
}

// Reset clears the board and sets up the starting position again.
func (b *Board) Reset() {
	b.Clear()
	b.setupInitialPosition()
}

// PieceAt returns the piece on the given square.
// It panics with an *errors.IndexError if sq is outside 0-63.
func (b *Board) PieceAt(sq Square) Piece {
	mustBeOnBoard(sq)
	return b.squares[sq]
}

// SetPiece places a piece on the given square (None empties it).
// It panics with an *errors.IndexError if sq is outside 0-63.
func (b *Board) SetPiece(sq Square, p Piece) {
	mustBeOnBoard(sq)
	b.squares[sq] = p
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == None
}

// Squares returns a copy of the 64 squares for iteration.
func (b *Board) Squares() [NumSquares]Piece {
	return b.squares
}

// Turn returns the colour whose move is next.
func (b *Board) Turn() Colour {
	return b.turn
}

// OpponentTurn returns the colour that moves after the side to move.
func (b *Board) OpponentTurn() Colour {
	return b.turn.Opposite()
}

// SetTurn sets the side to move.
func (b *Board) SetTurn(c Colour) {
	b.turn = c
}

// Captured returns how many times the given coloured piece has been captured.
func (b *Board) Captured(p Piece) int {
	return b.captured[p]
}

// AddCaptured increments the capture count of the given piece.
func (b *Board) AddCaptured(p Piece) {
	if p == None {
		return
	}
	b.captured[p]++
}

// CapturedCounts returns a copy of the capture counts.
func (b *Board) CapturedCounts() map[Piece]int {
	counts := make(map[Piece]int, len(b.captured))
	for p, n := range b.captured {
		counts[p] = n
	}
	return counts
}

// Castling returns the remaining castling rights.
func (b *Board) Castling() CastlingRights {
	return b.castling
}

// SetCastling replaces the castling rights.
func (b *Board) SetCastling(c CastlingRights) {
	b.castling = c
}

// RemoveCastling clears the given castling rights.
func (b *Board) RemoveCastling(c CastlingRights) {
	b.castling &^= c
}

// EnPassant returns the en passant target square, NoSquare if none.
func (b *Board) EnPassant() Square {
	return b.enPassant
}

// SetEnPassant sets the en passant target square.
func (b *Board) SetEnPassant(sq Square) {
	b.enPassant = sq
}

// MoveNumber returns the full move number.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// SetMoveNumber sets the full move number.
func (b *Board) SetMoveNumber(n int) {
	b.moveNumber = n
}

// HalfmoveClock returns the half-moves since the last pawn move or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// SetHalfmoveClock sets the half-move clock.
func (b *Board) SetHalfmoveClock(n int) {
	b.halfmoveClock = n
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(c Colour) (Square, bool) {
	king := MakePiece(c, King)
	for sq, p := range b.squares {
		if p == king {
			return Square(sq), true
		}
	}
	return NoSquare, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.captured = b.CapturedCounts()
	return newBoard
}

// Equal reports whether two boards hold the same state.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.squares != o.squares || b.turn != o.turn || b.castling != o.castling ||
		b.enPassant != o.enPassant || b.moveNumber != o.moveNumber ||
		b.halfmoveClock != o.halfmoveClock {
		return false
	}
	if len(b.captured) != len(o.captured) {
		return false
	}
	for p, n := range b.captured {
		if o.captured[p] != n {
			return false
		}
	}
	return true
}

// String renders the board as 64 FEN characters, rank 8 first, one rank per
// line with a line break after every 8th square. Empty squares are spaces.
func (b *Board) String() string {
	buf := make([]byte, 0, NumSquares+BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			buf = append(buf, b.squares[SquareAt(file, rank)].Char())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
