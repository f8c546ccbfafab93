package chess

import "github.com/lgbarn/dreamchess-go/internal/errors"

// Square is a board index in 0-63, index = rank*8 + file.
// Square 0 is a1 and square 63 is h8.
type Square int

// NoSquare marks the absence of a square (e.g. no en passant target).
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// SquareAt returns the square for a zero-based file and rank.
// It returns NoSquare if either coordinate is off the board.
func SquareAt(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// File returns the zero-based file (0 = 'a').
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the zero-based rank (0 = '1').
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether the square lies within 0-63.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidMoveSyntax, "square %q", name)
	}
	file := int(name[0]) - FileBase
	rank := int(name[1]) - RankBase
	sq := SquareAt(file, rank)
	if sq == NoSquare {
		return NoSquare, errors.Wrapf(errors.ErrInvalidMoveSyntax, "square %q", name)
	}
	return sq, nil
}

// mustBeOnBoard panics if the square is outside 0-63.
func mustBeOnBoard(s Square) {
	if !s.Valid() {
		panic(&errors.IndexError{Index: int(s)})
	}
}
