// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/dreamchess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
// Its values share the bit space of Piece so that a coloured piece is a
// single OR of a kind and a colour.
type Colour uint16

const (
	NoColour Colour = 0
	White    Colour = 1 << 6
	Black    Colour = 1 << 7
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// PawnDirection returns +1 for White, -1 for Black (rank direction of pawn pushes).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index (0 or 7) of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Piece is a flag value combining a piece kind and a colour.
// Kind bits and colour bits are disjoint; None is empty and colourless.
type Piece uint16

const (
	None   Piece = 0
	Pawn   Piece = 1 << 0
	Knight Piece = 1 << 1
	Bishop Piece = 1 << 2
	Rook   Piece = 1 << 3
	Queen  Piece = 1 << 4
	King   Piece = 1 << 5

	kindMask   = Pawn | Knight | Bishop | Rook | Queen | King
	colourMask = Piece(White) | Piece(Black)
)

// Coloured pieces.
const (
	WhitePawn   = Pawn | Piece(White)
	WhiteKnight = Knight | Piece(White)
	WhiteBishop = Bishop | Piece(White)
	WhiteRook   = Rook | Piece(White)
	WhiteQueen  = Queen | Piece(White)
	WhiteKing   = King | Piece(White)

	BlackPawn   = Pawn | Piece(Black)
	BlackKnight = Knight | Piece(Black)
	BlackBishop = Bishop | Piece(Black)
	BlackRook   = Rook | Piece(Black)
	BlackQueen  = Queen | Piece(Black)
	BlackKing   = King | Piece(Black)
)

// Kinds lists the six piece kinds in PNBRQK order.
var Kinds = [...]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionKinds lists the kinds a pawn may promote to.
var PromotionKinds = [...]Piece{Queen, Rook, Bishop, Knight}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Piece) Piece {
	if kind.Type() == None || colour == NoColour {
		return None
	}
	return kind.Type() | Piece(colour)
}

// W creates a white piece.
func W(kind Piece) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Piece) Piece {
	return MakePiece(Black, kind)
}

// Type returns the kind of the piece with the colour bits masked out.
func (p Piece) Type() Piece {
	return p & kindMask
}

// Color returns the colour of the piece with the kind bits masked out.
func (p Piece) Color() Colour {
	return Colour(p & colourMask)
}

// OppositeColor returns the colour opposing the piece's colour.
func (p Piece) OppositeColor() Colour {
	return p.Color().Opposite()
}

// Is reports whether the piece is of the given kind, ignoring colour.
func (p Piece) Is(kind Piece) bool {
	return p != None && p.Type() == kind.Type()
}

// IsValid reports whether p is None or exactly one kind with exactly one colour.
func (p Piece) IsValid() bool {
	if p == None {
		return true
	}
	if p&^(kindMask|colourMask) != 0 {
		return false
	}
	_, kindOK := kindNames[p.Type()]
	colour := p.Color()
	return kindOK && (colour == White || colour == Black)
}

var kindNames = map[Piece]string{
	Pawn:   "Pawn",
	Knight: "Knight",
	Bishop: "Bishop",
	Rook:   "Rook",
	Queen:  "Queen",
	King:   "King",
}

// String returns the string representation of a piece, e.g. "White Knight".
func (p Piece) String() string {
	if p == None {
		return "None"
	}
	name, ok := kindNames[p.Type()]
	if !ok {
		return fmt.Sprintf("Piece(%d)", uint16(p))
	}
	if p.Color() == NoColour {
		return name
	}
	return p.Color().String() + " " + name
}

// Letter returns the single uppercase letter of the piece kind, ' ' for None.
func (p Piece) Letter() byte {
	if p.Type() == None {
		return ' '
	}
	return pieceChars[p.Type()|Piece(White)]
}

// Char returns the FEN character of the piece: uppercase for White,
// lowercase for Black and a space for None.
func (p Piece) Char() byte {
	if c, ok := pieceChars[p]; ok {
		return c
	}
	return '?'
}

// Unicode returns the chess symbol of the piece, " " for None.
func (p Piece) Unicode() string {
	if s, ok := pieceSymbols[p]; ok {
		return s
	}
	return "?"
}

// PieceFromChar converts a FEN character back to a coloured piece.
// A space maps to None.
func PieceFromChar(c byte) (Piece, error) {
	if p, ok := charPieces[c]; ok {
		return p, nil
	}
	return None, errors.Wrapf(errors.ErrUnknownPieceChar, "%q", c)
}

// KindFromLetter converts a piece letter of either case to a colourless kind.
func KindFromLetter(c byte) (Piece, error) {
	p, err := PieceFromChar(c)
	if err != nil || p == None {
		return None, errors.Wrapf(errors.ErrUnknownPieceChar, "%q", c)
	}
	return p.Type(), nil
}

var pieceChars = map[Piece]byte{
	None:        ' ',
	WhitePawn:   'P',
	WhiteKnight: 'N',
	WhiteBishop: 'B',
	WhiteRook:   'R',
	WhiteQueen:  'Q',
	WhiteKing:   'K',
	BlackPawn:   'p',
	BlackKnight: 'n',
	BlackBishop: 'b',
	BlackRook:   'r',
	BlackQueen:  'q',
	BlackKing:   'k',
}

var charPieces = func() map[byte]Piece {
	m := make(map[byte]Piece, len(pieceChars))
	for p, c := range pieceChars {
		m[c] = p
	}
	return m
}()

var pieceSymbols = map[Piece]string{
	None:        " ",
	WhitePawn:   "♙",
	WhiteKnight: "♘",
	WhiteBishop: "♗",
	WhiteRook:   "♖",
	WhiteQueen:  "♕",
	WhiteKing:   "♔",
	BlackPawn:   "♟",
	BlackKnight: "♞",
	BlackBishop: "♝",
	BlackRook:   "♜",
	BlackQueen:  "♛",
	BlackKing:   "♚",
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)
