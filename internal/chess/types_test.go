package chess

import (
	"testing"

	"github.com/lgbarn/dreamchess-go/internal/errors"
)

func TestPieceDecomposition(t *testing.T) {
	tests := []struct {
		piece    Piece
		kind     Piece
		colour   Colour
		opposite Colour
	}{
		{WhitePawn, Pawn, White, Black},
		{BlackKnight, Knight, Black, White},
		{WhiteQueen, Queen, White, Black},
		{BlackKing, King, Black, White},
		{None, None, NoColour, NoColour},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Type(); got != tt.kind {
				t.Errorf("Type() = %v; want %v", got, tt.kind)
			}
			if got := tt.piece.Color(); got != tt.colour {
				t.Errorf("Color() = %v; want %v", got, tt.colour)
			}
			if got := tt.piece.OppositeColor(); got != tt.opposite {
				t.Errorf("OppositeColor() = %v; want %v", got, tt.opposite)
			}
		})
	}
}

func TestMakePiece(t *testing.T) {
	if got := MakePiece(Black, Rook); got != BlackRook {
		t.Errorf("MakePiece(Black, Rook) = %v; want Black Rook", got)
	}
	if got := MakePiece(White, WhiteBishop); got != WhiteBishop {
		t.Errorf("MakePiece(White, WhiteBishop) = %v; want White Bishop", got)
	}
	if got := MakePiece(NoColour, Rook); got != None {
		t.Errorf("MakePiece(NoColour, Rook) = %v; want None", got)
	}
}

func TestPieceCharRoundTrip(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for _, kind := range Kinds {
			p := MakePiece(colour, kind)
			got, err := PieceFromChar(p.Char())
			if err != nil {
				t.Fatalf("PieceFromChar(%q) error: %v", p.Char(), err)
			}
			if got != p {
				t.Errorf("PieceFromChar(%q) = %v; want %v", p.Char(), got, p)
			}
		}
	}

	if None.Char() != ' ' {
		t.Errorf("None.Char() = %q; want ' '", None.Char())
	}
	if got, err := PieceFromChar(' '); err != nil || got != None {
		t.Errorf("PieceFromChar(' ') = %v, %v; want None, nil", got, err)
	}
}

func TestPieceFromCharUnknown(t *testing.T) {
	for _, c := range []byte{'x', 'Z', '1', '.'} {
		if _, err := PieceFromChar(c); !errors.Is(err, errors.ErrUnknownPieceChar) {
			t.Errorf("PieceFromChar(%q) error = %v; want ErrUnknownPieceChar", c, err)
		}
	}
}

func TestPieceGlyphs(t *testing.T) {
	tests := []struct {
		piece   Piece
		char    byte
		letter  byte
		unicode string
	}{
		{WhiteKing, 'K', 'K', "♔"},
		{BlackKing, 'k', 'K', "♚"},
		{BlackPawn, 'p', 'P', "♟"},
		{None, ' ', ' ', " "},
	}

	for _, tt := range tests {
		if got := tt.piece.Char(); got != tt.char {
			t.Errorf("%v.Char() = %q; want %q", tt.piece, got, tt.char)
		}
		if got := tt.piece.Letter(); got != tt.letter {
			t.Errorf("%v.Letter() = %q; want %q", tt.piece, got, tt.letter)
		}
		if got := tt.piece.Unicode(); got != tt.unicode {
			t.Errorf("%v.Unicode() = %q; want %q", tt.piece, got, tt.unicode)
		}
	}
}

func TestPieceIsValid(t *testing.T) {
	if !WhiteQueen.IsValid() || !None.IsValid() {
		t.Error("IsValid() rejected a well-formed piece")
	}
	if (Pawn | Knight | Piece(White)).IsValid() {
		t.Error("IsValid() accepted two kinds")
	}
	if (Pawn | Piece(White) | Piece(Black)).IsValid() {
		t.Error("IsValid() accepted two colours")
	}
	if Rook.IsValid() {
		t.Error("IsValid() accepted a colourless kind")
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		file int
		rank int
	}{
		{"a1", 0, 0, 0},
		{"h1", 7, 7, 0},
		{"e4", 28, 4, 3},
		{"a5", 32, 0, 4},
		{"h8", 63, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquareAt(tt.file, tt.rank); got != tt.sq {
				t.Errorf("SquareAt(%d, %d) = %d; want %d", tt.file, tt.rank, got, tt.sq)
			}
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			got, err := ParseSquare(tt.name)
			if err != nil || got != tt.sq {
				t.Errorf("ParseSquare(%q) = %d, %v; want %d", tt.name, got, err, tt.sq)
			}
		})
	}

	if SquareAt(8, 0) != NoSquare || SquareAt(0, -1) != NoSquare {
		t.Error("SquareAt() accepted an off-board coordinate")
	}
	for _, bad := range []string{"", "i1", "a9", "e44"} {
		if _, err := ParseSquare(bad); !errors.Is(err, errors.ErrInvalidMoveSyntax) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidMoveSyntax", bad, err)
		}
	}
}
