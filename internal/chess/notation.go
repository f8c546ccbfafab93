package chess

import (
	"regexp"
	"strings"

	"github.com/lgbarn/dreamchess-go/internal/errors"
)

// moveSyntax matches "<from>-<to>[=<promotion>]" after lowercasing.
var moveSyntax = regexp.MustCompile(`^([a-h][1-8])-([a-h][1-8])(?:=([nbrq]))?$`)

// algebraicSyntax matches ToAlgebraic output: optional piece letter,
// destination square and optional promotion suffix.
var algebraicSyntax = regexp.MustCompile(`^([NBRQK])?([a-h][1-8])(?:=([NBRQ]))?$`)

// ParseMove parses textual move input such as "e2-e4" or "e7-e8=N".
// Surrounding whitespace is ignored and letters are case-insensitive; a
// promoted piece always takes the mover's colour. Without a promotion suffix
// a pawn reaching the far rank promotes to a queen.
func ParseMove(b *Board, text string) (Move, error) {
	in := strings.ToLower(strings.TrimSpace(text))
	match := moveSyntax.FindStringSubmatch(in)
	if match == nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveSyntax, "%q", text)
	}

	src, err := ParseSquare(match[1])
	if err != nil {
		return Move{}, err
	}
	dst, err := ParseSquare(match[2])
	if err != nil {
		return Move{}, err
	}

	m := NewMove(b, src, dst)
	if match[3] != "" {
		kind, err := KindFromLetter(match[3][0])
		if err != nil {
			return Move{}, err
		}
		colour := m.Piece.Color()
		if colour == NoColour {
			colour = b.Turn()
		}
		m.Promotion = MakePiece(colour, kind)
	}
	return m, nil
}

// ToAlgebraic returns the simplified algebraic form of the move: the piece
// letter (omitted for pawns) followed by the destination square. Promotions
// append "=<letter>".
func (m Move) ToAlgebraic() string {
	var sb strings.Builder
	if m.Piece != None && !m.Piece.Is(Pawn) {
		sb.WriteByte(m.Piece.Letter())
	}
	sb.WriteString(m.Destination.String())
	if m.Promotion != None {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
	return sb.String()
}

// ParseAlgebraic reads the destination square and the colourless promotion
// kind back from ToAlgebraic output. The kind is None when there is no
// promotion suffix.
func ParseAlgebraic(s string) (Square, Piece, error) {
	match := algebraicSyntax.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return NoSquare, None, errors.Wrapf(errors.ErrInvalidMoveSyntax, "algebraic %q", s)
	}
	dst, err := ParseSquare(match[2])
	if err != nil {
		return NoSquare, None, err
	}
	if match[3] == "" {
		return dst, None, nil
	}
	kind, err := KindFromLetter(match[3][0])
	if err != nil {
		return NoSquare, None, err
	}
	return dst, kind, nil
}
