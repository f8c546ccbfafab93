package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. Missing trailing fields
// take their starting-position defaults.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewEmptyBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}

	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}

	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece, err := chess.PieceFromChar(c)
			if err != nil || piece == chess.None {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.SquareAt(file, rank)
			if sq == chess.NoSquare {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			board.SetPiece(sq, piece)
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.SetTurn(chess.White)
	case "b":
		board.SetTurn(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.SetCastling(chess.NoCastling)
	if len(parts) < 3 {
		board.SetCastling(chess.AllCastling)
		return nil
	}
	if parts[2] == "-" {
		return nil
	}

	var rights chess.CastlingRights
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights |= chess.WhiteKingside
		case 'Q':
			rights |= chess.WhiteQueenside
		case 'k':
			rights |= chess.BlackKingside
		case 'q':
			rights |= chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling field %q: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	board.SetCastling(rights)
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.SetEnPassant(chess.NoSquare)
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.SetHalfmoveClock(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.SetMoveNumber(n)
	}
	return nil
}

// ToFEN converts a board to a FEN string.
func ToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling().String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant().String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock(), board.MoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.SquareAt(file, rank))
			if piece == chess.None {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.Turn() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
