// Package output renders boards and exports move histories in the formats
// supported by dreamchess.
package output

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/config"
)

// BoardRenderer draws a board as text according to a DisplayConfig.
//
// With the default settings the output is the 64-glyph grid: rank 8 first,
// eight squares per line, a line break after every eighth square and a space
// for an empty square.
type BoardRenderer struct {
	cfg *config.DisplayConfig

	// Square colours, indexed by [dark square][black piece].
	palette [2][2]*color.Color
}

// NewBoardRenderer creates a renderer. A nil cfg uses the defaults.
func NewBoardRenderer(cfg *config.DisplayConfig) *BoardRenderer {
	if cfg == nil {
		cfg = config.NewDisplayConfig()
	}
	r := &BoardRenderer{cfg: cfg}
	if cfg.Colour {
		r.palette = [2][2]*color.Color{
			{color.New(color.BgHiWhite, color.FgBlue, color.Bold), color.New(color.BgHiWhite, color.FgBlack, color.Bold)},
			{color.New(color.BgGreen, color.FgHiWhite, color.Bold), color.New(color.BgGreen, color.FgBlack, color.Bold)},
		}
		// The flag is an explicit request, so colour is forced even when
		// the output is not a terminal.
		for _, row := range r.palette {
			for _, c := range row {
				c.EnableColor()
			}
		}
	}
	return r
}

// Glyph returns the text used for a piece under the configured glyph set.
func (r *BoardRenderer) Glyph(p chess.Piece) string {
	if r.cfg.Glyphs == config.Unicode {
		return p.Unicode()
	}
	return string(p.Char())
}

// Render returns the board as text.
func (r *BoardRenderer) Render(b *chess.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if r.cfg.Coordinates {
			sb.WriteByte(byte(chess.RankBase + rank))
			sb.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(file, rank)
			sb.WriteString(r.square(sq, b.PieceAt(sq)))
		}
		sb.WriteByte('\n')
	}
	if r.cfg.Coordinates {
		sb.WriteString(r.fileLabels())
	}
	return sb.String()
}

// WriteBoard writes the rendered board to w.
func (r *BoardRenderer) WriteBoard(w io.Writer, b *chess.Board) error {
	_, err := io.WriteString(w, r.Render(b))
	return err
}

// square renders one square.
func (r *BoardRenderer) square(sq chess.Square, p chess.Piece) string {
	glyph := r.Glyph(p)
	if !r.cfg.Colour {
		return glyph
	}
	dark := 0
	if (sq.File()+sq.Rank())%2 == 0 {
		dark = 1
	}
	black := 0
	if p.Color() == chess.Black {
		black = 1
	}
	return r.palette[dark][black].Sprint(" " + glyph + " ")
}

// fileLabels returns the "a".."h" footer aligned with the squares.
func (r *BoardRenderer) fileLabels() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		if r.cfg.Colour {
			sb.WriteByte(' ')
			sb.WriteByte(byte(chess.FileBase + file))
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(byte(chess.FileBase + file))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// CapturedSummary lists the captured pieces of both sides, e.g.
// "White: P P N\nBlack: p\n". Pieces are listed in kind order.
func (r *BoardRenderer) CapturedSummary(b *chess.Board) string {
	var sb strings.Builder
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		sb.WriteString(c.String())
		sb.WriteByte(':')
		for _, kind := range chess.Kinds {
			p := chess.MakePiece(c, kind)
			for i := 0; i < b.Captured(p); i++ {
				sb.WriteByte(' ')
				sb.WriteString(r.Glyph(p))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
