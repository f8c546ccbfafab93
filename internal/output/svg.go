package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/dreamchess-go/internal/chess"
)

const (
	svgLightSquare = "fill:#f0d9b5"
	svgDarkSquare  = "fill:#b58863"
	svgLabelStyle  = "font-family:sans-serif;fill:#333;text-anchor:middle"
)

// errWriter remembers the first write error so that drawing calls, which
// do not return errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws the board as an SVG diagram with rank 8 at the top and
// coordinates along the left and bottom edges. squareSize is the side of one
// square in pixels.
func WriteSVG(w io.Writer, b *chess.Board, squareSize int) error {
	if squareSize <= 0 {
		return fmt.Errorf("invalid square size %d", squareSize)
	}
	ew := &errWriter{w: w}
	margin := squareSize / 2
	side := margin + chess.BoardSize*squareSize

	canvas := svg.New(ew)
	canvas.Start(side, side+margin)
	canvas.Title("dreamchess board")

	pieceStyle := fmt.Sprintf("font-family:serif;font-size:%dpx;text-anchor:middle", squareSize*4/5)
	labelStyle := fmt.Sprintf("%s;font-size:%dpx", svgLabelStyle, squareSize/3)

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		y := (chess.BoardSize - 1 - rank) * squareSize
		canvas.Text(margin/2, y+squareSize*3/5, string(rune(chess.RankBase+rank)), labelStyle)

		for file := 0; file < chess.BoardSize; file++ {
			x := margin + file*squareSize
			style := svgLightSquare
			if (file+rank)%2 == 0 {
				style = svgDarkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			p := b.PieceAt(chess.SquareAt(file, rank))
			if p != chess.None {
				canvas.Text(x+squareSize/2, y+squareSize*4/5, p.Unicode(), pieceStyle)
			}
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		x := margin + file*squareSize + squareSize/2
		canvas.Text(x, chess.BoardSize*squareSize+margin*3/4, string(rune(chess.FileBase+file)), labelStyle)
	}

	canvas.End()
	return ew.err
}

// SaveSVG writes the board diagram to a file.
func SaveSVG(path string, b *chess.Board, squareSize int) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteSVG(w, b, squareSize)
	})
}
