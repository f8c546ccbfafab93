// Package game ties the board, the rules engine and the move history together
// behind a text move API.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/engine"
	"github.com/lgbarn/dreamchess-go/internal/errors"
	"github.com/lgbarn/dreamchess-go/internal/history"
)

// Game is a single two-player game. It is not safe for concurrent use.
type Game struct {
	id      uuid.UUID
	board   *chess.Board
	history *history.History
	logger  *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and export events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithID sets the game identifier instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

// WithBoard starts the game from the given position instead of the standard
// one. The game takes ownership of the board.
func WithBoard(board *chess.Board) Option {
	return func(g *Game) {
		if board != nil {
			g.board = board
		}
	}
}

// New creates a game in the starting position with an empty history.
func New(opts ...Option) *Game {
	g := &Game{
		id:      uuid.New(),
		board:   chess.NewBoard(),
		history: history.New(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("game", g.id.String())
	return g
}

// Play parses the input, checks it against the rules and applies it.
// Failures are returned as *errors.MoveError wrapping ErrInvalidMoveSyntax,
// ErrIllegalMove or ErrGameOver; the game is left unchanged on error.
func (g *Game) Play(input string) error {
	ply := g.ply()

	if !engine.IsInGame(g.board) {
		g.logger.Info("move rejected", "move", input, "reason", "game over")
		return &errors.MoveError{Err: errors.ErrGameOver, Ply: ply, MoveText: input}
	}

	m, err := chess.ParseMove(g.board, input)
	if err != nil {
		g.logger.Info("move rejected", "move", input, "reason", "syntax")
		return &errors.MoveError{Err: err, Ply: ply, MoveText: input}
	}

	if !engine.MoveIsValid(g.board, m) {
		g.logger.Info("move rejected", "move", input, "reason", "illegal")
		return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: ply, MoveText: input}
	}

	engine.MakeMove(g.board, m)
	g.history.AddStep(m)
	g.logger.Debug("move played", "ply", ply, "move", m.String(), "san", m.ToAlgebraic(),
		"status", engine.GameStatus(g.board).String())
	return nil
}

// MakeMove plays the input and reports whether it was accepted.
func (g *Game) MakeMove(input string) bool {
	return g.Play(input) == nil
}

// IsInGame reports whether the side to move can still play.
func (g *Game) IsInGame() bool {
	return engine.IsInGame(g.board)
}

// Status classifies the current position for the side to move.
func (g *Game) Status() engine.Status {
	return engine.GameStatus(g.board)
}

// Reset returns the board to the starting position. The history is kept.
func (g *Game) Reset() {
	g.board.Reset()
	g.logger.Info("board reset", "history", g.history.Len())
}

// PieceAt returns the piece on the given square.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.board.PieceAt(sq)
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// History returns the move history.
func (g *Game) History() *history.History {
	return g.history
}

// ID returns the game identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.Turn()
}

// LegalMoves lists every legal move for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(g.board)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.ToFEN(g.board)
}

// HistoryFileName returns the base name used for history exports.
func (g *Game) HistoryFileName() string {
	return fmt.Sprintf("game_%s.txt", g.id)
}

// ExportHistory writes the history to <dir>/game_<id>.txt and returns the
// path written.
func (g *Game) ExportHistory(dir string) (string, error) {
	path := filepath.Join(dir, g.HistoryFileName())
	if err := g.history.ExportToFile(path); err != nil {
		g.logger.Error("history export failed", "path", path, "error", err)
		return "", errors.Wrapf(err, "exporting game %s", g.id)
	}
	g.logger.Info("history exported", "path", path, "steps", g.history.Len())
	return path, nil
}

// ply returns the 1-based ply of the next move on the current board.
func (g *Game) ply() int {
	ply := (g.board.MoveNumber()-1)*2 + 1
	if g.board.Turn() == chess.Black {
		ply++
	}
	return ply
}
