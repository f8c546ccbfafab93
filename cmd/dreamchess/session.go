package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/lgbarn/dreamchess-go/internal/config"
	"github.com/lgbarn/dreamchess-go/internal/engine"
	"github.com/lgbarn/dreamchess-go/internal/game"
	"github.com/lgbarn/dreamchess-go/internal/output"
)

// command is an interactive command other than a move.
type command struct {
	name string
	help string
	run  func(s *session, args []string) error
}

// commands lists the interactive commands. Anything else is read as a move.
var commands = []command{
	{"board", "Print the board", (*session).cmdBoard},
	{"moves", "List the legal moves", (*session).cmdMoves},
	{"history", "Print the move history", (*session).cmdHistory},
	{"export", "Write the move history to the history directory", (*session).cmdExport},
	{"fen", "Print the position in FEN", (*session).cmdFEN},
	{"svg", "svg <file>: write an SVG diagram of the board", (*session).cmdSVG},
	{"captured", "List captured pieces", (*session).cmdCaptured},
	{"reset", "Restart from the initial position (history is kept)", (*session).cmdReset},
	{"help", "List the commands", nil},
	{"quit", "Leave the game", nil},
}

// session is one interactive game on a terminal.
type session struct {
	cfg      *config.Config
	game     *game.Game
	renderer *output.BoardRenderer
	logger   *slog.Logger
	out      io.Writer
	exported bool
}

// newSession creates a session writing to cfg.OutputFile.
func newSession(cfg *config.Config, g *game.Game, logger *slog.Logger) *session {
	return &session{
		cfg:      cfg,
		game:     g,
		renderer: output.NewBoardRenderer(cfg.Display),
		logger:   logger,
		out:      cfg.OutputFile,
	}
}

// run prints the board and processes input lines until quit or EOF.
func (s *session) run(in io.Reader) error {
	s.printBoard()
	s.prompt()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := s.handle(scanner.Text()); quit {
			break
		}
		s.prompt()
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	s.finish()
	return nil
}

// handle processes one input line and reports whether to stop.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	name := strings.ToLower(fields[0])
	switch name {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		s.printHelp()
		return false
	}

	for _, c := range commands {
		if c.name == name && c.run != nil {
			if err := c.run(s, fields[1:]); err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
			return false
		}
	}

	s.playMove(line)
	return false
}

// playMove plays a move and reports the new position.
func (s *session) playMove(input string) {
	if err := s.game.Play(input); err != nil {
		fmt.Fprintf(s.out, "Invalid move: %v\n", err)
		return
	}

	s.printBoard()
	s.writeSVG()

	switch status := s.game.Status(); status {
	case engine.Check:
		fmt.Fprintf(s.out, "%s is in check.\n", s.game.Turn())
	case engine.Checkmate, engine.KingCaptured:
		fmt.Fprintf(s.out, "Game over: %s. %s wins.\n", status, s.game.Turn().Opposite())
		if s.cfg.History.AutoExport {
			s.export()
		}
	}
}

// finish exports the history on exit when auto export is on.
func (s *session) finish() {
	if s.cfg.History.AutoExport && !s.exported && s.game.History().Len() > 0 {
		s.export()
	}
}

func (s *session) export() {
	path, err := output.ExportGame(s.game, s.cfg.History)
	if err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	s.exported = true
	fmt.Fprintf(s.out, "History written to %s\n", path)
}

func (s *session) writeSVG() {
	if s.cfg.Display.SVGFile == "" {
		return
	}
	if err := output.SaveSVG(s.cfg.Display.SVGFile, s.game.Board(), s.cfg.Display.SVGSquareSize); err != nil {
		s.logger.Warn("SVG diagram not written", "path", s.cfg.Display.SVGFile, "error", err)
	}
}

func (s *session) prompt() {
	if !s.game.IsInGame() {
		fmt.Fprint(s.out, "> ")
		return
	}
	fmt.Fprintf(s.out, "%s to move> ", s.game.Turn())
}

func (s *session) printBoard() {
	if err := s.renderer.WriteBoard(s.out, s.game.Board()); err != nil {
		s.logger.Warn("Board not written", "error", err)
	}
}

func (s *session) printHelp() {
	fmt.Fprintln(s.out, "Enter moves as <from>-<to>[=<piece>], e.g. e2-e4 or e7-e8=N.")
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-10s %s\n", c.name, c.help)
	}
}

func (s *session) cmdBoard(_ []string) error {
	s.printBoard()
	return nil
}

func (s *session) cmdMoves(_ []string) error {
	moves := s.game.LegalMoves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	sort.Strings(names)
	fmt.Fprintf(s.out, "%d legal moves: %s\n", len(names), strings.Join(names, " "))
	return nil
}

func (s *session) cmdHistory(_ []string) error {
	_, err := s.game.History().WriteTo(s.out)
	return err
}

func (s *session) cmdExport(_ []string) error {
	s.export()
	return nil
}

func (s *session) cmdFEN(_ []string) error {
	fmt.Fprintln(s.out, s.game.FEN())
	return nil
}

func (s *session) cmdSVG(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: svg <file>")
	}
	if err := output.SaveSVG(args[0], s.game.Board(), s.cfg.Display.SVGSquareSize); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Board written to %s\n", args[0])
	return nil
}

func (s *session) cmdCaptured(_ []string) error {
	fmt.Fprint(s.out, s.renderer.CapturedSummary(s.game.Board()))
	return nil
}

func (s *session) cmdReset(_ []string) error {
	s.game.Reset()
	s.exported = false
	s.printBoard()
	return nil
}
