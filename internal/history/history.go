// Package history records the moves accepted during a game and exports them
// as numbered lines of simplified algebraic notation.
package history

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/dreamchess-go/internal/chess"
)

// Step is one accepted move.
type Step struct {
	// Number is the 1-based position of the step in the history.
	Number int

	// Algebraic is the simplified algebraic form, e.g. "Nf3" or "e8=Q".
	Algebraic string

	// Colour is the side that made the move.
	Colour chess.Colour

	// Long is the coordinate form, e.g. "g1-f3".
	Long string
}

// String returns the export line for the step without the trailing newline.
func (s Step) String() string {
	return fmt.Sprintf("%d. %s", s.Number, s.Algebraic)
}

// History is an append-only log of steps in play order.
type History struct {
	steps []Step
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// AddStep appends a move. The move must already have been validated.
func (h *History) AddStep(m chess.Move) {
	h.steps = append(h.steps, Step{
		Number:    len(h.steps) + 1,
		Algebraic: m.ToAlgebraic(),
		Colour:    m.Piece.Color(),
		Long:      m.String(),
	})
}

// Len returns the number of recorded steps.
func (h *History) Len() int {
	return len(h.steps)
}

// Steps returns a copy of the recorded steps.
func (h *History) Steps() []Step {
	out := make([]Step, len(h.steps))
	copy(out, h.steps)
	return out
}

// First returns the earliest step, if any.
func (h *History) First() (Step, bool) {
	if len(h.steps) == 0 {
		return Step{}, false
	}
	return h.steps[0], true
}

// Last returns the most recent step, if any.
func (h *History) Last() (Step, bool) {
	if len(h.steps) == 0 {
		return Step{}, false
	}
	return h.steps[len(h.steps)-1], true
}

// ExportAll renders every step as "<N>. <algebraic>\n" in play order.
// Exporting does not consume the log.
func (h *History) ExportAll() string {
	var sb strings.Builder
	for _, s := range h.steps {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the ExportAll text to w.
func (h *History) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, h.ExportAll())
	return int64(n), err
}

// ExportToFile writes the ExportAll text to path, creating the parent
// directory when needed. An existing file is truncated.
func (h *History) ExportToFile(path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating history directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return fmt.Errorf("creating history file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing history file: %w", cerr)
		}
	}()

	if _, err := h.WriteTo(f); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}
