package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/dreamchess-go/internal/config"
	"github.com/lgbarn/dreamchess-go/internal/game"
)

// GameWriter is the interface for writing game histories to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes the history of a single game to the output.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the given history format.
func NewGameWriter(w io.Writer, format config.HistoryFormat) GameWriter {
	if format == config.JSONHistory {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes histories as numbered "<N>. <move>" lines.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteGame writes the game's history lines.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	_, err := g.History().WriteTo(tw.w)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes histories in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*game.Game
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*game.Game, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	if jw.single {
		return encodeJSON(jw.w, GameToJSON(g))
	}
	jw.games = append(jw.games, g)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// ExportGame writes the game's history into cfg.Dir in cfg.Format and
// returns the path written. Text exports go through the game itself so the
// file name and logging match Game.ExportHistory.
func ExportGame(g *game.Game, cfg *config.HistoryConfig) (string, error) {
	if cfg.Format == config.TextHistory {
		return g.ExportHistory(cfg.Dir)
	}

	name := strings.TrimSuffix(g.HistoryFileName(), filepath.Ext(g.HistoryFileName())) + cfg.Format.Extension()
	path := filepath.Join(cfg.Dir, name)
	if err := writeFile(path, func(w io.Writer) error {
		gw := NewGameWriter(w, cfg.Format)
		if err := gw.WriteGame(g); err != nil {
			return err
		}
		return gw.Close()
	}); err != nil {
		return "", err
	}
	return path, nil
}

// writeFile creates path and its directory, hands the file to write and
// closes it, reporting the first error.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := os.Create(path) //nolint:gosec // G304: path comes from configuration
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
