package history

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/dreamchess-go/internal/chess"
	"github.com/lgbarn/dreamchess-go/internal/testutil"
)

// record plays the textual moves on a fresh board without legality checks,
// appending each to a new history.
func record(t *testing.T, moves ...string) *History {
	t.Helper()
	b := chess.NewBoard()
	h := New()
	for _, text := range moves {
		m := testutil.MustParseMove(t, b, text)
		h.AddStep(m)
		b.SetPiece(m.Destination, b.PieceAt(m.Source))
		b.SetPiece(m.Source, chess.None)
		b.SetTurn(b.OpponentTurn())
	}
	return h
}

func TestHistory_Empty(t *testing.T) {
	h := New()

	if h.Len() != 0 {
		t.Errorf("Len() = %d; want 0", h.Len())
	}
	if got := h.ExportAll(); got != "" {
		t.Errorf("ExportAll() = %q; want empty", got)
	}
	if _, ok := h.First(); ok {
		t.Error("First() ok = true; want false")
	}
	if _, ok := h.Last(); ok {
		t.Error("Last() ok = true; want false")
	}
}

func TestHistory_ExportAll(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{
			name:  "single pawn move",
			moves: []string{"e2-e4"},
			want:  "1. e4\n",
		},
		{
			name:  "pieces carry their letter",
			moves: []string{"e2-e4", "e7-e5", "g1-f3", "b8-c6"},
			want:  "1. e4\n2. e5\n3. Nf3\n4. Nc6\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := record(t, tt.moves...)
			testutil.AssertEqual(t, h.ExportAll(), tt.want)
		})
	}
}

func TestHistory_ExportDoesNotConsume(t *testing.T) {
	h := record(t, "d2-d4", "d7-d5")

	first := h.ExportAll()
	second := h.ExportAll()
	testutil.AssertEqual(t, second, first)
	testutil.AssertEqual(t, h.Len(), 2)
}

func TestHistory_Steps(t *testing.T) {
	h := record(t, "e2-e4", "g8-f6")

	want := []Step{
		{Number: 1, Algebraic: "e4", Colour: chess.White, Long: "e2-e4"},
		{Number: 2, Algebraic: "Nf6", Colour: chess.Black, Long: "g8-f6"},
	}
	testutil.AssertEqual(t, h.Steps(), want)

	steps := h.Steps()
	steps[0].Algebraic = "changed"
	if s, _ := h.First(); s.Algebraic != "e4" {
		t.Errorf("First().Algebraic = %q after mutating Steps() copy; want %q", s.Algebraic, "e4")
	}
	if s, _ := h.Last(); s.Long != "g8-f6" {
		t.Errorf("Last().Long = %q; want %q", s.Long, "g8-f6")
	}
}

func TestHistory_Promotion(t *testing.T) {
	h := New()
	h.AddStep(chess.NewMoveWithPromotion(chess.SquareAt(4, 6), chess.E8, chess.W(chess.Pawn), chess.W(chess.Knight)))

	testutil.AssertEqual(t, h.ExportAll(), "1. e8=N\n")
}

func TestHistory_WriteTo(t *testing.T) {
	h := record(t, "e2-e4", "e7-e5")

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, int64(buf.Len()))
	testutil.AssertEqual(t, buf.String(), "1. e4\n2. e5\n")
}

func TestHistory_ExportToFile(t *testing.T) {
	h := record(t, "e2-e4", "c7-c5")
	path := filepath.Join(t.TempDir(), "history", "game_1.txt")

	testutil.AssertNoError(t, h.ExportToFile(path))

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(data), "1. e4\n2. c5\n")
	testutil.AssertEqual(t, h.Len(), 2, "export must not mutate history")
}

func TestHistory_ExportToFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.txt")
	if err := os.WriteFile(path, []byte("stale content that is longer\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := record(t, "a2-a3")
	testutil.AssertNoError(t, h.ExportToFile(path))

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(data), "1. a3\n")
}

func TestHistory_ExportToFileError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	h := record(t, "e2-e4")
	err := h.ExportToFile(filepath.Join(blocker, "sub", "game.txt"))
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, h.Len(), 1)
}
