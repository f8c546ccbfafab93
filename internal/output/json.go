package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/dreamchess-go/internal/game"
	"github.com/lgbarn/dreamchess-go/internal/history"
)

// JSONGame represents a game history in JSON format.
type JSONGame struct {
	ID       string     `json:"id"`
	Moves    []JSONMove `json:"moves"`
	PlyCount int        `json:"plyCount"`
	Status   string     `json:"status"`
	FinalFEN string     `json:"finalFEN"`
}

// JSONMove represents one history step in JSON format.
type JSONMove struct {
	Number    int    `json:"number"`
	Color     string `json:"color"` // "white" or "black"
	Algebraic string `json:"algebraic"`
	Long      string `json:"long"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game and its history to JSON format.
func GameToJSON(g *game.Game) *JSONGame {
	moves := StepsToJSON(g.History())
	return &JSONGame{
		ID:       g.ID().String(),
		Moves:    moves,
		PlyCount: len(moves),
		Status:   g.Status().String(),
		FinalFEN: g.FEN(),
	}
}

// StepsToJSON converts history steps to JSON moves.
func StepsToJSON(h *history.History) []JSONMove {
	steps := h.Steps()
	result := make([]JSONMove, 0, len(steps))
	for _, s := range steps {
		result = append(result, JSONMove{
			Number:    s.Number,
			Color:     strings.ToLower(s.Colour.String()),
			Algebraic: s.Algebraic,
			Long:      s.Long,
		})
	}
	return result
}

// OutputGamesJSON writes multiple games as a JSON array.
func OutputGamesJSON(games []*game.Game, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, g := range games {
		jsonGames[i] = GameToJSON(g)
	}
	return encodeJSON(w, &JSONOutput{Games: jsonGames})
}

// encodeJSON writes v as indented JSON.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
