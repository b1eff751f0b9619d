package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Header     map[string]string     `json:"header"`
	Moves      []draughts.MoveRecord `json:"moves"`
	Notation   []string              `json:"notation"`
	Result     string                `json:"result,omitempty"`
	PlyCount   int                   `json:"plyCount"`
	Turn       string                `json:"turn"`
	InitialFEN string                `json:"initialFEN"`
	FEN        string                `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a draughts game to JSON format.
func GameToJSON(g *engine.Game) *JSONGame {
	header := g.Header()
	jg := &JSONGame{
		Header:     header,
		Moves:      g.HistoryVerbose(),
		Notation:   g.History(),
		Result:     header[draughts.ResultTag],
		Turn:       g.Turn().String(),
		InitialFEN: engine.DefaultFEN,
		FEN:        g.FEN(),
	}
	jg.PlyCount = len(jg.Moves)
	if fen, ok := header[draughts.FENTag]; ok {
		jg.InitialFEN = fen
	}
	return jg
}

// WriteGameJSON writes a single game as indented JSON.
func WriteGameJSON(w io.Writer, g *engine.Game) error {
	return encodeJSON(w, GameToJSON(g))
}

// WriteGamesJSON writes several games as one JSON document.
func WriteGamesJSON(w io.Writer, games []*engine.Game) error {
	out := &JSONOutput{Games: make([]*JSONGame, len(games))}
	for i, g := range games {
		out.Games[i] = GameToJSON(g)
	}
	return encodeJSON(w, out)
}

// WriteHistoryJSON writes the verbose move history of a game as a JSON array.
func WriteHistoryJSON(w io.Writer, g *engine.Game) error {
	return encodeJSON(w, g.HistoryVerbose())
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
